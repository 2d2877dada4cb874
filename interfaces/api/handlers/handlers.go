package handlers

import (
	"github.com/gofiber/fiber/v2/middleware/session"

	"bizmanager/domain/services"
)

// Services contains all the services needed for handlers
type Services struct {
	TaskService     services.TaskService
	CalendarService services.CalendarService
	ContactService  services.ContactService
	CarService      services.CarService
	AuthService     services.AuthService
	Sessions        *session.Store
}

// Handlers contains all HTTP handlers
type Handlers struct {
	TaskHandler    *TaskHandler
	EventHandler   *EventHandler
	ContactHandler *ContactHandler
	CarHandler     *CarHandler
	AuthHandler    *AuthHandler
	PageHandler    *PageHandler
}

func NewHandlers(s *Services) *Handlers {
	return &Handlers{
		TaskHandler:    NewTaskHandler(s.TaskService),
		EventHandler:   NewEventHandler(s.CalendarService),
		ContactHandler: NewContactHandler(s.ContactService),
		CarHandler:     NewCarHandler(s.CarService),
		AuthHandler:    NewAuthHandler(s.AuthService, s.Sessions),
		PageHandler:    NewPageHandler(s.TaskService, s.CalendarService, s.ContactService, s.CarService),
	}
}
