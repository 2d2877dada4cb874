package services

import (
	"context"
	"time"

	"bizmanager/domain/dto"
	"bizmanager/domain/models"
	"bizmanager/domain/repositories"
	"bizmanager/pkg/calendar"
)

type CalendarService interface {
	CreateEvent(ctx context.Context, ownerID *uint, req *dto.CreateEventRequest) (*models.CalendarEvent, error)
	GetEvent(ctx context.Context, id uint) (*models.CalendarEvent, error)
	ListEvents(ctx context.Context, filter repositories.EventFilter) ([]*models.CalendarEvent, error)
	UpdateEvent(ctx context.Context, id uint, req *dto.UpdateEventRequest) (*models.CalendarEvent, error)
	DeleteEvent(ctx context.Context, id uint) error

	// EventsForView returns the view's window around date and the events starting in it
	EventsForView(ctx context.Context, view calendar.View, date time.Time) (calendar.Window, []*models.CalendarEvent, error)
}
