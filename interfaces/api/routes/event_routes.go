package routes

import (
	"github.com/gofiber/fiber/v2"

	"bizmanager/interfaces/api/handlers"
)

func SetupEventRoutes(api fiber.Router, h *handlers.Handlers) {
	events := api.Group("/events")
	events.Get("/", h.EventHandler.ListEvents)
	events.Post("/", h.EventHandler.CreateEvent)
	events.Get("/:id", h.EventHandler.GetEvent)
	events.Put("/:id", h.EventHandler.UpdateEvent)
	events.Delete("/:id", h.EventHandler.DeleteEvent)
}
