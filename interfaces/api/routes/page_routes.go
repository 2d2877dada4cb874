package routes

import (
	"github.com/gofiber/fiber/v2"

	"bizmanager/interfaces/api/handlers"
)

func SetupPageRoutes(app *fiber.App, h *handlers.Handlers, protected fiber.Handler) {
	app.Get("/catalog", h.PageHandler.Catalog)

	app.Get("/", protected, h.PageHandler.Index)
	app.Get("/tasks", protected, h.PageHandler.Tasks)
	app.Get("/contacts", protected, h.PageHandler.Contacts)
	app.Get("/warehouse", protected, h.PageHandler.Warehouse)
	app.Get("/calendar", protected, func(c *fiber.Ctx) error {
		return c.Redirect("/calendar/month", fiber.StatusFound)
	})
	app.Get("/calendar/:view", protected, h.PageHandler.Calendar)
}
