package routes

import (
	"github.com/gofiber/fiber/v2"

	"bizmanager/interfaces/api/handlers"
)

func SetupAuthRoutes(app *fiber.App, h *handlers.Handlers) {
	app.Get("/login", h.AuthHandler.LoginPage)
	app.Post("/login", h.AuthHandler.Login)
	app.Get("/logout", h.AuthHandler.Logout)
}

func SetupTokenRoutes(api fiber.Router, h *handlers.Handlers) {
	api.Post("/auth/token", h.AuthHandler.IssueToken)
}
