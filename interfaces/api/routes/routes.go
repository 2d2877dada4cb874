package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"bizmanager/domain/services"
	wshub "bizmanager/infrastructure/websocket"
	"bizmanager/interfaces/api/handlers"
	"bizmanager/interfaces/api/middleware"
)

// Options carries what the route setup needs besides the handlers
type Options struct {
	Sessions    *session.Store
	AuthService services.AuthService
	Hub         *wshub.Hub
	// FilesRoot is served at /files when photos are stored locally
	FilesRoot string
	// HealthChecks are run by GET /health, keyed by service name
	HealthChecks map[string]HealthCheck
}

func SetupRoutes(app *fiber.App, h *handlers.Handlers, opts Options) {
	protected := middleware.RequireLogin(opts.Sessions, opts.AuthService)

	SetupHealthRoutes(app, opts.HealthChecks)
	SetupAuthRoutes(app, h)

	if opts.FilesRoot != "" {
		app.Static("/files", opts.FilesRoot)
	}

	api := app.Group("/api")
	SetupTokenRoutes(api, h)

	secured := api.Group("", protected)
	SetupTaskRoutes(secured, h)
	SetupEventRoutes(secured, h)
	SetupContactRoutes(secured, h)
	SetupCarRoutes(secured, h)

	SetupPageRoutes(app, h, protected)

	if opts.Hub != nil {
		SetupWebSocketRoutes(app, opts.Hub, protected)
	}
}
