package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"bizmanager/pkg/logger"
)

const healthCheckTimeout = 2 * time.Second

// HealthCheck reports whether one backing service answers
type HealthCheck func(ctx context.Context) error

func SetupHealthRoutes(app *fiber.App, checks map[string]HealthCheck) {
	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthCheckTimeout)
		defer cancel()

		status := "ok"
		results := make(fiber.Map, len(checks))
		for name, check := range checks {
			if err := check(ctx); err != nil {
				logger.WarnContext(ctx, "Health check failed", "check", name, "error", err)
				results[name] = "unavailable"
				status = "degraded"
				continue
			}
			results[name] = "ok"
		}

		code := fiber.StatusOK
		if status != "ok" {
			code = fiber.StatusServiceUnavailable
		}
		return c.Status(code).JSON(fiber.Map{
			"status":  status,
			"service": "bizmanager",
			"checks":  results,
		})
	})
}
