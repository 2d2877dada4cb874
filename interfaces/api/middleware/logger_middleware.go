package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"bizmanager/pkg/logger"
)

// LoggerMiddleware logs one line per request; static files and health checks are skipped
func LoggerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		if path == "/health" || strings.HasPrefix(path, "/files/") {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()
		latency := time.Since(start)

		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		logFunc := logger.InfoContext
		if status >= 500 {
			logFunc = logger.ErrorContext
		} else if status >= 400 {
			logFunc = logger.WarnContext
		}

		logFunc(c.UserContext(), "Request completed",
			"method", c.Method(),
			"path", path,
			"status", status,
			"latency", latency.String(),
			"ip", c.IP(),
		)

		return err
	}
}
