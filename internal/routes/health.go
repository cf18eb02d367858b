package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RegisterHealthRoutes adds the monitoring endpoint. It reports degraded
// with a 503 when a configured backing store stops answering pings.
func RegisterHealthRoutes(app *fiber.App, d Deps) {
	app.Get("/api/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		status := "OK"
		message := "StrideTrack backend is running"
		code := http.StatusOK

		if d.DB != nil {
			if err := d.DB.Ping(ctx); err != nil {
				status, code = "degraded", http.StatusServiceUnavailable
				message = "database unreachable"
			}
		}
		if d.Cache != nil && code == http.StatusOK {
			if err := d.Cache.Ping(ctx).Err(); err != nil {
				status, code = "degraded", http.StatusServiceUnavailable
				message = "cache unreachable"
			}
		}

		return c.Status(code).JSON(fiber.Map{
			"status":    status,
			"message":   message,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
}
