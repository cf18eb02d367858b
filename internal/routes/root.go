package routes

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/stridetrack/stridetrack/internal/config"
)

const apiVersion = "1.0.0"

// RegisterRootRoute adds the welcome/info endpoint.
func RegisterRootRoute(app *fiber.App, cfg config.Config) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"message": "Welcome to " + cfg.AppName + " API",
			"version": apiVersion,
		})
	})
}
