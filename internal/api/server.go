// Package api exposes the scheduler over HTTP with fiber.
package api

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/TigerCipher/cpu-scheduler/internal/config"
)

// New builds the fiber app with every route registered. It does not listen.
// A panicking handler answers 500 instead of taking the process down.
func New(cfg *config.Config, logger *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "cpusched",
		DisableStartupMessage: true,
	})
	app.Use(requestLogger(logger))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e any) {
			logger.Error("Handler panicked.", "path", c.Path(), "panic", e)
		},
	}))

	h := NewHandler(cfg, logger)
	app.Get("/health", h.Health)

	api := app.Group("/api")
	v1 := api.Group("/v1")
	{
		v1.Post("/schedule", h.Schedule)
		v1.Post("/compare", h.Compare)
	}
	return app
}

func requestLogger(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		logger.Debug("Request handled.",
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"duration", time.Since(start),
		)
		return err
	}
}
