package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gather.link/configs"
	"gather.link/handlers"
	"gather.link/services"
)

// SetupGiftAPI wires the gift idea endpoints onto the app.
func SetupGiftAPI(app *fiber.App, svc services.IIdeaService, cfg *configs.Config) {
	app.Use(recoverMiddleware.New())
	app.Use(logger.New())

	ideaHandler := handlers.NewIdeaHandler(svc)

	api := app.Group("/api")
	api.Get("/health", ideaHandler.Health)
	api.Get("/offline", ideaHandler.Offline)
	api.Post("/generate", ideaHandler.Generate)

	if cfg.EnableMetrics {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "resource not found"})
	})
}
