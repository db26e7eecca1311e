package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"

	"gather.link/configs"
	"gather.link/configs/configssession"
	"gather.link/handlers"
	"gather.link/utils"
)

// SetupEventApp wires all middleware and routes of the event server.
func SetupEventApp(app *fiber.App, cfg *configs.Config) {
	app.Use(recoverMiddleware.New())
	app.Use(logger.New())
	app.Use(initializeSessionAndLocals(cfg))

	app.Static("/uploads", "./uploads")

	authHandler := handlers.NewAuthHandler()
	eventHandler := handlers.NewEventHandler(cfg.BaseURL)
	rsvpHandler := handlers.NewRSVPHandler()
	photoHandler := handlers.NewPhotoHandler()
	inviteHandler := handlers.NewInviteHandler()

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	auth := app.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", authHandler.Logout)

	events := app.Group("/events")
	events.Post("/", eventHandler.Create)
	events.Get("/", eventHandler.List)
	events.Get("/:id", eventHandler.Get)
	events.Put("/:id", eventHandler.Update)
	events.Delete("/:id", eventHandler.Delete)
	events.Post("/:id/rsvp", rsvpHandler.Submit)
	events.Get("/:id/export", eventHandler.Export)
	events.Get("/:id/qr", eventHandler.QR)
	events.Post("/:id/photos", photoHandler.Upload)

	// Public invitation page, reached from the QR code.
	app.Get("/event/:id", inviteHandler.ShowEvent)

	app.Use(notFoundHandler)
}

// initializeSessionAndLocals stores the session store in locals and, when a
// session carries a logged-in admin, exposes the user ID to handlers.
func initializeSessionAndLocals(cfg *configs.Config) fiber.Handler {
	sessionStore := configssession.SetupSession(cfg.SessionExpiration)
	return func(c *fiber.Ctx) error {
		c.Locals("session_store", sessionStore)
		sess, err := utils.SessionStart(c)
		if err != nil {
			return c.Next()
		}
		userID, idErr := utils.GetUserIDFromSession(sess)
		if idErr == nil {
			c.Locals("userID", userID)
		}
		return c.Next()
	}
}

func notFoundHandler(c *fiber.Ctx) error {
	accepts := c.Accepts("application/json", "text/html")
	switch accepts {
	case "application/json":
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "resource not found"})
	default:
		return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{
			"Title": "Page Not Found",
		}, "layouts/main")
	}
}
