package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"

	"gather.link/configs"
	"gather.link/configs/configsdatabase"
	"gather.link/configs/configslog"
	"gather.link/routes"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	cfg := configs.Load()

	configsdatabase.InitDB(cfg.DatabaseURL)
	defer configsdatabase.CloseDB()

	engine := html.New("./views", ".html")

	app := fiber.New(fiber.Config{
		Views:        engine,
		AppName:      "gather.link event server",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			configslog.Log.Error("Unhandled request error",
				zap.Int("status", code),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
			return c.Status(code).JSON(fiber.Map{"error": "internal server error"})
		},
	})

	routes.SetupEventApp(app, cfg)

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		configslog.SLog.Info("Shutdown signal received, stopping server...")
		if err := app.Shutdown(); err != nil {
			configslog.Log.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	configslog.SLog.Infof("Event server listening on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		configslog.Log.Fatal("Server stopped unexpectedly", zap.Error(err))
	}
}
