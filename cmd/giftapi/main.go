package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"gather.link/configs"
	"gather.link/configs/configslog"
	"gather.link/configs/configsredis"
	"gather.link/pkg/giftgen"
	"gather.link/pkg/ideacache"
	"gather.link/pkg/ratelimit"
	"gather.link/routes"
	"gather.link/services"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	cfg := configs.Load()

	var (
		cache   ideacache.Cache
		limiter ratelimit.Limiter
	)
	if cfg.CacheBackend == "redis" {
		client := configsredis.NewClient(cfg.RedisURL)
		defer client.Close()
		cache = ideacache.NewRedisCache(client, cfg.CacheTTL)
		limiter = ratelimit.NewRedisLimiter(client, cfg.RateWindow, cfg.RateQuota)
		configslog.SLog.Info("Using redis cache and rate limiter")
	} else {
		cache = ideacache.NewMemoryCache(cfg.CacheTTL)
		limiter = ratelimit.NewMemoryLimiter(cfg.RateWindow, cfg.RateQuota)
		configslog.SLog.Info("Using in-memory cache and rate limiter")
	}

	var producer giftgen.Producer
	model := "template-v1"
	if cfg.HFAPIKey != "" {
		producer = giftgen.NewHFProducer(cfg.HFAPIKey, cfg.HFModel, cfg.HFTimeout)
		model = cfg.HFModel
		configslog.SLog.Infof("Using hosted model %s", cfg.HFModel)
	} else {
		producer = giftgen.NewTemplateProducer()
		configslog.SLog.Info("No model API key set, using template producer")
	}

	svc := services.NewIdeaService(limiter, cache, producer, giftgen.NewOfflinePool(), model)

	app := fiber.New(fiber.Config{
		AppName: "gather.link gift API",
	})

	routes.SetupGiftAPI(app, svc, cfg)

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		configslog.SLog.Info("Shutdown signal received, stopping server...")
		if err := app.Shutdown(); err != nil {
			configslog.Log.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	configslog.SLog.Infof("Gift API listening on :%s", cfg.GiftPort)
	if err := app.Listen(":" + cfg.GiftPort); err != nil {
		configslog.Log.Fatal("Server stopped unexpectedly", zap.Error(err))
	}
}
