package configsredis

import (
	"context"
	"time"

	"gather.link/configs/configslog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewClient connects to Redis at url (either a redis:// URL or a plain
// host:port) and verifies the connection with a ping.
func NewClient(url string) *redis.Client {
	opts, err := redis.ParseURL(url)
	if err != nil {
		opts = &redis.Options{Addr: url}
	}
	opts.MaxRetries = 3

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		configslog.Log.Fatal("failed to connect to redis", zap.String("url", url), zap.Error(err))
	}
	configslog.SLog.Info("redis connection established")
	return client
}
