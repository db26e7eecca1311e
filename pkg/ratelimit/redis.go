package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "ratelimit:"

// RedisLimiter counts requests in Redis so several instances share one
// window. INCR creates the key at 1; the first increment attaches the window
// expiry, after which the counter lives exactly one window.
type RedisLimiter struct {
	client    redis.Cmdable
	windowLen time.Duration
	quota     int
}

func NewRedisLimiter(client redis.Cmdable, windowLen time.Duration, quota int) *RedisLimiter {
	return &RedisLimiter{client: client, windowLen: windowLen, quota: quota}
}

func (l *RedisLimiter) Allow(ctx context.Context, identifier string) (bool, error) {
	key := redisKeyPrefix + identifier

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := l.client.Expire(ctx, key, l.windowLen).Err(); err != nil {
			return false, err
		}
	}
	return count <= int64(l.quota), nil
}

var _ Limiter = (*RedisLimiter)(nil)
