package ideacache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "ideacache:"

// RedisCache is the distributed implementation. Expiry is delegated to Redis
// TTLs, so SweepExpired has nothing left to do.
type RedisCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisCache(client redis.Cmdable, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := c.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return value, true, nil
}

func (c *RedisCache) Put(ctx context.Context, key string, value []byte) error {
	return c.client.Set(ctx, redisKeyPrefix+key, value, c.ttl).Err()
}

// SweepExpired is a no-op: Redis evicts expired keys itself.
func (c *RedisCache) SweepExpired(context.Context) error { return nil }

var _ Cache = (*RedisCache)(nil)
