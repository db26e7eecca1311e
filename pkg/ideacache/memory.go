package ideacache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	value     []byte
	createdAt time.Time
}

// MemoryCache is the process-wide in-memory implementation: a mutex-guarded
// map with lazy expiry. Concurrent misses on the same key may both
// regenerate; last write wins, which is acceptable because generation is
// idempotent enough.
type MemoryCache struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[string]entry
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry),
	}
}

// NewMemoryCacheWithClock injects the clock for expiry tests.
func NewMemoryCacheWithClock(ttl time.Duration, now func() time.Time) *MemoryCache {
	cache := NewMemoryCache(ttl)
	cache.now = now
	return cache
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || c.now().Sub(e.createdAt) >= c.ttl {
		return nil, false, nil
	}
	return e.value, true, nil
}

func (c *MemoryCache) Put(_ context.Context, key string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, createdAt: c.now()}
	return nil
}

func (c *MemoryCache) SweepExpired(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, e := range c.entries {
		if now.Sub(e.createdAt) >= c.ttl {
			delete(c.entries, key)
		}
	}
	return nil
}

// Len reports the number of stored entries, live or expired. Test helper.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

var _ Cache = (*MemoryCache)(nil)
