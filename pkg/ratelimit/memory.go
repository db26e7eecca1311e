package ratelimit

import (
	"context"
	"sync"
	"time"
)

type window struct {
	count   int
	startAt time.Time
}

// MemoryLimiter is the in-process fixed-window limiter.
type MemoryLimiter struct {
	windowLen time.Duration
	quota     int
	now       func() time.Time

	mu      sync.Mutex
	windows map[string]window
}

func NewMemoryLimiter(windowLen time.Duration, quota int) *MemoryLimiter {
	return &MemoryLimiter{
		windowLen: windowLen,
		quota:     quota,
		now:       time.Now,
		windows:   make(map[string]window),
	}
}

// NewMemoryLimiterWithClock injects the clock for window-reset tests.
func NewMemoryLimiterWithClock(windowLen time.Duration, quota int, now func() time.Time) *MemoryLimiter {
	limiter := NewMemoryLimiter(windowLen, quota)
	limiter.now = now
	return limiter
}

func (l *MemoryLimiter) Allow(_ context.Context, identifier string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.windows[identifier]
	if !ok || now.Sub(w.startAt) >= l.windowLen {
		l.windows[identifier] = window{count: 1, startAt: now}
		return l.quota >= 1, nil
	}

	if w.count >= l.quota {
		return false, nil
	}
	w.count++
	l.windows[identifier] = w
	return true, nil
}

var _ Limiter = (*MemoryLimiter)(nil)
