// Package ratelimit implements fixed-window request limiting keyed by a
// caller identifier. The window counter resets atomically when the window
// elapses; requests over the quota inside one window are rejected.
package ratelimit

import "context"

// Limiter decides whether a request from the given identifier may proceed.
type Limiter interface {
	Allow(ctx context.Context, identifier string) (bool, error)
}
