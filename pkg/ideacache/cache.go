// Package ideacache is a TTL'd key→value store for generated idea payloads.
// The contract is deliberately small (get, put, sweep) so the in-memory map
// can be swapped for a distributed backend without touching business logic.
package ideacache

import "context"

// Cache stores opaque payloads under canonical request keys. An entry older
// than the TTL is logically expired and must never be served; expired entries
// are purged by SweepExpired, which callers run opportunistically before each
// write rather than on a background timer.
type Cache interface {
	// Get returns the stored payload and whether a live entry exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Put stores value under key with a fresh timestamp.
	Put(ctx context.Context, key string, value []byte) error
	// SweepExpired removes every expired entry.
	SweepExpired(ctx context.Context) error
}
