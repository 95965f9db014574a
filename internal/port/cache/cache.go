package cache

import (
	"context"
	"time"
)

// Cache is a byte-value cache with per-key TTL. Used to keep the stats
// aggregate cheap under dashboard polling.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Invalidate(ctx context.Context, key string) error
}
