package ports

import (
	"context"
	"time"
)

// CacheProvider defines the contract for caching operations
type CacheProvider interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// CacheStats represents lookups served by a cache backend since startup
type CacheStats struct {
	Hits     int64
	Misses   int64
	HitRatio float64
}
