package external

import (
	"context"
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"geoclima.app/internal/ports"
	"geoclima.app/pkg/errors"
)

const memoryCacheCleanupInterval = 10 * time.Minute

// MemoryCacheProvider implements CacheProvider port on an in-process go-cache store
type MemoryCacheProvider struct {
	store  *gocache.Cache
	hits   atomic.Int64
	misses atomic.Int64
}

func NewMemoryCacheProvider() *MemoryCacheProvider {
	return &MemoryCacheProvider{
		store: gocache.New(gocache.NoExpiration, memoryCacheCleanupInterval),
	}
}

func (c *MemoryCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("cache key cannot be empty")
	}

	item, found := c.store.Get(key)
	if !found {
		c.misses.Add(1)
		return nil, errors.NewNotFoundError("cache miss")
	}

	value, ok := item.([]byte)
	if !ok {
		c.store.Delete(key)
		c.misses.Add(1)
		return nil, errors.NewCacheError("cached value has unexpected type", nil)
	}

	c.hits.Add(1)
	return value, nil
}

func (c *MemoryCacheProvider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("cache TTL must be positive")
	}

	c.store.Set(key, value, ttl)
	return nil
}

// Ping always succeeds for the in-process store
func (c *MemoryCacheProvider) Ping(ctx context.Context) error {
	return nil
}

func (c *MemoryCacheProvider) GetStats() ports.CacheStats {
	return cacheStats(c.hits.Load(), c.misses.Load())
}

func cacheStats(hits, misses int64) ports.CacheStats {
	total := hits + misses
	hitRatio := float64(0)
	if total > 0 {
		hitRatio = float64(hits) / float64(total)
	}

	return ports.CacheStats{
		Hits:     hits,
		Misses:   misses,
		HitRatio: hitRatio,
	}
}
