package external

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geoclima.app/internal/config"
	"geoclima.app/internal/ports"
	"geoclima.app/pkg/errors"
)

func TestCacheProviderFactory_CreateCacheProvider(t *testing.T) {
	factory := NewCacheProviderFactory()

	t.Run("NilConfig", func(t *testing.T) {
		provider, err := factory.CreateCacheProvider(nil)
		assert.Nil(t, provider)
		assert.True(t, errors.IsConfigurationError(err))
	})

	t.Run("Memory", func(t *testing.T) {
		provider, err := factory.CreateCacheProvider(&config.CacheConfig{Type: config.CacheTypeMemory})
		require.NoError(t, err)
		assert.IsType(t, &MemoryCacheProvider{}, provider)
	})

	t.Run("Redis", func(t *testing.T) {
		_, redisConfig := setupMockRedis(t)

		provider, err := factory.CreateCacheProvider(&config.CacheConfig{Type: config.CacheTypeRedis, Redis: *redisConfig})
		require.NoError(t, err)
		assert.IsType(t, &RedisCacheProviderAdapter{}, provider)
		assert.NoError(t, provider.(*RedisCacheProviderAdapter).Close())
	})

	t.Run("Unknown", func(t *testing.T) {
		provider, err := factory.CreateCacheProvider(&config.CacheConfig{Type: config.CacheTypeUnknown})
		assert.Nil(t, provider)
		assert.True(t, errors.IsConfigurationError(err))
		assert.Contains(t, err.Error(), "unsupported cache type")
	})
}

func TestMemoryCacheProvider_Operations(t *testing.T) {
	cache := NewMemoryCacheProvider()
	ctx := context.Background()

	t.Run("SetAndGet", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "k", []byte("v"), time.Minute))

		value, err := cache.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("v"), value)
	})

	t.Run("Miss", func(t *testing.T) {
		_, err := cache.Get(ctx, "missing")
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("Expiry", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "short", []byte("v"), 20*time.Millisecond))
		time.Sleep(40 * time.Millisecond)

		_, err := cache.Get(ctx, "short")
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "a", []byte("1"), time.Minute))
		require.NoError(t, cache.Set(ctx, "a", []byte("2"), time.Minute))

		item, found := cache.store.Get("a")
		require.True(t, found)
		assert.Equal(t, []byte("2"), item)
	})

	t.Run("Stats", func(t *testing.T) {
		stats := cache.GetStats()
		assert.Equal(t, int64(1), stats.Hits)
		assert.Equal(t, int64(2), stats.Misses)
		assert.InDelta(t, 1.0/3.0, stats.HitRatio, 1e-9)
	})
}

func TestMemoryCacheProvider_ValidationErrors(t *testing.T) {
	cache := NewMemoryCacheProvider()
	ctx := context.Background()

	_, err := cache.Get(ctx, "")
	assert.True(t, errors.IsValidationError(err))
	assert.True(t, errors.IsValidationError(cache.Set(ctx, "", []byte("v"), time.Minute)))
	assert.True(t, errors.IsValidationError(cache.Set(ctx, "k", nil, time.Minute)))
	assert.True(t, errors.IsValidationError(cache.Set(ctx, "k", []byte("v"), -time.Second)))
}

func TestGeocodeCacheAdapter(t *testing.T) {
	ctx := context.Background()
	provider := NewMemoryCacheProvider()
	cache := NewGeocodeCacheAdapter(provider)

	t.Run("RoundTrip", func(t *testing.T) {
		match := &ports.GeocodeMatch{Latitude: 48.8566, Longitude: 2.3522, DisplayName: "Paris, Île-de-France, France"}
		require.NoError(t, cache.Set(ctx, "geocode:openmeteo:paris", match, time.Hour))

		cached, err := cache.Get(ctx, "geocode:openmeteo:paris")
		require.NoError(t, err)
		assert.Equal(t, match, cached)
	})

	t.Run("NilMatch", func(t *testing.T) {
		assert.True(t, errors.IsValidationError(cache.Set(ctx, "k", nil, time.Hour)))
	})

	t.Run("CorruptEntry", func(t *testing.T) {
		require.NoError(t, provider.Set(ctx, "geocode:bad", []byte("{not json"), time.Hour))

		_, err := cache.Get(ctx, "geocode:bad")
		assert.True(t, errors.IsCacheError(err))
	})
}

func TestCacheProviders_InterfaceCompliance(t *testing.T) {
	var _ ports.CacheProvider = NewMemoryCacheProvider()
	var _ ports.CacheProvider = (*RedisCacheProviderAdapter)(nil)
	var _ ports.GeocodeCache = NewGeocodeCacheAdapter(nil)
}
