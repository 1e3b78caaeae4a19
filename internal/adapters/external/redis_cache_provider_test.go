package external

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geoclima.app/internal/config"
	"geoclima.app/internal/ports"
	"geoclima.app/pkg/errors"
)

// setupMockRedis creates a mock Redis server for testing
func setupMockRedis(t *testing.T) (*miniredis.Miniredis, *config.RedisConfig) {
	t.Helper()

	mockRedis := miniredis.RunT(t)

	redisConfig := &config.RedisConfig{
		Addr:         mockRedis.Addr(),
		DB:           0,
		DialTimeout:  5,
		ReadTimeout:  3,
		WriteTimeout: 3,
	}

	return mockRedis, redisConfig
}

func TestRedisCacheProviderAdapter_NewRedisCacheProviderAdapter(t *testing.T) {
	tests := []struct {
		name        string
		config      func(t *testing.T) *config.RedisConfig
		expectError bool
		errorType   errors.ErrorType
	}{
		{
			name:        "NilConfig",
			config:      func(t *testing.T) *config.RedisConfig { return nil },
			expectError: true,
			errorType:   errors.ErrorTypeConfiguration,
		},
		{
			name: "ValidConfig",
			config: func(t *testing.T) *config.RedisConfig {
				_, cfg := setupMockRedis(t)
				return cfg
			},
		},
		{
			name: "InvalidAddress",
			config: func(t *testing.T) *config.RedisConfig {
				return &config.RedisConfig{Addr: "invalid:address:port", DialTimeout: 1, ReadTimeout: 1, WriteTimeout: 1}
			},
			expectError: true,
			errorType:   errors.ErrorTypeCache,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter, err := NewRedisCacheProviderAdapter(tt.config(t))

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, adapter)
				assert.Equal(t, tt.errorType, errors.TypeOf(err))
				return
			}

			require.NoError(t, err)
			require.NotNil(t, adapter)
			assert.NoError(t, adapter.Close())
		})
	}
}

func TestRedisCacheProviderAdapter_Operations(t *testing.T) {
	mockRedis, redisConfig := setupMockRedis(t)

	adapter, err := NewRedisCacheProviderAdapter(redisConfig)
	require.NoError(t, err)
	defer func() { _ = adapter.Close() }()

	ctx := context.Background()

	t.Run("SetAndGet", func(t *testing.T) {
		require.NoError(t, adapter.Set(ctx, "test-key", []byte("test-value"), time.Minute))

		retrieved, err := adapter.Get(ctx, "test-key")
		require.NoError(t, err)
		assert.Equal(t, []byte("test-value"), retrieved)
	})

	t.Run("GetNonExistentKey", func(t *testing.T) {
		retrieved, err := adapter.Get(ctx, "non-existent-key")
		assert.Nil(t, retrieved)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("StoredWithTTL", func(t *testing.T) {
		require.NoError(t, adapter.Set(ctx, "ttl-check", []byte("v"), time.Minute))

		assert.True(t, mockRedis.Exists("ttl-check"))
		assert.Equal(t, time.Minute, mockRedis.TTL("ttl-check"))
	})

	t.Run("TTLExpiration", func(t *testing.T) {
		require.NoError(t, adapter.Set(ctx, "ttl-key", []byte("v"), 100*time.Millisecond))

		_, err := adapter.Get(ctx, "ttl-key")
		require.NoError(t, err)

		mockRedis.FastForward(150 * time.Millisecond)

		_, err = adapter.Get(ctx, "ttl-key")
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("Stats", func(t *testing.T) {
		stats := adapter.GetStats()
		assert.Equal(t, int64(2), stats.Hits)
		assert.Equal(t, int64(2), stats.Misses)
		assert.InDelta(t, 0.5, stats.HitRatio, 1e-9)
	})
}

func TestRedisCacheProviderAdapter_ValidationErrors(t *testing.T) {
	_, redisConfig := setupMockRedis(t)

	adapter, err := NewRedisCacheProviderAdapter(redisConfig)
	require.NoError(t, err)
	defer func() { _ = adapter.Close() }()

	ctx := context.Background()

	_, err = adapter.Get(ctx, "")
	assert.True(t, errors.IsValidationError(err))
	assert.True(t, errors.IsValidationError(adapter.Set(ctx, "", []byte("v"), time.Minute)))
	assert.True(t, errors.IsValidationError(adapter.Set(ctx, "k", nil, time.Minute)))
	assert.True(t, errors.IsValidationError(adapter.Set(ctx, "k", []byte("v"), 0)))
}

func TestRedisCacheProviderAdapter_PingAndServerLoss(t *testing.T) {
	mockRedis, redisConfig := setupMockRedis(t)

	adapter, err := NewRedisCacheProviderAdapter(redisConfig)
	require.NoError(t, err)
	defer func() { _ = adapter.Close() }()

	ctx := context.Background()
	require.NoError(t, adapter.Ping(ctx))

	mockRedis.Close()

	assert.True(t, errors.IsCacheError(adapter.Ping(ctx)))
	_, err = adapter.Get(ctx, "any")
	assert.True(t, errors.IsCacheError(err))
}

func TestGeocodeCacheAdapter_WithRedis(t *testing.T) {
	_, redisConfig := setupMockRedis(t)

	provider, err := NewRedisCacheProviderAdapter(redisConfig)
	require.NoError(t, err)
	defer func() { _ = provider.Close() }()

	cache := NewGeocodeCacheAdapter(provider)
	ctx := context.Background()

	_, err = cache.Get(ctx, "geocode:mapbox:yosemite")
	assert.True(t, errors.IsNotFoundError(err))

	match := &ports.GeocodeMatch{Latitude: 37.8651, Longitude: -119.5383, DisplayName: "Yosemite National Park"}
	require.NoError(t, cache.Set(ctx, "geocode:mapbox:yosemite", match, time.Hour))

	cached, err := cache.Get(ctx, "geocode:mapbox:yosemite")
	require.NoError(t, err)
	assert.Equal(t, match, cached)
}
