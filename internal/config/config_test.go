package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geoclima.app/pkg/errors"
)

var managedKeys = []string{
	"GEOCODER_PROVIDER", "MAPBOX_API_KEY", "MAPBOX_API_BASE_URL", "OPENMETEO_GEOCODING_BASE_URL",
	"FALLBACK_LATITUDE", "FALLBACK_LONGITUDE", "GEOCODE_CACHE_ENABLED", "GEOCODE_CACHE_TTL_MINUTES",
	"NASA_POWER_BASE_URL", "NASA_POWER_COMMUNITY",
	"OPENWEATHERMAP_API_KEY", "OPENWEATHERMAP_API_BASE_URL",
	"LLM_API_KEY", "LLM_BASE_URL", "LLM_MODEL", "LLM_REQUESTS_PER_MINUTE", "LLM_TIMEOUT_SECONDS",
	"UPSTREAM_TIMEOUT_SECONDS", "UPSTREAM_BREAKER_FAILURES", "UPSTREAM_BREAKER_OPEN_SECONDS", "UPSTREAM_LOGGING_ENABLED",
	"CACHE_TYPE", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "REDIS_DIAL_TIMEOUT", "REDIS_READ_TIMEOUT", "REDIS_WRITE_TIMEOUT",
	"LOG_LEVEL", "LOG_FILE_PATH", "METRICS_TEXTFILE_PATH",
}

// clearEnv unsets every key the loader reads and restores the previous values after the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range managedKeys {
		if value, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { _ = os.Setenv(key, value) })
		}
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("DefaultValues", func(t *testing.T) {
		clearEnv(t)

		config, err := LoadConfig()

		require.NoError(t, err)
		require.NotNil(t, config)
		assert.Equal(t, GeocoderTypeAuto, config.Geocoding.Provider)
		assert.Equal(t, GeocoderTypeOpenMeteo, config.Geocoding.EffectiveProvider())
		assert.Equal(t, 11.2588, config.Geocoding.FallbackLatitude)
		assert.Equal(t, 75.7804, config.Geocoding.FallbackLongitude)
		assert.True(t, config.Geocoding.EnableCache)
		assert.Equal(t, 1440, config.Geocoding.CacheTTLMinutes)
		assert.Equal(t, "https://power.larc.nasa.gov/api/temporal/daily/point", config.Climate.NASAPowerBaseURL)
		assert.Equal(t, "RE", config.Climate.NASAPowerCommunity)
		assert.False(t, config.RealTime.Enabled())
		assert.False(t, config.LanguageModel.Enabled())
		assert.Equal(t, "gemini-2.0-flash", config.LanguageModel.Model)
		assert.Equal(t, 15, config.LanguageModel.RequestsPerMinute)
		assert.Equal(t, 10, config.HTTP.TimeoutSeconds)
		assert.True(t, config.HTTP.EnableLogging)
		assert.Equal(t, CacheTypeMemory, config.Cache.Type)
		assert.Equal(t, "info", config.Log.Level)
		assert.Empty(t, config.Metrics.TextfilePath)
	})

	t.Run("CustomValues", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MAPBOX_API_KEY", "pk.test")
		t.Setenv("OPENWEATHERMAP_API_KEY", "owm-key")
		t.Setenv("LLM_API_KEY", "llm-key")
		t.Setenv("LLM_MODEL", "gpt-4o-mini")
		t.Setenv("CACHE_TYPE", "redis")
		t.Setenv("REDIS_ADDR", "redis:6379")
		t.Setenv("FALLBACK_LATITUDE", "48.8566")
		t.Setenv("LOG_LEVEL", "debug")

		config, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, GeocoderTypeMapbox, config.Geocoding.EffectiveProvider())
		assert.True(t, config.RealTime.Enabled())
		assert.True(t, config.LanguageModel.Enabled())
		assert.Equal(t, "gpt-4o-mini", config.LanguageModel.Model)
		assert.Equal(t, CacheTypeRedis, config.Cache.Type)
		assert.Equal(t, "redis:6379", config.Cache.Redis.Addr)
		assert.Equal(t, 48.8566, config.Geocoding.FallbackLatitude)
		assert.Equal(t, "debug", config.Log.Level)
	})

	t.Run("InvalidNumber", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("UPSTREAM_TIMEOUT_SECONDS", "soon")

		config, err := LoadConfig()

		require.Error(t, err)
		assert.Nil(t, config)
		assert.True(t, errors.IsConfigurationError(err))
	})
}

func validConfig() Config {
	return Config{
		Geocoding: GeocodingConfig{
			Provider:          GeocoderTypeAuto,
			MapboxBaseURL:     "https://api.mapbox.com",
			OpenMeteoBaseURL:  "https://geocoding-api.open-meteo.com/v1",
			FallbackLatitude:  11.2588,
			FallbackLongitude: 75.7804,
			EnableCache:       true,
			CacheTTLMinutes:   60,
		},
		Climate: ClimateConfig{
			NASAPowerBaseURL:   "https://power.larc.nasa.gov/api/temporal/daily/point",
			NASAPowerCommunity: "RE",
		},
		LanguageModel: LanguageModelConfig{
			BaseURL:           "https://example.com/v1",
			Model:             "m",
			RequestsPerMinute: 10,
			TimeoutSeconds:    30,
		},
		HTTP: HTTPConfig{
			TimeoutSeconds:          10,
			BreakerFailureThreshold: 3,
			BreakerOpenSeconds:      30,
		},
		Cache: CacheConfig{
			Type: CacheTypeMemory,
			Redis: RedisConfig{
				Addr:         "localhost:6379",
				DialTimeout:  5,
				ReadTimeout:  3,
				WriteTimeout: 3,
			},
		},
		Log: LogConfig{Level: "info"},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		message string
	}{
		{
			name:   "Valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "UnknownGeocoder",
			mutate:  func(c *Config) { c.Geocoding.Provider = GeocoderTypeUnknown },
			message: "GEOCODER_PROVIDER must be one of",
		},
		{
			name:    "MapboxWithoutKey",
			mutate:  func(c *Config) { c.Geocoding.Provider = GeocoderTypeMapbox },
			message: "MAPBOX_API_KEY is required",
		},
		{
			name:    "FallbackLatitudeOutOfRange",
			mutate:  func(c *Config) { c.Geocoding.FallbackLatitude = 120 },
			message: "FALLBACK_LATITUDE",
		},
		{
			name:    "GeocodeCacheTTLZero",
			mutate:  func(c *Config) { c.Geocoding.CacheTTLMinutes = 0 },
			message: "GEOCODE_CACHE_TTL_MINUTES",
		},
		{
			name: "GeocodeCacheTTLIgnoredWhenDisabled",
			mutate: func(c *Config) {
				c.Geocoding.EnableCache = false
				c.Geocoding.CacheTTLMinutes = 0
			},
		},
		{
			name:    "ClimateURLWithoutScheme",
			mutate:  func(c *Config) { c.Climate.NASAPowerBaseURL = "power.larc.nasa.gov" },
			message: "NASA_POWER_BASE_URL must start with http:// or https://",
		},
		{
			name: "RealTimeURLCheckedOnlyWithKey",
			mutate: func(c *Config) {
				c.RealTime.OpenWeatherMapKey = "key"
				c.RealTime.OpenWeatherMapBaseURL = ""
			},
			message: "OPENWEATHERMAP_API_BASE_URL cannot be empty",
		},
		{
			name: "LLMRateZero",
			mutate: func(c *Config) {
				c.LanguageModel.APIKey = "key"
				c.LanguageModel.RequestsPerMinute = 0
			},
			message: "LLM_REQUESTS_PER_MINUTE",
		},
		{
			name:   "LLMRateIgnoredWithoutKey",
			mutate: func(c *Config) { c.LanguageModel.RequestsPerMinute = 0 },
		},
		{
			name:    "UpstreamTimeoutZero",
			mutate:  func(c *Config) { c.HTTP.TimeoutSeconds = 0 },
			message: "UPSTREAM_TIMEOUT_SECONDS",
		},
		{
			name:    "UnknownCacheType",
			mutate:  func(c *Config) { c.Cache.Type = CacheTypeUnknown },
			message: "CACHE_TYPE must be one of: memory, redis",
		},
		{
			name: "RedisWithoutAddress",
			mutate: func(c *Config) {
				c.Cache.Type = CacheTypeRedis
				c.Cache.Redis.Addr = ""
			},
			message: "REDIS_ADDR cannot be empty",
		},
		{
			name:    "UnknownLogLevel",
			mutate:  func(c *Config) { c.Log.Level = "chatty" },
			message: "LOG_LEVEL must be one of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validConfig()
			tt.mutate(&config)

			err := config.Validate()
			if tt.message == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsConfigurationError(err))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestGeocoderTypeFromString(t *testing.T) {
	assert.Equal(t, GeocoderTypeAuto, GeocoderTypeFromString(""))
	assert.Equal(t, GeocoderTypeMapbox, GeocoderTypeFromString("Mapbox"))
	assert.Equal(t, GeocoderTypeOpenMeteo, GeocoderTypeFromString("open-meteo"))
	assert.Equal(t, GeocoderTypeUnknown, GeocoderTypeFromString("google"))
}

func TestCacheTypeFromString(t *testing.T) {
	assert.Equal(t, CacheTypeMemory, CacheTypeFromString("memory"))
	assert.Equal(t, CacheTypeRedis, CacheTypeFromString("redis"))
	assert.Equal(t, CacheTypeUnknown, CacheTypeFromString("memcached"))
	assert.False(t, CacheTypeUnknown.IsValid())
}
