package infrastructure

import (
	"time"

	"geoclima.app/internal/config"
	"geoclima.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetGeocodingConfig returns geocoding configuration with "auto" already resolved
func (c *ConfigProviderAdapter) GetGeocodingConfig() ports.GeocodingConfig {
	return ports.GeocodingConfig{
		Provider:          c.config.Geocoding.EffectiveProvider().String(),
		FallbackLatitude:  c.config.Geocoding.FallbackLatitude,
		FallbackLongitude: c.config.Geocoding.FallbackLongitude,
		EnableCache:       c.config.Geocoding.EnableCache,
		CacheTTL:          time.Duration(c.config.Geocoding.CacheTTLMinutes) * time.Minute,
	}
}

// GetUpstreamsConfig describes which upstream services are wired
func (c *ConfigProviderAdapter) GetUpstreamsConfig() ports.UpstreamsConfig {
	languageModel := ""
	if c.config.LanguageModel.Enabled() {
		languageModel = c.config.LanguageModel.Model
	}

	return ports.UpstreamsConfig{
		Geocoder:         c.config.Geocoding.EffectiveProvider().String(),
		HistoricalSource: "nasa-power",
		RealTimeEnabled:  c.config.RealTime.Enabled(),
		LanguageModel:    languageModel,
		Timeout:          time.Duration(c.config.HTTP.TimeoutSeconds) * time.Second,
	}
}

// GetCacheConfig returns cache configuration
func (c *ConfigProviderAdapter) GetCacheConfig() ports.CacheConfig {
	cacheConfig := ports.CacheConfig{
		Type: c.config.Cache.Type.String(),
	}
	if c.config.Cache.Type == config.CacheTypeRedis {
		cacheConfig.RedisAddr = c.config.Cache.Redis.Addr
		cacheConfig.RedisDB = c.config.Cache.Redis.DB
	}
	return cacheConfig
}
