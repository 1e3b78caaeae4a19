package ports

import (
	"context"
	"time"
)

// GeocodingConfig represents geocoding configuration
type GeocodingConfig struct {
	Provider          string
	FallbackLatitude  float64
	FallbackLongitude float64
	EnableCache       bool
	CacheTTL          time.Duration
}

// UpstreamsConfig describes which upstream services are wired
type UpstreamsConfig struct {
	Geocoder         string
	HistoricalSource string
	RealTimeEnabled  bool
	LanguageModel    string
	Timeout          time.Duration
}

// CacheConfig represents the cache backend selection. Credentials are not exposed.
type CacheConfig struct {
	Type      string
	RedisAddr string
	RedisDB   int
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetGeocodingConfig() GeocodingConfig
	GetUpstreamsConfig() UpstreamsConfig
	GetCacheConfig() CacheConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// MetricsCollector defines the contract for metrics collection
type MetricsCollector interface {
	RecordCacheHit(ctx context.Context, cache string)
	RecordCacheMiss(ctx context.Context, cache string)
	RecordUpstreamCall(ctx context.Context, provider string, success bool, duration time.Duration)
	RecordPipelineRun(ctx context.Context, state string, duration time.Duration)
	RecordDegradation(ctx context.Context, stage string)
}
