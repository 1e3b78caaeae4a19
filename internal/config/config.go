package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"geoclima.app/pkg/errors"
)

const (
	maxRedisDB           = 15
	maxGeocodeTTLMinutes = 10080
	maxTimeoutSeconds    = 300
	maxRequestsPerMinute = 600
)

// Config represents the application configuration structure
type Config struct {
	Geocoding     GeocodingConfig     `split_words:"true"`
	Climate       ClimateConfig       `split_words:"true"`
	RealTime      RealTimeConfig      `split_words:"true"`
	LanguageModel LanguageModelConfig `split_words:"true"`
	HTTP          HTTPConfig          `split_words:"true"`
	Cache         CacheConfig         `split_words:"true"`
	Log           LogConfig           `split_words:"true"`
	Metrics       MetricsConfig       `split_words:"true"`
}

// GeocoderType selects the forward geocoding upstream
type GeocoderType int

const (
	GeocoderTypeAuto GeocoderType = iota
	GeocoderTypeMapbox
	GeocoderTypeOpenMeteo
	GeocoderTypeUnknown
)

// String returns the string representation of geocoder type
func (g GeocoderType) String() string {
	switch g {
	case GeocoderTypeAuto:
		return "auto"
	case GeocoderTypeMapbox:
		return "mapbox"
	case GeocoderTypeOpenMeteo:
		return "openmeteo"
	default:
		return "unknown"
	}
}

// GeocoderTypeFromString converts string to GeocoderType enum
func GeocoderTypeFromString(s string) GeocoderType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return GeocoderTypeAuto
	case "mapbox":
		return GeocoderTypeMapbox
	case "openmeteo", "open-meteo":
		return GeocoderTypeOpenMeteo
	default:
		return GeocoderTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (g *GeocoderType) UnmarshalText(text []byte) error {
	*g = GeocoderTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (g GeocoderType) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

type GeocodingConfig struct {
	Provider          GeocoderType `envconfig:"GEOCODER_PROVIDER" default:"auto"`
	MapboxAPIKey      string       `envconfig:"MAPBOX_API_KEY"`
	MapboxBaseURL     string       `envconfig:"MAPBOX_API_BASE_URL" default:"https://api.mapbox.com"`
	OpenMeteoBaseURL  string       `envconfig:"OPENMETEO_GEOCODING_BASE_URL" default:"https://geocoding-api.open-meteo.com/v1"`
	FallbackLatitude  float64      `envconfig:"FALLBACK_LATITUDE" default:"11.2588"`
	FallbackLongitude float64      `envconfig:"FALLBACK_LONGITUDE" default:"75.7804"`
	EnableCache       bool         `envconfig:"GEOCODE_CACHE_ENABLED" default:"true"`
	CacheTTLMinutes   int          `envconfig:"GEOCODE_CACHE_TTL_MINUTES" default:"1440"`
}

// EffectiveProvider resolves "auto": Mapbox when a key is present, Open-Meteo otherwise.
func (g GeocodingConfig) EffectiveProvider() GeocoderType {
	if g.Provider != GeocoderTypeAuto {
		return g.Provider
	}
	if g.MapboxAPIKey != "" {
		return GeocoderTypeMapbox
	}
	return GeocoderTypeOpenMeteo
}

type ClimateConfig struct {
	NASAPowerBaseURL   string `envconfig:"NASA_POWER_BASE_URL" default:"https://power.larc.nasa.gov/api/temporal/daily/point"`
	NASAPowerCommunity string `envconfig:"NASA_POWER_COMMUNITY" default:"RE"`
}

type RealTimeConfig struct {
	OpenWeatherMapKey     string `envconfig:"OPENWEATHERMAP_API_KEY"`
	OpenWeatherMapBaseURL string `envconfig:"OPENWEATHERMAP_API_BASE_URL" default:"https://api.openweathermap.org/data/2.5"`
}

// Enabled reports whether a real-time source can be wired
func (r RealTimeConfig) Enabled() bool {
	return r.OpenWeatherMapKey != ""
}

type LanguageModelConfig struct {
	APIKey            string `envconfig:"LLM_API_KEY"`
	BaseURL           string `envconfig:"LLM_BASE_URL" default:"https://generativelanguage.googleapis.com/v1beta/openai/"`
	Model             string `envconfig:"LLM_MODEL" default:"gemini-2.0-flash"`
	RequestsPerMinute int    `envconfig:"LLM_REQUESTS_PER_MINUTE" default:"15"`
	TimeoutSeconds    int    `envconfig:"LLM_TIMEOUT_SECONDS" default:"30"`
}

// Enabled reports whether a language model backend can be wired
func (l LanguageModelConfig) Enabled() bool {
	return l.APIKey != ""
}

type HTTPConfig struct {
	TimeoutSeconds          int  `envconfig:"UPSTREAM_TIMEOUT_SECONDS" default:"10"`
	BreakerFailureThreshold int  `envconfig:"UPSTREAM_BREAKER_FAILURES" default:"3"`
	BreakerOpenSeconds      int  `envconfig:"UPSTREAM_BREAKER_OPEN_SECONDS" default:"30"`
	EnableLogging           bool `envconfig:"UPSTREAM_LOGGING_ENABLED" default:"true"`
}

// CacheType represents the type of cache to use
type CacheType int

const (
	CacheTypeUnknown CacheType = iota
	CacheTypeMemory
	CacheTypeRedis
)

// String returns the string representation of cache type
func (c CacheType) String() string {
	switch c {
	case CacheTypeMemory:
		return "memory"
	case CacheTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the cache type is valid
func (c CacheType) IsValid() bool {
	return c == CacheTypeMemory || c == CacheTypeRedis
}

// CacheTypeFromString converts string to CacheType enum
func CacheTypeFromString(s string) CacheType {
	switch s {
	case "memory":
		return CacheTypeMemory
	case "redis":
		return CacheTypeRedis
	default:
		return CacheTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (c *CacheType) UnmarshalText(text []byte) error {
	*c = CacheTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (c CacheType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type CacheConfig struct {
	Type  CacheType   `envconfig:"CACHE_TYPE" default:"memory"`
	Redis RedisConfig `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

type LogConfig struct {
	Level    string `envconfig:"LOG_LEVEL" default:"info"`
	FilePath string `envconfig:"LOG_FILE_PATH"`
}

type MetricsConfig struct {
	TextfilePath string `envconfig:"METRICS_TEXTFILE_PATH"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Geocoding.Validate(); err != nil {
		return err
	}
	if err := c.Climate.Validate(); err != nil {
		return err
	}
	if err := c.RealTime.Validate(); err != nil {
		return err
	}
	if err := c.LanguageModel.Validate(); err != nil {
		return err
	}
	if err := c.HTTP.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	return nil
}

func validateURL(name, value string) error {
	if value == "" {
		return errors.NewConfigurationError(fmt.Sprintf("%s cannot be empty", name), nil)
	}
	if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
		return errors.NewConfigurationError(fmt.Sprintf("%s must start with http:// or https://", name), nil)
	}
	return nil
}

func (g *GeocodingConfig) Validate() error {
	switch g.Provider {
	case GeocoderTypeUnknown:
		return errors.NewConfigurationError("GEOCODER_PROVIDER must be one of: auto, mapbox, openmeteo", nil)
	case GeocoderTypeMapbox:
		if g.MapboxAPIKey == "" {
			return errors.NewConfigurationError("MAPBOX_API_KEY is required when GEOCODER_PROVIDER is mapbox", nil)
		}
	}

	if g.EffectiveProvider() == GeocoderTypeMapbox {
		if err := validateURL("MAPBOX_API_BASE_URL", g.MapboxBaseURL); err != nil {
			return err
		}
	} else if err := validateURL("OPENMETEO_GEOCODING_BASE_URL", g.OpenMeteoBaseURL); err != nil {
		return err
	}

	if g.FallbackLatitude < -90 || g.FallbackLatitude > 90 {
		return errors.NewConfigurationError("FALLBACK_LATITUDE must be between -90 and 90", nil)
	}
	if g.FallbackLongitude < -180 || g.FallbackLongitude > 180 {
		return errors.NewConfigurationError("FALLBACK_LONGITUDE must be between -180 and 180", nil)
	}

	if g.EnableCache && (g.CacheTTLMinutes < 1 || g.CacheTTLMinutes > maxGeocodeTTLMinutes) {
		return errors.NewConfigurationError("GEOCODE_CACHE_TTL_MINUTES must be between 1 and 10080 minutes", nil)
	}
	return nil
}

func (c *ClimateConfig) Validate() error {
	if err := validateURL("NASA_POWER_BASE_URL", c.NASAPowerBaseURL); err != nil {
		return err
	}
	if c.NASAPowerCommunity == "" {
		return errors.NewConfigurationError("NASA_POWER_COMMUNITY cannot be empty", nil)
	}
	return nil
}

func (r *RealTimeConfig) Validate() error {
	if !r.Enabled() {
		return nil
	}
	return validateURL("OPENWEATHERMAP_API_BASE_URL", r.OpenWeatherMapBaseURL)
}

func (l *LanguageModelConfig) Validate() error {
	if !l.Enabled() {
		return nil
	}
	if err := validateURL("LLM_BASE_URL", l.BaseURL); err != nil {
		return err
	}
	if l.Model == "" {
		return errors.NewConfigurationError("LLM_MODEL cannot be empty when LLM_API_KEY is set", nil)
	}
	if l.RequestsPerMinute < 1 || l.RequestsPerMinute > maxRequestsPerMinute {
		return errors.NewConfigurationError("LLM_REQUESTS_PER_MINUTE must be between 1 and 600", nil)
	}
	if l.TimeoutSeconds < 1 || l.TimeoutSeconds > maxTimeoutSeconds {
		return errors.NewConfigurationError("LLM_TIMEOUT_SECONDS must be between 1 and 300 seconds", nil)
	}
	return nil
}

func (h *HTTPConfig) Validate() error {
	if h.TimeoutSeconds < 1 || h.TimeoutSeconds > maxTimeoutSeconds {
		return errors.NewConfigurationError("UPSTREAM_TIMEOUT_SECONDS must be between 1 and 300 seconds", nil)
	}
	if h.BreakerFailureThreshold < 1 {
		return errors.NewConfigurationError("UPSTREAM_BREAKER_FAILURES must be at least 1", nil)
	}
	if h.BreakerOpenSeconds < 1 {
		return errors.NewConfigurationError("UPSTREAM_BREAKER_OPEN_SECONDS must be at least 1 second", nil)
	}
	return nil
}

func (c *CacheConfig) Validate() error {
	if !c.Type.IsValid() {
		return errors.NewConfigurationError("CACHE_TYPE must be one of: memory, redis", nil)
	}

	if c.Type == CacheTypeRedis {
		return c.Redis.Validate()
	}

	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis cache", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (l *LogConfig) Validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return errors.NewConfigurationError("LOG_LEVEL must be one of: debug, info, warn, error", nil)
	}
}
