package app

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"geoclima.app/internal/config"
)

// ConfigDisplayer handles configuration and environment variable display
type ConfigDisplayer struct {
	out io.Writer
}

// NewConfigDisplayer creates a displayer writing to out
func NewConfigDisplayer(out io.Writer) *ConfigDisplayer {
	return &ConfigDisplayer{out: out}
}

// PrintConfig prints every configuration section with secrets masked
func (cd *ConfigDisplayer) PrintConfig(cfg *config.Config) {
	cd.line("==== GEOCLIMA CONFIGURATION ====")

	cd.line("GEOCODING:")
	cd.line("  Provider: %s (effective: %s)", cfg.Geocoding.Provider, cfg.Geocoding.EffectiveProvider())
	cd.line("  Mapbox API Key: %s", cd.maskString(cfg.Geocoding.MapboxAPIKey))
	cd.line("  Mapbox Base URL: %s", cfg.Geocoding.MapboxBaseURL)
	cd.line("  Open-Meteo Base URL: %s", cfg.Geocoding.OpenMeteoBaseURL)
	cd.line("  Fallback: %.4f, %.4f", cfg.Geocoding.FallbackLatitude, cfg.Geocoding.FallbackLongitude)
	cd.line("  Cache: %t (TTL %d minutes)", cfg.Geocoding.EnableCache, cfg.Geocoding.CacheTTLMinutes)

	cd.line("\nCLIMATE:")
	cd.line("  NASA POWER Base URL: %s", cfg.Climate.NASAPowerBaseURL)
	cd.line("  NASA POWER Community: %s", cfg.Climate.NASAPowerCommunity)

	cd.line("\nREAL-TIME:")
	cd.line("  OpenWeatherMap API Key: %s", cd.maskString(cfg.RealTime.OpenWeatherMapKey))
	cd.line("  OpenWeatherMap Base URL: %s", cfg.RealTime.OpenWeatherMapBaseURL)

	cd.line("\nLANGUAGE MODEL:")
	cd.line("  API Key: %s", cd.maskString(cfg.LanguageModel.APIKey))
	cd.line("  Base URL: %s", cfg.LanguageModel.BaseURL)
	cd.line("  Model: %s", cfg.LanguageModel.Model)
	cd.line("  Requests Per Minute: %d", cfg.LanguageModel.RequestsPerMinute)
	cd.line("  Timeout: %d seconds", cfg.LanguageModel.TimeoutSeconds)

	cd.line("\nUPSTREAM HTTP:")
	cd.line("  Timeout: %d seconds", cfg.HTTP.TimeoutSeconds)
	cd.line("  Breaker: %d failures, open %d seconds", cfg.HTTP.BreakerFailureThreshold, cfg.HTTP.BreakerOpenSeconds)
	cd.line("  Logging: %t", cfg.HTTP.EnableLogging)

	cd.line("\nCACHE:")
	cd.line("  Type: %s", cfg.Cache.Type)
	if cfg.Cache.Type == config.CacheTypeRedis {
		cd.line("  Redis Addr: %s", cfg.Cache.Redis.Addr)
		cd.line("  Redis Password: %s", cd.maskString(cfg.Cache.Redis.Password))
		cd.line("  Redis DB: %d", cfg.Cache.Redis.DB)
	}

	cd.line("\nLOG:")
	cd.line("  Level: %s", cfg.Log.Level)
	cd.line("  File: %s", cfg.Log.FilePath)

	cd.line("\nMETRICS:")
	cd.line("  Textfile: %s", cfg.Metrics.TextfilePath)

	cd.line("================================")
}

// PrintAllEnvVars prints all environment variables available to the application
func (cd *ConfigDisplayer) PrintAllEnvVars() {
	cd.line("==== ENVIRONMENT VARIABLES ====")

	envVars := os.Environ()
	sort.Strings(envVars)

	for _, env := range envVars {
		key, value, ok := strings.Cut(env, "=")
		if !ok {
			continue
		}
		if cd.isSensitive(key) {
			value = cd.maskString(value)
		}
		cd.line("%s=%s", key, value)
	}

	cd.line("===============================")
}

func (cd *ConfigDisplayer) line(format string, args ...interface{}) {
	fmt.Fprintf(cd.out, format+"\n", args...)
}

// maskString masks sensitive information like passwords and API keys
func (cd *ConfigDisplayer) maskString(s string) string {
	if s == "" {
		return "(not set)"
	}
	if len(s) <= 4 {
		return "****"
	}
	visible := len(s) / 4
	return s[:visible] + strings.Repeat("*", len(s)-visible)
}

// isSensitive checks if an environment variable key is considered sensitive
func (cd *ConfigDisplayer) isSensitive(key string) bool {
	sensitiveKeys := []string{
		"API_KEY", "PASSWORD", "SECRET", "TOKEN", "KEY", "PASS", "PWD",
	}

	key = strings.ToUpper(key)
	for _, sensitive := range sensitiveKeys {
		if strings.Contains(key, sensitive) {
			return true
		}
	}

	return false
}
