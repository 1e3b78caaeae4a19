package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"geoclima.app/internal/adapters/external"
	"geoclima.app/internal/adapters/infrastructure"
	"geoclima.app/internal/config"
	"geoclima.app/internal/ports"
	"geoclima.app/pkg/logger"
)

type DependencyContainer struct {
	config  *config.Config
	ports   *ports.ApplicationPorts
	metrics *infrastructure.PrometheusMetricsCollector
	closers []func() error
}

// DependencyOverrides replaces individual upstreams, mainly for tests. Nil fields are built from config.
type DependencyOverrides struct {
	Geocoder      ports.Geocoder
	Historical    ports.HistoricalClimateProvider
	RealTime      ports.RealTimeWeatherProvider
	LanguageModel ports.LanguageModel
	CacheProvider ports.CacheProvider
	Logger        ports.Logger
}

func NewDependencyContainer(ctx context.Context, cfg *config.Config, overrides DependencyOverrides) (*DependencyContainer, error) {
	container := &DependencyContainer{
		config:  cfg,
		metrics: infrastructure.NewPrometheusMetricsCollector(),
	}

	if err := container.initializePorts(ctx, overrides); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializePorts(ctx context.Context, overrides DependencyOverrides) error {
	log := overrides.Logger
	if log == nil {
		log = c.newLogger()
	}

	configProvider := infrastructure.NewConfigProviderAdapter(c.config)
	timeout := time.Duration(c.config.HTTP.TimeoutSeconds) * time.Second
	breaker := external.BreakerSettings{
		ConsecutiveFailures: uint32(c.config.HTTP.BreakerFailureThreshold),
		OpenTimeout:         time.Duration(c.config.HTTP.BreakerOpenSeconds) * time.Second,
	}

	cacheProvider := overrides.CacheProvider
	if cacheProvider == nil {
		provider, err := external.NewCacheProviderFactory().CreateCacheProvider(&c.config.Cache)
		if err != nil {
			return fmt.Errorf("create cache provider: %w", err)
		}
		cacheProvider = provider
		if closer, ok := provider.(interface{ Close() error }); ok {
			c.closers = append(c.closers, closer.Close)
		}
	}
	log.Info("Cache provider initialized", ports.F("type", c.config.Cache.Type.String()))

	var geocodeCache ports.GeocodeCache
	if c.config.Geocoding.EnableCache {
		geocodeCache = external.NewGeocodeCacheAdapter(cacheProvider)
	}

	geocoder := overrides.Geocoder
	if geocoder == nil {
		geocoder = c.newGeocoder(timeout, log)
	}
	geocoder = external.NewGeocoderCircuitBreaker(geocoder, breaker, log)

	historical := overrides.Historical
	if historical == nil {
		historical = external.NewNASAPowerProviderAdapter(external.NASAPowerProviderParams{
			BaseURL:   c.config.Climate.NASAPowerBaseURL,
			Community: c.config.Climate.NASAPowerCommunity,
			Timeout:   timeout,
			Logger:    log,
		})
	}
	historical = external.NewHistoricalCircuitBreaker(historical, breaker, log)

	realTime := overrides.RealTime
	if realTime == nil && c.config.RealTime.Enabled() {
		realTime = external.NewOpenWeatherMapProviderAdapter(external.OpenWeatherMapProviderParams{
			APIKey:  c.config.RealTime.OpenWeatherMapKey,
			BaseURL: c.config.RealTime.OpenWeatherMapBaseURL,
			Timeout: timeout,
			Logger:  log,
		})
	}
	if realTime != nil {
		realTime = external.NewRealTimeCircuitBreaker(realTime, breaker, log)
	}

	languageModel := overrides.LanguageModel
	if languageModel == nil && c.config.LanguageModel.Enabled() {
		llm, err := external.NewLLMProviderAdapter(ctx, external.LLMProviderParams{
			APIKey:            c.config.LanguageModel.APIKey,
			BaseURL:           c.config.LanguageModel.BaseURL,
			Model:             c.config.LanguageModel.Model,
			RequestsPerMinute: c.config.LanguageModel.RequestsPerMinute,
			Timeout:           time.Duration(c.config.LanguageModel.TimeoutSeconds) * time.Second,
			Logger:            log,
		})
		if err != nil {
			return fmt.Errorf("create language model: %w", err)
		}
		languageModel = llm
	}

	if c.config.HTTP.EnableLogging {
		geocoder = external.NewGeocoderLoggingDecorator(geocoder, log, c.metrics)
		historical = external.NewHistoricalLoggingDecorator(historical, log, c.metrics)
		if realTime != nil {
			realTime = external.NewRealTimeLoggingDecorator(realTime, log, c.metrics)
		}
		if languageModel != nil {
			languageModel = external.NewLanguageModelLoggingDecorator(languageModel, log, c.metrics)
		}
		log.Debug("Upstream logging enabled")
	}

	c.ports = &ports.ApplicationPorts{
		Geocoder:           geocoder,
		GeocodeCache:       geocodeCache,
		HistoricalProvider: historical,
		RealTimeProvider:   realTime,
		LanguageModel:      languageModel,
		CacheProvider:      cacheProvider,
		ConfigProvider:     configProvider,
		Logger:             log,
		Metrics:            c.metrics,
		Health:             c.newHealthChecker(cacheProvider, configProvider, geocoder, historical, languageModel, realTime),
	}

	log.Info("Ports initialized",
		ports.F("geocoder", geocoder.GetProviderName()),
		ports.F("real_time", realTime != nil),
		ports.F("language_model", languageModel != nil))
	return nil
}

func (c *DependencyContainer) newLogger() ports.Logger {
	level := logger.ParseLevel(c.config.Log.Level)
	slogAdapter := infrastructure.NewSlogLoggerAdapter(logger.NewWithLevel(level).WithField("service", "geoclima"))

	if c.config.Log.FilePath == "" {
		return slogAdapter
	}

	fileLogger, err := infrastructure.NewFileLoggerAdapter(c.config.Log.FilePath, level)
	if err != nil {
		slog.Warn("Failed to create file logger, falling back to stderr", "error", err)
		return slogAdapter
	}
	return infrastructure.NewTeeLogger(slogAdapter, fileLogger)
}

func (c *DependencyContainer) newGeocoder(timeout time.Duration, log ports.Logger) ports.Geocoder {
	geocoding := c.config.Geocoding
	if geocoding.EffectiveProvider() == config.GeocoderTypeMapbox {
		return external.NewMapboxGeocoderAdapter(external.MapboxGeocoderParams{
			APIKey:  geocoding.MapboxAPIKey,
			BaseURL: geocoding.MapboxBaseURL,
			Timeout: timeout,
			Logger:  log,
		})
	}
	return external.NewOpenMeteoGeocoderAdapter(external.OpenMeteoGeocoderParams{
		BaseURL: geocoding.OpenMeteoBaseURL,
		Timeout: timeout,
		Logger:  log,
	})
}

func (c *DependencyContainer) newHealthChecker(
	cacheProvider ports.CacheProvider,
	configProvider ports.ConfigProvider,
	geocoder ports.Geocoder,
	historical ports.HistoricalClimateProvider,
	languageModel ports.LanguageModel,
	realTime ports.RealTimeWeatherProvider,
) ports.SystemHealthChecker {
	var pinger infrastructure.Pinger
	if p, ok := cacheProvider.(infrastructure.Pinger); ok {
		pinger = p
	}

	realTimeName := ""
	if realTime != nil {
		realTimeName = realTime.GetProviderName()
	}
	modelName := ""
	if languageModel != nil {
		modelName = languageModel.GetModelName()
	}

	return infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		Checkers: map[string]ports.HealthChecker{
			"cache":         infrastructure.NewCacheHealthChecker(pinger, c.config.Cache.Type.String()),
			"geocoder":      infrastructure.NewUpstreamHealthChecker("geocoder", geocoder.GetProviderName(), true),
			"historical":    infrastructure.NewUpstreamHealthChecker("historical", historical.GetProviderName(), true),
			"realTime":      infrastructure.NewUpstreamHealthChecker("realTime", realTimeName, false),
			"languageModel": infrastructure.NewUpstreamHealthChecker("languageModel", modelName, false),
		},
		ConfigProvider: configProvider,
	})
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// Metrics returns the Prometheus collector shared by all ports
func (c *DependencyContainer) Metrics() *infrastructure.PrometheusMetricsCollector {
	return c.metrics
}

// Cleanup closes network resources such as the Redis client
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.closers = nil
	return firstErr
}
