package external

import (
	"context"
	"time"

	"geoclima.app/internal/ports"
)

// upstreamObserver logs and measures a single upstream call
type upstreamObserver struct {
	logger  ports.Logger
	metrics ports.MetricsCollector
}

func (o upstreamObserver) started(provider string, fields ...ports.Field) time.Time {
	o.logger.Debug("Upstream request started",
		append([]ports.Field{ports.F("provider", provider), ports.F("event", "request")}, fields...)...)
	return time.Now()
}

func (o upstreamObserver) finished(ctx context.Context, provider string, startTime time.Time, err error, fields ...ports.Field) {
	duration := time.Since(startTime)
	if o.metrics != nil {
		o.metrics.RecordUpstreamCall(ctx, provider, err == nil, duration)
	}

	base := []ports.Field{
		ports.F("provider", provider),
		ports.F("duration_ms", duration.Milliseconds()),
	}
	if err != nil {
		o.logger.Error("Upstream request failed",
			append(append(base, ports.F("event", "error"), ports.F("error", err.Error())), fields...)...)
		return
	}
	o.logger.Info("Upstream request completed",
		append(append(base, ports.F("event", "response")), fields...)...)
}

// GeocoderLoggingDecorator decorates geocoders with structured logging
type GeocoderLoggingDecorator struct {
	geocoder ports.Geocoder
	observer upstreamObserver
}

// NewGeocoderLoggingDecorator creates a new logging decorator for geocoders
func NewGeocoderLoggingDecorator(geocoder ports.Geocoder, logger ports.Logger, metrics ports.MetricsCollector) *GeocoderLoggingDecorator {
	return &GeocoderLoggingDecorator{
		geocoder: geocoder,
		observer: upstreamObserver{logger: logger, metrics: metrics},
	}
}

// Geocode wraps the geocoder call with structured logging
func (d *GeocoderLoggingDecorator) Geocode(ctx context.Context, query string) ([]ports.GeocodeMatch, error) {
	provider := d.geocoder.GetProviderName()
	startTime := d.observer.started(provider, ports.F("query", query))

	matches, err := d.geocoder.Geocode(ctx, query)
	d.observer.finished(ctx, provider, startTime, err,
		ports.F("query", query),
		ports.F("matches", len(matches)))
	return matches, err
}

// GetProviderName returns the name of the wrapped geocoder
func (d *GeocoderLoggingDecorator) GetProviderName() string {
	return d.geocoder.GetProviderName()
}

// HistoricalLoggingDecorator decorates historical climate providers with structured logging
type HistoricalLoggingDecorator struct {
	provider ports.HistoricalClimateProvider
	observer upstreamObserver
}

// NewHistoricalLoggingDecorator creates a new logging decorator for historical climate providers
func NewHistoricalLoggingDecorator(provider ports.HistoricalClimateProvider, logger ports.Logger, metrics ports.MetricsCollector) *HistoricalLoggingDecorator {
	return &HistoricalLoggingDecorator{
		provider: provider,
		observer: upstreamObserver{logger: logger, metrics: metrics},
	}
}

func (d *HistoricalLoggingDecorator) GetDailyRecords(ctx context.Context, lat, lon float64, start, end time.Time) ([]ports.DailyClimateRecord, error) {
	provider := d.provider.GetProviderName()
	window := []ports.Field{
		ports.F("lat", lat),
		ports.F("lon", lon),
		ports.F("start", start.Format(time.DateOnly)),
		ports.F("end", end.Format(time.DateOnly)),
	}
	startTime := d.observer.started(provider, window...)

	records, err := d.provider.GetDailyRecords(ctx, lat, lon, start, end)
	d.observer.finished(ctx, provider, startTime, err, append(window, ports.F("days", len(records)))...)
	return records, err
}

func (d *HistoricalLoggingDecorator) GetProviderName() string {
	return d.provider.GetProviderName()
}

// RealTimeLoggingDecorator decorates real-time weather providers with structured logging
type RealTimeLoggingDecorator struct {
	provider ports.RealTimeWeatherProvider
	observer upstreamObserver
}

// NewRealTimeLoggingDecorator creates a new logging decorator for real-time weather providers
func NewRealTimeLoggingDecorator(provider ports.RealTimeWeatherProvider, logger ports.Logger, metrics ports.MetricsCollector) *RealTimeLoggingDecorator {
	return &RealTimeLoggingDecorator{
		provider: provider,
		observer: upstreamObserver{logger: logger, metrics: metrics},
	}
}

func (d *RealTimeLoggingDecorator) GetCurrentConditions(ctx context.Context, lat, lon float64) (*ports.CurrentConditions, error) {
	provider := d.provider.GetProviderName()
	startTime := d.observer.started(provider, ports.F("lat", lat), ports.F("lon", lon))

	conditions, err := d.provider.GetCurrentConditions(ctx, lat, lon)
	fields := []ports.Field{ports.F("lat", lat), ports.F("lon", lon)}
	if conditions != nil {
		fields = append(fields,
			ports.F("temperature", conditions.Temperature),
			ports.F("description", conditions.Description))
	}
	d.observer.finished(ctx, provider, startTime, err, fields...)
	return conditions, err
}

func (d *RealTimeLoggingDecorator) GetProviderName() string {
	return d.provider.GetProviderName()
}

// LanguageModelLoggingDecorator decorates language models with structured logging
type LanguageModelLoggingDecorator struct {
	model    ports.LanguageModel
	observer upstreamObserver
}

// NewLanguageModelLoggingDecorator creates a new logging decorator for language models
func NewLanguageModelLoggingDecorator(model ports.LanguageModel, logger ports.Logger, metrics ports.MetricsCollector) *LanguageModelLoggingDecorator {
	return &LanguageModelLoggingDecorator{
		model:    model,
		observer: upstreamObserver{logger: logger, metrics: metrics},
	}
}

func (d *LanguageModelLoggingDecorator) Complete(ctx context.Context, prompt string) (string, error) {
	name := d.model.GetModelName()
	startTime := d.observer.started(name, ports.F("prompt_length", len(prompt)))

	completion, err := d.model.Complete(ctx, prompt)
	d.observer.finished(ctx, name, startTime, err, ports.F("completion_length", len(completion)))
	return completion, err
}

func (d *LanguageModelLoggingDecorator) GetModelName() string {
	return d.model.GetModelName()
}
