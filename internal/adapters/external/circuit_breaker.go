package external

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"

	"geoclima.app/internal/ports"
	"geoclima.app/pkg/errors"
)

// BreakerSettings configures the circuit breaker placed in front of an upstream
type BreakerSettings struct {
	ConsecutiveFailures uint32
	OpenTimeout         time.Duration
}

func newCircuitBreaker(name string, settings BreakerSettings, logger ports.Logger) *gobreaker.CircuitBreaker {
	failures := settings.ConsecutiveFailures
	if failures == 0 {
		failures = 3
	}
	openTimeout := settings.OpenTimeout
	if openTimeout <= 0 {
		openTimeout = 30 * time.Second
	}

	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				ports.F("breaker", name),
				ports.F("from", from.String()),
				ports.F("to", to.String()))
		},
	})
}

// breakerError converts an open-circuit rejection into an upstream error
func breakerError(name string, err error) error {
	if stderrors.Is(err, gobreaker.ErrOpenState) || stderrors.Is(err, gobreaker.ErrTooManyRequests) {
		return errors.NewExternalAPIError(fmt.Sprintf("%s circuit is open", name), err)
	}
	return err
}

// GeocoderCircuitBreaker guards a geocoder with a circuit breaker
type GeocoderCircuitBreaker struct {
	geocoder ports.Geocoder
	cb       *gobreaker.CircuitBreaker
}

// NewGeocoderCircuitBreaker wraps a geocoder
func NewGeocoderCircuitBreaker(geocoder ports.Geocoder, settings BreakerSettings, logger ports.Logger) *GeocoderCircuitBreaker {
	return &GeocoderCircuitBreaker{
		geocoder: geocoder,
		cb:       newCircuitBreaker(geocoder.GetProviderName(), settings, logger),
	}
}

func (b *GeocoderCircuitBreaker) Geocode(ctx context.Context, query string) ([]ports.GeocodeMatch, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.geocoder.Geocode(ctx, query)
	})
	if err != nil {
		return nil, breakerError(b.cb.Name(), err)
	}
	matches, _ := result.([]ports.GeocodeMatch)
	return matches, nil
}

func (b *GeocoderCircuitBreaker) GetProviderName() string {
	return b.geocoder.GetProviderName()
}

// HistoricalCircuitBreaker guards a historical climate provider with a circuit breaker
type HistoricalCircuitBreaker struct {
	provider ports.HistoricalClimateProvider
	cb       *gobreaker.CircuitBreaker
}

// NewHistoricalCircuitBreaker wraps a historical climate provider
func NewHistoricalCircuitBreaker(provider ports.HistoricalClimateProvider, settings BreakerSettings, logger ports.Logger) *HistoricalCircuitBreaker {
	return &HistoricalCircuitBreaker{
		provider: provider,
		cb:       newCircuitBreaker(provider.GetProviderName(), settings, logger),
	}
}

func (b *HistoricalCircuitBreaker) GetDailyRecords(ctx context.Context, lat, lon float64, start, end time.Time) ([]ports.DailyClimateRecord, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.provider.GetDailyRecords(ctx, lat, lon, start, end)
	})
	if err != nil {
		return nil, breakerError(b.cb.Name(), err)
	}
	records, _ := result.([]ports.DailyClimateRecord)
	return records, nil
}

func (b *HistoricalCircuitBreaker) GetProviderName() string {
	return b.provider.GetProviderName()
}

// RealTimeCircuitBreaker guards a real-time weather provider with a circuit breaker
type RealTimeCircuitBreaker struct {
	provider ports.RealTimeWeatherProvider
	cb       *gobreaker.CircuitBreaker
}

// NewRealTimeCircuitBreaker wraps a real-time weather provider
func NewRealTimeCircuitBreaker(provider ports.RealTimeWeatherProvider, settings BreakerSettings, logger ports.Logger) *RealTimeCircuitBreaker {
	return &RealTimeCircuitBreaker{
		provider: provider,
		cb:       newCircuitBreaker(provider.GetProviderName(), settings, logger),
	}
}

func (b *RealTimeCircuitBreaker) GetCurrentConditions(ctx context.Context, lat, lon float64) (*ports.CurrentConditions, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.provider.GetCurrentConditions(ctx, lat, lon)
	})
	if err != nil {
		return nil, breakerError(b.cb.Name(), err)
	}
	conditions, _ := result.(*ports.CurrentConditions)
	return conditions, nil
}

func (b *RealTimeCircuitBreaker) GetProviderName() string {
	return b.provider.GetProviderName()
}
