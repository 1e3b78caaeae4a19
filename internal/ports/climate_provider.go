package ports

import (
	"context"
	"time"
)

// DailyClimateRecord is one day of historical point data
type DailyClimateRecord struct {
	Date            time.Time
	TemperatureC    float64
	HumidityPct     float64
	WindSpeedMS     float64
	PrecipitationMM float64
}

// HistoricalClimateProvider defines the contract for daily historical climate sources.
// Records are returned in chronological order; start and end are inclusive calendar days.
type HistoricalClimateProvider interface {
	GetDailyRecords(ctx context.Context, lat, lon float64, start, end time.Time) ([]DailyClimateRecord, error)
	GetProviderName() string
}

// CurrentConditions represents a single real-time observation
type CurrentConditions struct {
	Temperature float64
	Humidity    float64
	WindSpeed   float64
	Description string
	Timestamp   time.Time
}

// RealTimeWeatherProvider defines the contract for current-conditions sources
type RealTimeWeatherProvider interface {
	GetCurrentConditions(ctx context.Context, lat, lon float64) (*CurrentConditions, error)
	GetProviderName() string
}
