package external

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"geoclima.app/internal/mocks"
	"geoclima.app/internal/ports"
	"geoclima.app/pkg/errors"
)

func TestGeocoderLoggingDecorator_RecordsSuccess(t *testing.T) {
	inner := mocks.NewGeocoder(t)
	inner.EXPECT().GetProviderName().Return("mapbox")
	inner.EXPECT().Geocode(mock.Anything, "Yosemite").
		Return([]ports.GeocodeMatch{{Latitude: 37.86, Longitude: -119.54, DisplayName: "Yosemite"}}, nil).Once()

	logger := mocks.NewLogger(t)
	logger.EXPECT().Debug("Upstream request started", mock.Anything).Once()
	logger.EXPECT().Info("Upstream request completed", mock.Anything).Once()

	metrics := mocks.NewMetricsCollector(t)
	metrics.EXPECT().RecordUpstreamCall(mock.Anything, "mapbox", true, mock.AnythingOfType("time.Duration")).Once()

	decorator := NewGeocoderLoggingDecorator(inner, logger, metrics)

	matches, err := decorator.Geocode(context.Background(), "Yosemite")

	require.NoError(t, err)
	assert.Len(t, matches, 1)
	assert.Equal(t, "mapbox", decorator.GetProviderName())
}

func TestHistoricalLoggingDecorator_RecordsFailure(t *testing.T) {
	upstreamErr := errors.NewExternalAPIError("NASA POWER returned status 503", nil)

	inner := mocks.NewHistoricalClimateProvider(t)
	inner.EXPECT().GetProviderName().Return("nasa-power")
	inner.EXPECT().GetDailyRecords(mock.Anything, 1.0, 2.0, mock.Anything, mock.Anything).Return(nil, upstreamErr).Once()

	logger := mocks.NewLogger(t)
	logger.EXPECT().Debug("Upstream request started", mock.Anything).Once()
	logger.EXPECT().Error("Upstream request failed", mock.Anything).Once()

	metrics := mocks.NewMetricsCollector(t)
	metrics.EXPECT().RecordUpstreamCall(mock.Anything, "nasa-power", false, mock.AnythingOfType("time.Duration")).Once()

	decorator := NewHistoricalLoggingDecorator(inner, logger, metrics)
	day := time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC)

	records, err := decorator.GetDailyRecords(context.Background(), 1, 2, day, day)

	assert.Nil(t, records)
	assert.Equal(t, upstreamErr, err)
}

func TestRealTimeLoggingDecorator_WithoutMetrics(t *testing.T) {
	inner := mocks.NewRealTimeWeatherProvider(t)
	inner.EXPECT().GetProviderName().Return("openweathermap")
	inner.EXPECT().GetCurrentConditions(mock.Anything, 1.0, 2.0).
		Return(&ports.CurrentConditions{Temperature: 18, Description: "overcast"}, nil).Once()

	decorator := NewRealTimeLoggingDecorator(inner, setupLoggerMock(t), nil)

	conditions, err := decorator.GetCurrentConditions(context.Background(), 1, 2)

	require.NoError(t, err)
	assert.Equal(t, "overcast", conditions.Description)
}

func TestLanguageModelLoggingDecorator_PassesCompletionThrough(t *testing.T) {
	inner := mocks.NewLanguageModel(t)
	inner.EXPECT().GetModelName().Return("gemini-2.0-flash")
	inner.EXPECT().Complete(mock.Anything, "prompt").Return("answer", nil).Once()

	metrics := mocks.NewMetricsCollector(t)
	metrics.EXPECT().RecordUpstreamCall(mock.Anything, "gemini-2.0-flash", true, mock.Anything).Once()

	decorator := NewLanguageModelLoggingDecorator(inner, setupLoggerMock(t), metrics)

	completion, err := decorator.Complete(context.Background(), "prompt")

	require.NoError(t, err)
	assert.Equal(t, "answer", completion)
	assert.Equal(t, "gemini-2.0-flash", decorator.GetModelName())
}
