package external

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geoclima.app/pkg/errors"
)

func TestOpenWeatherMapProvider_GetCurrentConditions_Success(t *testing.T) {
	server := jsonServer(t, http.StatusOK, `{
		"main": {"temp": 15.5, "humidity": 78},
		"wind": {"speed": 4.1},
		"weather": [{"description": "light rain"}],
		"dt": 1752570000
	}`, func(r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "37.8651", q.Get("lat"))
		assert.Equal(t, "-119.5383", q.Get("lon"))
		assert.Equal(t, "test-api-key", q.Get("appid"))
		assert.Equal(t, "metric", q.Get("units"))
	})

	provider := NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{
		APIKey:  "test-api-key",
		BaseURL: server.URL,
		Logger:  setupLoggerMock(t),
	})

	conditions, err := provider.GetCurrentConditions(context.Background(), 37.8651, -119.5383)

	require.NoError(t, err)
	require.NotNil(t, conditions)
	assert.Equal(t, 15.5, conditions.Temperature)
	assert.Equal(t, 78.0, conditions.Humidity)
	assert.Equal(t, 4.1, conditions.WindSpeed)
	assert.Equal(t, "light rain", conditions.Description)
	assert.Equal(t, time.Unix(1752570000, 0).UTC(), conditions.Timestamp)
	assert.Equal(t, "openweathermap", provider.GetProviderName())
}

func TestOpenWeatherMapProvider_GetCurrentConditions_MissingDescriptionAndTime(t *testing.T) {
	server := jsonServer(t, http.StatusOK, `{"main": {"temp": 30, "humidity": 20}}`, nil)

	provider := NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{APIKey: "k", BaseURL: server.URL, Logger: setupLoggerMock(t)})
	fixed := time.Date(2026, time.October, 15, 8, 0, 0, 0, time.UTC)
	provider.now = func() time.Time { return fixed }

	conditions, err := provider.GetCurrentConditions(context.Background(), 1, 2)

	require.NoError(t, err)
	assert.Empty(t, conditions.Description)
	assert.Equal(t, fixed, conditions.Timestamp)
	assert.Equal(t, 0.0, conditions.WindSpeed)
}

func TestOpenWeatherMapProvider_GetCurrentConditions_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "Unauthorized", status: http.StatusUnauthorized, body: `{"cod": 401, "message": "Invalid API key"}`},
		{name: "MalformedJSON", status: http.StatusOK, body: `{"main": `},
		{name: "MissingMain", status: http.StatusOK, body: `{"weather": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := jsonServer(t, tt.status, tt.body, nil)
			provider := NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{APIKey: "k", BaseURL: server.URL, Logger: setupLoggerMock(t)})

			conditions, err := provider.GetCurrentConditions(context.Background(), 1, 2)

			assert.Nil(t, conditions)
			assert.True(t, errors.IsExternalAPIError(err))
		})
	}
}

func TestOpenWeatherMapProvider_RequiresKey(t *testing.T) {
	provider := NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{Logger: setupLoggerMock(t)})

	_, err := provider.GetCurrentConditions(context.Background(), 1, 2)
	assert.True(t, errors.IsConfigurationError(err))
}
