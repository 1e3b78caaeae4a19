package external

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"geoclima.app/internal/ports"
	"geoclima.app/pkg/errors"
)

const defaultOpenWeatherMapBaseURL = "https://api.openweathermap.org/data/2.5"

// OpenWeatherMapProviderAdapter implements RealTimeWeatherProvider port for OpenWeatherMap
type OpenWeatherMapProviderAdapter struct {
	apiKey  string
	baseURL string
	client  HTTPClient
	logger  ports.Logger
	now     func() time.Time
}

// OpenWeatherMapProviderParams holds parameters for creating OpenWeatherMap provider
type OpenWeatherMapProviderParams struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Logger  ports.Logger
}

// OpenWeatherMapResponse represents the response from OpenWeatherMap API
type OpenWeatherMapResponse struct {
	Main *struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Dt int64 `json:"dt"`
}

// NewOpenWeatherMapProviderAdapter creates a new OpenWeatherMap provider adapter
func NewOpenWeatherMapProviderAdapter(params OpenWeatherMapProviderParams) *OpenWeatherMapProviderAdapter {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenWeatherMapBaseURL
	}

	return &OpenWeatherMapProviderAdapter{
		apiKey:  params.APIKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  newHTTPClient(params.Timeout),
		logger:  params.Logger,
		now:     time.Now,
	}
}

// GetCurrentConditions retrieves the current observation nearest to a coordinate
func (p *OpenWeatherMapProviderAdapter) GetCurrentConditions(ctx context.Context, lat, lon float64) (*ports.CurrentConditions, error) {
	if p.apiKey == "" {
		return nil, errors.NewConfigurationError("openweathermap api key is not configured", nil)
	}

	params := url.Values{
		"lat":   {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lon":   {strconv.FormatFloat(lon, 'f', -1, 64)},
		"appid": {p.apiKey},
		"units": {"metric"},
	}
	endpoint := p.baseURL + "/weather?" + params.Encode()

	var apiResp OpenWeatherMapResponse
	if err := getJSON(ctx, p.client, endpoint, "OpenWeatherMap", p.logger, &apiResp); err != nil {
		return nil, err
	}
	if apiResp.Main == nil {
		return nil, errors.NewExternalAPIError("OpenWeatherMap response is missing main block", nil)
	}

	var description string
	if len(apiResp.Weather) > 0 {
		description = apiResp.Weather[0].Description
	}

	observedAt := p.now()
	if apiResp.Dt > 0 {
		observedAt = time.Unix(apiResp.Dt, 0).UTC()
	}

	return &ports.CurrentConditions{
		Temperature: apiResp.Main.Temp,
		Humidity:    apiResp.Main.Humidity,
		WindSpeed:   apiResp.Wind.Speed,
		Description: description,
		Timestamp:   observedAt,
	}, nil
}

// GetProviderName returns the name of this weather provider
func (p *OpenWeatherMapProviderAdapter) GetProviderName() string {
	return "openweathermap"
}
