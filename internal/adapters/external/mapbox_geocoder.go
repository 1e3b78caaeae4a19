package external

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"geoclima.app/internal/ports"
	"geoclima.app/pkg/errors"
)

const defaultMapboxBaseURL = "https://api.mapbox.com"

// MapboxGeocoderAdapter implements Geocoder port for Mapbox forward geocoding
type MapboxGeocoderAdapter struct {
	apiKey  string
	baseURL string
	client  HTTPClient
	logger  ports.Logger
}

// MapboxGeocoderParams holds parameters for creating the Mapbox geocoder
type MapboxGeocoderParams struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Logger  ports.Logger
}

// MapboxResponse represents the response from the Mapbox places endpoint
type MapboxResponse struct {
	Features []struct {
		Center    []float64 `json:"center"`
		PlaceName string    `json:"place_name"`
	} `json:"features"`
}

// NewMapboxGeocoderAdapter creates a new Mapbox geocoder adapter
func NewMapboxGeocoderAdapter(params MapboxGeocoderParams) *MapboxGeocoderAdapter {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = defaultMapboxBaseURL
	}

	return &MapboxGeocoderAdapter{
		apiKey:  params.APIKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  newHTTPClient(params.Timeout),
		logger:  params.Logger,
	}
}

// Geocode resolves a free-text place. At most one match is requested.
func (g *MapboxGeocoderAdapter) Geocode(ctx context.Context, query string) ([]ports.GeocodeMatch, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.NewValidationError("query cannot be empty")
	}
	if g.apiKey == "" {
		return nil, errors.NewConfigurationError("mapbox api key is not configured", nil)
	}

	endpoint := fmt.Sprintf("%s/geocoding/v5/mapbox.places/%s.json?%s",
		g.baseURL,
		url.PathEscape(query),
		url.Values{"access_token": {g.apiKey}, "limit": {"1"}}.Encode())

	var apiResp MapboxResponse
	if err := getJSON(ctx, g.client, endpoint, "Mapbox", g.logger, &apiResp); err != nil {
		return nil, err
	}

	matches := make([]ports.GeocodeMatch, 0, len(apiResp.Features))
	for _, feature := range apiResp.Features {
		if len(feature.Center) < 2 {
			return nil, errors.NewExternalAPIError("Mapbox feature has malformed center", nil)
		}
		matches = append(matches, ports.GeocodeMatch{
			Latitude:    feature.Center[1],
			Longitude:   feature.Center[0],
			DisplayName: feature.PlaceName,
		})
	}

	return matches, nil
}

// GetProviderName returns the name of this geocoder
func (g *MapboxGeocoderAdapter) GetProviderName() string {
	return "mapbox"
}
