package external

import (
	"context"
	"net/url"
	"strings"
	"time"

	"geoclima.app/internal/ports"
	"geoclima.app/pkg/errors"
)

const defaultOpenMeteoGeocodingBaseURL = "https://geocoding-api.open-meteo.com/v1"

// OpenMeteoGeocoderAdapter implements Geocoder port for the keyless Open-Meteo geocoding API
type OpenMeteoGeocoderAdapter struct {
	baseURL string
	client  HTTPClient
	logger  ports.Logger
}

// OpenMeteoGeocoderParams holds parameters for creating the Open-Meteo geocoder
type OpenMeteoGeocoderParams struct {
	BaseURL string
	Timeout time.Duration
	Logger  ports.Logger
}

// OpenMeteoGeocodingResponse represents the response from the Open-Meteo search endpoint
type OpenMeteoGeocodingResponse struct {
	Results []struct {
		Name      string   `json:"name"`
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
		Admin1    string   `json:"admin1"`
		Country   string   `json:"country"`
	} `json:"results"`
}

// NewOpenMeteoGeocoderAdapter creates a new Open-Meteo geocoder adapter
func NewOpenMeteoGeocoderAdapter(params OpenMeteoGeocoderParams) *OpenMeteoGeocoderAdapter {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenMeteoGeocodingBaseURL
	}

	return &OpenMeteoGeocoderAdapter{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  newHTTPClient(params.Timeout),
		logger:  params.Logger,
	}
}

// Geocode resolves a free-text place. An absent results array means no match.
func (g *OpenMeteoGeocoderAdapter) Geocode(ctx context.Context, query string) ([]ports.GeocodeMatch, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.NewValidationError("query cannot be empty")
	}

	params := url.Values{
		"name":     {query},
		"count":    {"1"},
		"language": {"en"},
		"format":   {"json"},
	}
	endpoint := g.baseURL + "/search?" + params.Encode()

	var apiResp OpenMeteoGeocodingResponse
	if err := getJSON(ctx, g.client, endpoint, "Open-Meteo geocoding", g.logger, &apiResp); err != nil {
		return nil, err
	}

	matches := make([]ports.GeocodeMatch, 0, len(apiResp.Results))
	for _, result := range apiResp.Results {
		if result.Latitude == nil || result.Longitude == nil {
			return nil, errors.NewExternalAPIError("Open-Meteo result is missing coordinates", nil)
		}
		matches = append(matches, ports.GeocodeMatch{
			Latitude:    *result.Latitude,
			Longitude:   *result.Longitude,
			DisplayName: joinNonEmpty(result.Name, result.Admin1, result.Country),
		})
	}

	return matches, nil
}

// GetProviderName returns the name of this geocoder
func (g *OpenMeteoGeocoderAdapter) GetProviderName() string {
	return "openmeteo"
}

func joinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" && (len(kept) == 0 || kept[len(kept)-1] != p) {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}
