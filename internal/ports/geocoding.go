package ports

import (
	"context"
	"time"
)

// GeocodeMatch is one candidate returned by a forward geocoding lookup
type GeocodeMatch struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	DisplayName string  `json:"display_name"`
}

// Geocoder defines the contract for forward geocoding providers.
// An empty slice with a nil error means the query matched nothing.
type Geocoder interface {
	Geocode(ctx context.Context, query string) ([]GeocodeMatch, error)
	GetProviderName() string
}

// GeocodeCache defines the contract for caching resolved places.
// Get returns a not-found AppError on a miss.
type GeocodeCache interface {
	Get(ctx context.Context, key string) (*GeocodeMatch, error)
	Set(ctx context.Context, key string, match *GeocodeMatch, ttl time.Duration) error
}
