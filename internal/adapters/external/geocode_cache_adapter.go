package external

import (
	"context"
	"encoding/json"
	"time"

	"geoclima.app/internal/ports"
	"geoclima.app/pkg/errors"
)

// GeocodeCacheAdapter bridges generic CacheProvider to the GeocodeCache port
type GeocodeCacheAdapter struct {
	cacheProvider ports.CacheProvider
}

// NewGeocodeCacheAdapter creates a geocode cache on top of a generic cache provider
func NewGeocodeCacheAdapter(cacheProvider ports.CacheProvider) *GeocodeCacheAdapter {
	return &GeocodeCacheAdapter{
		cacheProvider: cacheProvider,
	}
}

// Get retrieves a cached geocode match. A miss is a NotFoundError.
func (g *GeocodeCacheAdapter) Get(ctx context.Context, key string) (*ports.GeocodeMatch, error) {
	data, err := g.cacheProvider.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	var match ports.GeocodeMatch
	if err := json.Unmarshal(data, &match); err != nil {
		return nil, errors.NewCacheError("failed to deserialize geocode match", err)
	}

	return &match, nil
}

// Set stores a geocode match
func (g *GeocodeCacheAdapter) Set(ctx context.Context, key string, match *ports.GeocodeMatch, ttl time.Duration) error {
	if match == nil {
		return errors.NewValidationError("geocode match cannot be nil")
	}

	data, err := json.Marshal(match)
	if err != nil {
		return errors.NewCacheError("failed to serialize geocode match", err)
	}

	return g.cacheProvider.Set(ctx, key, data, ttl)
}
