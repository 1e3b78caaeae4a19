package location

import (
	"context"
	"fmt"

	"geoclima.app/internal/ports"
	"geoclima.app/pkg/errors"
)

const geocodeCacheName = "geocode"

type UseCase struct {
	geocoder ports.Geocoder
	cache    ports.GeocodeCache
	config   ports.ConfigProvider
	logger   ports.Logger
	metrics  ports.MetricsCollector
}

type UseCaseDependencies struct {
	Geocoder ports.Geocoder
	Cache    ports.GeocodeCache // optional
	Config   ports.ConfigProvider
	Logger   ports.Logger
	Metrics  ports.MetricsCollector // optional
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Geocoder == nil {
		return nil, errors.NewValidationError("geocoder is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		geocoder: deps.Geocoder,
		cache:    deps.Cache,
		config:   deps.Config,
		logger:   deps.Logger,
		metrics:  deps.Metrics,
	}, nil
}

// Resolve turns a query into a location. It never fails: every error path yields the fallback.
func (uc *UseCase) Resolve(ctx context.Context, query PlaceQuery) ResolvedLocation {
	if query.Kind == QueryKindCoordinates {
		return found(query.Coordinates, CustomCoordinatesLabel(query.Coordinates))
	}

	cfg := uc.config.GetGeocodingConfig()
	fallback := Coordinates{Latitude: cfg.FallbackLatitude, Longitude: cfg.FallbackLongitude}

	if query.Kind != QueryKindName || query.NormalizedText() == "" {
		uc.logger.Warn("Unresolvable place query", ports.F("kind", query.Kind.String()))
		return notFound(fallback)
	}

	cacheKey := uc.cacheKey(query)
	if match, ok := uc.fromCache(ctx, cacheKey, cfg.EnableCache); ok {
		return found(Coordinates{Latitude: match.Latitude, Longitude: match.Longitude}, match.DisplayName)
	}

	matches, err := uc.geocoder.Geocode(ctx, query.Text)
	if err != nil {
		uc.logger.Warn("Geocoding failed, using fallback coordinates",
			ports.F("query", query.Text),
			ports.F("provider", uc.geocoder.GetProviderName()),
			ports.F("error", err))
		uc.recordDegradation(ctx)
		return notFound(fallback)
	}

	if len(matches) == 0 {
		uc.logger.Info("No geocoding match", ports.F("query", query.Text))
		return notFound(fallback)
	}

	best := matches[0]
	coords := Coordinates{Latitude: best.Latitude, Longitude: best.Longitude}
	if err := coords.IsValid(); err != nil {
		uc.logger.Warn("Geocoder returned invalid coordinates",
			ports.F("query", query.Text),
			ports.F("error", err))
		uc.recordDegradation(ctx)
		return notFound(fallback)
	}

	uc.storeInCache(ctx, cacheKey, best, cfg)

	uc.logger.Debug("Place resolved",
		ports.F("query", query.Text),
		ports.F("display_name", best.DisplayName),
		ports.F("lat", best.Latitude),
		ports.F("lon", best.Longitude))
	return found(coords, best.DisplayName)
}

func (uc *UseCase) cacheKey(query PlaceQuery) string {
	return fmt.Sprintf("geocode:%s:%s", uc.geocoder.GetProviderName(), query.NormalizedText())
}

func (uc *UseCase) fromCache(ctx context.Context, key string, enabled bool) (*ports.GeocodeMatch, bool) {
	if uc.cache == nil || !enabled {
		return nil, false
	}

	match, err := uc.cache.Get(ctx, key)
	if err != nil || match == nil {
		if err != nil && !errors.IsNotFoundError(err) {
			uc.logger.Warn("Geocode cache read failed", ports.F("key", key), ports.F("error", err))
		}
		if uc.metrics != nil {
			uc.metrics.RecordCacheMiss(ctx, geocodeCacheName)
		}
		return nil, false
	}

	if uc.metrics != nil {
		uc.metrics.RecordCacheHit(ctx, geocodeCacheName)
	}
	uc.logger.Debug("Place found in cache", ports.F("key", key))
	return match, true
}

func (uc *UseCase) storeInCache(ctx context.Context, key string, match ports.GeocodeMatch, cfg ports.GeocodingConfig) {
	if uc.cache == nil || !cfg.EnableCache {
		return
	}
	if err := uc.cache.Set(ctx, key, &match, cfg.CacheTTL); err != nil {
		uc.logger.Warn("Failed to cache geocode result",
			ports.F("key", key),
			ports.F("error", err))
	}
}

func (uc *UseCase) recordDegradation(ctx context.Context) {
	if uc.metrics != nil {
		uc.metrics.RecordDegradation(ctx, "geocode")
	}
}
