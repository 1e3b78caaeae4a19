package infrastructure

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"geoclima.app/internal/ports"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
	statusDisabled  = "disabled"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	checkers       map[string]ports.HealthChecker
	configProvider ports.ConfigProvider
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	Checkers       map[string]ports.HealthChecker
	ConfigProvider ports.ConfigProvider
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	return &SystemHealthChecker{
		checkers:       config.Checkers,
		configProvider: config.ConfigProvider,
	}
}

// CheckAll runs every component check concurrently
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus, len(s.checkers)+1)
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for name, checker := range s.checkers {
		if checker == nil {
			continue
		}
		g.Go(func() error {
			status := checker.Check(gctx)
			mu.Lock()
			results[name] = status
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	if s.configProvider != nil {
		upstreams := s.configProvider.GetUpstreamsConfig()
		geocoding := s.configProvider.GetGeocodingConfig()
		cache := s.configProvider.GetCacheConfig()
		details := map[string]interface{}{
			"geocoder":          upstreams.Geocoder,
			"historicalSource":  upstreams.HistoricalSource,
			"realTimeEnabled":   upstreams.RealTimeEnabled,
			"languageModel":     upstreams.LanguageModel,
			"fallbackLatitude":  geocoding.FallbackLatitude,
			"fallbackLongitude": geocoding.FallbackLongitude,
			"cacheType":         cache.Type,
		}
		if cache.RedisAddr != "" {
			details["redisAddr"] = cache.RedisAddr
			details["redisDB"] = cache.RedisDB
		}
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    statusHealthy,
			Details:   details,
		}
	}

	return results
}

// Healthy reports whether no component is unhealthy
func Healthy(results map[string]ports.HealthStatus) bool {
	for _, status := range results {
		if status.Status == statusUnhealthy {
			return false
		}
	}
	return true
}
