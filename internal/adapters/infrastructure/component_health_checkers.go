package infrastructure

import (
	"context"

	"geoclima.app/internal/ports"
)

// Pinger is satisfied by cache providers that can verify connectivity
type Pinger interface {
	Ping(ctx context.Context) error
}

// StatsReporter is satisfied by cache providers that count their lookups
type StatsReporter interface {
	GetStats() ports.CacheStats
}

// CacheHealthChecker pings the configured cache backend
type CacheHealthChecker struct {
	cache     Pinger
	cacheType string
}

// NewCacheHealthChecker creates a new cache health checker
func NewCacheHealthChecker(cache Pinger, cacheType string) *CacheHealthChecker {
	return &CacheHealthChecker{cache: cache, cacheType: cacheType}
}

// Check verifies cache connectivity
func (c *CacheHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "cache",
		Details: map[string]interface{}{
			"type": c.cacheType,
		},
	}

	if c.cache == nil {
		status.Status = statusDisabled
		return status
	}

	if err := c.cache.Ping(ctx); err != nil {
		status.Status = statusUnhealthy
		status.Error = err.Error()
		return status
	}

	if reporter, ok := c.cache.(StatsReporter); ok {
		stats := reporter.GetStats()
		status.Details["hits"] = stats.Hits
		status.Details["misses"] = stats.Misses
		status.Details["hitRatio"] = stats.HitRatio
	}

	status.Status = statusHealthy
	return status
}

// UpstreamHealthChecker reports whether an upstream is wired. It makes no network calls.
type UpstreamHealthChecker struct {
	component string
	provider  string
	required  bool
}

// NewUpstreamHealthChecker creates a checker for a named upstream. An empty provider
// is unhealthy when required and disabled otherwise.
func NewUpstreamHealthChecker(component, provider string, required bool) *UpstreamHealthChecker {
	return &UpstreamHealthChecker{component: component, provider: provider, required: required}
}

// Check reports the configured provider
func (u *UpstreamHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: u.component,
		Details: map[string]interface{}{
			"provider": u.provider,
		},
	}

	switch {
	case u.provider != "":
		status.Status = statusHealthy
	case u.required:
		status.Status = statusUnhealthy
		status.Error = u.component + " provider is not configured"
	default:
		status.Status = statusDisabled
	}
	return status
}
