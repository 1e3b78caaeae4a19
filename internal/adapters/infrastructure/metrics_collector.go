package infrastructure

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetricsCollector implements the MetricsCollector port on a private registry
type PrometheusMetricsCollector struct {
	registry *prometheus.Registry

	cacheHits     *prometheus.CounterVec
	cacheMisses   *prometheus.CounterVec
	cacheHitRatio *prometheus.GaugeVec

	upstreamCalls   *prometheus.CounterVec
	upstreamLatency *prometheus.HistogramVec

	pipelineRuns     *prometheus.CounterVec
	pipelineDuration prometheus.Histogram

	degradations *prometheus.CounterVec

	mu        sync.Mutex
	hitCounts map[string][2]int64
}

// NewPrometheusMetricsCollector registers all collectors on a fresh registry
func NewPrometheusMetricsCollector() *PrometheusMetricsCollector {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &PrometheusMetricsCollector{
		registry: registry,
		cacheHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "geoclima_cache_hits_total",
				Help: "The total number of cache hits",
			},
			[]string{"cache"},
		),
		cacheMisses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "geoclima_cache_misses_total",
				Help: "The total number of cache misses",
			},
			[]string{"cache"},
		),
		cacheHitRatio: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "geoclima_cache_hit_ratio",
				Help: "Cache hit ratio (hits/total lookups)",
			},
			[]string{"cache"},
		),
		upstreamCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "geoclima_upstream_requests_total",
				Help: "Upstream requests by provider and outcome",
			},
			[]string{"provider", "outcome"},
		),
		upstreamLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "geoclima_upstream_duration_seconds",
				Help:    "Upstream request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider"},
		),
		pipelineRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "geoclima_pipeline_runs_total",
				Help: "Analysis pipeline runs by terminal state",
			},
			[]string{"state"},
		),
		pipelineDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "geoclima_pipeline_duration_seconds",
				Help:    "End-to-end analysis duration in seconds",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
		),
		degradations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "geoclima_degradations_total",
				Help: "Stages that fell back to a degraded result",
			},
			[]string{"stage"},
		),
		hitCounts: make(map[string][2]int64),
	}
}

func (m *PrometheusMetricsCollector) RecordCacheHit(_ context.Context, cache string) {
	m.cacheHits.WithLabelValues(cache).Inc()
	m.updateHitRatio(cache, true)
}

func (m *PrometheusMetricsCollector) RecordCacheMiss(_ context.Context, cache string) {
	m.cacheMisses.WithLabelValues(cache).Inc()
	m.updateHitRatio(cache, false)
}

func (m *PrometheusMetricsCollector) updateHitRatio(cache string, hit bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	counts := m.hitCounts[cache]
	if hit {
		counts[0]++
	} else {
		counts[1]++
	}
	m.hitCounts[cache] = counts

	m.cacheHitRatio.WithLabelValues(cache).Set(float64(counts[0]) / float64(counts[0]+counts[1]))
}

func (m *PrometheusMetricsCollector) RecordUpstreamCall(_ context.Context, provider string, success bool, duration time.Duration) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	m.upstreamCalls.WithLabelValues(provider, outcome).Inc()
	m.upstreamLatency.WithLabelValues(provider).Observe(duration.Seconds())
}

func (m *PrometheusMetricsCollector) RecordPipelineRun(_ context.Context, state string, duration time.Duration) {
	m.pipelineRuns.WithLabelValues(state).Inc()
	m.pipelineDuration.Observe(duration.Seconds())
}

func (m *PrometheusMetricsCollector) RecordDegradation(_ context.Context, stage string) {
	m.degradations.WithLabelValues(stage).Inc()
}

// Registry exposes the private registry for gathering
func (m *PrometheusMetricsCollector) Registry() *prometheus.Registry {
	return m.registry
}

// WriteToTextfile dumps the registry in text exposition format for a node exporter textfile collector
func (m *PrometheusMetricsCollector) WriteToTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
