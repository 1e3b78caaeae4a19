package infrastructure

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetricsCollector_CacheHitRatio(t *testing.T) {
	m := NewPrometheusMetricsCollector()
	ctx := context.Background()

	m.RecordCacheHit(ctx, "geocode")
	m.RecordCacheMiss(ctx, "geocode")
	m.RecordCacheMiss(ctx, "geocode")
	m.RecordCacheHit(ctx, "geocode")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.cacheHits.WithLabelValues("geocode")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.cacheMisses.WithLabelValues("geocode")))
	assert.Equal(t, 0.5, testutil.ToFloat64(m.cacheHitRatio.WithLabelValues("geocode")))
}

func TestPrometheusMetricsCollector_UpstreamCalls(t *testing.T) {
	m := NewPrometheusMetricsCollector()
	ctx := context.Background()

	m.RecordUpstreamCall(ctx, "nasa-power", true, 120*time.Millisecond)
	m.RecordUpstreamCall(ctx, "nasa-power", false, 2*time.Second)
	m.RecordUpstreamCall(ctx, "mapbox", true, 40*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.upstreamCalls.WithLabelValues("nasa-power", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.upstreamCalls.WithLabelValues("nasa-power", "failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.upstreamCalls.WithLabelValues("mapbox", "success")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.upstreamLatency))
}

func TestPrometheusMetricsCollector_PipelineAndDegradation(t *testing.T) {
	m := NewPrometheusMetricsCollector()
	ctx := context.Background()

	m.RecordPipelineRun(ctx, "done", time.Second)
	m.RecordPipelineRun(ctx, "not_found", 10*time.Millisecond)
	m.RecordPipelineRun(ctx, "done", 3*time.Second)
	m.RecordDegradation(ctx, "language_model")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.pipelineRuns.WithLabelValues("done")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.pipelineRuns.WithLabelValues("not_found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.degradations.WithLabelValues("language_model")))
}

func TestPrometheusMetricsCollector_PrivateRegistries(t *testing.T) {
	first := NewPrometheusMetricsCollector()
	second := NewPrometheusMetricsCollector()

	first.RecordDegradation(context.Background(), "historical_climate")

	assert.Equal(t, 1.0, testutil.ToFloat64(first.degradations.WithLabelValues("historical_climate")))
	assert.Equal(t, 0, testutil.CollectAndCount(second.degradations))
}

func TestPrometheusMetricsCollector_WriteToTextfile(t *testing.T) {
	m := NewPrometheusMetricsCollector()
	m.RecordPipelineRun(context.Background(), "done", time.Second)

	path := filepath.Join(t.TempDir(), "geoclima.prom")
	require.NoError(t, m.WriteToTextfile(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `geoclima_pipeline_runs_total{state="done"} 1`)
	assert.Contains(t, string(content), "geoclima_pipeline_duration_seconds_count 1")
}
