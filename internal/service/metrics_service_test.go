package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func histogramSampleCount(t *testing.T, m *MetricsService, name string) uint64 {
	t.Helper()
	families, err := m.registry.Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() == name {
			require.NotEmpty(t, family.GetMetric())
			return family.GetMetric()[0].GetHistogram().GetSampleCount()
		}
	}
	t.Fatalf("metric %s not registered", name)
	return 0
}

func TestMetricsServiceObserveStoreQuery(t *testing.T) {
	m := NewMetricsService()

	m.ObserveStoreQuery("quran", 12*time.Millisecond)
	m.ObserveStoreQuery("quran", 7*time.Millisecond)

	assert.Equal(t, uint64(2), histogramSampleCount(t, m, "store_query_duration_seconds"))
}

func TestMetricsServiceCountsDemoWrites(t *testing.T) {
	m := NewMetricsService()
	require.Zero(t, m.Snapshot().DemoWrites)

	m.ObserveDemoWrite()
	m.ObserveDemoWrite()

	assert.Equal(t, uint64(2), m.Snapshot().DemoWrites)
}

func TestMetricsServiceSnapshotAggregates(t *testing.T) {
	m := NewMetricsService()

	m.ObserveHTTPRequest("GET", "/api/quran", "200", 10*time.Millisecond)
	m.ObserveCacheLookup(true)
	m.ObserveCacheLookup(false)
	m.ObserveFallback("quran")

	snap := m.Snapshot()
	assert.Equal(t, uint64(1), snap.Requests)
	assert.Equal(t, uint64(1), snap.CacheHits)
	assert.Equal(t, uint64(1), snap.CacheMisses)
	assert.InDelta(t, 0.5, snap.CacheHitRatio, 0.001)
	assert.Equal(t, uint64(1), snap.FallbackActivations)
}
