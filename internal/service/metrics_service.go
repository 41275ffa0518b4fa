package service

import (
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsSnapshot is a lightweight aggregate served to operators without
// scraping the Prometheus endpoint.
type MetricsSnapshot struct {
	Requests            uint64  `json:"requests"`
	AvgRequestMillis    float64 `json:"avg_request_ms"`
	CacheHits           uint64  `json:"cache_hits"`
	CacheMisses         uint64  `json:"cache_misses"`
	CacheHitRatio       float64 `json:"cache_hit_ratio"`
	FallbackActivations uint64  `json:"fallback_activations"`
	DemoWrites          uint64  `json:"demo_writes"`
}

// MetricsService encapsulates Prometheus instrumentation and provides
// lightweight snapshots for API consumption.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	storeDuration   *prometheus.HistogramVec
	fallbackTotal   *prometheus.CounterVec
	demoWrites      prometheus.Counter
	cacheHitRatio   prometheus.Gauge
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter

	cacheHitCount        uint64
	cacheMissCount       uint64
	requestCount         uint64
	requestDurationTotal uint64
	fallbackCount        uint64
	demoWriteCount       uint64
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	storeDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "store_query_duration_seconds",
		Help:    "Duration of document store queries",
		Buckets: prometheus.DefBuckets,
	}, []string{"collection"})

	fallbackTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fallback_activations_total",
		Help: "Reads served from the static catalog because the store was unreachable",
	}, []string{"collection"})

	demoWrites := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "demo_writes_total",
		Help: "Writes acknowledged in demo mode without persistence",
	})

	cacheHitRatio := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "cache_hit_ratio",
		Help: "Ratio of cache hits to total cache lookups",
	})

	cacheHits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cache_hits_total",
		Help: "Total cache hits",
	})

	cacheMisses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cache_misses_total",
		Help: "Total cache misses",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, storeDuration, fallbackTotal, demoWrites, cacheHitRatio, cacheHits, cacheMisses, goroutines)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return &MetricsService{
		registry:        registry,
		handler:         handler,
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		storeDuration:   storeDuration,
		fallbackTotal:   fallbackTotal,
		demoWrites:      demoWrites,
		cacheHitRatio:   cacheHitRatio,
		cacheHits:       cacheHits,
		cacheMisses:     cacheMisses,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics and aggregates simple stats.
func (m *MetricsService) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, status).Inc()
	atomic.AddUint64(&m.requestCount, 1)
	atomic.AddUint64(&m.requestDurationTotal, uint64(duration.Microseconds()))
}

// ObserveStoreQuery records a document store query duration.
func (m *MetricsService) ObserveStoreQuery(collection string, duration time.Duration) {
	if m == nil {
		return
	}
	m.storeDuration.WithLabelValues(collection).Observe(duration.Seconds())
}

// ObserveFallback records one read answered from the static catalog.
// Satisfies the repository layer's fallback observer.
func (m *MetricsService) ObserveFallback(collection string) {
	if m == nil {
		return
	}
	m.fallbackTotal.WithLabelValues(collection).Inc()
	atomic.AddUint64(&m.fallbackCount, 1)
}

// ObserveDemoWrite records one write acknowledged without persistence.
func (m *MetricsService) ObserveDemoWrite() {
	if m == nil {
		return
	}
	m.demoWrites.Inc()
	atomic.AddUint64(&m.demoWriteCount, 1)
}

// ObserveCacheLookup records a cache hit or miss and refreshes the ratio gauge.
func (m *MetricsService) ObserveCacheLookup(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.cacheHits.Inc()
		atomic.AddUint64(&m.cacheHitCount, 1)
	} else {
		m.cacheMisses.Inc()
		atomic.AddUint64(&m.cacheMissCount, 1)
	}
	hits := atomic.LoadUint64(&m.cacheHitCount)
	misses := atomic.LoadUint64(&m.cacheMissCount)
	if total := hits + misses; total > 0 {
		m.cacheHitRatio.Set(float64(hits) / float64(total))
	}
}

// Snapshot returns running aggregates for the admin dashboard.
func (m *MetricsService) Snapshot() MetricsSnapshot {
	if m == nil {
		return MetricsSnapshot{}
	}
	snap := MetricsSnapshot{
		Requests:            atomic.LoadUint64(&m.requestCount),
		CacheHits:           atomic.LoadUint64(&m.cacheHitCount),
		CacheMisses:         atomic.LoadUint64(&m.cacheMissCount),
		FallbackActivations: atomic.LoadUint64(&m.fallbackCount),
		DemoWrites:          atomic.LoadUint64(&m.demoWriteCount),
	}
	if snap.Requests > 0 {
		totalMicros := atomic.LoadUint64(&m.requestDurationTotal)
		snap.AvgRequestMillis = float64(totalMicros) / float64(snap.Requests) / 1000
	}
	if total := snap.CacheHits + snap.CacheMisses; total > 0 {
		snap.CacheHitRatio = float64(snap.CacheHits) / float64(total)
	}
	return snap
}
