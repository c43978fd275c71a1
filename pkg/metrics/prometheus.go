// Package metrics provides Prometheus metrics for the Olympics
// dashboard service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Dataset metrics - the one-time load and its outcome
	datasetRows             prometheus.Gauge
	datasetUnmatchedRegions prometheus.Gauge
	datasetLoadDuration     prometheus.Histogram

	// Query metrics - per-view computation performance
	queryLatency *prometheus.HistogramVec
	queryCount   *prometheus.CounterVec

	// View cache metrics - memoization effectiveness
	viewCacheHits   prometheus.Counter
	viewCacheMisses prometheus.Counter
	viewCacheSize   prometheus.Gauge

	// Export metrics
	exportBytes prometheus.Counter
	exportCount *prometheus.CounterVec

	// Chart rendering metrics
	chartRenderLatency *prometheus.HistogramVec
	chartRenderErrors  prometheus.Counter

	// HTTP performance metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// System performance metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "olympics",
		subsystem:        "dashboard",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.datasetRows = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_rows",
		Help:      "Row count of the joined table, invariant after load",
	})

	m.datasetUnmatchedRegions = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_unmatched_region_rows",
		Help:      "Rows whose NOC code had no region mapping",
	})

	m.datasetLoadDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_load_duration_milliseconds",
		Help:      "Duration of the one-time CSV load and join in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.queryLatency = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "query_latency_milliseconds",
			Help:      "Aggregate view computation latency in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"view"},
	)

	m.queryCount = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "query_total",
			Help:      "Aggregate view computations by view kind",
		},
		[]string{"view"},
	)

	m.viewCacheHits = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "view_cache_hits_total",
		Help:      "View lookups served from the memoization cache",
	})

	m.viewCacheMisses = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "view_cache_misses_total",
		Help:      "View lookups that required a recomputation",
	})

	m.viewCacheSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "view_cache_size",
		Help:      "Entries currently memoized",
	})

	m.exportBytes = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "export_bytes_total",
		Help:      "Bytes of delimited text served for download",
	})

	m.exportCount = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "export_total",
			Help:      "Downloads served by export kind",
		},
		[]string{"kind"},
	)

	m.chartRenderLatency = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "chart_render_latency_milliseconds",
			Help:      "Server-side chart rendering latency in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"view"},
	)

	m.chartRenderErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "chart_render_errors_total",
		Help:      "Chart renderings that failed",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_bytes",
		Help:      "Current heap allocation in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutines",
		Help:      "Current goroutine count",
	})
}

// GetRegistry returns the custom registry used by the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Package-level helpers on the global manager.

// UpdateDatasetRows sets the joined table row count.
func UpdateDatasetRows(n int) {
	if globalManager.enabled {
		globalManager.datasetRows.Set(float64(n))
	}
}

// UpdateDatasetUnmatchedRegions sets the unmatched-join row count.
func UpdateDatasetUnmatchedRegions(n int) {
	if globalManager.enabled {
		globalManager.datasetUnmatchedRegions.Set(float64(n))
	}
}

// RecordDatasetLoadDuration records the one-time load duration.
func RecordDatasetLoadDuration(ms float64) {
	if globalManager.enabled {
		globalManager.datasetLoadDuration.Observe(ms)
	}
}

// RecordQueryLatency records one view computation.
func RecordQueryLatency(view string, ms float64) {
	if globalManager.enabled {
		globalManager.queryLatency.WithLabelValues(view).Observe(ms)
		globalManager.queryCount.WithLabelValues(view).Inc()
	}
}

// RecordViewCacheHit counts a memoized lookup.
func RecordViewCacheHit() {
	if globalManager.enabled {
		globalManager.viewCacheHits.Inc()
	}
}

// RecordViewCacheMiss counts a recomputation.
func RecordViewCacheMiss() {
	if globalManager.enabled {
		globalManager.viewCacheMisses.Inc()
	}
}

// UpdateViewCacheSize sets the memoized entry count.
func UpdateViewCacheSize(n int64) {
	if globalManager.enabled {
		globalManager.viewCacheSize.Set(float64(n))
	}
}

// RecordExport counts one download of the given kind and its size.
func RecordExport(kind string, bytes int) {
	if globalManager.enabled {
		globalManager.exportCount.WithLabelValues(kind).Inc()
		globalManager.exportBytes.Add(float64(bytes))
	}
}

// RecordChartRenderLatency records one PNG rendering.
func RecordChartRenderLatency(view string, ms float64) {
	if globalManager.enabled {
		globalManager.chartRenderLatency.WithLabelValues(view).Observe(ms)
	}
}

// RecordChartRenderError counts a failed rendering.
func RecordChartRenderError() {
	if globalManager.enabled {
		globalManager.chartRenderErrors.Inc()
	}
}

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	if globalManager.enabled {
		globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	}
}

// RecordHTTPRequestDuration records one HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, ms float64) {
	if globalManager.enabled {
		globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(ms)
	}
}

// UpdateSystemMemoryUsage sets the current heap allocation.
func UpdateSystemMemoryUsage(bytes uint64) {
	if globalManager.enabled {
		globalManager.systemMemoryUsage.Set(float64(bytes))
	}
}

// UpdateSystemGoroutineCount sets the current goroutine count.
func UpdateSystemGoroutineCount(n int) {
	if globalManager.enabled {
		globalManager.systemGoroutineCount.Set(float64(n))
	}
}
