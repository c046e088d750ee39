package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the process-local prometheus collectors. Every instance
// owns its registry, so tests can construct as many as they like without
// duplicate-registration panics.
type Metrics struct {
	registry *prometheus.Registry

	DatasetLoads      prometheus.Counter
	RowsLoaded        prometheus.Counter
	RowsSkipped       prometheus.Counter
	DuplicatesDropped prometheus.Counter
	LoadDuration      prometheus.Histogram

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.DatasetLoads = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "sales_dashboard",
		Name:      "dataset_loads_total",
		Help:      "Times the sales CSV was parsed into an in-memory dataset.",
	})
	m.RowsLoaded = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "sales_dashboard",
		Name:      "rows_loaded_total",
		Help:      "Normalized records kept across all dataset loads.",
	})
	m.RowsSkipped = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "sales_dashboard",
		Name:      "rows_skipped_total",
		Help:      "Raw CSV rows dropped because the reader could not parse them.",
	})
	m.DuplicatesDropped = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "sales_dashboard",
		Name:      "duplicates_dropped_total",
		Help:      "Rows collapsed by load-time deduplication.",
	})
	m.LoadDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "sales_dashboard",
		Name:      "load_duration_seconds",
		Help:      "Wall time of a full CSV load including normalization.",
		Buckets:   prometheus.DefBuckets,
	})
	m.httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sales_dashboard",
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, path and status code.",
	}, []string{"method", "path", "status"})
	m.httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "sales_dashboard",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and path.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path"})

	m.registry.MustRegister(
		m.DatasetLoads,
		m.RowsLoaded,
		m.RowsSkipped,
		m.DuplicatesDropped,
		m.LoadDuration,
		m.httpRequests,
		m.httpDuration,
	)

	return m
}

// ObserveRequest records one completed HTTP request. Unmatched paths fold
// into a single label value to keep cardinality bounded.
func (m *Metrics) ObserveRequest(method, path string, status int, duration time.Duration) {
	if path == "" || status == http.StatusNotFound {
		path = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// Handler serves the registry in the prometheus text exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
