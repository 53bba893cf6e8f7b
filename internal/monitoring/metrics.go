// Package monitoring exposes Prometheus metrics for the service.
package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus collectors.
type Metrics struct {
	registry *prometheus.Registry

	// Playground execution metrics
	ExecutionsTotal   *prometheus.CounterVec
	ExecutionDuration prometheus.Histogram

	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// WebSocket metrics
	WSConnections prometheus.Gauge
	WSMessages    *prometheus.CounterVec

	// Content metrics
	PagesRegistered prometheus.Gauge
	CacheHits       prometheus.Counter
	CacheMisses     prometheus.Counter
	DraftsSaved     prometheus.Counter

	startTime time.Time
}

// NewMetrics creates a metrics collector backed by its own registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry:  registry,
		startTime: time.Now(),

		ExecutionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jsref_executions_total",
				Help: "Total playground executions by outcome",
			},
			[]string{"outcome"},
		),
		ExecutionDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "jsref_execution_duration_seconds",
				Help:    "Playground execution duration in seconds",
				Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 2.5, 5, 10},
			},
		),

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jsref_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "jsref_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"method", "path"},
		),

		WSConnections: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "jsref_ws_connections",
				Help: "Active WebSocket connections",
			},
		),
		WSMessages: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jsref_ws_messages_total",
				Help: "WebSocket messages by type",
			},
			[]string{"type"},
		),

		PagesRegistered: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "jsref_pages_registered",
				Help: "Reference pages in the catalog",
			},
		),
		CacheHits: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "jsref_page_cache_hits_total",
				Help: "Rendered page cache hits",
			},
		),
		CacheMisses: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "jsref_page_cache_misses_total",
				Help: "Rendered page cache misses",
			},
		),
		DraftsSaved: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "jsref_drafts_saved_total",
				Help: "Draft snippets persisted",
			},
		),
	}
}

// Registry returns the backing registry for the /metrics handler.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordExecution records one playground run.
func (m *Metrics) RecordExecution(outcome string, duration time.Duration) {
	m.ExecutionsTotal.WithLabelValues(outcome).Inc()
	m.ExecutionDuration.Observe(duration.Seconds())
}

// RecordRequest records one HTTP request.
func (m *Metrics) RecordRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// Uptime returns time since metrics creation.
func (m *Metrics) Uptime() time.Duration {
	return time.Since(m.startTime)
}
