package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the channel manager
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Sync Metrics
	SyncAttemptsTotal    prometheus.CounterVec
	SyncDuration         prometheus.HistogramVec
	SyncRecordsProcessed prometheus.Counter
	ActiveConfigurations prometheus.Gauge
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "channelmanager_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "channelmanager_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "channelmanager_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		// Sync Metrics
		SyncAttemptsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "channelmanager_sync_attempts_total",
				Help: "Total OTA sync attempts by partner and outcome",
			},
			[]string{"partner", "status"},
		),
		SyncDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "channelmanager_sync_duration_seconds",
				Help:    "OTA sync dispatch time in seconds",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
			},
			[]string{"partner"},
		),
		SyncRecordsProcessed: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "channelmanager_sync_records_processed_total",
				Help: "Total room records dispatched to OTA partners",
			},
		),
		ActiveConfigurations: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "channelmanager_active_ota_configurations",
				Help: "Current number of active OTA configurations",
			},
		),
	}
}

// RecordSyncAttempt records one dispatch outcome. Nil-safe so services can
// run without metrics in tests.
func (m *MetricsRegistry) RecordSyncAttempt(partner, status string, durationSeconds float64, records int) {
	if m == nil {
		return
	}
	m.SyncAttemptsTotal.WithLabelValues(partner, status).Inc()
	m.SyncDuration.WithLabelValues(partner).Observe(durationSeconds)
	m.SyncRecordsProcessed.Add(float64(records))
}
