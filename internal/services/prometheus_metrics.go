package services

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by PrometheusMetrics.
const (
	MetricSummaryGenerated  = "summary.generated"
	MetricFetchFailed       = "fetch.failed"
	MetricUnrecognizedValue = "unrecognized.value"
	MetricExportGenerated   = "export.generated"
	MetricAuditWriteFailed  = "audit.write.failed"
	MetricCircuitBreaker    = "circuit_breaker.state"
	MetricSummaryDuration   = "summary."
	MetricExportDuration    = "export."
)

type PrometheusMetrics struct {
	summariesTotal        *prometheus.CounterVec
	summaryDuration       *prometheus.HistogramVec
	fetchFailures         *prometheus.CounterVec
	unrecognizedValues    *prometheus.CounterVec
	exportsTotal          *prometheus.CounterVec
	exportDuration        *prometheus.HistogramVec
	auditWriteFailures    prometheus.Counter
	backendRequests       *prometheus.CounterVec
	backendDuration       *prometheus.HistogramVec
	circuitBreakerState   *prometheus.GaugeVec
	lastGeneratedUnixTime *prometheus.GaugeVec
}

// NewPrometheusMetrics registers the dashboard collectors on reg.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		summariesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_summaries_total",
				Help: "Total number of summaries generated by section and status",
			},
			[]string{"section", "status"},
		),
		summaryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dashboard_summary_duration_milliseconds",
				Help:    "Time to fetch and aggregate a summary in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
			[]string{"section"},
		),
		fetchFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_fetch_failures_total",
				Help: "Total number of backend collections that could not be fetched",
			},
			[]string{"source"},
		),
		unrecognizedValues: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_unrecognized_values_total",
				Help: "Total number of records carrying an unrecognized enum value",
			},
			[]string{"field"},
		),
		exportsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_exports_total",
				Help: "Total number of XLSX exports generated",
			},
			[]string{"export", "status"},
		),
		exportDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dashboard_export_duration_milliseconds",
				Help:    "XLSX export duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
			[]string{"export"},
		),
		auditWriteFailures: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "audit_log_write_failures_total",
				Help: "Total number of audit log entries that could not be stored",
			},
		),
		backendRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backend_requests_total",
				Help: "Total number of requests sent to the back-office service",
			},
			[]string{"path", "outcome"},
		),
		backendDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "backend_request_duration_seconds",
				Help:    "Back-office request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path"},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		lastGeneratedUnixTime: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "dashboard_summary_last_generated_timestamp_seconds",
				Help: "Unix time of the last summary generated per section",
			},
			[]string{"section"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	m.AddCounter(name, 1, tags)
}

// AddCounter adds delta to a counter in one step. Non-positive deltas are
// ignored since prometheus counters only go up.
func (m *PrometheusMetrics) AddCounter(name string, delta float64, tags map[string]string) {
	if delta <= 0 {
		return
	}
	switch name {
	case MetricSummaryGenerated:
		if section := tags["section"]; section != "" {
			m.summariesTotal.WithLabelValues(section, tags["status"]).Add(delta)
		}
	case MetricFetchFailed:
		m.fetchFailures.WithLabelValues(tags["source"]).Add(delta)
	case MetricUnrecognizedValue:
		m.unrecognizedValues.WithLabelValues(tags["field"]).Add(delta)
	case MetricExportGenerated:
		m.exportsTotal.WithLabelValues(tags["export"], tags["status"]).Add(delta)
	case MetricAuditWriteFailed:
		m.auditWriteFailures.Add(delta)
	}
}

// RecordProcessingTime expects "summary.<section>" or "export.<name>".
func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch {
	case strings.HasPrefix(name, MetricSummaryDuration):
		m.summaryDuration.WithLabelValues(strings.TrimPrefix(name, MetricSummaryDuration)).
			Observe(float64(duration.Milliseconds()))
	case strings.HasPrefix(name, MetricExportDuration):
		m.exportDuration.WithLabelValues(strings.TrimPrefix(name, MetricExportDuration)).
			Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricCircuitBreaker:
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	case MetricSummaryGenerated:
		m.lastGeneratedUnixTime.WithLabelValues(tags["section"]).Set(value)
	}
}

func (m *PrometheusMetrics) RecordBackendRequest(path, outcome string, duration time.Duration) {
	m.backendRequests.WithLabelValues(path, outcome).Inc()
	m.backendDuration.WithLabelValues(path).Observe(duration.Seconds())
}
