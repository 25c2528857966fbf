package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	authEventsTotal       *prometheus.CounterVec
	ledgerMutationsTotal  *prometheus.CounterVec
	overviewRequestsTotal *prometheus.CounterVec
	overviewDuration      prometheus.Histogram
	apiErrorsTotal        *prometheus.CounterVec
	activeSessions        prometheus.Gauge
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		authEventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auth_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event", "status"},
		),
		ledgerMutationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_mutations_total",
				Help: "Total number of expense and income mutations",
			},
			[]string{"type", "operation"},
		),
		overviewRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "month_overview_requests_total",
				Help: "Total number of month overview builds",
			},
			[]string{"status"},
		),
		overviewDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "month_overview_duration_milliseconds",
				Help:    "Month overview build duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		apiErrorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "api_errors_total",
				Help: "Total number of API error responses by error code",
			},
			[]string{"code"},
		),
		activeSessions: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "active_sessions",
				Help: "Approximate number of live sessions",
			},
		),
	}
}

func (pm *PrometheusMetrics) RecordAuthEvent(event, status string) {
	pm.authEventsTotal.WithLabelValues(event, status).Inc()
}

func (pm *PrometheusMetrics) RecordLedgerMutation(entryType, operation string) {
	pm.ledgerMutationsTotal.WithLabelValues(entryType, operation).Inc()
}

func (pm *PrometheusMetrics) RecordOverviewRequest(status string) {
	pm.overviewRequestsTotal.WithLabelValues(status).Inc()
}

func (pm *PrometheusMetrics) ObserveOverviewDuration(duration time.Duration) {
	pm.overviewDuration.Observe(float64(duration.Milliseconds()))
}

func (pm *PrometheusMetrics) RecordAPIError(code string) {
	pm.apiErrorsTotal.WithLabelValues(code).Inc()
}

func (pm *PrometheusMetrics) SetActiveSessions(count float64) {
	pm.activeSessions.Set(count)
}
