package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Business metrics
	TransactionsCreated     prometheus.Counter
	TransactionsConfirmed   *prometheus.CounterVec
	TransactionsExpired     prometheus.Counter
	NotificationsDispatched *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "eventhub_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "eventhub_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "eventhub_http_requests_in_flight",
				Help: "Number of HTTP requests currently being served",
			},
		),

		TransactionsCreated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "eventhub_transactions_created_total",
				Help: "Total number of transactions created",
			},
		),
		TransactionsConfirmed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "eventhub_transactions_confirmed_total",
				Help: "Total number of organizer confirmations by decision",
			},
			[]string{"decision"},
		),
		TransactionsExpired: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "eventhub_transactions_expired_total",
				Help: "Total number of transactions cancelled by the deadline sweep",
			},
		),
		NotificationsDispatched: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "eventhub_notifications_dispatched_total",
				Help: "Total number of notification jobs processed by outcome",
			},
			[]string{"kind", "outcome"},
		),
	}
}

func (m *Metrics) RecordHTTPRequest(method, path, statusCode string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration.Seconds())
}
