package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ClientMetrics instruments the gateway dispatcher and the transfer flow.
type ClientMetrics struct {
	requestsTotal      *prometheus.CounterVec
	requestDuration    prometheus.Histogram
	invalidationsTotal prometheus.Counter
	transfersTotal     *prometheus.CounterVec
}

// New registers the client metric set against the given registerer. Tests
// pass a fresh prometheus.NewRegistry to avoid duplicate registration.
func New(reg prometheus.Registerer) *ClientMetrics {
	factory := promauto.With(reg)

	return &ClientMetrics{
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_requests_total",
				Help: "Total number of gateway requests by path and outcome",
			},
			[]string{"path", "outcome"},
		),
		requestDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "gateway_request_duration_milliseconds",
				Help:    "Gateway request duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		invalidationsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "session_invalidations_total",
				Help: "Total number of forced session invalidations",
			},
		),
		transfersTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transfers_total",
				Help: "Total number of transfer executions by status",
			},
			[]string{"status"},
		),
	}
}

func (m *ClientMetrics) RecordRequest(path, outcome string, duration time.Duration) {
	m.requestsTotal.WithLabelValues(path, outcome).Inc()
	m.requestDuration.Observe(float64(duration.Milliseconds()))
}

func (m *ClientMetrics) RecordInvalidation() {
	m.invalidationsTotal.Inc()
}

func (m *ClientMetrics) RecordTransfer(status string) {
	m.transfersTotal.WithLabelValues(status).Inc()
}
