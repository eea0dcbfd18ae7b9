package game_stats_client

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels the result of one request.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeEmpty   Outcome = "empty"
	OutcomeError   Outcome = "error"
)

// literalEndpointLabel replaces literal paths in metric labels to keep cardinality bounded.
const literalEndpointLabel = "literal"

// MetricsCollector defines the interface for collecting request metrics
type MetricsCollector interface {
	RecordRequest(endpoint string, outcome Outcome, duration time.Duration)
}

// NoOpMetricsCollector is a no-op implementation for when metrics aren't needed
type NoOpMetricsCollector struct{}

func (n *NoOpMetricsCollector) RecordRequest(endpoint string, outcome Outcome, duration time.Duration) {
}

// PrometheusMetrics implements MetricsCollector using Prometheus
type PrometheusMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewPrometheusMetrics registers the client collectors with reg.
func NewPrometheusMetrics(reg prometheus.Registerer) (*PrometheusMetrics, error) {
	m := &PrometheusMetrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gamestats_client",
				Name:      "requests_total",
				Help:      "Requests issued through the game stats client, by endpoint and outcome.",
			},
			[]string{"endpoint", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "gamestats_client",
				Name:      "request_duration_seconds",
				Help:      "Wall time of game stats requests, from path resolution to normalized result.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
	}

	for _, c := range []prometheus.Collector{m.requests, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register game stats metrics: %w", err)
		}
	}
	return m, nil
}

func (m *PrometheusMetrics) RecordRequest(endpoint string, outcome Outcome, duration time.Duration) {
	m.requests.WithLabelValues(endpoint, string(outcome)).Inc()
	m.duration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func metricEndpointLabel(endpoint string) string {
	if _, ok := endpointTable[endpoint]; ok {
		return endpoint
	}
	return literalEndpointLabel
}
