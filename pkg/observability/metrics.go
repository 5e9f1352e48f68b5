// Package observability provides Prometheus metrics for the orangic
// client. Applications embedding the client can expose them through
// their own /metrics endpoint; the collectors register on the default
// registry.
package observability

import "github.com/prometheus/client_golang/prometheus"

// LLMBuckets defines histogram buckets suited for LLM inference
// latencies, ranging from 100ms to 120s.
var LLMBuckets = []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120}

var (
	// RequestsTotal counts API requests by endpoint and status class.
	// The status label is "2xx".."5xx", or "error" for transport
	// failures that never produced a response.
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orangic_client_requests_total",
			Help: "API requests",
		},
		[]string{"endpoint", "status"},
	)

	// RequestDuration records time-to-response-headers in seconds by
	// endpoint. For streaming requests this covers stream open only,
	// not consumption.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "orangic_client_request_duration_seconds",
			Help:    "Request duration",
			Buckets: LLMBuckets,
		},
		[]string{"endpoint"},
	)

	// StreamsActive tracks the number of open completion streams.
	StreamsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "orangic_client_streams_active",
			Help: "Active completion streams",
		},
	)

	// TokensTotal counts tokens reported in completion usage by
	// direction (input/output).
	TokensTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orangic_client_tokens_total",
			Help: "Token count",
		},
		[]string{"direction"},
	)
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestDuration,
		StreamsActive,
		TokensTotal,
	)
}

// StatusClass maps an HTTP status code to its label value ("2xx",
// "3xx", "4xx", "5xx").
func StatusClass(code int) string {
	switch {
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}
