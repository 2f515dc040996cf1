// Package metrics holds the Prometheus collectors for the service:
// HTTP request counters/latency (fed by the router middleware) and
// per-tool invocation counters (fed by the tool diagnostics wrapper).
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics aggregates all Prometheus collectors for the service.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	toolCallsTotal  *prometheus.CounterVec
	toolCallLatency *prometheus.HistogramVec
}

// New registers the service collectors on the default registry.
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total HTTP requests by method, route and status code.",
			ConstLabels: labels,
		}, []string{"method", "route", "code"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency by method and route.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		toolCallsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "tool_calls_total",
			Help:        "Tool invocations by tool name and outcome.",
			ConstLabels: labels,
		}, []string{"tool", "outcome"}),

		toolCallLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "tool_call_duration_seconds",
			Help:        "Tool invocation latency by tool name.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"tool"}),
	}
}

// ObserveHTTPRequest records one completed HTTP request.
func (m *Metrics) ObserveHTTPRequest(method, route, code string, elapsed time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, code).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveToolCall records one completed tool invocation.
func (m *Metrics) ObserveToolCall(tool string, success bool, elapsed time.Duration) {
	outcome := "ok"
	if !success {
		outcome = "error"
	}
	m.toolCallsTotal.WithLabelValues(tool, outcome).Inc()
	m.toolCallLatency.WithLabelValues(tool).Observe(elapsed.Seconds())
}
