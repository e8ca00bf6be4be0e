package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestsTotal counts HTTP requests to the MCP endpoint
	RequestsTotal *prometheus.CounterVec

	// ToolCallsTotal counts tool, resource and prompt invocations
	ToolCallsTotal *prometheus.CounterVec

	// ToolDuration measures tool, resource and prompt handling time
	ToolDuration *prometheus.HistogramVec

	// ProviderRequestsTotal counts outbound search API calls by outcome
	ProviderRequestsTotal *prometheus.CounterVec

	// ExternalProviderLatency measures outbound search API latency
	ExternalProviderLatency *prometheus.HistogramVec
)

func init() {
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "smart_search",
			Subsystem: "mcp",
			Name:      "requests_total",
			Help:      "Total number of MCP HTTP requests",
		},
		[]string{"method", "status"},
	)

	ToolCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "smart_search",
			Subsystem: "mcp",
			Name:      "tool_calls_total",
			Help:      "Total MCP tool, resource and prompt invocations",
		},
		[]string{"tool_name", "kind", "status"},
	)

	ToolDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "smart_search",
			Subsystem: "mcp",
			Name:      "tool_duration_seconds",
			Help:      "MCP handler duration in seconds",
			Buckets:   []float64{0.01, 0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"tool_name", "kind"},
	)

	ProviderRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "smart_search",
			Subsystem: "provider",
			Name:      "requests_total",
			Help:      "Total outbound search API requests",
		},
		[]string{"provider", "status"},
	)

	ExternalProviderLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "smart_search",
			Subsystem: "provider",
			Name:      "latency_seconds",
			Help:      "Outbound search API response time in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"provider"},
	)

	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(ToolCallsTotal)
	prometheus.MustRegister(ToolDuration)
	prometheus.MustRegister(ProviderRequestsTotal)
	prometheus.MustRegister(ExternalProviderLatency)
}

// RecordRequest records an MCP HTTP request
func RecordRequest(method, status string) {
	RequestsTotal.WithLabelValues(method, status).Inc()
}

// RecordToolCall records a tool, resource or prompt invocation
func RecordToolCall(toolName, kind, status string, durationSec float64) {
	if status == "" {
		status = "unknown"
	}
	ToolCallsTotal.WithLabelValues(toolName, kind, status).Inc()
	ToolDuration.WithLabelValues(toolName, kind).Observe(durationSec)
}

// RecordProviderRequest records the outcome of an outbound search call
func RecordProviderRequest(provider, status string) {
	ProviderRequestsTotal.WithLabelValues(provider, status).Inc()
}

// RecordExternalProviderLatency records external provider response time
func RecordExternalProviderLatency(provider string, durationSec float64) {
	ExternalProviderLatency.WithLabelValues(provider).Observe(durationSec)
}
