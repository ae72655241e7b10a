// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ToolInvocations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tool_invocations_total",
			Help: "Total number of tool invocations dispatched",
		},
		[]string{"tool"},
	)

	ToolInvocationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tool_invocation_errors_total",
			Help: "Total number of tool invocations that returned a structured error",
		},
		[]string{"tool", "error_code"},
	)

	ToolInvocationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "tool_invocation_duration_seconds",
			Help: "Duration of tool invocations in seconds",
		},
		[]string{"tool"},
	)

	SimulationRecordsUpdated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "simulation_records_updated_total",
			Help: "Application records rewritten by the status simulation task",
		},
	)
)
