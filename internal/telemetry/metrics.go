// Package telemetry holds the Prometheus instrumentation shared by the
// services. The core computation packages stay pure; counters and
// histograms are recorded by the callers that invoke them.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SimulationsTotal counts simulator runs by stop mode and outcome.
	SimulationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zenith_simulations_total",
			Help: "Total number of trade simulations",
		},
		[]string{"mode", "status"},
	)

	// SimulationDuration tracks wall-clock time of simulator runs.
	SimulationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "zenith_simulation_duration_seconds",
			Help: "Duration of trade simulations in seconds",
		},
	)

	// IndicatorComputationsTotal counts indicator evaluations by name.
	IndicatorComputationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zenith_indicator_computations_total",
			Help: "Total number of indicator computations",
		},
		[]string{"indicator", "status"},
	)

	// RequestDuration tracks HTTP request latency for the API service.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"method", "endpoint", "status"},
	)
)

// StatusLabel maps an error to the status label used across the metrics.
func StatusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
