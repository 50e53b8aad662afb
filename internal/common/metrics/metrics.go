// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AgentCallsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agent_calls_completed_total",
			Help: "Total number of successful agent calls",
		},
		[]string{"agent"},
	)

	AgentCallsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agent_calls_failed_total",
			Help: "Total number of failed agent calls",
		},
		[]string{"agent", "error_code"},
	)

	AgentCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "agent_call_duration_seconds",
			Help: "Duration of individual agent calls in seconds",
		},
		[]string{"agent"},
	)

	SearchFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "search_fallbacks_total",
			Help: "Number of searches that required a fallback dispatch round",
		},
	)

	SearchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "search_duration_seconds",
			Help: "End-to-end duration of a search in seconds",
		},
	)

	SearchesActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "searches_active",
			Help: "Number of searches currently in flight",
		},
	)
)
