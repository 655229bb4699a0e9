package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Endpoint label values for upstream directory calls.
const (
	EndpointSearch   = "search"
	EndpointEpisodes = "episodes"
)

// Upstream directory API metrics
var (
	UpstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tvmaze_requests_total",
			Help: "Total number of TVMaze API calls by endpoint and outcome (ok, cached, http_error, transport_error, decode_error).",
		},
		[]string{"endpoint", "outcome"},
	)

	UpstreamRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tvmaze_request_duration_seconds",
			Help:    "Latency of TVMaze API calls that reached the network.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	BreakerStateChangesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tvmaze_breaker_state_changes_total",
			Help: "Total number of circuit breaker transitions by new state.",
		},
		[]string{"state"},
	)
)

// Page metrics
var (
	PageViewsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "page_views_total",
			Help: "Total number of rendered views by view name and outcome.",
		},
		[]string{"view", "outcome"},
	)
)

func init() {
	prometheus.MustRegister(
		UpstreamRequestsTotal,
		UpstreamRequestDuration,
		BreakerStateChangesTotal,
		PageViewsTotal,
	)
}
