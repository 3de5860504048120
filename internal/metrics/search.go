package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search Prometheus metrics.
var (
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "unistellar",
			Name:      "searches_total",
			Help:      "Total number of search operations",
		},
		[]string{"kind", "scorer"},
	)

	SearchCandidates = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "unistellar",
			Name:      "search_candidates",
			Help:      "Candidate set size per search",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
		[]string{"kind"},
	)

	SearchRankDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "unistellar",
			Name:      "search_rank_duration_seconds",
			Help:      "Time spent scoring and sorting candidates",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
		[]string{"kind"},
	)

	RejectedQueriesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "unistellar",
			Name:      "rejected_queries_total",
			Help:      "Search queries rejected by input validation",
		},
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers search metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchesTotal)
	prometheus.MustRegister(SearchCandidates)
	prometheus.MustRegister(SearchRankDuration)
	prometheus.MustRegister(RejectedQueriesTotal)
	searchMetricsRegistered = true
}
