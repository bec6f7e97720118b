package gridsearch

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeFound  = "found"
	outcomeNoPath = "no_path"
	outcomeError  = "error"
)

var (
	// searchTotal counts finished searches by strategy and outcome
	searchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridsearch_searches_total",
		Help: "Total searches by strategy and outcome",
	}, []string{"strategy", "outcome"})

	// searchExpanded tracks how many nodes a search expanded
	searchExpanded = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gridsearch_expanded_nodes",
		Help:    "Nodes expanded per search",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~260k
	}, []string{"strategy"})

	searchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gridsearch_search_duration_seconds",
		Help:    "Search duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
	}, []string{"strategy"})
)

func observeSearch(strategy Strategy, outcome string, expanded int, elapsed time.Duration) {
	name := strategy.String()
	searchTotal.WithLabelValues(name, outcome).Inc()
	searchExpanded.WithLabelValues(name).Observe(float64(expanded))
	searchDuration.WithLabelValues(name).Observe(elapsed.Seconds())
}
