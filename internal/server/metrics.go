package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	solveTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sokoban",
		Name:      "solve_requests_total",
		Help:      "Solve requests by outcome (solved, impossible, cached, error).",
	}, []string{"outcome"})

	solveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "sokoban",
		Name:      "solve_duration_seconds",
		Help:      "Wall time of solve requests.",
		Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
	})

	solveExpanded = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "sokoban",
		Name:      "solve_expanded_nodes",
		Help:      "A* node expansions per solved request.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
	})
)
