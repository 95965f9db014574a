package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillswap_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "skillswap_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "path"},
	)

	AgentsRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "skillswap_agents_registered_total",
			Help: "Total agent register calls",
		},
	)

	SkillsShared = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "skillswap_skills_shared_total",
			Help: "Total recorded transfers",
		},
	)

	RequestsOpened = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "skillswap_requests_opened_total",
			Help: "Total skill requests opened",
		},
	)

	RatingsSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "skillswap_ratings_submitted_total",
			Help: "Total skill ratings submitted",
		},
	)
)
