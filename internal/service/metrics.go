package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	minPriceResolutions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_desk",
			Subsystem: "pricing",
			Name:      "min_price_resolutions_total",
			Help:      "Minimum prices resolved, by the step that produced them",
		},
		[]string{"source"},
	)

	searchLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_desk",
			Subsystem: "search",
			Name:      "search_lookups_total",
			Help:      "Debounced product lookups delivered to order lines",
		},
		[]string{"status"},
	)
)

var (
	submissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_desk",
			Subsystem: "submit",
			Name:      "submissions_total",
			Help:      "Orders handed to the order intake",
		},
		[]string{"status"},
	)

	gateBlocked = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_desk",
			Subsystem: "submit",
			Name:      "gate_blocked_total",
			Help:      "Send attempts refused because a line is below its minimum",
		},
	)

	sessionsEvicted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_desk",
			Subsystem: "sessions",
			Name:      "evicted_total",
			Help:      "Draft sessions dropped for being idle or over capacity",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		minPriceResolutions,
		searchLookups,

		submissions,
		gateBlocked,
		sessionsEvicted,
	)
}
