package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "cars"

var (
	VpicLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "vpic_lookups_total",
			Help:      "Vehicle lookups by outcome: hit, miss or error.",
		},
		[]string{"result"},
	)
	CarsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "created_total",
			Help:      "Total number of cars added.",
		},
	)
	RatingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ratings_created_total",
			Help:      "Total number of ratings submitted.",
		},
	)
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and status.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

func init() {
	prometheus.MustRegister(VpicLookups, CarsCreated, RatingsCreated, RequestDuration)
}
