package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LoaderCacheHits counts source table lookups served from the loader cache
	LoaderCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flixboard_loader_cache_hits_total",
			Help: "Total number of loader lookups served from the memoized tables",
		},
		[]string{"query"},
	)

	LoaderCacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flixboard_loader_cache_misses_total",
			Help: "Total number of loader lookups that queried the store",
		},
		[]string{"query"},
	)

	StorageQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "flixboard_storage_query_duration_seconds",
			Help:    "Duration of catalog store queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"query"},
	)

	StorageQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flixboard_storage_query_errors_total",
			Help: "Total number of failed catalog store queries",
		},
		[]string{"query"},
	)

	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flixboard_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "flixboard_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5, 10},
		},
		[]string{"method", "route"},
	)
)
