// Package metrics exposes Prometheus collectors for the catalog.
// Labels stay low-cardinality: no movie ids or titles.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultAccepted = "accepted"
	ResultRejected = "rejected"
	ResultFailed   = "failed"
	ResultRemoved  = "removed"
	ResultNotFound = "not_found"
)

var (
	// SubmissionsTotal counts form submissions by outcome.
	SubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "movie_catalog_submissions_total",
		Help: "Total number of movie submissions, by result (accepted/rejected/failed).",
	}, []string{"result"})

	// RemovalsTotal counts removal requests by outcome.
	RemovalsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "movie_catalog_removals_total",
		Help: "Total number of movie removal requests, by result (removed/not_found/failed).",
	}, []string{"result"})

	// Records tracks the size of the in-memory collection.
	Records = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "movie_catalog_records",
		Help: "Current number of movies in the catalog.",
	})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "movie_catalog_http_requests_total",
		Help: "Total number of HTTP requests, by method, route pattern and status code.",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "movie_catalog_http_request_duration_seconds",
		Help:    "HTTP request latency, by method and route pattern.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
)
