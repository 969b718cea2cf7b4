// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CatalogSearches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_catalog_searches_total",
			Help: "Total number of catalog browse requests",
		},
		[]string{"category", "has_term"},
	)

	ApplicationsStarted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_applications_started_total",
			Help: "Total number of application wizards started",
		},
		[]string{"service"},
	)

	StepTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_step_transitions_total",
			Help: "Total number of wizard step transitions",
		},
		[]string{"action", "from_step"},
	)

	ApplicationsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_applications_submitted_total",
			Help: "Total number of submitted applications",
		},
		[]string{"service"},
	)

	ReceiptFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "portal_receipt_failures_total",
			Help: "Total number of receipts that could not be recorded",
		},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "portal_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	RateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "portal_http_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)
)
