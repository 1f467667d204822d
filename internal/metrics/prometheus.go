// Package metrics holds the exporter's own telemetry, as opposed to the
// fabricated text it serves. These are real prometheus collectors exposed at
// /debug/metrics so the test double itself can be observed during runs.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace is the Prometheus metrics namespace for the exporter's own telemetry.
const Namespace = "mockazure"

// Request metrics track HTTP request handling.
var (
	// RequestsTotal counts total HTTP requests by endpoint and status code.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by endpoint and status code.",
		},
		[]string{"endpoint", "status"},
	)

	// RequestDuration tracks request duration in seconds by endpoint.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds by endpoint.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// InFlightRequests tracks currently processing requests.
	InFlightRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "in_flight_requests",
			Help:      "Number of HTTP requests currently being processed.",
		},
	)
)

// Probe metrics track the resource-probe route specifically.
var (
	// ProbeRequestsTotal counts probe requests by outcome (ok or missing_parameters).
	ProbeRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "probe_requests_total",
			Help:      "Total number of resource probe requests by outcome.",
		},
		[]string{"outcome"},
	)

	// ProbeMetricEntries tracks how many metric entries each probe requested.
	ProbeMetricEntries = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "probe_metric_entries",
			Help:      "Number of comma-separated metric entries per probe request.",
			Buckets:   []float64{1, 2, 3, 5, 8, 13, 21},
		},
	)
)
