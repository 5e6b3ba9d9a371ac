// ABOUTME: Prometheus collectors for the HTTP API and calculation service
// ABOUTME: Registered on the default registry and exposed at /metrics

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by route and status code
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "availcalc_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// RequestDuration tracks HTTP handler latency
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "availcalc_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// CalculationsTotal counts configuration evaluations by mode and outcome
	CalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "availcalc_calculations_total",
			Help: "Total number of configuration evaluations",
		},
		[]string{"mode", "outcome"},
	)

	// CacheLookups counts result cache hits and misses
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "availcalc_cache_lookups_total",
			Help: "Total number of result cache lookups",
		},
		[]string{"result"},
	)

	// BatchSize records how many configurations each batch or sweep evaluates
	BatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "availcalc_batch_size",
			Help:    "Number of configurations per batch or sweep",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
	)
)

// Outcome labels for CalculationsTotal
const (
	OutcomeOK       = "ok"
	OutcomeInvalid  = "invalid"
	OutcomeOverflow = "overflow"
)

// ModeUnknown labels calculations rejected before a mode was determined
const ModeUnknown = "unknown"
