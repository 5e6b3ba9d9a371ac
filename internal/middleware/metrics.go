// ABOUTME: Prometheus instrumentation middleware
// ABOUTME: Records request counts and latency labelled by the registered route path

package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/cyan1/Availability/internal/metrics"
)

// Instrument records metrics under route rather than the raw URL path so
// label cardinality stays bounded.
func Instrument(route string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next(wrapped, r)

			metrics.RequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(wrapped.statusCode)).Inc()
			metrics.RequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		}
	}
}
