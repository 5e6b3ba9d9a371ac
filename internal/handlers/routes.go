// ABOUTME: Declarative route table for API endpoints
// ABOUTME: Defines all routes and registers them on a mux with the middleware chain

package handlers

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cyan1/Availability/internal/middleware"
)

// Route defines an API endpoint with its HTTP method and handler.
type Route struct {
	Method  string           // HTTP method (GET, POST, etc.)
	Path    string           // URL path (e.g., "/api/v1/health")
	Handler http.HandlerFunc // Handler function
}

// Routes returns all API routes for registration.
func (h *Handler) Routes() []Route {
	return []Route{
		// Health & Status
		{Method: http.MethodGet, Path: "/api/v1/health", Handler: h.Health},

		// Calculations
		{Method: http.MethodPost, Path: "/api/v1/availability", Handler: h.Availability},
		{Method: http.MethodPost, Path: "/api/v1/sweep", Handler: h.Sweep},
		{Method: http.MethodPost, Path: "/api/v1/batch", Handler: h.Batch},
		{Method: http.MethodPost, Path: "/api/v1/recommend", Handler: h.Recommend},
	}
}

// Register adds every route to mux wrapped in the standard middleware chain,
// plus the Prometheus endpoint at /metrics.
func (h *Handler) Register(mux *http.ServeMux) {
	var limiter *middleware.RateLimiter
	if h.cfg.RateLimitEnabled {
		limiter = middleware.NewRateLimiter(h.cfg.RateLimitDefault, time.Minute)
	}

	for _, route := range h.Routes() {
		mux.HandleFunc(route.Path, middleware.Chain(
			route.Handler,
			middleware.LogRequest,
			middleware.Instrument(route.Path),
			middleware.CORS(h.cfg.CORSAllowedOrigins),
			middleware.RequireMethod(route.Method),
			middleware.RateLimit(limiter, middleware.ClientIP),
		))
	}

	mux.Handle("/metrics", promhttp.Handler())
}
