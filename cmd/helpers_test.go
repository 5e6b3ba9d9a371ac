// ABOUTME: Shared helpers for command tests
// ABOUTME: Local backend plus an httptest server running the real API handlers

package cmd

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cyan1/Availability/internal/client"
	"github.com/cyan1/Availability/internal/config"
	"github.com/cyan1/Availability/internal/handlers"
	"github.com/cyan1/Availability/internal/services"
)

func f(v float64) *float64 { return &v }

func testLocalBackend() backend {
	return localBackend{calc: services.NewCalculator(config.Defaults())}
}

// testRemoteBackend starts a server with the production route table
func testRemoteBackend(t *testing.T) (backend, string) {
	t.Helper()
	cfg := config.Defaults()
	cfg.RateLimitEnabled = false

	mux := http.NewServeMux()
	handlers.NewHandler(cfg, nil).Register(mux)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return remoteBackend{c: client.New(server.URL)}, server.URL
}

// withJSON enables --json for the duration of the test
func withJSON(t *testing.T) {
	t.Helper()
	jsonOutput = true
	t.Cleanup(func() { jsonOutput = false })
}
