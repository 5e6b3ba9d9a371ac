// ABOUTME: Test helpers for e2e tests
// ABOUTME: Starts the full API from environment configuration on an httptest server

package e2e

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/cyan1/Availability/internal/cache"
	"github.com/cyan1/Availability/internal/client"
	"github.com/cyan1/Availability/internal/config"
	"github.com/cyan1/Availability/internal/handlers"
)

// startServer loads configuration from env (no .env file) and serves the
// production route table. It returns the server and an API client for it.
//
// Example:
//
//	srv, c := startServer(t, map[string]string{
//	    "CORS_ALLOWED_ORIGINS": "https://example.com",
//	})
func startServer(t *testing.T, env map[string]string) (*httptest.Server, *client.Client) {
	t.Helper()

	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	for key, value := range env {
		t.Setenv(key, value)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	var c *cache.Cache
	if cfg.CacheTTL > 0 {
		c = cache.New(time.Duration(cfg.CacheTTL) * time.Second)
		t.Cleanup(c.Close)
	}

	mux := http.NewServeMux()
	handlers.NewHandler(cfg, c).Register(mux)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, client.New(server.URL)
}

func f(v float64) *float64 { return &v }
