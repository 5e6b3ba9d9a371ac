// ABOUTME: serve command running the HTTP API
// ABOUTME: Loads configuration, wires cache and handlers, and shuts down gracefully on signal

package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/cyan1/Availability/internal/cache"
	"github.com/cyan1/Availability/internal/config"
	"github.com/cyan1/Availability/internal/handlers"
)

const shutdownTimeout = 30 * time.Second

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Run the availability calculator HTTP API.

Environment Variables:
  PORT                  Listen port (default: 8080)
  CACHE_TTL             Result cache TTL in seconds, 0 disables (default: 300)
  CORS_ALLOWED_ORIGINS  Comma-separated allowed origins, "*" allows all
  RATE_LIMIT_ENABLED    Enable per-client rate limiting (default: true)
  RATE_LIMIT_DEFAULT    Requests per minute per client (default: 100)
  SWEEP_CONCURRENCY     Parallel evaluations per sweep or batch (default: 4)
  MAX_COMPONENTS        Largest accepted "have" (default: 170)
  MAX_BATCH_SIZE        Largest accepted batch (default: 1000)
  ENV_FILE              Optional .env file to load first (default: .env)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if servePort != "" {
			cfg.Port = servePort
		}

		ln, err := net.Listen("tcp", ":"+cfg.Port)
		if err != nil {
			return fmt.Errorf("failed to listen on port %s: %w", cfg.Port, err)
		}
		return runServe(ctx, cfg, ln)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&servePort, "port", "", "Listen port (overrides PORT)")
}

// newServer builds the HTTP server and returns it with the cache it owns,
// which is nil when caching is disabled
func newServer(cfg *config.Config) (*http.Server, *cache.Cache) {
	var c *cache.Cache
	if cfg.CacheTTL > 0 {
		cacheTTL := time.Duration(cfg.CacheTTL) * time.Second
		c = cache.New(cacheTTL)
		slog.Info("Cache initialized", "ttl", cacheTTL)
	} else {
		slog.Info("Cache disabled")
	}

	h := handlers.NewHandler(cfg, c)
	mux := http.NewServeMux()
	h.Register(mux)

	return &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}, c
}

// runServe serves on ln until ctx is cancelled, then drains in-flight requests
func runServe(ctx context.Context, cfg *config.Config, ln net.Listener) error {
	srv, c := newServer(cfg)
	if c != nil {
		defer c.Close()
	}

	slog.Info("Starting availability calculator server", "version", config.Version)
	slog.Info("Limits configured",
		"max_components", cfg.MaxComponents,
		"max_batch_size", cfg.MaxBatchSize,
		"sweep_concurrency", cfg.SweepConcurrency,
		"rate_limit", cfg.RateLimitEnabled)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	slog.Info("Server stopped gracefully")
	return nil
}
