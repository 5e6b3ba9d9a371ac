// ABOUTME: Configuration loader for the availability calculator
// ABOUTME: Loads settings from an optional .env file and environment variables with defaults

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// MaxFactorialComponents is the largest component count whose factorial
// fits in a float64 (171! overflows).
const MaxFactorialComponents = 170

// Version is reported by the health endpoint and the CLI.
// Overridden at build time with -ldflags "-X .../internal/config.Version=...".
var Version = "dev"

type Config struct {
	// Server
	Port               string
	CacheTTL           int      // seconds; 0 disables the result cache
	CORSAllowedOrigins []string // allowed CORS origins ("*" allows all, empty = block cross-origin)

	// Rate Limiting
	RateLimitEnabled bool // Enable rate limiting (default: true)
	RateLimitDefault int  // Requests per minute per client (default: 100)

	// Calculation limits
	SweepConcurrency int // Parallel evaluations per sweep or batch (default: 4)
	MaxComponents    int // Largest accepted "have" (default: 170)
	MaxBatchSize     int // Largest accepted batch (default: 1000)
}

// Load reads configuration from the environment. Values from the file named
// by ENV_FILE (default ".env") are applied first without overriding variables
// that are already set; a missing file is not an error.
func Load() (*Config, error) {
	envFile := getEnv("ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		CacheTTL:           getEnvInt("CACHE_TTL", 300),
		CORSAllowedOrigins: getEnvStringList("CORS_ALLOWED_ORIGINS"),

		RateLimitEnabled: getEnvBool("RATE_LIMIT_ENABLED", true),
		RateLimitDefault: getEnvInt("RATE_LIMIT_DEFAULT", 100),

		SweepConcurrency: getEnvInt("SWEEP_CONCURRENCY", 4),
		MaxComponents:    getEnvInt("MAX_COMPONENTS", MaxFactorialComponents),
		MaxBatchSize:     getEnvInt("MAX_BATCH_SIZE", 1000),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.CacheTTL < 0 {
		return fmt.Errorf("CACHE_TTL must not be negative, got %d", c.CacheTTL)
	}
	if c.RateLimitDefault < 1 || c.RateLimitDefault > 10000 {
		return fmt.Errorf("RATE_LIMIT_DEFAULT must be between 1 and 10000, got %d", c.RateLimitDefault)
	}
	if c.SweepConcurrency < 1 || c.SweepConcurrency > 256 {
		return fmt.Errorf("SWEEP_CONCURRENCY must be between 1 and 256, got %d", c.SweepConcurrency)
	}
	if c.MaxComponents < 1 || c.MaxComponents > MaxFactorialComponents {
		return fmt.Errorf("MAX_COMPONENTS must be between 1 and %d, got %d", MaxFactorialComponents, c.MaxComponents)
	}
	if c.MaxBatchSize < 1 {
		return fmt.Errorf("MAX_BATCH_SIZE must be at least 1, got %d", c.MaxBatchSize)
	}
	return nil
}

// Defaults returns the configuration used when no environment is set
func Defaults() *Config {
	return &Config{
		Port:             "8080",
		CacheTTL:         300,
		RateLimitEnabled: true,
		RateLimitDefault: 100,
		SweepConcurrency: 4,
		MaxComponents:    MaxFactorialComponents,
		MaxBatchSize:     1000,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvStringList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
