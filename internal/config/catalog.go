// Package config loads catalog configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// CatalogConfig holds configuration for the catalog CLI.
type CatalogConfig struct {
	// LogLevel for the slog logger: debug, info, warn or error.
	// Default: "info"
	LogLevel string

	// LogFormat selects the slog handler: json or text.
	// Default: "json"
	LogFormat string

	// SeedFile is an optional YAML scenario applied at startup.
	// Default: "" (no seed)
	SeedFile string

	// Observability configures tracing and metrics output.
	Observability ObservabilityConfig
}

// ObservabilityConfig holds tracing and metrics settings.
type ObservabilityConfig struct {
	// EnableTracing writes OpenTelemetry spans to stderr.
	// Default: false
	EnableTracing bool

	// EnableMetrics logs a summary of the Prometheus counters on exit.
	// Default: true
	EnableMetrics bool
}

// LoadCatalogConfig loads catalog configuration from environment variables.
// Returns a config with defaults if environment variables are not set.
func LoadCatalogConfig() (*CatalogConfig, error) {
	config := &CatalogConfig{
		LogLevel:  strings.ToLower(getEnvOrDefault("CATALOG_LOG_LEVEL", "info")),
		LogFormat: strings.ToLower(getEnvOrDefault("CATALOG_LOG_FORMAT", "json")),
		SeedFile:  getEnvOrDefault("CATALOG_SEED_FILE", ""),
		Observability: ObservabilityConfig{
			EnableTracing: getEnvBool("CATALOG_TRACING_ENABLED", false),
			EnableMetrics: getEnvBool("CATALOG_METRICS_ENABLED", true),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog configuration: %w", err)
	}

	return config, nil
}

// Validate checks configuration correctness.
func (c *CatalogConfig) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("CATALOG_LOG_LEVEL must be one of debug, info, warn, error (got %q)", c.LogLevel)
	}

	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("CATALOG_LOG_FORMAT must be json or text (got %q)", c.LogFormat)
	}

	return nil
}

// getEnvOrDefault returns environment variable value or default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool parses boolean environment variable with default.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}
