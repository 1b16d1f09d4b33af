// Package logging provides structured logging utilities with context propagation.
//
// This package wraps the standard library's log/slog package with helper functions
// for the logging patterns used throughout the catalog.
//
// Key features:
//   - JSON and text output formats
//   - Configurable log levels
//   - Context-aware logging
//
// Example usage:
//
//	logger := logging.NewLogger(cfg.LogLevel, cfg.LogFormat)
//	ctx := logging.WithLogger(context.Background(), logger)
//	logging.FromContext(ctx).Info("seed applied", slog.Int("articles", n))
package logging
