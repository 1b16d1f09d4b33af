// Package observability groups the logging, metrics and tracing helpers used by
// the catalog.
//
// Subpackages:
//   - logging: slog logger construction and context propagation
//   - metrics: Prometheus collectors for catalog activity
//   - tracing: OpenTelemetry tracer setup and span helpers
//
// Example usage:
//
//	import (
//	    "magazine-catalog/internal/observability/logging"
//	    "magazine-catalog/internal/observability/metrics"
//	)
//
//	func main() {
//	    logger := logging.NewLogger("info", "json")
//	    logger.Info("catalog started")
//
//	    metrics.RecordOperation("publish_article", nil, time.Millisecond)
//	}
package observability
