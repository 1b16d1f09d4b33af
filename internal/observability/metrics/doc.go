// Package metrics provides Prometheus metrics for catalog activity.
//
// This package centralizes the catalog collectors:
//   - Entity gauges (authors, magazines, articles)
//   - Operation counters and latency histograms by result
//   - Relink counters by side (author, magazine)
//   - Rejection counters by reason (validation, immutable, not_found)
//
// All metrics are registered with the Prometheus default registry.
//
// Example usage:
//
//	start := time.Now()
//	err := doPublish()
//	metrics.RecordOperation("publish_article", err, time.Since(start))
package metrics
