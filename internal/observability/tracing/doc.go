// Package tracing provides OpenTelemetry tracing integration.
//
// Catalog operations open one span each through StartSpan and close it with
// EndSpan, which records the error and sets the span status. When tracing is
// disabled the global no-op provider makes both calls free.
//
// Example usage:
//
//	shutdown, err := tracing.InitTracer(cfg.TracingEnabled, os.Stderr)
//	if err != nil { ... }
//	defer shutdown(context.Background())
//
//	ctx, span := tracing.StartSpan(ctx, "catalog.PublishArticle")
//	defer func() { tracing.EndSpan(span, err) }()
package tracing
