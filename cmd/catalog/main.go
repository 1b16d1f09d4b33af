package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"magazine-catalog/internal/config"
	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/infra/seed"
	"magazine-catalog/internal/observability/logging"
	"magazine-catalog/internal/observability/tracing"
	"magazine-catalog/internal/usecase/catalog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "catalog: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var seedFile string
	flag.StringVar(&seedFile, "seed", "", "YAML scenario to load (overrides CATALOG_SEED_FILE)")
	flag.Parse()

	cfg, err := config.LoadCatalogConfig()
	if err != nil {
		return err
	}
	if seedFile != "" {
		cfg.SeedFile = seedFile
	}

	logger := logging.NewLogger(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)
	ctx := logging.WithLogger(context.Background(), logger)

	shutdown, err := tracing.InitTracer(cfg.Observability.EnableTracing, os.Stderr)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Error("failed to shut down tracer", slog.Any("error", err))
		}
	}()

	svc := catalog.NewService(entity.NewRegistry(), logger)

	if cfg.SeedFile == "" {
		logger.Info("no seed file configured, catalog is empty")
	} else {
		sc, err := seed.LoadFile(cfg.SeedFile)
		if err != nil {
			return err
		}
		res, err := seed.Apply(ctx, svc, sc)
		if err != nil {
			return fmt.Errorf("apply seed: %w", err)
		}
		logger.Info("seed applied",
			slog.String("file", cfg.SeedFile),
			slog.Int("authors", len(res.Authors)),
			slog.Int("magazines", len(res.Magazines)),
			slog.Int("relinks", len(sc.Relinks)))
	}

	if err := report(ctx, svc); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	if cfg.Observability.EnableMetrics {
		if err := reportMetrics(ctx); err != nil {
			return fmt.Errorf("report metrics: %w", err)
		}
	}
	return nil
}
