package main

import (
	"context"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"magazine-catalog/internal/observability/logging"
	"magazine-catalog/internal/usecase/catalog"
)

// report logs the aggregate queries for every magazine and author.
func report(ctx context.Context, svc *catalog.Service) error {
	logger := logging.FromContext(ctx)

	magazines, err := svc.ListMagazines(ctx)
	if err != nil {
		return err
	}
	for _, m := range magazines {
		titles, err := svc.ArticleTitles(ctx, m.ID)
		if err != nil {
			return err
		}
		contributors, err := svc.Contributors(ctx, m.ID)
		if err != nil {
			return err
		}
		contributing, err := svc.ContributingAuthors(ctx, m.ID)
		if err != nil {
			return err
		}
		logger.Info("magazine",
			slog.String("name", m.Name),
			slog.String("category", m.Category),
			slog.Any("article_titles", titles),
			slog.Any("contributors", authorNames(contributors)),
			slog.Any("contributing_authors", authorNames(contributing)))
	}

	authors, err := svc.ListAuthors(ctx)
	if err != nil {
		return err
	}
	for _, a := range authors {
		mags, err := svc.AuthorMagazines(ctx, a.ID)
		if err != nil {
			return err
		}
		topics, err := svc.TopicAreas(ctx, a.ID)
		if err != nil {
			return err
		}
		names := make([]string, 0, len(mags))
		for _, m := range mags {
			names = append(names, m.Name)
		}
		logger.Info("author",
			slog.String("name", a.Name),
			slog.Int("articles", a.ArticleCount),
			slog.Any("magazines", names),
			slog.Any("topic_areas", topics))
	}

	top, err := svc.TopPublisher(ctx)
	if err != nil {
		return err
	}
	if top == nil {
		logger.Info("top publisher", slog.String("name", ""))
		return nil
	}
	logger.Info("top publisher",
		slog.String("name", top.Name),
		slog.Int("articles", top.ArticleCount))
	return nil
}

func authorNames(authors []catalog.AuthorView) []string {
	if authors == nil {
		return nil
	}
	names := make([]string, 0, len(authors))
	for _, a := range authors {
		names = append(names, a.Name)
	}
	return names
}

// reportMetrics logs every catalog counter from the default Prometheus registry.
func reportMetrics(ctx context.Context) error {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return err
	}
	logger := logging.FromContext(ctx)
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "catalog_") || mf.GetType() != dto.MetricType_COUNTER {
			continue
		}
		for _, m := range mf.GetMetric() {
			attrs := []any{slog.String("metric", mf.GetName()), slog.Float64("value", m.GetCounter().GetValue())}
			for _, lp := range m.GetLabel() {
				attrs = append(attrs, slog.String(lp.GetName(), lp.GetValue()))
			}
			logger.Info("metric", attrs...)
		}
	}
	return nil
}
