package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/infra/seed"
	"magazine-catalog/internal/observability/logging"
	"magazine-catalog/internal/usecase/catalog"
)

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLoggerWithWriter(&buf, "info", "text")
	ctx := logging.WithLogger(context.Background(), logger)

	svc := catalog.NewService(entity.NewRegistry(), logging.Discard())
	sc, err := seed.LoadFile(filepath.Join("..", "..", "internal", "infra", "seed", "testdata", "city.yaml"))
	require.NoError(t, err)
	_, err = seed.Apply(ctx, svc, sc)
	require.NoError(t, err)

	require.NoError(t, report(ctx, svc))

	out := buf.String()
	assert.Contains(t, out, "msg=magazine name=Vogue")
	assert.Contains(t, out, "msg=author name=\"Carry Bradshaw\"")
	assert.Contains(t, out, "msg=\"top publisher\" name=Vogue articles=3")
}

func TestReport_EmptyCatalog(t *testing.T) {
	var buf bytes.Buffer
	ctx := logging.WithLogger(context.Background(), logging.NewLoggerWithWriter(&buf, "info", "text"))

	require.NoError(t, report(ctx, catalog.NewService(nil, logging.Discard())))

	assert.Contains(t, buf.String(), "msg=\"top publisher\" name=\"\"")
}

func TestReportMetrics(t *testing.T) {
	var buf bytes.Buffer
	ctx := logging.WithLogger(context.Background(), logging.NewLoggerWithWriter(&buf, "info", "text"))

	svc := catalog.NewService(nil, logging.Discard())
	_, err := svc.CreateAuthor(ctx, catalog.CreateAuthorInput{Name: "Carry Bradshaw"})
	require.NoError(t, err)

	require.NoError(t, reportMetrics(ctx))

	assert.Contains(t, buf.String(), "metric=catalog_operations_total")
	assert.Contains(t, buf.String(), "operation=create_author")
}
