package catalog

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/observability/metrics"
	"magazine-catalog/internal/observability/tracing"
)

// Service provides catalog use cases over an entity.Registry.
// All operations, reads included, run under a single mutex, so the
// remove-then-append sequences of a relink are never observed half done.
type Service struct {
	mu       sync.Mutex
	registry *entity.Registry
	logger   *slog.Logger

	authors     map[uuid.UUID]*entity.Author
	authorOrder []*entity.Author
	magazines   map[uuid.UUID]*entity.Magazine
	articles    map[uuid.UUID]*entity.Article
}

// NewService returns a service backed by registry.
// A nil registry gets a fresh one; a nil logger falls back to slog.Default().
// Magazines and articles already on the registry are indexed, and their
// authors with them.
func NewService(registry *entity.Registry, logger *slog.Logger) *Service {
	if registry == nil {
		registry = entity.NewRegistry()
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &Service{
		registry: registry,
		logger:   logger.With(slog.String("component", "catalog")),
	}
	s.reindex()
	return s
}

// reindex rebuilds the ID indexes from the registry. Callers hold s.mu or own s exclusively.
func (s *Service) reindex() {
	s.authors = make(map[uuid.UUID]*entity.Author)
	s.authorOrder = nil
	s.magazines = make(map[uuid.UUID]*entity.Magazine)
	s.articles = make(map[uuid.UUID]*entity.Article)

	for _, m := range s.registry.Magazines() {
		s.magazines[m.ID()] = m
	}
	for _, a := range s.registry.Articles() {
		s.articles[a.ID()] = a
		s.indexAuthor(a.Author())
	}
}

func (s *Service) indexAuthor(a *entity.Author) {
	if _, ok := s.authors[a.ID()]; ok {
		return
	}
	s.authors[a.ID()] = a
	s.authorOrder = append(s.authorOrder, a)
}

// run executes fn under the service lock inside a span, then records metrics
// and logs the outcome.
func (s *Service) run(ctx context.Context, op string, attrs []attribute.KeyValue, fn func() error) error {
	start := time.Now()
	ctx, span := tracing.StartSpan(ctx, "catalog."+op, attrs...)

	err := ctx.Err()
	if err == nil {
		s.mu.Lock()
		err = fn()
		metrics.UpdateEntityCounts(len(s.authors), len(s.magazines), len(s.articles))
		s.mu.Unlock()
	}

	duration := time.Since(start)
	tracing.EndSpan(span, err)
	metrics.RecordOperation(op, err, duration)

	if err != nil {
		s.logger.WarnContext(ctx, "catalog operation rejected",
			slog.String("operation", op),
			slog.String("result", metrics.ResultLabel(err)),
			slog.Any("error", err))
		return err
	}
	s.logger.DebugContext(ctx, "catalog operation completed",
		slog.String("operation", op),
		slog.Duration("duration", duration))
	return nil
}

func (s *Service) author(id uuid.UUID) (*entity.Author, error) {
	if id == uuid.Nil {
		return nil, ErrInvalidID
	}
	a, ok := s.authors[id]
	if !ok {
		return nil, ErrAuthorNotFound
	}
	return a, nil
}

func (s *Service) magazine(id uuid.UUID) (*entity.Magazine, error) {
	if id == uuid.Nil {
		return nil, ErrInvalidID
	}
	m, ok := s.magazines[id]
	if !ok {
		return nil, ErrMagazineNotFound
	}
	return m, nil
}

func (s *Service) article(id uuid.UUID) (*entity.Article, error) {
	if id == uuid.Nil {
		return nil, ErrInvalidID
	}
	a, ok := s.articles[id]
	if !ok {
		return nil, ErrArticleNotFound
	}
	return a, nil
}

// Stats returns the number of authors, magazines and articles in the catalog.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	var out Stats
	err := s.run(ctx, "stats", nil, func() error {
		out = Stats{
			Authors:   len(s.authors),
			Magazines: len(s.magazines),
			Articles:  len(s.articles),
		}
		return nil
	})
	return out, err
}

// Reset empties the registry and forgets every indexed entity.
func (s *Service) Reset(ctx context.Context) error {
	return s.run(ctx, "reset", nil, func() error {
		s.registry.Reset()
		s.reindex()
		return nil
	})
}
