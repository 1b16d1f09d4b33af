package metrics

import (
	"errors"
	"time"

	"magazine-catalog/internal/domain/entity"
)

// Result labels for OperationsTotal.
const (
	ResultSuccess    = "success"
	ResultValidation = "validation"
	ResultImmutable  = "immutable"
	ResultNotFound   = "not_found"
	ResultError      = "error"
)

// ResultLabel classifies an operation error into a result label.
func ResultLabel(err error) string {
	switch {
	case err == nil:
		return ResultSuccess
	case errors.Is(err, entity.ErrImmutableAttribute):
		return ResultImmutable
	case errors.Is(err, entity.ErrValidationFailed):
		return ResultValidation
	case errors.Is(err, entity.ErrNotFound):
		return ResultNotFound
	default:
		return ResultError
	}
}

// RecordOperation records the outcome and duration of a catalog operation.
func RecordOperation(operation string, err error, duration time.Duration) {
	OperationsTotal.WithLabelValues(operation, ResultLabel(err)).Inc()
	OperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordRelink records an article moving to a new author or magazine.
// Side should be either "author" or "magazine".
func RecordRelink(side string) {
	RelinksTotal.WithLabelValues(side).Inc()
}

// UpdateEntityCounts sets the entity gauges to the current catalog size.
func UpdateEntityCounts(authors, magazines, articles int) {
	EntitiesTotal.WithLabelValues("author").Set(float64(authors))
	EntitiesTotal.WithLabelValues("magazine").Set(float64(magazines))
	EntitiesTotal.WithLabelValues("article").Set(float64(articles))
}
