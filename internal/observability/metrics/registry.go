package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Catalog metrics track the size of the model and the operations applied to it
var (
	// EntitiesTotal tracks the number of live entities by kind
	EntitiesTotal = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_entities_total",
			Help: "Number of entities currently held by the catalog",
		},
		[]string{"kind"}, // kind: author, magazine, article
	)

	// OperationsTotal counts catalog operations by name and result
	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_operations_total",
			Help: "Total number of catalog operations",
		},
		[]string{"operation", "result"}, // result: success, validation, immutable, not_found, error
	)

	// OperationDuration measures catalog operation duration in seconds
	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_operation_duration_seconds",
			Help:    "Catalog operation duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
		},
		[]string{"operation"},
	)

	// RelinksTotal counts article reassignments by the side that moved
	RelinksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_relinks_total",
			Help: "Total number of article reassignments",
		},
		[]string{"side"}, // side: author, magazine
	)
)
