package queries

import (
	"delivery-analytics/internal/shared/metrics"
)

var (
	metricQueriesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubQuery,
			Name:      "queries_total",
		},
		[]string{"operation", metrics.FieldErrorCode},
	)
)
