package ingestors

import (
	"delivery-analytics/internal/shared/metrics"
)

var (
	metricBatchIngestedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "batch_ingested_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricEventsAdmittedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "events_admitted_total",
		},
	)

	// metricEventsRejectedTotal counts malformed records skipped during
	// ingestion. Rejections are expected and never fatal to the batch.
	metricEventsRejectedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "events_rejected_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
