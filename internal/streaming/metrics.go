package streaming

import (
	"delivery-analytics/internal/shared/metrics"
)

var (
	streamOrderEvents = "order_events"

	metricEventsProducedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "events_published_total",
		},
		[]string{"stream_id"},
	)

	metricEventsConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "events_consumed_total",
		},
		[]string{"stream_id", metrics.FieldErrorCode},
	)

	// metricEventsDroppedLateTotal counts events whose bucket the watermark
	// had already passed. A late drop is an expected outcome under the
	// lateness tolerance policy, not an error.
	metricEventsDroppedLateTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStreaming,
			Name:      "events_dropped_late_total",
		},
		[]string{"grouping", "granularity"},
	)

	metricBucketsFinalizedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStreaming,
			Name:      "buckets_finalized_total",
		},
		[]string{"grouping", "granularity", "reason"},
	)

	metricBucketsOpen = metrics.NewGaugeVec(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStreaming,
			Name:      "buckets_open",
		},
		[]string{"grouping", "granularity"},
	)
)
