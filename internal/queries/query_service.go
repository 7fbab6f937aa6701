package queries

import (
	"context"
	"sort"
	"time"

	"delivery-analytics/internal/models"
	"delivery-analytics/internal/orders"
	"delivery-analytics/internal/shared/loggers"
	"delivery-analytics/internal/shared/metrics"
	"delivery-analytics/internal/shared/svcerrors"
	"delivery-analytics/internal/stores"
)

// RangeQuery holds the parameters of a location time-range lookup.
type RangeQuery struct {
	Location string
	Start    time.Time
	End      time.Time
	Limit    int
}

// AggregateQuery holds the parameters of a bucket aggregate lookup.
type AggregateQuery struct {
	Grouping           models.Grouping
	Granularity        models.Granularity
	Start              time.Time
	End                time.Time
	IncludeProvisional bool
}

// QueryService answers read-only lookups against materialized state. All
// reads are snapshots: a query never blocks ingestion, and cancelling one
// abandons its read with no side effects.
//
//go:generate mockgen -source=query_service.go -destination=./mocks/query_service_mock.go -package=mocks
type QueryService interface {
	GetOrder(ctx context.Context, orderID string) (*models.OrderState, error)
	GetOrdersInRange(ctx context.Context, q RangeQuery) (*models.RangeResult, error)
	GetBucketAggregates(ctx context.Context, q AggregateQuery) ([]*models.BucketAggregate, error)
}

type queryService struct {
	eventLogStore stores.EventLogStore
	bucketStore   stores.BucketStore
	reconstructor orders.Reconstructor
	summarizer    orders.Summarizer
}

func NewQueryService(eventLogStore stores.EventLogStore, bucketStore stores.BucketStore, reconstructor orders.Reconstructor, summarizer orders.Summarizer) QueryService {
	return &queryService{
		eventLogStore: eventLogStore,
		bucketStore:   bucketStore,
		reconstructor: reconstructor,
		summarizer:    summarizer,
	}
}

func (s *queryService) GetOrder(ctx context.Context, orderID string) (*models.OrderState, error) {
	events, err := s.eventLogStore.GetByOrder(ctx, orderID)
	if err != nil {
		return nil, s.recordQuery("get_order", errInternalEventLogStoreFailed(err))
	}
	if len(events) == 0 {
		return nil, s.recordQuery("get_order", errOrderNotFound(orderID))
	}

	state, err := s.reconstructor.Reconstruct(orderID, firstLocation(events), events)
	if err != nil {
		return nil, s.recordQuery("get_order", errInternalReconstructFailed(err))
	}
	s.recordQuery("get_order", nil)

	loggers.Ctx(ctx).Debug().
		Str(loggers.FieldOrderID, orderID).
		Msgf("found order with %d events", len(events))
	return state, nil
}

func (s *queryService) GetOrdersInRange(ctx context.Context, q RangeQuery) (*models.RangeResult, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().
		Str(loggers.FieldLocation, q.Location).
		Msgf("fetching orders from %s to %s", q.Start.Format(time.RFC3339), q.End.Format(time.RFC3339))

	eventsByOrder, err := s.eventLogStore.GetByLocationRange(ctx, q.Location, q.Start, q.End)
	if err != nil {
		return nil, s.recordQuery("get_orders_in_range", errInternalEventLogStoreFailed(err))
	}

	matched := make([]*models.OrderState, 0, len(eventsByOrder))
	for orderID, events := range eventsByOrder {
		state, err := s.reconstructor.Reconstruct(orderID, q.Location, events)
		if err != nil {
			return nil, s.recordQuery("get_orders_in_range", errInternalReconstructFailed(err))
		}
		matched = append(matched, state)
	}
	s.recordQuery("get_orders_in_range", nil)
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.Before(matched[j].CreatedAt)
		}
		return matched[i].OrderID < matched[j].OrderID
	})

	matchedCount := len(matched)
	truncated := false
	if q.Limit > 0 && len(matched) > q.Limit {
		matched = matched[:q.Limit]
		truncated = true
	}

	// Metrics describe the returned orders; the truncated flag tells the
	// caller the page is partial.
	summary := s.summarizer.Summarize(matched)

	logger.Debug().
		Str(loggers.FieldLocation, q.Location).
		Msgf("matched %d orders, returning %d (%d completed, %d in progress, truncated=%v)",
			matchedCount, summary.TotalOrders, summary.CompletedOrders, summary.InProgressOrders, truncated)

	return &models.RangeResult{
		Location:  q.Location,
		StartTime: q.Start,
		EndTime:   q.End,
		Metrics:   summary,
		Orders:    matched,
		Truncated: truncated,
	}, nil
}

func (s *queryService) GetBucketAggregates(ctx context.Context, q AggregateQuery) ([]*models.BucketAggregate, error) {
	rows, err := s.bucketStore.GetRange(ctx, q.Grouping, q.Granularity, q.Start, q.End, q.IncludeProvisional)
	if err != nil {
		return nil, s.recordQuery("get_bucket_aggregates", errInternalBucketStoreFailed(err))
	}
	s.recordQuery("get_bucket_aggregates", nil)
	return rows, nil
}

// recordQuery counts the outcome and passes the error back unchanged.
func (s *queryService) recordQuery(operation string, err error) error {
	code := metrics.ValueNoError
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		code = svcErr.Code
	}
	metricQueriesTotal.WithLabelValues(operation, code).Inc()
	return err
}

// firstLocation picks the location recorded on the earliest-arriving event
// that carries one.
func firstLocation(events []*models.Event) string {
	for _, ev := range events {
		if ev.Location != "" {
			return ev.Location
		}
	}
	return ""
}
