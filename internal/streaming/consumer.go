package streaming

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"delivery-analytics/internal/models"
	"delivery-analytics/internal/shared/loggers"
	"delivery-analytics/internal/shared/metrics"
	"delivery-analytics/internal/shared/svcerrors"
	"delivery-analytics/internal/shared/ulid"
)

//go:generate mockgen -source=consumer.go -destination=./mocks/consumer_mock.go -package=mocks
type EventConsumer interface {
	Start(ctx context.Context)
	Stop()
}

// eventConsumer drains the partitioned queue with one worker per partition
// and feeds every event to each registered engine. Engines are independent
// aggregation instances; a failure in one never stops the others or the
// stream.
type eventConsumer struct {
	queue   *PartitionedQueue[*models.Event]
	engines []Engine

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewEventConsumer(queue *PartitionedQueue[*models.Event], engines []Engine, logger loggers.Logger) EventConsumer {
	return &eventConsumer{
		queue:   queue,
		engines: engines,
		stopCh:  make(chan struct{}),
		logger:  logger,
	}
}

// Start spawns one worker goroutine per partition.
func (consumer *eventConsumer) Start(ctx context.Context) {
	for partitionIndex := 0; partitionIndex < consumer.queue.PartitionCount(); partitionIndex++ {
		ch := consumer.queue.partitions[partitionIndex]
		consumer.wg.Add(1)
		go func() {
			defer consumer.wg.Done()

			consumer.runPartitionWorker(ctx, partitionIndex, ch)
		}()
	}
}

// Stop waits for workers to stop (best called during app shutdown).
func (consumer *eventConsumer) Stop() {
	consumer.stopOnce.Do(func() { close(consumer.stopCh) })
	consumer.wg.Wait()
}

func (consumer *eventConsumer) runPartitionWorker(ctx context.Context, partitionIndex int, ch <-chan *models.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-consumer.stopCh:
			return
		case ev, ok := <-ch:
			if !ok {
				return
			}
			consumer.consumeOne(ctx, partitionIndex, ev)
		}
	}
}

func (consumer *eventConsumer) consumeOne(ctx context.Context, partitionIndex int, ev *models.Event) {
	// Panic recovery keeps a poisoned event from killing the partition worker.
	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg("consumer panic recovered")

			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}

			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricEventsConsumedTotal.WithLabelValues(streamOrderEvents, svcErr.Code).Inc()
		}
	}()

	ctx = consumer.logger.With().
		Str(loggers.FieldPartitionId, fmt.Sprintf("%d", partitionIndex)).
		Str(loggers.FieldRequestID, ulid.NewULID()).
		Logger().WithContext(ctx)

	// Engines are independent; one failing never withholds the event from
	// the rest.
	failed := false
	for _, eng := range consumer.engines {
		svcErr := eng.Ingest(ctx, ev)
		if svcErr == nil {
			continue
		}
		loggers.Ctx(ctx).Error().
			Err(svcErr.Cause).
			Str(loggers.FieldErrorCode, svcErr.Code).
			Str(loggers.FieldGrouping, string(eng.Grouping())).
			Str(loggers.FieldGranularity, string(eng.Granularity())).
			Msg("engine ingest failed")
		metricEventsConsumedTotal.WithLabelValues(streamOrderEvents, svcErr.Code).Inc()
		failed = true
	}
	if !failed {
		metricEventsConsumedTotal.WithLabelValues(streamOrderEvents, metrics.ValueNoError).Inc()
	}
}
