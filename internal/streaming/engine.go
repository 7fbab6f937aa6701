package streaming

import (
	"context"
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"

	"delivery-analytics/internal/models"
	"delivery-analytics/internal/shared/loggers"
	"delivery-analytics/internal/shared/svcerrors"
	"delivery-analytics/internal/stores"
)

const (
	engineShardCount = 16

	// stalledSweepInterval bounds how long force-finalization can be
	// deferred when the watermark stops advancing.
	stalledSweepInterval = time.Minute
)

// Engine maintains the open bucket aggregates of one grouping dimension at
// one granularity. Engines over the same event stream share nothing but
// their own watermark clock; per-bucket state is mutated under shard locks
// keyed by group key hash, so contention stays local.
//
//go:generate mockgen -source=engine.go -destination=./mocks/engine_mock.go -package=mocks
type Engine interface {
	// Ingest folds one event into the engine's open buckets. Late events
	// (bucket start below the watermark) are dropped and counted, never
	// returned as errors.
	Ingest(ctx context.Context, ev *models.Event) *svcerrors.ServiceError
	Grouping() models.Grouping
	Granularity() models.Granularity
}

type engine struct {
	grouping     models.Grouping
	granularity  models.Granularity
	clock        *WatermarkClock
	newEstimator EstimatorFactory
	bucketStore  stores.BucketStore
	maxOpenAge   time.Duration
	now          func() time.Time

	lastSweep atomic.Int64 // unix nanos of last shard sweep

	shards [engineShardCount]engineShard
}

type engineShard struct {
	mu      sync.Mutex
	buckets map[bucketKey]*openBucket
	// finalized tombstones keep force-finalized buckets immutable until the
	// watermark passes them; pruned during sweeps.
	finalized map[bucketKey]struct{}
}

type bucketKey struct {
	groupKey    string
	bucketStart int64 // unix seconds
}

type openBucket struct {
	estimator DistinctEstimator
	items     int64
	revenue   float64
	openedAt  time.Time // wall clock, for the max-open-age ceiling
}

// EngineConfig carries the per-instance aggregation policy.
type EngineConfig struct {
	Grouping          models.Grouping
	Granularity       models.Granularity
	LatenessTolerance time.Duration
	MaxOpenAge        time.Duration
}

func NewEngine(cfg EngineConfig, newEstimator EstimatorFactory, bucketStore stores.BucketStore) Engine {
	e := &engine{
		grouping:     cfg.Grouping,
		granularity:  cfg.Granularity,
		clock:        NewWatermarkClock(cfg.LatenessTolerance),
		newEstimator: newEstimator,
		bucketStore:  bucketStore,
		maxOpenAge:   cfg.MaxOpenAge,
		now:          time.Now,
	}
	for i := range e.shards {
		e.shards[i].buckets = make(map[bucketKey]*openBucket)
		e.shards[i].finalized = make(map[bucketKey]struct{})
	}
	return e
}

func (e *engine) Grouping() models.Grouping       { return e.grouping }
func (e *engine) Granularity() models.Granularity { return e.granularity }

func (e *engine) Ingest(ctx context.Context, ev *models.Event) *svcerrors.ServiceError {
	advanced := e.clock.Observe(ev.Timestamp)
	watermark := e.clock.Watermark()

	bucketStart := e.granularity.Truncate(ev.Timestamp)
	if !watermark.IsZero() && bucketStart.Before(watermark) {
		e.countLateDrop(ctx, ev, bucketStart, watermark)
	} else {
		if svcErr := e.apply(ctx, ev, bucketStart); svcErr != nil {
			return svcErr
		}
	}

	if advanced || e.sweepOverdue() {
		return e.sweep(ctx, watermark)
	}
	return nil
}

func (e *engine) apply(ctx context.Context, ev *models.Event, bucketStart time.Time) *svcerrors.ServiceError {
	contributions := contributionsFor(e.grouping, ev)
	startUnix := bucketStart.Unix()

	for _, c := range contributions {
		key := bucketKey{groupKey: c.groupKey, bucketStart: startUnix}
		shard := e.shardFor(c.groupKey)

		shard.mu.Lock()
		// Re-check the watermark under the shard lock. Another partition's
		// worker may have advanced the clock and swept this bucket between
		// the caller's lock-free lateness check and here; recreating the
		// bucket would overwrite the finalized row with the straggler alone.
		if wm := e.clock.Watermark(); !wm.IsZero() && bucketStart.Before(wm) {
			shard.mu.Unlock()
			e.countLateDrop(ctx, ev, bucketStart, wm)
			continue
		}
		if _, done := shard.finalized[key]; done {
			shard.mu.Unlock()
			e.countLateDrop(ctx, ev, bucketStart, e.clock.Watermark())
			continue
		}
		bucket, ok := shard.buckets[key]
		if !ok {
			bucket = &openBucket{estimator: e.newEstimator(), openedAt: e.now()}
			shard.buckets[key] = bucket
			metricBucketsOpen.WithLabelValues(string(e.grouping), string(e.granularity)).Inc()
		}
		bucket.items += c.qty
		bucket.revenue += c.revenue
		bucket.estimator.Add(ev.OrderID)
		row := e.rowFor(key, bucket, false)
		shard.mu.Unlock()

		// Provisional write-through; queries read materialized rows only.
		if err := e.bucketStore.Upsert(ctx, row); err != nil {
			return errInternalBucketStoreFailed(err)
		}
	}
	return nil
}

// sweep finalizes every bucket the watermark has passed and force-finalizes
// buckets open beyond the max-open-age ceiling, bounding memory when the
// watermark stalls.
func (e *engine) sweep(ctx context.Context, watermark time.Time) *svcerrors.ServiceError {
	e.lastSweep.Store(e.now().UnixNano())
	width := e.granularity.Duration()
	wallNow := e.now()

	for i := range e.shards {
		shard := &e.shards[i]
		shard.mu.Lock()

		var toUpsert []*models.BucketAggregate
		for key, bucket := range shard.buckets {
			start := time.Unix(key.bucketStart, 0).UTC()
			switch {
			case !watermark.IsZero() && !start.Add(width).After(watermark):
				toUpsert = append(toUpsert, e.rowFor(key, bucket, true))
				delete(shard.buckets, key)
				metricBucketsOpen.WithLabelValues(string(e.grouping), string(e.granularity)).Dec()
				metricBucketsFinalizedTotal.WithLabelValues(string(e.grouping), string(e.granularity), "watermark").Inc()
			case wallNow.Sub(bucket.openedAt) > e.maxOpenAge:
				loggers.Ctx(ctx).Warn().
					Str(loggers.FieldGrouping, string(e.grouping)).
					Str(loggers.FieldGranularity, string(e.granularity)).
					Str(loggers.FieldGroupKey, key.groupKey).
					Time(loggers.FieldBucketStart, start).
					Time(loggers.FieldWatermark, watermark).
					Msg("bucket exceeded max open age without watermark progress, force-finalizing")
				toUpsert = append(toUpsert, e.rowFor(key, bucket, true))
				delete(shard.buckets, key)
				shard.finalized[key] = struct{}{}
				metricBucketsOpen.WithLabelValues(string(e.grouping), string(e.granularity)).Dec()
				metricBucketsFinalizedTotal.WithLabelValues(string(e.grouping), string(e.granularity), "forced").Inc()
			}
		}
		// Tombstones below the watermark are redundant: the lateness check
		// already drops their events.
		if !watermark.IsZero() {
			for key := range shard.finalized {
				start := time.Unix(key.bucketStart, 0).UTC()
				if start.Before(watermark) {
					delete(shard.finalized, key)
				}
			}
		}
		shard.mu.Unlock()

		for _, row := range toUpsert {
			if err := e.bucketStore.Upsert(ctx, row); err != nil {
				return errInternalBucketStoreFailed(err)
			}
		}
	}
	return nil
}

func (e *engine) sweepOverdue() bool {
	return e.now().UnixNano()-e.lastSweep.Load() > int64(stalledSweepInterval)
}

func (e *engine) rowFor(key bucketKey, bucket *openBucket, finalized bool) *models.BucketAggregate {
	return &models.BucketAggregate{
		Grouping:    e.grouping,
		Granularity: e.granularity,
		GroupKey:    key.groupKey,
		BucketStart: time.Unix(key.bucketStart, 0).UTC(),
		Orders:      bucket.estimator.Estimate(),
		Items:       bucket.items,
		Revenue:     bucket.revenue,
		IsFinalized: finalized,
	}
}

func (e *engine) countLateDrop(ctx context.Context, ev *models.Event, bucketStart, watermark time.Time) {
	metricEventsDroppedLateTotal.WithLabelValues(string(e.grouping), string(e.granularity)).Inc()
	loggers.Ctx(ctx).Debug().
		Str(loggers.FieldOrderID, ev.OrderID).
		Str(loggers.FieldEventType, string(ev.EventType)).
		Str(loggers.FieldGrouping, string(e.grouping)).
		Str(loggers.FieldGranularity, string(e.granularity)).
		Time(loggers.FieldBucketStart, bucketStart).
		Time(loggers.FieldWatermark, watermark).
		Msg("late event dropped, bucket already closed")
}

func (e *engine) shardFor(groupKey string) *engineShard {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(groupKey))
	return &e.shards[hash.Sum32()%engineShardCount]
}
