package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"delivery-analytics/internal/models"
	"delivery-analytics/internal/shared/filestorages"
)

//go:generate mockgen -source=bucket_store.go -destination=./mocks/bucket_store_mock.go -package=mocks
type BucketStore interface {
	// Upsert writes or replaces the aggregate row keyed by
	// (grouping, granularity, group key, bucket start).
	Upsert(ctx context.Context, agg *models.BucketAggregate) error
	// GetRange returns rows with bucket start in [start, end), sorted by
	// bucket start then group key. Provisional rows are excluded unless
	// includeProvisional is set.
	GetRange(ctx context.Context, grouping models.Grouping, granularity models.Granularity, start, end time.Time, includeProvisional bool) ([]*models.BucketAggregate, error)
}

// bucketStore serves range queries from an in-memory row set and writes
// every row through to file storage, one JSON object per row, so aggregates
// survive as readable materialized state.
type bucketStore struct {
	fileStorage filestorages.FileStorage
	dir         string

	mu   sync.RWMutex
	rows map[string]*models.BucketAggregate
}

func NewBucketStore(fileStorage filestorages.FileStorage) BucketStore {
	return &bucketStore{
		fileStorage: fileStorage,
		dir:         "bucket-aggregates",
		rows:        make(map[string]*models.BucketAggregate),
	}
}

func (s *bucketStore) Upsert(ctx context.Context, agg *models.BucketAggregate) error {
	jsonData, err := json.Marshal(agg)
	if err != nil {
		return fmt.Errorf("failed to marshal bucket aggregate: %w", err)
	}

	key := s.getKey(agg)
	_, err = s.fileStorage.Put(ctx, key, bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: true})
	if err != nil {
		return fmt.Errorf("failed to put bucket aggregate: %w", err)
	}

	row := *agg
	s.mu.Lock()
	s.rows[key] = &row
	s.mu.Unlock()
	return nil
}

func (s *bucketStore) GetRange(ctx context.Context, grouping models.Grouping, granularity models.Granularity, start, end time.Time, includeProvisional bool) ([]*models.BucketAggregate, error) {
	s.mu.RLock()
	matched := make([]*models.BucketAggregate, 0)
	for _, row := range s.rows {
		if row.Grouping != grouping || row.Granularity != granularity {
			continue
		}
		if row.BucketStart.Before(start) || !row.BucketStart.Before(end) {
			continue
		}
		if !row.IsFinalized && !includeProvisional {
			continue
		}
		copied := *row
		matched = append(matched, &copied)
	}
	s.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].BucketStart.Equal(matched[j].BucketStart) {
			return matched[i].BucketStart.Before(matched[j].BucketStart)
		}
		return matched[i].GroupKey < matched[j].GroupKey
	})
	return matched, nil
}

func (s *bucketStore) getKey(agg *models.BucketAggregate) string {
	return fmt.Sprintf("%s/%s/%s/%s/%s.json",
		s.dir, agg.Grouping, agg.Granularity, agg.GroupKey,
		agg.Granularity.FormatBucketStart(agg.BucketStart))
}
