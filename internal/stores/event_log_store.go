package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"delivery-analytics/internal/models"
	"delivery-analytics/internal/shared/filestorages"
)

//go:generate mockgen -source=event_log_store.go -destination=./mocks/event_log_store_mock.go -package=mocks
type EventLogStore interface {
	// Append admits events into the log. Events are immutable once appended.
	Append(ctx context.Context, events []*models.Event) error
	// GetByOrder returns all events recorded for one order, in arrival order.
	GetByOrder(ctx context.Context, orderID string) ([]*models.Event, error)
	// GetByLocationRange returns, per order, the events for a location with
	// timestamp in [start, end]. Orders with no event in range are absent.
	GetByLocationRange(ctx context.Context, location string, start, end time.Time) (map[string][]*models.Event, error)
}

// eventLogStore indexes admitted events in memory for order and range
// lookups, and writes each append through to file storage as JSON lines
// partitioned by location and day, keeping the history append-only
// readable. The surrounding system owns durable storage; this store is the
// core's working view of it.
type eventLogStore struct {
	fileStorage filestorages.FileStorage
	dir         string

	mu         sync.RWMutex
	byOrder    map[string][]*models.Event
	byLocation map[string][]*models.Event
}

func NewEventLogStore(fileStorage filestorages.FileStorage) EventLogStore {
	return &eventLogStore{
		fileStorage: fileStorage,
		dir:         "event-log",
		byOrder:     make(map[string][]*models.Event),
		byLocation:  make(map[string][]*models.Event),
	}
}

func (s *eventLogStore) Append(ctx context.Context, events []*models.Event) error {
	if len(events) == 0 {
		return nil
	}

	// Write-through first: JSON lines grouped by location/day key.
	lines := make(map[string]*bytes.Buffer)
	for _, ev := range events {
		jsonData, err := json.Marshal(ev)
		if err != nil {
			return fmt.Errorf("failed to marshal event: %w", err)
		}
		key := s.getKey(ev)
		buf, ok := lines[key]
		if !ok {
			buf = &bytes.Buffer{}
			lines[key] = buf
		}
		buf.Write(jsonData)
		buf.WriteByte('\n')
	}
	for key, buf := range lines {
		if err := s.fileStorage.Append(ctx, key, buf.Bytes()); err != nil {
			return fmt.Errorf("failed to append event log: %w", err)
		}
	}

	s.mu.Lock()
	for _, ev := range events {
		s.byOrder[ev.OrderID] = append(s.byOrder[ev.OrderID], ev)
		if ev.Location != "" {
			s.byLocation[ev.Location] = append(s.byLocation[ev.Location], ev)
		}
	}
	s.mu.Unlock()
	return nil
}

func (s *eventLogStore) GetByOrder(ctx context.Context, orderID string) ([]*models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := s.byOrder[orderID]
	if len(events) == 0 {
		return nil, nil
	}
	out := make([]*models.Event, len(events))
	copy(out, events)
	return out, nil
}

func (s *eventLogStore) GetByLocationRange(ctx context.Context, location string, start, end time.Time) (map[string][]*models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string][]*models.Event)
	for _, ev := range s.byLocation[location] {
		if ev.Timestamp.Before(start) || ev.Timestamp.After(end) {
			continue
		}
		result[ev.OrderID] = append(result[ev.OrderID], ev)
	}
	return result, nil
}

func (s *eventLogStore) getKey(ev *models.Event) string {
	location := ev.Location
	if location == "" {
		location = "unknown"
	}
	return fmt.Sprintf("%s/%s/%s.jsonl", s.dir, location, ev.Timestamp.UTC().Format("20060102"))
}
