package stores

import (
	"context"
	"errors"
	"testing"
	"time"

	"delivery-analytics/internal/models"
	"delivery-analytics/internal/shared/filestorages/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newEventLogStoreWithStorage(t *testing.T) EventLogStore {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	mockFileStorage.EXPECT().
		Append(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	return NewEventLogStore(mockFileStorage)
}

func TestEventLogStore_Append_WritesJSONLinesByLocationAndDay(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewEventLogStore(mockFileStorage)

	ctx := context.Background()
	events := []*models.Event{
		{OrderID: "ord-1", EventType: models.EventOrderCreated, Timestamp: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC), Location: "loc-1"},
		{OrderID: "ord-1", EventType: models.EventDelivered, Timestamp: time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC), Location: "loc-1"},
	}

	mockFileStorage.EXPECT().
		Append(ctx, "event-log/loc-1/20260115.jsonl", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, data []byte) error {
			// Two JSON lines, newline terminated.
			assert.Equal(t, byte('\n'), data[len(data)-1])
			return nil
		})

	require.NoError(t, store.Append(ctx, events))
}

func TestEventLogStore_Append_EventWithoutLocationUsesUnknownKey(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewEventLogStore(mockFileStorage)

	ctx := context.Background()
	mockFileStorage.EXPECT().
		Append(ctx, "event-log/unknown/20260115.jsonl", gomock.Any()).
		Return(nil)

	err := store.Append(ctx, []*models.Event{
		{OrderID: "ord-1", EventType: models.EventDriverPing, Timestamp: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)},
	})
	require.NoError(t, err)
}

func TestEventLogStore_Append_StorageFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewEventLogStore(mockFileStorage)

	mockFileStorage.EXPECT().
		Append(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("disk full"))

	err := store.Append(context.Background(), []*models.Event{
		{OrderID: "ord-1", EventType: models.EventOrderCreated, Timestamp: time.Now(), Location: "loc-1"},
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to append event log")

	// A failed write-through admits nothing.
	events, err := store.GetByOrder(context.Background(), "ord-1")
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestEventLogStore_Append_EmptySliceIsNoOp(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewEventLogStore(mockFileStorage)

	require.NoError(t, store.Append(context.Background(), nil))
}

func TestEventLogStore_GetByOrder(t *testing.T) {
	t.Parallel()

	store := newEventLogStoreWithStorage(t)
	ctx := context.Background()

	base := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	require.NoError(t, store.Append(ctx, []*models.Event{
		{OrderID: "ord-1", EventType: models.EventOrderCreated, Timestamp: base, Location: "loc-1"},
		{OrderID: "ord-2", EventType: models.EventOrderCreated, Timestamp: base, Location: "loc-1"},
		{OrderID: "ord-1", EventType: models.EventDelivered, Timestamp: base.Add(30 * time.Minute), Location: "loc-1"},
	}))

	events, err := store.GetByOrder(ctx, "ord-1")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, models.EventOrderCreated, events[0].EventType)
	assert.Equal(t, models.EventDelivered, events[1].EventType)

	missing, err := store.GetByOrder(ctx, "ord-404")
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestEventLogStore_GetByLocationRange_InclusiveBounds(t *testing.T) {
	t.Parallel()

	store := newEventLogStoreWithStorage(t)
	ctx := context.Background()

	start := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 15, 11, 0, 0, 0, time.UTC)

	require.NoError(t, store.Append(ctx, []*models.Event{
		{OrderID: "ord-before", EventType: models.EventOrderCreated, Timestamp: start.Add(-time.Second), Location: "loc-1"},
		{OrderID: "ord-at-start", EventType: models.EventOrderCreated, Timestamp: start, Location: "loc-1"},
		{OrderID: "ord-inside", EventType: models.EventOrderCreated, Timestamp: start.Add(30 * time.Minute), Location: "loc-1"},
		{OrderID: "ord-at-end", EventType: models.EventOrderCreated, Timestamp: end, Location: "loc-1"},
		{OrderID: "ord-after", EventType: models.EventOrderCreated, Timestamp: end.Add(time.Second), Location: "loc-1"},
		{OrderID: "ord-elsewhere", EventType: models.EventOrderCreated, Timestamp: start, Location: "loc-2"},
	}))

	byOrder, err := store.GetByLocationRange(ctx, "loc-1", start, end)
	require.NoError(t, err)

	assert.Len(t, byOrder, 3)
	assert.Contains(t, byOrder, "ord-at-start")
	assert.Contains(t, byOrder, "ord-inside")
	assert.Contains(t, byOrder, "ord-at-end")
	assert.NotContains(t, byOrder, "ord-before")
	assert.NotContains(t, byOrder, "ord-after")
	assert.NotContains(t, byOrder, "ord-elsewhere")
}

func TestEventLogStore_GetByLocationRange_GroupsByOrder(t *testing.T) {
	t.Parallel()

	store := newEventLogStoreWithStorage(t)
	ctx := context.Background()

	base := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	require.NoError(t, store.Append(ctx, []*models.Event{
		{OrderID: "ord-1", EventType: models.EventOrderCreated, Timestamp: base, Location: "loc-1"},
		{OrderID: "ord-1", EventType: models.EventDelivered, Timestamp: base.Add(30 * time.Minute), Location: "loc-1"},
		{OrderID: "ord-2", EventType: models.EventOrderCreated, Timestamp: base.Add(5 * time.Minute), Location: "loc-1"},
	}))

	byOrder, err := store.GetByLocationRange(ctx, "loc-1", base, base.Add(time.Hour))
	require.NoError(t, err)

	require.Len(t, byOrder, 2)
	assert.Len(t, byOrder["ord-1"], 2)
	assert.Len(t, byOrder["ord-2"], 1)
}
