package ingestors

import (
	"context"
	"errors"
	"strings"
	"testing"

	"delivery-analytics/internal/models"
	"delivery-analytics/internal/shared/svcerrors"
	"delivery-analytics/internal/stores"
	storemocks "delivery-analytics/internal/stores/mocks"
	streammocks "delivery-analytics/internal/streaming/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	rawBatchStore *storemocks.MockRawBatchStore
	eventLogStore *storemocks.MockEventLogStore
	eventProducer *streammocks.MockEventProducer
}

func newTestService(t *testing.T) (IngestionService, *serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := &serviceMocks{
		rawBatchStore: storemocks.NewMockRawBatchStore(ctrl),
		eventLogStore: storemocks.NewMockEventLogStore(ctrl),
		eventProducer: streammocks.NewMockEventProducer(ctrl),
	}
	service := NewIngestionService(NewRecordParser(), m.rawBatchStore, m.eventLogStore, m.eventProducer)
	return service, m
}

const validBatchJSON = `[
	{"order_id": "ord-1", "event_type": "order_created", "ts": "2026-01-15T10:00:00Z", "location": "loc-1"},
	{"order_id": "ord-1", "event_type": "delivered", "ts": "2026-01-15T10:33:00Z", "location": "loc-1"}
]`

func TestIngestBatch_Success(t *testing.T) {
	t.Parallel()

	service, m := newTestService(t)
	ctx := context.Background()

	m.rawBatchStore.EXPECT().
		Put(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, batch *models.RawBatch) error {
			assert.Equal(t, "batch-123", batch.BatchID)
			assert.JSONEq(t, validBatchJSON, string(batch.Payload))
			return nil
		})
	m.eventLogStore.EXPECT().
		Append(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, events []*models.Event) error {
			require.Len(t, events, 2)
			assert.Equal(t, "ord-1", events[0].OrderID)
			assert.Equal(t, models.EventOrderCreated, events[0].EventType)
			assert.Equal(t, models.EventDelivered, events[1].EventType)
			return nil
		})
	m.eventProducer.EXPECT().
		Produce(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, events []*models.Event) error {
			assert.Len(t, events, 2)
			return nil
		})

	result, err := service.IngestBatch(ctx, "batch-123", "application/json", strings.NewReader(validBatchJSON))
	require.NoError(t, err)

	assert.Equal(t, "batch-123", result.BatchID)
	assert.Equal(t, 2, result.Accepted)
	assert.Zero(t, result.Rejected)
}

func TestIngestBatch_GeneratesBatchIDWhenKeyMissing(t *testing.T) {
	t.Parallel()

	service, m := newTestService(t)
	ctx := context.Background()

	var storedID string
	m.rawBatchStore.EXPECT().
		Put(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, batch *models.RawBatch) error {
			storedID = batch.BatchID
			return nil
		})
	m.eventLogStore.EXPECT().Append(ctx, gomock.Any()).Return(nil)
	m.eventProducer.EXPECT().Produce(ctx, gomock.Any()).Return(nil)

	result, err := service.IngestBatch(ctx, "  ", "application/json", strings.NewReader(validBatchJSON))
	require.NoError(t, err)

	assert.NotEmpty(t, result.BatchID)
	assert.Equal(t, storedID, result.BatchID)
}

func TestIngestBatch_MalformedRecordsSkippedNotFatal(t *testing.T) {
	t.Parallel()

	service, m := newTestService(t)
	ctx := context.Background()

	batch := `[
		{"order_id": "ord-1", "event_type": "order_created", "ts": "2026-01-15T10:00:00Z"},
		{"event_type": "order_created", "ts": "2026-01-15T10:01:00Z"},
		{"order_id": "ord-2", "event_type": "order_created", "ts": "not-a-time"},
		{"order_id": "ord-3", "event_type": "delivered", "ts": "2026-01-15T10:30:00Z"}
	]`

	m.rawBatchStore.EXPECT().Put(ctx, gomock.Any()).Return(nil)
	m.eventLogStore.EXPECT().
		Append(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, events []*models.Event) error {
			require.Len(t, events, 2)
			assert.Equal(t, "ord-1", events[0].OrderID)
			assert.Equal(t, "ord-3", events[1].OrderID)
			return nil
		})
	m.eventProducer.EXPECT().Produce(ctx, gomock.Any()).Return(nil)

	result, err := service.IngestBatch(ctx, "batch-123", "application/json", strings.NewReader(batch))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Accepted)
	assert.Equal(t, 2, result.Rejected)
}

func TestIngestBatch_DuplicateBatch(t *testing.T) {
	t.Parallel()

	service, m := newTestService(t)
	ctx := context.Background()

	m.rawBatchStore.EXPECT().
		Put(ctx, gomock.Any()).
		Return(stores.ErrRawBatchAlreadyExist)

	result, err := service.IngestBatch(ctx, "batch-123", "application/json", strings.NewReader(validBatchJSON))
	assert.Nil(t, result)
	require.Error(t, err)

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, codeBatchAlreadyProcessed, svcErr.Code)
	assert.Equal(t, 409, svcErr.HttpStatusCode)
}

func TestIngestBatch_ValidationFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format string
		body   string
	}{
		{name: "unsupported format", format: "text/csv", body: validBatchJSON},
		{name: "invalid json", format: "application/json", body: "{not json"},
		{name: "object instead of array", format: "application/json", body: `{"order_id": "ord-1"}`},
		{name: "empty array", format: "application/json", body: "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newTestService(t)

			result, err := service.IngestBatch(context.Background(), "batch-123", tt.format, strings.NewReader(tt.body))
			assert.Nil(t, result)
			require.Error(t, err)

			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok)
			assert.Equal(t, codeValidationFailed, svcErr.Code)
			assert.Equal(t, 400, svcErr.HttpStatusCode)
		})
	}
}

func TestIngestBatch_NilBody(t *testing.T) {
	t.Parallel()

	service, _ := newTestService(t)

	result, err := service.IngestBatch(context.Background(), "batch-123", "application/json", nil)
	assert.Nil(t, result)
	require.Error(t, err)

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, codeValidationFailed, svcErr.Code)
}

func TestIngestBatch_BatchTooLarge(t *testing.T) {
	t.Parallel()

	service, _ := newTestService(t)

	oversized := strings.NewReader("[" + strings.Repeat(`"x",`, maxBatchBytes/4) + `"x"]`)
	result, err := service.IngestBatch(context.Background(), "batch-123", "application/json", oversized)
	assert.Nil(t, result)
	require.Error(t, err)

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, codeValidationFailed, svcErr.Code)
}

func TestIngestBatch_EventLogStoreFailure(t *testing.T) {
	t.Parallel()

	service, m := newTestService(t)
	ctx := context.Background()

	m.rawBatchStore.EXPECT().Put(ctx, gomock.Any()).Return(nil)
	m.eventLogStore.EXPECT().Append(ctx, gomock.Any()).Return(errors.New("disk full"))

	result, err := service.IngestBatch(ctx, "batch-123", "application/json", strings.NewReader(validBatchJSON))
	assert.Nil(t, result)
	require.Error(t, err)

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, codeInternalEventLogStoreFailed, svcErr.Code)
	assert.True(t, svcErr.IsInternalError())
}

func TestIngestBatch_ProducerFailure(t *testing.T) {
	t.Parallel()

	service, m := newTestService(t)
	ctx := context.Background()

	m.rawBatchStore.EXPECT().Put(ctx, gomock.Any()).Return(nil)
	m.eventLogStore.EXPECT().Append(ctx, gomock.Any()).Return(nil)
	m.eventProducer.EXPECT().Produce(ctx, gomock.Any()).Return(context.Canceled)

	result, err := service.IngestBatch(ctx, "batch-123", "application/json", strings.NewReader(validBatchJSON))
	assert.Nil(t, result)
	require.Error(t, err)

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, codeInternalEventProducerFailed, svcErr.Code)
}
