package stores

import (
	"context"
	"errors"
	"io"
	"testing"

	"delivery-analytics/internal/models"
	"delivery-analytics/internal/shared/filestorages"
	"delivery-analytics/internal/shared/filestorages/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRawBatchStore_Put_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewRawBatchStore(mockFileStorage)

	ctx := context.Background()
	payload := []byte(`[{"order_id":"ord-1","event_type":"order_created","ts":"2026-01-15T10:00:00Z"}]`)

	mockFileStorage.EXPECT().
		Put(ctx, "raw-batches/batch-123.json", gomock.Any(), filestorages.PutOptions{AllowOverwrite: false}).
		DoAndReturn(func(ctx context.Context, key string, r io.Reader, opts filestorages.PutOptions) (*filestorages.PutResult, error) {
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, payload, data)
			return &filestorages.PutResult{FileKey: key}, nil
		})

	err := store.Put(ctx, &models.RawBatch{BatchID: "batch-123", Payload: payload})
	require.NoError(t, err)
}

func TestRawBatchStore_Put_DuplicateBatch(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewRawBatchStore(mockFileStorage)

	mockFileStorage.EXPECT().
		Put(gomock.Any(), gomock.Any(), gomock.Any(), filestorages.PutOptions{AllowOverwrite: false}).
		Return(nil, filestorages.ErrFileAlreadyExists)

	err := store.Put(context.Background(), &models.RawBatch{BatchID: "batch-123", Payload: []byte("[]")})
	assert.ErrorIs(t, err, ErrRawBatchAlreadyExist)
}

func TestRawBatchStore_Put_StorageFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewRawBatchStore(mockFileStorage)

	mockFileStorage.EXPECT().
		Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("disk full"))

	err := store.Put(context.Background(), &models.RawBatch{BatchID: "batch-123", Payload: []byte("[]")})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrRawBatchAlreadyExist)
	assert.Contains(t, err.Error(), "failed to put raw batch")
}
