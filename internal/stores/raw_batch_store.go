package stores

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"delivery-analytics/internal/models"
	"delivery-analytics/internal/shared/filestorages"
)

var (
	ErrRawBatchAlreadyExist = errors.New("raw batch already exists")
)

// RawBatchStore keeps every ingested batch payload verbatim. Put relies on
// the storage's atomic create-if-not-exists (S3-style conditional PUT), so
// two concurrent submissions of the same batch ID resolve to one stored
// payload and one ErrRawBatchAlreadyExist — idempotent batch admission.
//
//go:generate mockgen -source=raw_batch_store.go -destination=./mocks/raw_batch_store_mock.go -package=mocks
type RawBatchStore interface {
	Put(ctx context.Context, batch *models.RawBatch) error
}

type rawBatchStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewRawBatchStore(fileStorage filestorages.FileStorage) RawBatchStore {
	return &rawBatchStore{fileStorage: fileStorage, dir: "raw-batches"}
}

func (s *rawBatchStore) Put(ctx context.Context, batch *models.RawBatch) error {
	key := fmt.Sprintf("%s/%s.json", s.dir, batch.BatchID)

	_, err := s.fileStorage.Put(ctx, key, bytes.NewReader(batch.Payload), filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return ErrRawBatchAlreadyExist
		}
		return fmt.Errorf("failed to put raw batch: %w", err)
	}
	return nil
}
