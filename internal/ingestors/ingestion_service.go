package ingestors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"delivery-analytics/internal/models"
	"delivery-analytics/internal/shared/loggers"
	"delivery-analytics/internal/shared/metrics"
	"delivery-analytics/internal/shared/ulid"
	"delivery-analytics/internal/stores"
	"delivery-analytics/internal/streaming"
)

const (
	maxBatchBytes = 4 * 1024 * 1024
)

const (
	FormatJSON = "json"
)

// IngestResult reports the outcome of one batch ingestion. Rejected counts
// malformed records that were skipped; a rejection never fails the batch.
type IngestResult struct {
	BatchID  string `json:"batchId"`
	Accepted int    `json:"accepted"`
	Rejected int    `json:"rejected"`
}

//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	// IngestBatch admits a batch of raw event records from JSON format.
	IngestBatch(ctx context.Context, idempotencyKey string, format string, r io.Reader) (*IngestResult, error)
}

type ingestionService struct {
	recordParser  RecordParser
	rawBatchStore stores.RawBatchStore
	eventLogStore stores.EventLogStore
	eventProducer streaming.EventProducer
}

func NewIngestionService(recordParser RecordParser, rawBatchStore stores.RawBatchStore, eventLogStore stores.EventLogStore, eventProducer streaming.EventProducer) IngestionService {
	return &ingestionService{
		recordParser:  recordParser,
		rawBatchStore: rawBatchStore,
		eventLogStore: eventLogStore,
		eventProducer: eventProducer,
	}
}

func (s *ingestionService) IngestBatch(ctx context.Context, idempotencyKey string, format string, r io.Reader) (*IngestResult, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Msgf("started ingesting event batch with idempotency key: %s, format: %s", idempotencyKey, format)

	payload, records, err := s.validateBatch(format, r)
	if err != nil {
		return nil, err
	}

	batchID := strings.TrimSpace(idempotencyKey)
	if batchID == "" {
		batchID = ulid.NewULID()
	}

	// Store the raw payload first: duplicate batch IDs are rejected before
	// any event reaches the log or the stream.
	err = s.rawBatchStore.Put(ctx, &models.RawBatch{BatchID: batchID, Payload: payload})
	if err != nil {
		if errors.Is(err, stores.ErrRawBatchAlreadyExist) {
			svcError := errBatchAlreadyProcessed(err)
			metricBatchIngestedTotal.WithLabelValues(svcError.Code).Inc()
			return nil, svcError
		}
		return nil, errInternalRawBatchStoreFailed(err)
	}

	admitted := make([]*models.Event, 0, len(records))
	rejected := 0
	for i, record := range records {
		ev, parseErr := s.recordParser.Parse(record)
		if parseErr != nil {
			// Malformed records are counted and skipped; the rest of the
			// batch continues.
			rejected++
			metricEventsRejectedTotal.WithLabelValues(codeMalformedEvent).Inc()
			logger.Warn().
				Str(loggers.FieldBatchID, batchID).
				Str(loggers.FieldErrorCode, codeMalformedEvent).
				Msgf("rejected malformed event record at index %d: %v", i, parseErr)
			continue
		}
		admitted = append(admitted, ev)
	}

	if err := s.eventLogStore.Append(ctx, admitted); err != nil {
		return nil, errInternalEventLogStoreFailed(err)
	}

	if err := s.eventProducer.Produce(ctx, admitted); err != nil {
		return nil, errInternalEventProducerFailed(err)
	}

	metricBatchIngestedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	metricEventsAdmittedTotal.Add(float64(len(admitted)))

	return &IngestResult{BatchID: batchID, Accepted: len(admitted), Rejected: rejected}, nil
}

func (s *ingestionService) validateBatch(format string, r io.Reader) ([]byte, []map[string]any, error) {
	if r == nil {
		return nil, nil, errValidationFailed("empty request body", nil)
	}

	payload, err := s.readWithLimit(r, maxBatchBytes)
	if err != nil {
		return nil, nil, errValidationFailed(fmt.Sprintf("batch too large: must be <= %d bytes", maxBatchBytes), nil)
	}

	formatLower := strings.ToLower(format)
	if !strings.Contains(formatLower, FormatJSON) {
		return nil, nil, errValidationFailed(fmt.Sprintf("unsupported input format: %q", format), nil)
	}

	var records []map[string]any
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, nil, errValidationFailed("invalid json", err)
	}
	if len(records) == 0 {
		return nil, nil, errValidationFailed("event records cannot be empty", nil)
	}

	return payload, records, nil
}

// readWithLimit reads up to max+1 bytes from r and checks if it exceeds max.
func (s *ingestionService) readWithLimit(r io.Reader, max int) ([]byte, error) {
	limited := io.LimitReader(r, int64(max)+1)
	data, err := io.ReadAll(limited)
	if err != nil {
		return nil, err
	}
	if len(data) > max {
		return nil, errValidationFailed("batch too large", nil)
	}
	return data, nil
}
