package ingestors

import (
	"fmt"

	"delivery-analytics/internal/shared/svcerrors"
)

// IngestionService errors. codeMalformedEvent labels rejected records on
// metrics and logs; it is never returned to the caller since a malformed
// record only skips that record.
const (
	codeValidationFailed      = "ING_1000"
	codeBatchAlreadyProcessed = "ING_1001"
	codeMalformedEvent        = "EVT_1000"

	codeInternalRawBatchStoreFailed = "ING_9000"
	codeInternalEventLogStoreFailed = "ING_9001"
	codeInternalEventProducerFailed = "ING_9002"
)

// errValidationFailed returns an error for batch-level validation failures.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errBatchAlreadyProcessed returns an error when a batch has already been ingested.
func errBatchAlreadyProcessed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeBatchAlreadyProcessed, "event batch already processed", cause)
}

func errInternalRawBatchStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRawBatchStoreFailed, fmt.Errorf("rawBatchStoreFailed: %w", cause))
}

func errInternalEventLogStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalEventLogStoreFailed, fmt.Errorf("eventLogStoreFailed: %w", cause))
}

func errInternalEventProducerFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalEventProducerFailed, fmt.Errorf("eventProducerFailed: %w", cause))
}
