package queries

import (
	"fmt"

	"delivery-analytics/internal/shared/svcerrors"
)

const (
	codeOrderNotFound = "QRY_1404"

	codeInternalEventLogStoreFailed = "QRY_9000"
	codeInternalBucketStoreFailed   = "QRY_9001"
	codeInternalReconstructFailed   = "QRY_9002"
)

func errOrderNotFound(orderID string) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeOrderNotFound, fmt.Sprintf("order %s not found", orderID))
}

func errInternalEventLogStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalEventLogStoreFailed, fmt.Errorf("eventLogStoreFailed: %w", cause))
}

func errInternalBucketStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalBucketStoreFailed, fmt.Errorf("bucketStoreFailed: %w", cause))
}

func errInternalReconstructFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReconstructFailed, fmt.Errorf("reconstructFailed: %w", cause))
}
