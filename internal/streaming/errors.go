package streaming

import (
	"fmt"

	"delivery-analytics/internal/shared/svcerrors"
)

const (
	codeInternalBucketStoreFailed = "AGG_9000"
)

// errInternalBucketStoreFailed returns an error when a bucket store operation fails.
func errInternalBucketStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalBucketStoreFailed, fmt.Errorf("bucketStoreFailed: %w", cause))
}
