package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"delivery-analytics/internal/shared/svcerrors"
)

const (
	codeInvalidQueryParam = "QRY_1000"

	defaultRangeLimit = 100
	maxRangeLimit     = 500
)

func errInvalidQueryParam(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidQueryParam, msg, cause)
}

// timeParam parses a required start/end query parameter. RFC3339 and
// zone-less ISO-8601 are accepted; zone-less values are taken as UTC.
func timeParam(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, errInvalidQueryParam(fmt.Sprintf("missing %s parameter", name), nil)
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02T15:04:05", raw); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, errInvalidQueryParam(fmt.Sprintf("invalid %s datetime format: %s", name, raw), nil)
}

func limitParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultRangeLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 || limit > maxRangeLimit {
		return 0, errInvalidQueryParam(fmt.Sprintf("limit must be an integer between 1 and %d", maxRangeLimit), err)
	}
	return limit, nil
}

func boolParam(r *http.Request, name string) bool {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false
	}
	return v
}
