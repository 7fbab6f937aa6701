package http

import (
	"net/http"
	"strings"

	"github.com/mileusna/useragent"
)

const (
	headerRequestID      = "x-request-id"
	headerContentType    = "content-type"
	headerIdempotencyKey = "idempotency-key"
)

func requestID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerRequestID))
}

func setRequestID(r *http.Request, requestID string) {
	r.Header.Set(headerRequestID, requestID)
}

func contentType(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerContentType))
}

func idempotencyKey(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerIdempotencyKey))
}

// clientFamily normalizes the caller's user agent to its product family so
// request logs can tell ingest SDKs and browsers apart without keeping the
// raw string around.
func clientFamily(r *http.Request) string {
	raw := strings.TrimSpace(r.UserAgent())
	if raw == "" {
		return ""
	}
	parsed := useragent.Parse(raw)
	if parsed.Name != "" {
		return parsed.Name
	}
	return raw
}
