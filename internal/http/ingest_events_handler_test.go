package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"delivery-analytics/internal/ingestors"
	"delivery-analytics/internal/ingestors/mocks"
	"delivery-analytics/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIngestEventsHandler_Accepted(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	ingestionService := mocks.NewMockIngestionService(ctrl)

	body := `[{"order_id":"ord-1","event_type":"order_created","timestamp":"2026-01-15T13:00:00Z"}]`
	ingestionService.EXPECT().
		IngestBatch(gomock.Any(), "batch-123", "application/json", gomock.Any()).
		DoAndReturn(func(_ any, _ string, _ string, r io.Reader) (*ingestors.IngestResult, error) {
			payload, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, body, string(payload))
			return &ingestors.IngestResult{BatchID: "batch-123", Accepted: 1}, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(body))
	req.Header.Set(headerIdempotencyKey, "batch-123")
	req.Header.Set(headerContentType, "application/json")
	rr := httptest.NewRecorder()

	errorHandlingAdapter(NewIngestEventsHandler(ingestionService)).ServeHTTP(rr, req)

	require.Equal(t, http.StatusAccepted, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var result ingestors.IngestResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, "batch-123", result.BatchID)
	assert.Equal(t, 1, result.Accepted)
	assert.Equal(t, 0, result.Rejected)
}

func TestIngestEventsHandler_ServiceErrorPassedThrough(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	ingestionService := mocks.NewMockIngestionService(ctrl)

	ingestionService.EXPECT().
		IngestBatch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, svcerrors.NewResourceConflictError("ING_1001", "batch already ingested", nil))

	req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewReader([]byte(`[]`)))
	rr := httptest.NewRecorder()

	errorHandlingAdapter(NewIngestEventsHandler(ingestionService)).ServeHTTP(rr, req)

	require.Equal(t, http.StatusConflict, rr.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ING_1001", resp.ErrorCode)
}

func TestIngestEventsHandler_InternalError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	ingestionService := mocks.NewMockIngestionService(ctrl)

	ingestionService.EXPECT().
		IngestBatch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, svcerrors.NewInternalError("ING_9001", errors.New("disk full")))

	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(`[{"order_id":"ord-1"}]`))
	rr := httptest.NewRecorder()

	errorHandlingAdapter(NewIngestEventsHandler(ingestionService)).ServeHTTP(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ING_9001", resp.ErrorCode)
}
