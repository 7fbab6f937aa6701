package http

import (
	"net/http"

	"delivery-analytics/internal/ingestors"
)

type ingestEventsHandler struct {
	ingestionService ingestors.IngestionService
}

func NewIngestEventsHandler(ingestionService ingestors.IngestionService) AppHttpHandler {
	return &ingestEventsHandler{
		ingestionService: ingestionService,
	}
}

// Handle processes POST /events requests.
func (h *ingestEventsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	result, err := h.ingestionService.IngestBatch(r.Context(), idempotencyKey(r), contentType(r), r.Body)
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusAccepted, result)
}
