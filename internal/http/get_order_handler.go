package http

import (
	"net/http"

	"delivery-analytics/internal/queries"

	"github.com/go-chi/chi/v5"
)

type getOrderHandler struct {
	queryService queries.QueryService
}

func NewGetOrderHandler(queryService queries.QueryService) AppHttpHandler {
	return &getOrderHandler{queryService: queryService}
}

// Handle processes GET /orders/{orderID} requests.
func (h *getOrderHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	orderID := chi.URLParam(r, "orderID")
	if orderID == "" {
		return errInvalidQueryParam("orderID is required", nil)
	}

	state, err := h.queryService.GetOrder(r.Context(), orderID)
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, state)
}
