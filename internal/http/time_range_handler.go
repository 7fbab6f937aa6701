package http

import (
	"net/http"

	"delivery-analytics/internal/queries"

	"github.com/go-chi/chi/v5"
)

type timeRangeHandler struct {
	queryService queries.QueryService
}

func NewTimeRangeHandler(queryService queries.QueryService) AppHttpHandler {
	return &timeRangeHandler{queryService: queryService}
}

// Handle processes GET /locations/{location}/time-range requests.
func (h *timeRangeHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	location := chi.URLParam(r, "location")
	if location == "" {
		return errInvalidQueryParam("location is required", nil)
	}

	start, err := timeParam(r, "start")
	if err != nil {
		return err
	}
	end, err := timeParam(r, "end")
	if err != nil {
		return err
	}
	if end.Before(start) {
		return errInvalidQueryParam("end must not be before start", nil)
	}
	limit, err := limitParam(r)
	if err != nil {
		return err
	}

	result, err := h.queryService.GetOrdersInRange(r.Context(), queries.RangeQuery{
		Location: location,
		Start:    start,
		End:      end,
		Limit:    limit,
	})
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, result)
}
