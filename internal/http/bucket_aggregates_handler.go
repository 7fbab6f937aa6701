package http

import (
	"net/http"

	"delivery-analytics/internal/models"
	"delivery-analytics/internal/queries"

	"github.com/go-chi/chi/v5"
)

type bucketAggregatesHandler struct {
	queryService queries.QueryService
}

func NewBucketAggregatesHandler(queryService queries.QueryService) AppHttpHandler {
	return &bucketAggregatesHandler{queryService: queryService}
}

// BucketAggregatesResponse wraps the matched aggregate rows.
type BucketAggregatesResponse struct {
	Grouping    models.Grouping           `json:"grouping"`
	Granularity models.Granularity        `json:"granularity"`
	Buckets     []*models.BucketAggregate `json:"buckets"`
}

// Handle processes GET /aggregates/{grouping}/{granularity} requests.
func (h *bucketAggregatesHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	grouping, err := models.NewGroupingFromString(chi.URLParam(r, "grouping"))
	if err != nil {
		return errInvalidQueryParam(err.Error(), err)
	}
	granularity, err := models.NewGranularityFromString(chi.URLParam(r, "granularity"))
	if err != nil {
		return errInvalidQueryParam(err.Error(), err)
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

	rows, err := h.queryService.GetBucketAggregates(r.Context(), queries.AggregateQuery{
		Grouping:           grouping,
		Granularity:        granularity,
		Start:              start,
		End:                end,
		IncludeProvisional: boolParam(r, "include_provisional"),
	})
	if err != nil {
		return err
	}
	if rows == nil {
		rows = []*models.BucketAggregate{}
	}

	return writeJSON(w, http.StatusOK, BucketAggregatesResponse{
		Grouping:    grouping,
		Granularity: granularity,
		Buckets:     rows,
	})
}
