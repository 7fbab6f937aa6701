package http

import (
	"net/http"

	"delivery-analytics/internal/ingestors"
	"delivery-analytics/internal/queries"
	"delivery-analytics/internal/shared/loggers"
	"delivery-analytics/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(ingestionService ingestors.IngestionService, queryService queries.QueryService, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	ingestEventsHandler := NewIngestEventsHandler(ingestionService)
	getOrderHandler := NewGetOrderHandler(queryService)
	timeRangeHandler := NewTimeRangeHandler(queryService)
	bucketAggregatesHandler := NewBucketAggregatesHandler(queryService)

	// Routes
	router.Post("/events", errorHandlingAdapter(ingestEventsHandler))
	router.Get("/orders/{orderID}", errorHandlingAdapter(getOrderHandler))
	router.Get("/locations/{location}/time-range", errorHandlingAdapter(timeRangeHandler))
	router.Get("/aggregates/{grouping}/{granularity}", errorHandlingAdapter(bucketAggregatesHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
