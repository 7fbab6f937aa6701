package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	internalhttp "delivery-analytics/internal/http"
	"delivery-analytics/internal/ingestors"
	"delivery-analytics/internal/models"
	"delivery-analytics/internal/orders"
	"delivery-analytics/internal/queries"
	"delivery-analytics/internal/shared/configs"
	"delivery-analytics/internal/shared/filestorages"
	"delivery-analytics/internal/shared/loggers"
	"delivery-analytics/internal/stores"
	"delivery-analytics/internal/streaming"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	eventConsumer    streaming.EventConsumer
	backgroundCtx    context.Context
	backgroundCancel context.CancelFunc
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "delivery-analytics").
		Logger()

	// Initialize blob store
	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Initialize stores
	rawBatchStore := stores.NewRawBatchStore(fileStorage)
	eventLogStore := stores.NewEventLogStore(fileStorage)
	bucketStore := stores.NewBucketStore(fileStorage)

	// Initialize streaming aggregation: one engine per grouping x granularity
	engines, err := buildEngines(config.Aggregation, bucketStore)
	if err != nil {
		return nil, err
	}
	eventQueue := streaming.NewPartitionedQueue[*models.Event](config.Stream.Partitions, config.Stream.Buffer)
	consumerLogger := appLogger.With().Str(loggers.FieldComponent, "consumer").Logger()
	eventConsumer := streaming.NewEventConsumer(eventQueue, engines, consumerLogger)

	// Initialize ingestion service
	recordParser := ingestors.NewRecordParser()
	eventProducer := streaming.NewEventProducer(eventQueue)
	ingestionService := ingestors.NewIngestionService(recordParser, rawBatchStore, eventLogStore, eventProducer)

	// Initialize query service
	reconstructor := orders.NewReconstructor()
	summarizer := orders.NewSummarizer()
	queryService := queries.NewQueryService(eventLogStore, bucketStore, reconstructor, summarizer)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(ingestionService, queryService, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:        config,
		appLogger:     appLogger,
		server:        server,
		eventConsumer: eventConsumer,
	}, nil
}

func buildEngines(cfg configs.AggregationConfig, bucketStore stores.BucketStore) ([]streaming.Engine, error) {
	tolerance := time.Duration(cfg.LatenessToleranceMinutes) * time.Minute
	maxOpenAge := time.Duration(cfg.MaxOpenBucketMinutes) * time.Minute

	var engines []streaming.Engine
	for _, groupingStr := range cfg.Groupings {
		grouping, err := models.NewGroupingFromString(groupingStr)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize grouping: %w", err)
		}
		for _, granularityStr := range cfg.Granularities {
			granularity, err := models.NewGranularityFromString(granularityStr)
			if err != nil {
				return nil, fmt.Errorf("failed to initialize granularity: %w", err)
			}
			engines = append(engines, streaming.NewEngine(streaming.EngineConfig{
				Grouping:          grouping,
				Granularity:       granularity,
				LatenessTolerance: tolerance,
				MaxOpenAge:        maxOpenAge,
			}, streaming.NewHLLEstimator, bucketStore))
		}
	}
	return engines, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting delivery-analytics service on port %d (log_level=%s, file_storage_root_dir=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.FileStorage.RootDir)

	// start background consumers
	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.eventConsumer.Start(app.backgroundCtx)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Cancel background consumers
	if app.backgroundCancel != nil {
		app.backgroundCancel()
		app.appLogger.Info().Msg("Background consumers cancelled")
	}

	// 3) Wait for background consumers to finish
	app.eventConsumer.Stop()
	app.appLogger.Info().Msg("Background consumers stopped")

	return nil
}
