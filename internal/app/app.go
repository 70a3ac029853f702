package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"portfolio-api/internal/aggregators"
	internalhttp "portfolio-api/internal/http"
	"portfolio-api/internal/models"
	"portfolio-api/internal/reporters"
	"portfolio-api/internal/shared/configs"
	"portfolio-api/internal/shared/filestorages"
	"portfolio-api/internal/shared/loggers"
	"portfolio-api/internal/stores"
	"portfolio-api/internal/workers"
)

const appName = "portfolio-api"

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	// nil when the report archive is disabled
	reportArchiver   workers.ReportArchiver
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
		Str(loggers.FieldApp, appName).
		Logger()

	return newApp(config, appLogger, time.Now())
}

func newApp(config *configs.Config, appLogger loggers.Logger, startedAt time.Time) (*App, error) {
	// Initialize request metrics aggregator
	aggregator := aggregators.NewMetricsAggregator(config.Metrics.HistoryCapacity)

	// Initialize reporting service and its archive store
	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	partition := models.PartitionHour
	if config.Archive.Partition != "" {
		partition, err = models.NewArchivePartitionFromString(config.Archive.Partition)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize archive partition: %w", err)
		}
	}
	reportStore := stores.NewMetricsReportStore(fileStorage, partition)
	summarizer := reporters.NewSnapshotSummarizer()
	reportingService := reporters.NewReportingService(aggregator, summarizer, reportStore)

	var reportArchiver workers.ReportArchiver
	if config.Archive.Enabled {
		workerLogger := appLogger.With().Str(loggers.FieldComponent, "worker").Logger()
		interval := time.Duration(config.Archive.Interval) * time.Second
		reportArchiver = workers.NewReportArchiver(reportingService, interval, workerLogger)
	}

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(aggregator, reportingService, startedAt, httpLogger)

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
		config:         config,
		appLogger:      appLogger,
		server:         server,
		reportArchiver: reportArchiver,
	}, nil
}

// Handler exposes the configured router, mainly for in-process tests.
func (app *App) Handler() http.Handler {
	return app.server.Handler
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting %s on port %d (log_level=%s, history_capacity=%d, archive_enabled=%t)",
			appName,
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Metrics.HistoryCapacity,
			app.config.Archive.Enabled)

	app.startBackground()

	return app.server.ListenAndServe()
}

func (app *App) startBackground() {
	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	if app.reportArchiver != nil {
		app.reportArchiver.Start(app.backgroundCtx)
	}
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Cancel background workers
	if app.backgroundCancel != nil {
		app.backgroundCancel()
	}

	// 3) Wait for an in-flight archive run to finish
	if app.reportArchiver != nil {
		app.reportArchiver.Stop()
		app.appLogger.Info().Msg("Report archiver stopped")
	}

	return nil
}
