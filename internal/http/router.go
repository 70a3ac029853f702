package http

import (
	"net/http"
	"time"

	"portfolio-api/internal/aggregators"
	"portfolio-api/internal/reporters"
	"portfolio-api/internal/shared/loggers"
	"portfolio-api/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(
	aggregator aggregators.MetricsAggregator,
	reportingService reporters.ReportingService,
	startedAt time.Time,
	httpLogger loggers.Logger,
) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger, aggregator)

	// Initialize handlers
	healthHandler := NewHealthHandler(startedAt)
	metricsReportHandler := NewMetricsReportHandler(reportingService)

	// Routes
	router.Get("/api/health", errorHandlingAdapter(healthHandler))
	router.Get("/api/admin/metrics", errorHandlingAdapter(metricsReportHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	router.NotFound(errorHandlingAdapter(routeNotFoundHandler{}))
	router.MethodNotAllowed(errorHandlingAdapter(methodNotAllowedHandler{}))

	return router
}
