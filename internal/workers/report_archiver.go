package workers

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"portfolio-api/internal/reporters"
	"portfolio-api/internal/shared/loggers"
	"portfolio-api/internal/shared/metrics"
	"portfolio-api/internal/shared/svcerrors"
	"portfolio-api/internal/shared/ulid"
)

//go:generate mockgen -source=report_archiver.go -destination=./mocks/report_archiver_mock.go -package=mocks
type ReportArchiver interface {
	Start(ctx context.Context)
	Stop()
}

type reportArchiver struct {
	reportingService reporters.ReportingService
	interval         time.Duration

	wg sync.WaitGroup

	startOnce sync.Once
	stopOnce  sync.Once
	stopCh    chan struct{}

	logger loggers.Logger
}

func NewReportArchiver(reportingService reporters.ReportingService, interval time.Duration, logger loggers.Logger) ReportArchiver {
	return &reportArchiver{
		reportingService: reportingService,
		interval:         interval,
		stopCh:           make(chan struct{}),
		logger:           logger.With().Str(loggers.FieldWorker, workerReportArchiver).Logger(),
	}
}

// Start spawns a single worker goroutine that archives a report on every tick.
// Calling Start more than once has no effect.
func (archiver *reportArchiver) Start(ctx context.Context) {
	archiver.startOnce.Do(func() {
		archiver.wg.Add(1)
		go func() {
			defer archiver.wg.Done()

			archiver.run(ctx)
		}()
	})
}

// Stop signals the worker and waits for an in-flight run to finish.
func (archiver *reportArchiver) Stop() {
	archiver.stopOnce.Do(func() { close(archiver.stopCh) })
	archiver.wg.Wait()
}

func (archiver *reportArchiver) run(ctx context.Context) {
	ticker := time.NewTicker(archiver.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-archiver.stopCh:
			return
		case <-ticker.C:
			archiver.archiveOnce(ctx)
		}
	}
}

func (archiver *reportArchiver) archiveOnce(ctx context.Context) {
	runLogger := archiver.logger.With().Str(loggers.FieldRequestID, ulid.NewULID()).Logger()
	ctx = runLogger.WithContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			runLogger.Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg("report archiver panic recovered")

			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}

			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricWorkerRunTotal.WithLabelValues(workerReportArchiver, svcErr.Code).Inc()
		}
	}()

	result, svcErr := archiver.reportingService.ArchiveReport(ctx)
	if svcErr != nil {
		runLogger.Error().
			Err(svcErr).
			Str(loggers.FieldErrorCode, svcErr.Code).
			Msg("failed to archive metrics report")
		metricWorkerRunTotal.WithLabelValues(workerReportArchiver, svcErr.Code).Inc()
		return
	}

	runLogger.Info().
		Str(loggers.FieldReportID, result.ReportID).
		Str(loggers.FieldReportKey, result.Key).
		Msg("metrics report archived")
	metricWorkerRunTotal.WithLabelValues(workerReportArchiver, metrics.ValueNoError).Inc()
}
