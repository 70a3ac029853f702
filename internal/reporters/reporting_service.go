package reporters

import (
	"context"
	"time"

	"portfolio-api/internal/aggregators"
	"portfolio-api/internal/models"
	"portfolio-api/internal/shared/loggers"
	"portfolio-api/internal/shared/metrics"
	"portfolio-api/internal/shared/svcerrors"
	"portfolio-api/internal/shared/ulid"
	"portfolio-api/internal/stores"
)

// ArchiveResult identifies an archived metrics report.
type ArchiveResult struct {
	ReportID string
	Key      string
}

//go:generate mockgen -source=reporting_service.go -destination=./mocks/reporting_service_mock.go -package=mocks
type ReportingService interface {
	// BuildReport snapshots the aggregator and summarizes it into a report.
	BuildReport(ctx context.Context) *models.MetricsReport
	// ArchiveReport builds a report, assigns it a report id and writes it to the report store.
	ArchiveReport(ctx context.Context) (*ArchiveResult, *svcerrors.ServiceError)
}

type reportingService struct {
	aggregator  aggregators.MetricsAggregator
	summarizer  SnapshotSummarizer
	reportStore stores.MetricsReportStore
	now         func() time.Time
}

func NewReportingService(aggregator aggregators.MetricsAggregator, summarizer SnapshotSummarizer, reportStore stores.MetricsReportStore) ReportingService {
	return &reportingService{
		aggregator:  aggregator,
		summarizer:  summarizer,
		reportStore: reportStore,
		now:         time.Now,
	}
}

func (s *reportingService) BuildReport(ctx context.Context) *models.MetricsReport {
	snapshot := s.aggregator.Snapshot()

	loggers.Ctx(ctx).Debug().
		Int64("totalRequests", snapshot.TotalRequests).
		Int("historySize", snapshot.HistorySize).
		Msg("built metrics snapshot")

	return s.summarizer.Summarize(snapshot, s.now())
}

func (s *reportingService) ArchiveReport(ctx context.Context) (*ArchiveResult, *svcerrors.ServiceError) {
	report := s.BuildReport(ctx)
	report.ReportID = ulid.NewULID()

	key, err := s.reportStore.Put(ctx, report)
	if err != nil {
		svcErr := errInternalReportStoreFailed(err)
		metricReportArchivedTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}

	loggers.Ctx(ctx).Debug().
		Str(loggers.FieldReportID, report.ReportID).
		Str(loggers.FieldReportKey, key).
		Msg("archived metrics report")

	metricReportArchivedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return &ArchiveResult{ReportID: report.ReportID, Key: key}, nil
}
