package reporters_test

import (
	"context"
	"testing"
	"time"

	aggregatormocks "portfolio-api/internal/aggregators/mocks"
	"portfolio-api/internal/models"
	"portfolio-api/internal/reporters"
	reportermocks "portfolio-api/internal/reporters/mocks"
	storemocks "portfolio-api/internal/stores/mocks"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestReportingService_BuildReport_DelegatesToSummarizer(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	aggregator := aggregatormocks.NewMockMetricsAggregator(ctrl)
	summarizer := reportermocks.NewMockSnapshotSummarizer(ctrl)
	service := reporters.NewReportingService(aggregator, summarizer, storemocks.NewMockMetricsReportStore(ctrl))

	snapshot := models.MetricsSnapshot{TotalRequests: 3, Capacity: 1000}
	expected := &models.MetricsReport{Success: true, Timestamp: time.Now().UTC()}

	before := time.Now()
	aggregator.EXPECT().Snapshot().Return(snapshot)
	summarizer.EXPECT().
		Summarize(snapshot, gomock.Any()).
		DoAndReturn(func(s models.MetricsSnapshot, reportedAt time.Time) *models.MetricsReport {
			assert.False(t, reportedAt.Before(before), "report time should come from the clock at build time")
			return expected
		})

	assert.Same(t, expected, service.BuildReport(context.Background()))
}
