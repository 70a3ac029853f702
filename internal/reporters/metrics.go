package reporters

import (
	"portfolio-api/internal/shared/metrics"
)

var (
	metricReportArchivedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReporting,
			Name:      "report_archived_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
