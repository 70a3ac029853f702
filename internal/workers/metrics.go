package workers

import (
	"portfolio-api/internal/shared/metrics"
)

var (
	workerReportArchiver = "report_archiver"

	metricWorkerRunTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubWorker,
			Name:      "run_total",
		},
		[]string{"worker", metrics.FieldErrorCode},
	)
)
