package aggregators

import (
	"portfolio-api/internal/shared/metrics"
)

// metricHistoryEvictedTotal counts request metrics pushed out of the bounded history window.
// Lifetime totals are unaffected by eviction; only LastN and the percentiles lose the entry.
var metricHistoryEvictedTotal = metrics.NewCounter(
	metrics.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: metrics.SubAggregation,
		Name:      "history_evicted_total",
	},
)
