package aggregators

import (
	"math"
	"sort"
	"sync"

	"portfolio-api/internal/models"

	"gonum.org/v1/gonum/stat"
)

// DefaultHistoryCapacity is the number of most recent requests kept for percentiles and LastN.
const DefaultHistoryCapacity = 1000

// MetricsAggregator accumulates completed HTTP requests.
//
// Record and Snapshot are safe for concurrent use. One instance is created per process and
// passed to the HTTP layer and the reporters.
//
//go:generate mockgen -source=metrics_aggregator.go -destination=./mocks/metrics_aggregator_mock.go -package=mocks
type MetricsAggregator interface {
	// Record adds one completed request to the lifetime counters and the history window.
	Record(metric models.RequestMetric)
	// Snapshot returns summary statistics and a copy of the history window.
	Snapshot() models.MetricsSnapshot
}

type metricsAggregator struct {
	mu sync.Mutex

	totalRequests   int64
	errorRequests   int64
	totalDurationMs int64
	history         *ringBuffer[models.RequestMetric]
}

// NewMetricsAggregator creates an aggregator keeping the last capacity requests.
// A non-positive capacity falls back to DefaultHistoryCapacity.
func NewMetricsAggregator(capacity int) MetricsAggregator {
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	return &metricsAggregator{
		history: newRingBuffer[models.RequestMetric](capacity),
	}
}

func (a *metricsAggregator) Record(metric models.RequestMetric) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.totalRequests++
	a.totalDurationMs += metric.DurationMs
	if metric.IsError() {
		a.errorRequests++
	}

	if a.history.add(metric) {
		metricHistoryEvictedTotal.Inc()
	}
}

func (a *metricsAggregator) Snapshot() models.MetricsSnapshot {
	a.mu.Lock()
	snapshot := models.MetricsSnapshot{
		TotalRequests: a.totalRequests,
		ErrorRequests: a.errorRequests,
		AvgDurationMs: lifetimeMean(a.totalDurationMs, a.totalRequests),
		HistorySize:   a.history.len(),
		Capacity:      a.history.capacity(),
		LastN:         a.history.items(),
	}
	a.mu.Unlock()

	// percentiles work on the private copy, outside the lock
	durations := make([]float64, len(snapshot.LastN))
	for i, m := range snapshot.LastN {
		durations[i] = float64(m.DurationMs)
	}
	sort.Float64s(durations)

	snapshot.P95DurationMs = nearestRankP95(durations)
	snapshot.P50DurationMs = empiricalMedian(durations)

	return snapshot
}

// lifetimeMean is round(total / count), or 0 before the first request.
func lifetimeMean(totalDurationMs, count int64) int64 {
	if count == 0 {
		return 0
	}
	return int64(math.Round(float64(totalDurationMs) / float64(count)))
}

// nearestRankP95 picks sorted[max(0, floor(n*0.95)-1)] without interpolation.
// sorted must be ascending.
func nearestRankP95(sorted []float64) int64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := len(sorted)*95/100 - 1
	if idx < 0 {
		idx = 0
	}
	return int64(math.Round(sorted[idx]))
}

// empiricalMedian returns the lowest sample with at least half of the samples at or below it.
// sorted must be ascending.
func empiricalMedian(sorted []float64) int64 {
	if len(sorted) == 0 {
		return 0
	}
	return int64(math.Round(stat.Quantile(0.5, stat.Empirical, sorted, nil)))
}
