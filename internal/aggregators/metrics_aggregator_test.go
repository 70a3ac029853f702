package aggregators

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"portfolio-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMetric(durationMs int64, status int) models.RequestMetric {
	return models.RequestMetric{
		Timestamp:  time.Date(2026, 10, 15, 18, 3, 0, 0, time.UTC),
		Method:     http.MethodGet,
		URL:        "/api/health",
		Status:     status,
		DurationMs: durationMs,
		UserAgent:  "curl/8.4.0",
	}
}

func TestMetricsAggregator_Snapshot_Empty(t *testing.T) {
	t.Parallel()

	aggregator := NewMetricsAggregator(DefaultHistoryCapacity)
	snapshot := aggregator.Snapshot()

	assert.Equal(t, int64(0), snapshot.TotalRequests)
	assert.Equal(t, int64(0), snapshot.ErrorRequests)
	assert.Equal(t, int64(0), snapshot.AvgDurationMs)
	assert.Equal(t, int64(0), snapshot.P95DurationMs)
	assert.Equal(t, int64(0), snapshot.P50DurationMs)
	assert.Equal(t, 0, snapshot.HistorySize)
	assert.Equal(t, DefaultHistoryCapacity, snapshot.Capacity)
	assert.Empty(t, snapshot.LastN)
}

func TestMetricsAggregator_TenRequests(t *testing.T) {
	t.Parallel()

	aggregator := NewMetricsAggregator(DefaultHistoryCapacity)
	for d := int64(10); d <= 100; d += 10 {
		aggregator.Record(newMetric(d, http.StatusOK))
	}

	snapshot := aggregator.Snapshot()
	assert.Equal(t, int64(10), snapshot.TotalRequests)
	assert.Equal(t, int64(0), snapshot.ErrorRequests)
	assert.Equal(t, int64(55), snapshot.AvgDurationMs)
	// floor(10*0.95)-1 = 8 -> 90
	assert.Equal(t, int64(90), snapshot.P95DurationMs)
	assert.Equal(t, int64(50), snapshot.P50DurationMs)
	assert.Len(t, snapshot.LastN, 10)
	assert.Equal(t, 10, snapshot.HistorySize)
}

func TestMetricsAggregator_SingleRequest(t *testing.T) {
	t.Parallel()

	aggregator := NewMetricsAggregator(DefaultHistoryCapacity)
	aggregator.Record(newMetric(100, http.StatusOK))

	snapshot := aggregator.Snapshot()
	assert.Equal(t, int64(100), snapshot.AvgDurationMs)
	assert.Equal(t, int64(100), snapshot.P95DurationMs)
	assert.Equal(t, int64(100), snapshot.P50DurationMs)
}

func TestMetricsAggregator_ErrorRequests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		statuses []int
		expected int64
	}{
		{name: "single 500", statuses: []int{500}, expected: 1},
		{name: "boundary 399 and 400", statuses: []int{399, 400}, expected: 1},
		{name: "mixed", statuses: []int{200, 201, 301, 404, 429, 502, 503}, expected: 4},
		{name: "no errors", statuses: []int{200, 204}, expected: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			aggregator := NewMetricsAggregator(DefaultHistoryCapacity)
			for _, status := range tt.statuses {
				aggregator.Record(newMetric(5, status))
			}

			snapshot := aggregator.Snapshot()
			assert.Equal(t, tt.expected, snapshot.ErrorRequests)
			assert.Equal(t, int64(len(tt.statuses)), snapshot.TotalRequests)
		})
	}
}

func TestMetricsAggregator_AvgRoundsHalfUp(t *testing.T) {
	t.Parallel()

	aggregator := NewMetricsAggregator(DefaultHistoryCapacity)
	aggregator.Record(newMetric(1, http.StatusOK))
	aggregator.Record(newMetric(2, http.StatusOK))

	assert.Equal(t, int64(2), aggregator.Snapshot().AvgDurationMs)
}

func TestMetricsAggregator_HistoryLengthTracksTotal(t *testing.T) {
	t.Parallel()

	const capacity = 50
	aggregator := NewMetricsAggregator(capacity)

	for i := 1; i <= 3*capacity; i++ {
		aggregator.Record(newMetric(int64(i), http.StatusOK))

		snapshot := aggregator.Snapshot()
		require.Equal(t, int64(i), snapshot.TotalRequests)
		require.Len(t, snapshot.LastN, min(i, capacity))
		require.Equal(t, min(i, capacity), snapshot.HistorySize)
	}
}

func TestMetricsAggregator_FIFOEviction(t *testing.T) {
	t.Parallel()

	aggregator := NewMetricsAggregator(DefaultHistoryCapacity)
	const total = 1500
	for i := 0; i < total; i++ {
		m := newMetric(int64(i), http.StatusOK)
		m.URL = fmt.Sprintf("/req/%d", i)
		aggregator.Record(m)
	}

	snapshot := aggregator.Snapshot()
	require.Len(t, snapshot.LastN, DefaultHistoryCapacity)
	assert.Equal(t, int64(total), snapshot.TotalRequests)
	for i, m := range snapshot.LastN {
		assert.Equal(t, fmt.Sprintf("/req/%d", total-DefaultHistoryCapacity+i), m.URL)
	}
}

// The mean covers every request ever recorded while p95 only sees the retained window.
func TestMetricsAggregator_LifetimeMeanVersusWindowPercentile(t *testing.T) {
	t.Parallel()

	aggregator := NewMetricsAggregator(2)
	aggregator.Record(newMetric(1000, http.StatusOK))
	aggregator.Record(newMetric(10, http.StatusOK))
	aggregator.Record(newMetric(10, http.StatusOK))

	snapshot := aggregator.Snapshot()
	assert.Equal(t, int64(3), snapshot.TotalRequests)
	assert.Equal(t, int64(340), snapshot.AvgDurationMs) // round(1020/3)
	assert.Equal(t, int64(10), snapshot.P95DurationMs)
	assert.Len(t, snapshot.LastN, 2)
}

func TestMetricsAggregator_P95IsNearestRankOverUnsortedInput(t *testing.T) {
	t.Parallel()

	aggregator := NewMetricsAggregator(DefaultHistoryCapacity)
	// 20 samples, recorded in descending order: floor(20*0.95)-1 = 18 -> 19th smallest
	for d := int64(20); d >= 1; d-- {
		aggregator.Record(newMetric(d, http.StatusOK))
	}

	snapshot := aggregator.Snapshot()
	assert.Equal(t, int64(19), snapshot.P95DurationMs)
	assert.Equal(t, int64(10), snapshot.P50DurationMs)
	assert.Equal(t, int64(20), snapshot.LastN[0].DurationMs, "LastN keeps insertion order")
}

func TestMetricsAggregator_SnapshotIsDefensiveCopy(t *testing.T) {
	t.Parallel()

	aggregator := NewMetricsAggregator(DefaultHistoryCapacity)
	aggregator.Record(newMetric(10, http.StatusOK))

	first := aggregator.Snapshot()
	first.LastN[0].URL = "/mutated"
	first.LastN[0].DurationMs = 9999

	second := aggregator.Snapshot()
	assert.Equal(t, "/api/health", second.LastN[0].URL)
	assert.Equal(t, int64(10), second.LastN[0].DurationMs)
}

func TestMetricsAggregator_SnapshotIsIdempotent(t *testing.T) {
	t.Parallel()

	aggregator := NewMetricsAggregator(DefaultHistoryCapacity)
	aggregator.Record(newMetric(10, http.StatusOK))
	aggregator.Record(newMetric(30, http.StatusNotFound))

	assert.Equal(t, aggregator.Snapshot(), aggregator.Snapshot())
}

func TestNewMetricsAggregator_NonPositiveCapacityUsesDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultHistoryCapacity, NewMetricsAggregator(0).Snapshot().Capacity)
	assert.Equal(t, DefaultHistoryCapacity, NewMetricsAggregator(-5).Snapshot().Capacity)
}

func TestMetricsAggregator_ConcurrentRecordAndSnapshot(t *testing.T) {
	t.Parallel()

	aggregator := NewMetricsAggregator(DefaultHistoryCapacity)

	const workers = 20
	const perWorker = 100

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				status := http.StatusOK
				if i%10 == 0 {
					status = http.StatusInternalServerError
				}
				aggregator.Record(newMetric(int64(i), status))
				if i%25 == 0 {
					_ = aggregator.Snapshot()
				}
			}
		}(w)
	}
	wg.Wait()

	snapshot := aggregator.Snapshot()
	assert.Equal(t, int64(workers*perWorker), snapshot.TotalRequests)
	assert.Equal(t, int64(workers*perWorker/10), snapshot.ErrorRequests)
	assert.Len(t, snapshot.LastN, DefaultHistoryCapacity)
}
