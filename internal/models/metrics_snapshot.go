package models

// MetricsSnapshot is a point-in-time copy of the request metrics aggregator.
//
// TotalRequests, ErrorRequests and AvgDurationMs cover every request recorded since the
// process started. P95DurationMs, P50DurationMs and LastN only cover the bounded history
// window, so on a long-running process the mean and the percentiles describe different
// populations.
//
// Example JSON:
//
//	{
//	  "totalRequests": 10,
//	  "errorRequests": 1,
//	  "avgDurationMs": 55,
//	  "p95DurationMs": 90,
//	  "p50DurationMs": 50,
//	  "historySize": 10,
//	  "capacity": 1000,
//	  "lastN": [
//	    {"timestamp": "2026-10-15T18:03:00Z", "method": "GET", "url": "/api/health", "status": 200, "durationMs": 10}
//	  ]
//	}
type MetricsSnapshot struct {
	TotalRequests int64           `json:"totalRequests"`
	ErrorRequests int64           `json:"errorRequests"`
	AvgDurationMs int64           `json:"avgDurationMs"`
	P95DurationMs int64           `json:"p95DurationMs"`
	P50DurationMs int64           `json:"p50DurationMs"`
	HistorySize   int             `json:"historySize"`
	Capacity      int             `json:"capacity"`
	LastN         []RequestMetric `json:"lastN"`
}
