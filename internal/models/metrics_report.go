package models

import "time"

// MetricsReport is the payload served by the admin metrics endpoint and written to the
// report archive. It flattens a MetricsSnapshot and adds per-path and per-client breakdowns
// computed over the snapshot's LastN window.
type MetricsReport struct {
	ReportID  string    `json:"reportId,omitempty"`
	Success   bool      `json:"success"`
	Timestamp time.Time `json:"timestamp"`

	MetricsSnapshot

	RequestsByPath      map[string]int64 `json:"requestsByPath"`
	RequestsByUserAgent map[string]int64 `json:"requestsByUserAgent"`
}
