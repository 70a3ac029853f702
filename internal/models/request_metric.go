package models

import "time"

// RequestMetric describes one completed HTTP request. It is built once the response
// has been written and is never mutated afterwards.
type RequestMetric struct {
	Timestamp  time.Time `json:"timestamp"`
	Method     string    `json:"method"`
	URL        string    `json:"url"`
	Status     int       `json:"status"`
	DurationMs int64     `json:"durationMs"`
	UserAgent  string    `json:"userAgent,omitempty"`
}

// IsError reports whether the request ended with a client or server error status.
func (m RequestMetric) IsError() bool {
	return m.Status >= 400
}
