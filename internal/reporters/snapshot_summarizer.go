package reporters

import (
	"strings"
	"time"

	"portfolio-api/internal/models"

	"github.com/mileusna/useragent"
)

const unknownUserAgent = "unknown"

//go:generate mockgen -source=snapshot_summarizer.go -destination=./mocks/snapshot_summarizer_mock.go -package=mocks
type SnapshotSummarizer interface {
	// Summarize wraps snapshot in a report and breaks its LastN window down by path and client.
	Summarize(snapshot models.MetricsSnapshot, reportedAt time.Time) *models.MetricsReport
}

type snapshotSummarizer struct{}

func NewSnapshotSummarizer() SnapshotSummarizer {
	return &snapshotSummarizer{}
}

func (s *snapshotSummarizer) Summarize(snapshot models.MetricsSnapshot, reportedAt time.Time) *models.MetricsReport {
	pathCounts := make(map[string]int64)
	uaCounts := make(map[string]int64)

	for _, metric := range snapshot.LastN {
		// METHOD + " " + path
		pathCounts[strings.ToUpper(metric.Method)+" "+metric.URL]++
		uaCounts[s.normalizeUserAgent(metric.UserAgent)]++
	}

	return &models.MetricsReport{
		Success:             true,
		Timestamp:           reportedAt.UTC(),
		MetricsSnapshot:     snapshot,
		RequestsByPath:      pathCounts,
		RequestsByUserAgent: uaCounts,
	}
}

// normalizeUserAgent parses user agent to extract family, or returns original if parsing fails.
func (s *snapshotSummarizer) normalizeUserAgent(ua string) string {
	ua = strings.TrimSpace(ua)
	if ua == "" {
		return unknownUserAgent
	}

	parsed := useragent.Parse(ua)
	if parsed.Name != "" {
		return parsed.Name
	}
	return ua
}
