package models

import (
	"fmt"
	"time"
)

// ArchivePartition selects how archived metrics reports are grouped into directories.
type ArchivePartition string

const (
	PartitionHour ArchivePartition = "hour"
	PartitionDay  ArchivePartition = "day"
)

func NewArchivePartitionFromString(s string) (ArchivePartition, error) {
	switch p := ArchivePartition(s); p {
	case PartitionHour, PartitionDay:
		return p, nil
	default:
		return "", fmt.Errorf("invalid archive partition: %q", s)
	}
}

func (p ArchivePartition) Duration() time.Duration {
	switch p {
	case PartitionHour:
		return time.Hour
	case PartitionDay:
		return 24 * time.Hour
	default:
		panic(fmt.Sprintf("invalid ArchivePartition: %q", p))
	}
}

// Key returns the UTC directory name for t, e.g. "20261015T18Z" for hour and "20261015" for day.
func (p ArchivePartition) Key(t time.Time) string {
	utc := t.UTC().Truncate(p.Duration())

	if p == PartitionHour {
		return utc.Format("20060102T15Z")
	}
	return utc.Format("20060102")
}
