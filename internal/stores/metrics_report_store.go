package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"portfolio-api/internal/models"
	"portfolio-api/internal/shared/filestorages"
)

var (
	ErrMetricsReportAlreadyExist = errors.New("metrics report already exists")
	ErrMetricsReportNotFound     = errors.New("metrics report not found")
	ErrMetricsReportIDMissing    = errors.New("metrics report id is missing")
)

// MetricsReportStore archives metrics reports as JSON files grouped by time partition:
//
//	metrics-reports/<partition key>/<report id>.json
//
// Reports are immutable once written. Put never overwrites, so replaying an archive
// with the same report id fails with ErrMetricsReportAlreadyExist.
//
//go:generate mockgen -source=metrics_report_store.go -destination=./mocks/metrics_report_store_mock.go -package=mocks
type MetricsReportStore interface {
	// Put writes report and returns the storage key it was written to.
	Put(ctx context.Context, report *models.MetricsReport) (string, error)
	Get(ctx context.Context, reportedAt time.Time, reportID string) (*models.MetricsReport, error)
}

type metricsReportStore struct {
	fileStorage filestorages.FileStorage
	partition   models.ArchivePartition
	dir         string
}

func NewMetricsReportStore(fileStorage filestorages.FileStorage, partition models.ArchivePartition) MetricsReportStore {
	return &metricsReportStore{fileStorage: fileStorage, partition: partition, dir: "metrics-reports"}
}

func (s *metricsReportStore) Put(ctx context.Context, report *models.MetricsReport) (string, error) {
	if report.ReportID == "" {
		return "", ErrMetricsReportIDMissing
	}

	jsonData, err := json.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("failed to marshal metrics report: %w", err)
	}

	key := s.getKey(report.Timestamp, report.ReportID)
	_, err = s.fileStorage.Put(ctx, key, bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return "", ErrMetricsReportAlreadyExist
		}
		return "", fmt.Errorf("failed to put metrics report: %w", err)
	}
	return key, nil
}

func (s *metricsReportStore) Get(ctx context.Context, reportedAt time.Time, reportID string) (*models.MetricsReport, error) {
	if reportID == "" {
		return nil, ErrMetricsReportIDMissing
	}

	readCloser, err := s.fileStorage.Get(ctx, s.getKey(reportedAt, reportID))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrMetricsReportNotFound
		}
		return nil, fmt.Errorf("failed to get metrics report: %w", err)
	}
	defer readCloser.Close()

	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read metrics report: %w", err)
	}

	var report models.MetricsReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal metrics report: %w", err)
	}
	return &report, nil
}

func (s *metricsReportStore) getKey(reportedAt time.Time, reportID string) string {
	return fmt.Sprintf("%s/%s/%s.json", s.dir, s.partition.Key(reportedAt), reportID)
}
