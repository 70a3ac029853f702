package http

import (
	"encoding/json"
	"net/http"

	"portfolio-api/internal/reporters"
)

type metricsReportHandler struct {
	reportingService reporters.ReportingService
	marshal          func(v any) ([]byte, error)
}

func NewMetricsReportHandler(reportingService reporters.ReportingService) AppHttpHandler {
	return &metricsReportHandler{
		reportingService: reportingService,
		marshal:          json.Marshal,
	}
}

// Handle processes GET /api/admin/metrics requests.
// The route is expected to sit behind the gateway that enforces admin access.
func (h *metricsReportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	report := h.reportingService.BuildReport(r.Context())

	body, err := h.marshal(report)
	if err != nil {
		return reporters.ErrInternalReportEncodingFailed(err)
	}

	writeJSON(w, http.StatusOK, body)
	return nil
}
