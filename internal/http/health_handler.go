package http

import (
	"encoding/json"
	"net/http"
	"time"

	"portfolio-api/internal/shared/svcerrors"
)

const codeInternalHealthEncodingFailed = "SYS_9002"

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
	UptimeSeconds int64     `json:"uptimeSeconds"`
}

type healthHandler struct {
	startedAt time.Time
	now       func() time.Time
}

func NewHealthHandler(startedAt time.Time) AppHttpHandler {
	return &healthHandler{
		startedAt: startedAt,
		now:       time.Now,
	}
}

// Handle processes GET /api/health requests.
func (h *healthHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	now := h.now()
	body, err := json.Marshal(HealthResponse{
		Status:        "ok",
		Timestamp:     now.UTC(),
		UptimeSeconds: int64(now.Sub(h.startedAt).Seconds()),
	})
	if err != nil {
		return svcerrors.NewInternalError(codeInternalHealthEncodingFailed, err)
	}

	writeJSON(w, http.StatusOK, body)
	return nil
}
