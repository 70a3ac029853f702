package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler_Handle(t *testing.T) {
	t.Parallel()

	startedAt := time.Date(2026, 10, 15, 18, 0, 0, 0, time.UTC)
	handler := &healthHandler{
		startedAt: startedAt,
		now:       func() time.Time { return startedAt.Add(90*time.Second + 400*time.Millisecond) },
	}

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rr := httptest.NewRecorder()

	err := handler.Handle(rr, req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, "ok", response.Status)
	assert.Equal(t, int64(90), response.UptimeSeconds)
	assert.True(t, response.Timestamp.Equal(startedAt.Add(90*time.Second+400*time.Millisecond)))
}

func TestNewHealthHandler_UsesWallClock(t *testing.T) {
	t.Parallel()

	handler := NewHealthHandler(time.Now().Add(-time.Minute))

	rr := httptest.NewRecorder()
	require.NoError(t, handler.Handle(rr, httptest.NewRequest(http.MethodGet, "/api/health", nil)))

	var response HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.GreaterOrEqual(t, response.UptimeSeconds, int64(60))
}
