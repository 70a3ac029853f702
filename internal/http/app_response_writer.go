package http

import (
	"net/http"

	"portfolio-api/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5/middleware"
)

// appResponseWriter is a wrapper around the http.ResponseWriter that stores app details for middleware access
type appResponseWriter struct {
	middleware.WrapResponseWriter
	svcError *svcerrors.ServiceError
}

func newAppResponseWriter(w http.ResponseWriter, protoMajor int) *appResponseWriter {
	return &appResponseWriter{
		WrapResponseWriter: middleware.NewWrapResponseWriter(w, protoMajor),
	}
}

func (w *appResponseWriter) SetServiceError(svcError *svcerrors.ServiceError) {
	w.svcError = svcError
}

func (w *appResponseWriter) ErrorCode() string {
	if w.svcError != nil {
		return w.svcError.Code
	}
	return ""
}

// responseStatus reports the status written so far.
// A handler that never called WriteHeader is answered with 200 by net/http.
func responseStatus(w http.ResponseWriter) int {
	status := 0
	if appWriter, ok := w.(*appResponseWriter); ok {
		status = appWriter.Status()
	}
	if status == 0 {
		status = http.StatusOK
	}
	return status
}

// responseErrorCode returns the service error code attached to the response, if any.
func responseErrorCode(w http.ResponseWriter) string {
	if appWriter, ok := w.(*appResponseWriter); ok {
		return appWriter.ErrorCode()
	}
	return ""
}
