package svcerrors

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	categoryInvalidArgument  = "invalid_argument"
	categoryNotFound         = "not_found"
	categoryMethodNotAllowed = "method_not_allowed"
	categoryInternal         = "internal"
)

const (
	errorCodeRouteNotFound     = "SYS_4040"
	errorCodeMethodNotAllowed  = "SYS_4050"
	errorCodeInternalPanic     = "SYS_9000"
	errorCodeInternalUndefined = "SYS_9001"
)

// ServiceError represents a service-level error with category, code, message, and cause.
// It implements the error interface and supports error wrapping.
type ServiceError struct {
	Category       string // invalid_argument, not_found, method_not_allowed or internal
	Code           string // service-owned stable code (e.g. RPT_9000)
	Message        string // client-safe, human-readable
	Cause          error  // wrapped underlying error
	HttpStatusCode int
}

// NewInvalidArgumentError creates a new ServiceError with category invalid_argument.
func NewInvalidArgumentError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category:       categoryInvalidArgument,
		Code:           code,
		Message:        message,
		Cause:          cause,
		HttpStatusCode: http.StatusBadRequest,
	}
}

// NewRouteNotFoundError is returned for requests that match no route.
func NewRouteNotFoundError(method, path string) *ServiceError {
	return &ServiceError{
		Category:       categoryNotFound,
		Code:           errorCodeRouteNotFound,
		Message:        fmt.Sprintf("no route for %s %s", method, path),
		HttpStatusCode: http.StatusNotFound,
	}
}

// NewMethodNotAllowedError is returned when the path exists but not for this method.
func NewMethodNotAllowedError(method, path string) *ServiceError {
	return &ServiceError{
		Category:       categoryMethodNotAllowed,
		Code:           errorCodeMethodNotAllowed,
		Message:        fmt.Sprintf("method %s not allowed on %s", method, path),
		HttpStatusCode: http.StatusMethodNotAllowed,
	}
}

// NewInternalError creates a new ServiceError with category internal.
func NewInternalError(code string, cause error) *ServiceError {
	return &ServiceError{
		Category:       categoryInternal,
		Code:           code,
		Message:        "internal server error",
		Cause:          cause,
		HttpStatusCode: http.StatusInternalServerError,
	}
}

// NewInternalErrorUndefined wraps an error that carries no ServiceError of its own.
func NewInternalErrorUndefined(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalUndefined, cause)
}

func NewInternalErrorPanic(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalPanic, cause)
}

// AsServiceError extracts a ServiceError from the error chain.
func AsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error to support errors.Is and errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Cause
}

func (e *ServiceError) IsInternalError() bool {
	return e.Category == categoryInternal
}
