package reporters

import (
	"fmt"

	"portfolio-api/internal/shared/svcerrors"
)

const (
	codeInternalReportStoreFailed    = "RPT_9000"
	codeInternalReportEncodingFailed = "RPT_9001"
)

// errInternalReportStoreFailed returns an error when archiving a report fails.
func errInternalReportStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportStoreFailed, fmt.Errorf("reportStoreFailed: %w", cause))
}

// ErrInternalReportEncodingFailed returns an error when a report cannot be serialized for a response.
func ErrInternalReportEncodingFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportEncodingFailed, fmt.Errorf("reportEncodingFailed: %w", cause))
}
