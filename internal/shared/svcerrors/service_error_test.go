package svcerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsServiceError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr *ServiceError
		wantOk  bool
	}{
		{
			name:    "nil input",
			err:     nil,
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "regular error",
			err:     errors.New("x"),
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "direct ServiceError",
			err:     NewInvalidArgumentError("RPT_1000", "validation failed", nil),
			wantErr: NewInvalidArgumentError("RPT_1000", "validation failed", nil),
			wantOk:  true,
		},
		{
			name:    "wrapped ServiceError",
			err:     fmt.Errorf("wrap: %w", NewInternalError("RPT_9000", nil)),
			wantErr: NewInternalError("RPT_9000", nil),
			wantOk:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotErr, gotOk := AsServiceError(tt.err)

			assert.Equal(t, tt.wantOk, gotOk, "AsServiceError() ok value mismatch")

			if tt.wantErr == nil {
				assert.Nil(t, gotErr, "AsServiceError() should return nil error")
			} else {
				require.NotNil(t, gotErr, "AsServiceError() should return non-nil error")
				assert.Equal(t, tt.wantErr.Category, gotErr.Category, "Category mismatch")
				assert.Equal(t, tt.wantErr.Code, gotErr.Code, "Code mismatch")
				assert.Equal(t, tt.wantErr.Message, gotErr.Message, "Message mismatch")
			}
		})
	}
}

func TestRoutingErrors(t *testing.T) {
	t.Parallel()

	notFound := NewRouteNotFoundError(http.MethodGet, "/nope")
	assert.Equal(t, "not_found", notFound.Category)
	assert.Equal(t, "SYS_4040", notFound.Code)
	assert.Equal(t, http.StatusNotFound, notFound.HttpStatusCode)
	assert.Equal(t, "no route for GET /nope", notFound.Message)
	assert.False(t, notFound.IsInternalError())

	notAllowed := NewMethodNotAllowedError(http.MethodPost, "/api/health")
	assert.Equal(t, "method_not_allowed", notAllowed.Category)
	assert.Equal(t, "SYS_4050", notAllowed.Code)
	assert.Equal(t, http.StatusMethodNotAllowed, notAllowed.HttpStatusCode)
}

func TestServiceError_UnwrapsCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("disk full")
	svcErr := NewInternalError("RPT_9000", cause)

	assert.ErrorIs(t, svcErr, cause)
	assert.True(t, svcErr.IsInternalError())
	assert.Equal(t, "RPT_9000: internal server error", svcErr.Error())
}
