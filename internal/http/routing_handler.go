package http

import (
	"net/http"

	"portfolio-api/internal/shared/svcerrors"
)

type routeNotFoundHandler struct{}

// Handle answers requests that match no route.
func (routeNotFoundHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	return svcerrors.NewRouteNotFoundError(r.Method, r.URL.Path)
}

type methodNotAllowedHandler struct{}

// Handle answers requests whose path matches a route registered for other methods.
func (methodNotAllowedHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	return svcerrors.NewMethodNotAllowedError(r.Method, r.URL.Path)
}
