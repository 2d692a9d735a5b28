// Package middleware holds the inbound HTTP pipeline of the console API.
// cmd/server mounts it as
//
//	Edge (Recovery, RequestID, CorrelationID, AppContext) → OpenTelemetry → Logging → Timeout → router
package middleware

import (
	"log/slog"
	"net/http"
)

// Chain composes middleware into one. The first argument is outermost, so
// Chain(a, b)(h) is a(b(h)).
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			handler = middlewares[i](handler)
		}
		return handler
	}
}

// Edge is the identity stack every console route sits behind: panic
// recovery, request and correlation IDs, then the per-request memo the
// tenant service reads through.
func Edge(logger *slog.Logger) func(http.Handler) http.Handler {
	return Chain(
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		AppContext(),
	)
}
