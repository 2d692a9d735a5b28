package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/tenant-console/internal/platform/logging"
)

// Logging stores a logger carrying the request and correlation ids in the
// context (see logging.FromContext) and logs one completion line per
// request. The level follows the status: 5xx is an error, 4xx a warning.
// Health probes are logged at debug. The wizard or tenant id from the
// matched route is added to the completion line.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			child := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, child)

			if child.Enabled(ctx, slog.LevelDebug) {
				attrs := []slog.Attr{
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				}
				attrs = append(attrs, RedactHeaders(r.Header)...)
				child.LogAttrs(ctx, slog.LevelDebug, "request started", attrs...)
			}

			rec := record(w)
			next.ServeHTTP(rec, r.WithContext(ctx))

			route := routePattern(r)
			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", route),
				slog.Int("status", rec.status),
				slog.Int64("bytes", rec.bytes),
				slog.Duration("duration", time.Since(start)),
			}
			if key, id := routeSubject(r, route); id != "" {
				attrs = append(attrs, slog.String(key, id))
			}
			child.LogAttrs(ctx, completionLevel(r.URL.Path, rec.status), "request completed", attrs...)
		})
	}
}

func completionLevel(path string, status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	case strings.HasPrefix(path, "/health/"):
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// routeSubject names the {id} parameter of wizard and tenant routes.
func routeSubject(r *http.Request, route string) (string, string) {
	id := chi.URLParam(r, "id")
	switch {
	case id == "":
		return "", ""
	case strings.Contains(route, "/wizards/"):
		return "wizard_id", id
	case strings.Contains(route, "/tenants/"):
		return "tenant_id", id
	default:
		return "", ""
	}
}
