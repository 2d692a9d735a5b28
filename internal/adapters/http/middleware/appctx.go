package middleware

import (
	"net/http"

	appctx "github.com/jsamuelsen11/tenant-console/internal/app/context"
)

// AppContext attaches a fresh appctx.RequestContext to every request. Tenant
// lookups made while serving the request are memoized there. Register it
// after CorrelationID so the memo's base context carries both IDs.
func AppContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rc := appctx.New(r.Context())
			next.ServeHTTP(w, r.WithContext(appctx.WithRequestContext(r.Context(), rc)))
		})
	}
}
