package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/tenant-console/internal/adapters/http/dto"
	"github.com/jsamuelsen11/tenant-console/internal/domain"
	"github.com/jsamuelsen11/tenant-console/internal/domain/catalog"
	"github.com/jsamuelsen11/tenant-console/internal/domain/tenant"
)

// pathParam extracts a non-empty path parameter from the chi URL params.
func pathParam(r *http.Request, param string) (string, error) {
	raw := strings.TrimSpace(chi.URLParam(r, param))
	if raw == "" {
		return "", domain.NewValidationError(param, domain.MsgRequired)
	}
	return raw, nil
}

// parseTenantQuery reads list criteria from the query string. Repeated
// status and package parameters are OR-ed filters.
func parseTenantQuery(values url.Values) (tenant.Query, error) {
	fields := make(map[string]string)
	q := tenant.Query{
		Search: values.Get("search"),
		SortBy: values.Get("sort_by"),
	}

	q.Page = intParam(values, "page", fields)
	q.PageSize = intParam(values, "page_size", fields)

	if raw := values.Get("sort_desc"); raw != "" {
		desc, err := strconv.ParseBool(raw)
		if err != nil {
			fields["sort_desc"] = "must be a boolean"
		}
		q.SortDesc = desc
	}
	for _, s := range values["status"] {
		q.Statuses = append(q.Statuses, tenant.Status(s))
	}
	for _, p := range values["package"] {
		q.Packages = append(q.Packages, catalog.PackageID(p))
	}

	if len(fields) > 0 {
		return q, &domain.ValidationError{Fields: fields}
	}
	return q, nil
}

func intParam(values url.Values, key string, fields map[string]string) int {
	raw := values.Get(key)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		fields[key] = fmt.Sprintf("must be a positive integer, got %q", raw)
		return 0
	}
	return n
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes. On failure it writes a 400 error response
// and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
