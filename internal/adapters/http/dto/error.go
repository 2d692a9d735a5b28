package dto

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strconv"

	"github.com/jsamuelsen11/tenant-console/internal/domain"
	"github.com/jsamuelsen11/tenant-console/internal/platform/logging"
)

// Problem type URIs. They are relative references resolved against the
// console's base URL; internal errors use about:blank.
const (
	ProblemValidation  = "/problems/validation-error"
	ProblemNotFound    = "/problems/not-found"
	ProblemConflict    = "/problems/conflict"
	ProblemForbidden   = "/problems/forbidden"
	ProblemUnavailable = "/problems/directory-unavailable"
	ProblemTimeout     = "/problems/timeout"
	ProblemInternal    = "about:blank"
)

// unavailableRetryAfter is the Retry-After hint, in seconds, sent when the
// tenant directory cannot be reached.
const unavailableRetryAfter = 5

// internalDetail replaces the message of unclassified errors, which may
// carry directory URLs or stack details.
const internalDetail = "an unexpected error occurred"

// ErrorResponse is an RFC 9457 problem details body. Validation failures
// list each bad wizard or tenant field in Errors.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one field failure. Location is "body." followed by the
// field path, for example "body.owner.email".
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// problemClass ties a domain error class to its HTTP rendition.
type problemClass struct {
	sentinel error
	status   int
	typ      string
}

var problemClasses = []problemClass{
	{domain.ErrValidation, http.StatusBadRequest, ProblemValidation},
	{domain.ErrNotFound, http.StatusNotFound, ProblemNotFound},
	{domain.ErrForbidden, http.StatusForbidden, ProblemForbidden},
	{domain.ErrConflict, http.StatusConflict, ProblemConflict},
	{domain.ErrUnavailable, http.StatusBadGateway, ProblemUnavailable},
	{context.DeadlineExceeded, http.StatusGatewayTimeout, ProblemTimeout},
}

func classify(err error) (status int, typ string) {
	for _, c := range problemClasses {
		if errors.Is(err, c.sentinel) {
			return c.status, c.typ
		}
	}
	return http.StatusInternalServerError, ProblemInternal
}

// NewErrorResponse builds the problem body for err. Instance is the request
// URI. Unclassified errors get a generic detail.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status, typ := classify(err)

	resp := ErrorResponse{
		Type:     typ,
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}
	if status == http.StatusInternalServerError {
		resp.Detail = internalDetail
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = fieldDetails(verr.Fields)
	}
	return resp
}

// WriteErrorResponse writes err as application/problem+json. Directory
// outages also carry a Retry-After hint. Unclassified errors are logged
// with their full chain before the generic body goes out.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)
	ctx := r.Context()

	switch resp.Status {
	case http.StatusInternalServerError:
		logging.FromContext(ctx).ErrorContext(ctx, "unhandled error",
			slog.String("instance", resp.Instance),
			slog.Any("error", err),
		)
	case http.StatusBadGateway:
		w.Header().Set("Retry-After", strconv.Itoa(unavailableRetryAfter))
	}

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)
	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		logging.FromContext(ctx).ErrorContext(ctx, "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

func fieldDetails(fields map[string]string) []ErrorDetail {
	paths := slices.Sorted(maps.Keys(fields))
	details := make([]ErrorDetail, len(paths))
	for i, path := range paths {
		details[i] = ErrorDetail{Location: "body." + path, Message: fields[path]}
	}
	return details
}
