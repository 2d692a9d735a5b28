// Package acl translates between the tenant directory API and domain types.
// Resource mappings live in acl/directory; this package owns the request
// plumbing and turns directory failures into domain errors.
package acl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/tenant-console/internal/domain"
	"github.com/jsamuelsen11/tenant-console/internal/domain/wizard"
)

// maxErrorBody bounds how much of a failure body is read.
const maxErrorBody = 1 << 20

// statusErrors maps directory statuses onto domain sentinels. Any 5xx is
// domain.ErrUnavailable as well.
var statusErrors = map[int]error{
	http.StatusBadRequest:          domain.ErrValidation,
	http.StatusUnprocessableEntity: domain.ErrValidation,
	http.StatusNotFound:            domain.ErrNotFound,
	http.StatusConflict:            domain.ErrConflict,
	http.StatusUnauthorized:        domain.ErrForbidden,
	http.StatusForbidden:           domain.ErrForbidden,
	http.StatusTooManyRequests:     domain.ErrUnavailable,
}

// fieldAliases renames directory field paths to wizard field paths.
var fieldAliases = map[string]string{
	"code": wizard.FieldSubdomain,
}

// problem is the directory's problem+json failure body.
type problem struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Errors []struct {
		Location string `json:"location"`
		Message  string `json:"message"`
	} `json:"errors"`
}

// TranslateHTTPError converts a failed directory response into a domain
// error. Field-level rejections become a *domain.ValidationError keyed by
// wizard field paths, so the wizard can show them next to the right input.
func TranslateHTTPError(resp *http.Response) error {
	p := readProblem(resp)

	sentinel, ok := statusErrors[resp.StatusCode]
	if !ok && resp.StatusCode >= http.StatusInternalServerError {
		sentinel, ok = domain.ErrUnavailable, true
	}
	if !ok {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, p.message(resp.StatusCode))
	}
	if errors.Is(sentinel, domain.ErrValidation) && len(p.Errors) > 0 {
		return p.validationError()
	}
	return fmt.Errorf("%s: %w", p.message(resp.StatusCode), sentinel)
}

func (p problem) message(status int) string {
	switch {
	case p.Detail != "":
		return p.Detail
	case p.Title != "":
		return p.Title
	default:
		return http.StatusText(status)
	}
}

// validationError keys each message by its wizard path: the "body." prefix
// is dropped and directory names are aliased.
func (p problem) validationError() *domain.ValidationError {
	fields := make(map[string]string, len(p.Errors))
	for _, e := range p.Errors {
		path := strings.TrimPrefix(e.Location, "body.")
		if alias, ok := fieldAliases[path]; ok {
			path = alias
		}
		fields[path] = e.Message
	}
	return &domain.ValidationError{Fields: fields}
}

// readProblem decodes a problem+json body. Other bodies yield an empty problem.
func readProblem(resp *http.Response) problem {
	var p problem
	if resp.Body == nil {
		return p
	}
	if mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type")); err != nil || mt != "application/problem+json" {
		return p
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&p); err != nil {
		return problem{}
	}
	return p
}

// errUnreachable marks transport failures (refused connections, open
// breaker, timeouts) as domain.ErrUnavailable. Caller cancellation passes
// through unchanged.
func errUnreachable(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
}
