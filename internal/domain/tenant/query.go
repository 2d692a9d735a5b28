package tenant

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/tenant-console/internal/domain"
	"github.com/jsamuelsen11/tenant-console/internal/domain/catalog"
)

// Paging defaults mirror the tenant listing screen.
const (
	DefaultPageSize = 25
	MaxPageSize     = 100
)

// Sortable fields for list queries.
const (
	SortByName      = "name"
	SortByCreatedAt = "createdAt"
	SortByStatus    = "status"
)

// Query holds list criteria. Zero-value filter fields mean "no filter".
type Query struct {
	Page     int
	PageSize int
	Search   string
	Statuses []Status
	Packages []catalog.PackageID
	SortBy   string
	SortDesc bool
}

// Normalize fills paging defaults in place.
func (q *Query) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	q.Search = strings.TrimSpace(q.Search)
}

// Validate checks paging bounds and filter values.
func (q *Query) Validate() error {
	fields := make(map[string]string)

	if q.PageSize > MaxPageSize {
		fields["pageSize"] = fmt.Sprintf("must be at most %d, got %d", MaxPageSize, q.PageSize)
	}
	for _, s := range q.Statuses {
		if !s.IsValid() {
			fields["status"] = fmt.Sprintf("invalid: %q", s)
		}
	}
	for _, p := range q.Packages {
		if !p.IsValid() {
			fields["package"] = fmt.Sprintf("invalid: %q", p)
		}
	}
	switch q.SortBy {
	case "", SortByName, SortByCreatedAt, SortByStatus:
	default:
		fields["sortBy"] = fmt.Sprintf("invalid: %q", q.SortBy)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Key returns a stable identity for the query, used to cache list pages.
func (q *Query) Key() string {
	statuses := make([]string, len(q.Statuses))
	for i, s := range q.Statuses {
		statuses[i] = s.String()
	}
	packages := make([]string, len(q.Packages))
	for i, p := range q.Packages {
		packages[i] = p.String()
	}
	return fmt.Sprintf("p=%d|s=%d|q=%s|st=%s|pk=%s|sort=%s|desc=%t",
		q.Page, q.PageSize, q.Search,
		strings.Join(statuses, ","), strings.Join(packages, ","),
		q.SortBy, q.SortDesc)
}

// Page is one page of list results.
type Page struct {
	Data  []Tenant
	Total int
	// Stale is set when the page was served from the last successful
	// result because the directory was unreachable.
	Stale bool
}
