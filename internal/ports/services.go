package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/tenant-console/internal/domain/catalog"
	"github.com/jsamuelsen11/tenant-console/internal/domain/tenant"
	"github.com/jsamuelsen11/tenant-console/internal/domain/wizard"
)

// WizardService defines the service port for provisioning wizard sessions.
// Implemented by the application layer; called by inbound adapters.
// Each session owns one wizard.State; sessions live in memory only and are
// discarded on successful submission, explicit discard, or idle expiry.
type WizardService interface {
	// Start opens a new session at the first step with default values.
	Start(ctx context.Context) (*WizardSession, error)

	// Get returns a session by ID.
	// Returns domain.ErrNotFound if the session does not exist or expired.
	Get(ctx context.Context, id string) (*WizardSession, error)

	// SetFields applies field values keyed by dotted path. The update is
	// atomic: on any invalid value nothing is applied and
	// domain.ErrValidation is returned.
	SetFields(ctx context.Context, id string, values map[string]any) (*WizardSession, error)

	// SelectPackage selects a catalog package.
	// Returns wizard.ErrUnknownPackage for ids outside the catalog.
	SelectPackage(ctx context.Context, id string, pkg catalog.PackageID) (*WizardSession, error)

	// Advance validates the current step and moves forward.
	// Returns domain.ErrValidation with per-field details when the current
	// step is incomplete; the session is left unchanged.
	Advance(ctx context.Context, id string) (*WizardSession, error)

	// Retreat moves back one step without validation.
	Retreat(ctx context.Context, id string) (*WizardSession, error)

	// Review returns the read-only summary of the session's values.
	Review(ctx context.Context, id string) (*wizard.Summary, error)

	// Submit validates every step and creates the tenant in the directory.
	// On success the session is discarded. On failure the session is kept
	// unchanged so the caller may correct and retry.
	Submit(ctx context.Context, id string) (*tenant.Tenant, error)

	// Discard drops a session. Pending code checks are cancelled.
	Discard(ctx context.Context, id string) error

	// CheckCode schedules a debounced availability check for code. A newer
	// call on the same session cancels the pending one.
	CheckCode(ctx context.Context, id, code string) (*CodeCheck, error)

	// CodeCheckResult returns the latest code check state of the session.
	CodeCheckResult(ctx context.Context, id string) (*CodeCheck, error)
}

// WizardSession is a snapshot of one wizard session.
type WizardSession struct {
	ID        string
	State     wizard.State
	CodeCheck CodeCheck
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CodeCheckStatus is the lifecycle of a subdomain availability check.
type CodeCheckStatus string

const (
	CodeCheckIdle    CodeCheckStatus = "idle"
	CodeCheckPending CodeCheckStatus = "pending"
	CodeCheckInvalid CodeCheckStatus = "invalid"
	CodeCheckDone    CodeCheckStatus = "done"
	CodeCheckFailed  CodeCheckStatus = "failed"
)

// CodeCheck is the most recent availability check for a session.
// Available is meaningful only when Status is CodeCheckDone.
type CodeCheck struct {
	Code      string
	Status    CodeCheckStatus
	Available bool
	Message   string
	CheckedAt time.Time
}

// TenantService defines the service port for tenant directory screens.
// Implemented by the application layer; called by inbound adapters.
type TenantService interface {
	// ListTenants returns one page of tenants. When the directory is
	// unreachable and a previous page for the same query was served, that
	// page is returned with Stale set instead of an error.
	// Returns domain.ErrValidation for out-of-range paging or bad filters.
	ListTenants(ctx context.Context, q tenant.Query) (*tenant.Page, error)

	// GetTenant returns a single tenant by ID.
	// Returns domain.ErrNotFound if the tenant does not exist.
	GetTenant(ctx context.Context, id string) (*tenant.Tenant, error)

	// UpdateTenant applies a partial update.
	// Returns domain.ErrNotFound if the tenant does not exist.
	// Returns domain.ErrValidation if the patch fails validation.
	UpdateTenant(ctx context.Context, id string, patch *tenant.Patch) (*tenant.Tenant, error)

	// DeleteTenant removes a tenant.
	// Returns domain.ErrNotFound if the tenant does not exist.
	DeleteTenant(ctx context.Context, id string) error

	// BulkUpdateStatus sets status on many tenants concurrently. Uses
	// partial success semantics: each update succeeds or fails
	// independently. Returns a hard error only for request-level failures
	// (validation). Individual failures are collected in
	// BulkStatusResult.Errors.
	BulkUpdateStatus(ctx context.Context, ids []string, status tenant.Status) (*BulkStatusResult, error)
}

// BulkStatusError records a single failed update within a bulk operation.
type BulkStatusError struct {
	TenantID string
	Err      error
}

// BulkStatusResult holds the outcomes of a bulk status update.
type BulkStatusResult struct {
	Updated []tenant.Tenant
	Errors  []BulkStatusError
}
