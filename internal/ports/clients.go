package ports

import (
	"context"

	"github.com/jsamuelsen11/tenant-console/internal/domain/tenant"
)

// TenantDirectory defines the client port for the downstream tenant
// directory service. Implemented by the ACL adapter; called by the
// application layer. The directory is the system of record for tenants;
// this service holds no tenant data of its own.
type TenantDirectory interface {
	// CreateTenant provisions a new tenant and returns the created record.
	// Returns domain.ErrConflict if the code is already taken and
	// domain.ErrValidation if the directory rejects the payload.
	CreateTenant(ctx context.Context, req *tenant.CreateRequest) (*tenant.Tenant, error)

	// GetTenant returns a single tenant by ID.
	// Returns domain.ErrNotFound if the tenant does not exist.
	GetTenant(ctx context.Context, id string) (*tenant.Tenant, error)

	// UpdateTenant applies a partial update and returns the updated tenant.
	// Returns domain.ErrNotFound if the tenant does not exist.
	UpdateTenant(ctx context.Context, id string, patch *tenant.Patch) (*tenant.Tenant, error)

	// DeleteTenant removes a tenant by ID.
	// Returns domain.ErrNotFound if the tenant does not exist.
	DeleteTenant(ctx context.Context, id string) error

	// ValidateTenantCode asks the directory whether code is free to use.
	ValidateTenantCode(ctx context.Context, code string) (*tenant.CodeAvailability, error)

	// ListTenants returns one page of tenants matching the query.
	ListTenants(ctx context.Context, q tenant.Query) (*tenant.Page, error)
}
