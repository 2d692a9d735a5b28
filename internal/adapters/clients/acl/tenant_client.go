package acl

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/tenant-console/internal/adapters/clients/acl/directory"
	"github.com/jsamuelsen11/tenant-console/internal/domain/tenant"
	"github.com/jsamuelsen11/tenant-console/internal/platform/httpclient"
	"github.com/jsamuelsen11/tenant-console/internal/ports"
)

// Compile-time interface check.
var _ ports.TenantDirectory = (*TenantClient)(nil)

const tenantsPath = "/api/v1/tenants"

// TenantClient is the outbound adapter for the downstream tenant directory.
// It implements [ports.TenantDirectory].
//
// Requests and responses are translated by the [directory] subpackage;
// HTTP errors become domain errors via [TranslateHTTPError]. The underlying
// [httpclient.Client] provides circuit breaking, rate limiting, retry and
// tracing for every call.
type TenantClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewTenantClient creates a TenantClient. The client's BaseURL should point
// at the directory root (e.g. "https://directory.stocker.app").
func NewTenantClient(client *httpclient.Client, logger *slog.Logger) *TenantClient {
	return &TenantClient{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// CreateTenant sends POST /api/v1/tenants and expects 201 Created.
// Callers that may retry a submission should attach an idempotency key with
// [httpclient.WithIdempotencyKey] so the directory can drop duplicates.
func (c *TenantClient) CreateTenant(ctx context.Context, r *tenant.CreateRequest) (*tenant.Tenant, error) {
	var dto directory.TenantDTO
	err := c.req.Do(ctx, Call{
		Method: http.MethodPost,
		Path:   tenantsPath,
		Want:   http.StatusCreated,
		Body:   directory.ToCreateTenantRequest(r),
		Out:    &dto,
	})
	if err != nil {
		return nil, err
	}
	created := directory.ToDomainTenant(&dto)
	return &created, nil
}

// GetTenant fetches GET /api/v1/tenants/{id}.
func (c *TenantClient) GetTenant(ctx context.Context, id string) (*tenant.Tenant, error) {
	var dto directory.TenantDTO
	err := c.req.Do(ctx, Call{
		Method: http.MethodGet,
		Path:   tenantPath(id),
		Want:   http.StatusOK,
		Out:    &dto,
	})
	if err != nil {
		return nil, err
	}
	t := directory.ToDomainTenant(&dto)
	return &t, nil
}

// UpdateTenant sends PATCH /api/v1/tenants/{id} with only the patched fields.
func (c *TenantClient) UpdateTenant(ctx context.Context, id string, patch *tenant.Patch) (*tenant.Tenant, error) {
	var dto directory.TenantDTO
	err := c.req.Do(ctx, Call{
		Method: http.MethodPatch,
		Path:   tenantPath(id),
		Want:   http.StatusOK,
		Body:   directory.ToUpdateTenantRequest(patch),
		Out:    &dto,
	})
	if err != nil {
		return nil, err
	}
	t := directory.ToDomainTenant(&dto)
	return &t, nil
}

// DeleteTenant sends DELETE /api/v1/tenants/{id} and expects 204.
func (c *TenantClient) DeleteTenant(ctx context.Context, id string) error {
	return c.req.Do(ctx, Call{
		Method: http.MethodDelete,
		Path:   tenantPath(id),
		Want:   http.StatusNoContent,
	})
}

// ValidateTenantCode asks GET /api/v1/tenants/code-availability?code=.
func (c *TenantClient) ValidateTenantCode(ctx context.Context, code string) (*tenant.CodeAvailability, error) {
	var dto directory.CodeAvailabilityDTO
	err := c.req.Do(ctx, Call{
		Method: http.MethodGet,
		Path:   tenantsPath + "/code-availability",
		Query:  url.Values{"code": []string{code}},
		Want:   http.StatusOK,
		Out:    &dto,
	})
	if err != nil {
		return nil, err
	}
	return directory.ToDomainCodeAvailability(dto, code), nil
}

// ListTenants fetches one page from GET /api/v1/tenants. q should already be
// normalized.
func (c *TenantClient) ListTenants(ctx context.Context, q tenant.Query) (*tenant.Page, error) {
	var dto directory.TenantListResponseDTO
	err := c.req.Do(ctx, Call{
		Method: http.MethodGet,
		Path:   tenantsPath,
		Query:  directory.ToListQuery(q),
		Want:   http.StatusOK,
		Out:    &dto,
	})
	if err != nil {
		return nil, err
	}
	return directory.ToDomainPage(dto), nil
}

func tenantPath(id string) string {
	return tenantsPath + "/" + url.PathEscape(id)
}
