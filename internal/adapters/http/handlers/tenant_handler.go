package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/tenant-console/internal/adapters/http/dto"
	"github.com/jsamuelsen11/tenant-console/internal/domain/tenant"
	"github.com/jsamuelsen11/tenant-console/internal/ports"
)

// TenantHandler handles HTTP requests for the tenant directory screens.
type TenantHandler struct {
	service ports.TenantService
}

// NewTenantHandler creates a new TenantHandler with the given service port.
func NewTenantHandler(service ports.TenantService) *TenantHandler {
	return &TenantHandler{service: service}
}

// ListTenants handles GET /api/v1/tenants.
func (h *TenantHandler) ListTenants(w http.ResponseWriter, r *http.Request) {
	q, err := parseTenantQuery(r.URL.Query())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	page, err := h.service.ListTenants(r.Context(), q)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	// Echo the effective paging, not the raw request.
	q.Normalize()
	writeJSON(w, http.StatusOK, dto.ToTenantListResponse(page, q))
}

// GetTenant handles GET /api/v1/tenants/{id}.
func (h *TenantHandler) GetTenant(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	t, err := h.service.GetTenant(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTenantResponse(t))
}

// UpdateTenant handles PATCH /api/v1/tenants/{id}.
func (h *TenantHandler) UpdateTenant(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateTenantRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.service.UpdateTenant(r.Context(), id, req.ToPatch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTenantResponse(updated))
}

// DeleteTenant handles DELETE /api/v1/tenants/{id}.
func (h *TenantHandler) DeleteTenant(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.service.DeleteTenant(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// BulkUpdateStatus handles POST /api/v1/tenants/bulk-status. Per-tenant
// failures are reported in the body with 200; only request-level problems
// fail the call.
func (h *TenantHandler) BulkUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.BulkStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.service.BulkUpdateStatus(r.Context(), req.IDs, tenant.Status(req.Status))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBulkStatusResponse(result))
}
