package handlers

import (
	"context"
	"net/http"

	"github.com/jsamuelsen11/tenant-console/internal/adapters/http/dto"
	"github.com/jsamuelsen11/tenant-console/internal/domain/catalog"
	"github.com/jsamuelsen11/tenant-console/internal/ports"
)

// WizardHandler handles HTTP requests for provisioning wizard sessions.
type WizardHandler struct {
	service    ports.WizardService
	baseDomain string
}

// NewWizardHandler creates a WizardHandler. baseDomain is used to render
// the tenant URL on the review step.
func NewWizardHandler(service ports.WizardService, baseDomain string) *WizardHandler {
	return &WizardHandler{service: service, baseDomain: baseDomain}
}

// Start handles POST /api/v1/wizards.
func (h *WizardHandler) Start(w http.ResponseWriter, r *http.Request) {
	sess, err := h.service.Start(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/wizards/"+sess.ID)
	writeJSON(w, http.StatusCreated, dto.ToWizardResponse(sess))
}

// Get handles GET /api/v1/wizards/{id}.
func (h *WizardHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.session(w, r, h.service.Get)
}

// SetFields handles PATCH /api/v1/wizards/{id}/fields.
func (h *WizardHandler) SetFields(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.SetFieldsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	sess, err := h.service.SetFields(r.Context(), id, req.Flat())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToWizardResponse(sess))
}

// SelectPackage handles PUT /api/v1/wizards/{id}/package.
func (h *WizardHandler) SelectPackage(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.SelectPackageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	sess, err := h.service.SelectPackage(r.Context(), id, catalog.PackageID(req.Package))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToWizardResponse(sess))
}

// Advance handles POST /api/v1/wizards/{id}/advance. An incomplete step
// yields 400 with one error per offending field.
func (h *WizardHandler) Advance(w http.ResponseWriter, r *http.Request) {
	h.session(w, r, h.service.Advance)
}

// Retreat handles POST /api/v1/wizards/{id}/retreat.
func (h *WizardHandler) Retreat(w http.ResponseWriter, r *http.Request) {
	h.session(w, r, h.service.Retreat)
}

// Review handles GET /api/v1/wizards/{id}/review.
func (h *WizardHandler) Review(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	sum, err := h.service.Review(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSummaryResponse(sum, h.baseDomain))
}

// Submit handles POST /api/v1/wizards/{id}/submit.
func (h *WizardHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	created, err := h.service.Submit(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/tenants/"+created.ID)
	writeJSON(w, http.StatusCreated, dto.ToTenantResponse(created))
}

// Discard handles DELETE /api/v1/wizards/{id}.
func (h *WizardHandler) Discard(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.service.Discard(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CheckCode handles POST /api/v1/wizards/{id}/code-check. The check runs
// after the debounce window; poll GET for the outcome.
func (h *WizardHandler) CheckCode(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CodeCheckRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	check, err := h.service.CheckCode(r.Context(), id, req.Code)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	status := http.StatusAccepted
	if check.Status != ports.CodeCheckPending {
		status = http.StatusOK
	}
	writeJSON(w, status, dto.ToCodeCheckResponse(check))
}

// CodeCheckResult handles GET /api/v1/wizards/{id}/code-check.
func (h *WizardHandler) CodeCheckResult(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	check, err := h.service.CodeCheckResult(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCodeCheckResponse(check))
}

type sessionCall func(ctx context.Context, id string) (*ports.WizardSession, error)

// session runs a service call that takes only the session id and renders
// the resulting snapshot.
func (h *WizardHandler) session(w http.ResponseWriter, r *http.Request, call sessionCall) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	sess, err := call(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToWizardResponse(sess))
}
