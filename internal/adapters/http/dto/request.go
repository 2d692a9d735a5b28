package dto

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/tenant-console/internal/domain"
	"github.com/jsamuelsen11/tenant-console/internal/domain/catalog"
	"github.com/jsamuelsen11/tenant-console/internal/domain/tenant"
)

// SetFieldsRequest is the JSON body of PATCH /wizards/{id}/fields.
//
// Values may be keyed by dotted path ("owner.email") or nested
// ({"owner": {"email": ...}}); both forms are flattened before they reach
// the wizard.
type SetFieldsRequest struct {
	Values map[string]any `json:"values"`
}

// Validate checks that at least one value was sent.
func (r *SetFieldsRequest) Validate() error {
	if len(r.Values) == 0 {
		return domain.NewValidationError("values", domain.MsgRequired)
	}
	return nil
}

// Flat returns Values keyed by dotted path. Objects are descended into;
// arrays and scalars are leaves.
func (r *SetFieldsRequest) Flat() map[string]any {
	out := make(map[string]any, len(r.Values))
	flatten("", r.Values, out)
	return out
}

func flatten(prefix string, in map[string]any, out map[string]any) {
	for k, v := range in {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		if child, ok := v.(map[string]any); ok {
			flatten(path, child, out)
			continue
		}
		out[path] = v
	}
}

// SelectPackageRequest is the JSON body of PUT /wizards/{id}/package.
type SelectPackageRequest struct {
	Package string `json:"package"`
}

// Validate checks that a package id was sent. Catalog membership is checked
// by the wizard.
func (r *SelectPackageRequest) Validate() error {
	if strings.TrimSpace(r.Package) == "" {
		return domain.NewValidationError("package", domain.MsgRequired)
	}
	return nil
}

// CodeCheckRequest is the JSON body of POST /wizards/{id}/code-check.
type CodeCheckRequest struct {
	Code string `json:"code"`
}

// Validate is a no-op: malformed codes are reported through the check
// status rather than rejected.
func (r *CodeCheckRequest) Validate() error {
	return nil
}

// UpdateTenantRequest is the JSON body of PATCH /tenants/{id}.
// Nil fields are left unchanged.
type UpdateTenantRequest struct {
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	Status       *string `json:"status,omitempty"`
	Package      *string `json:"package,omitempty"`
	MaxUsers     *int    `json:"max_users,omitempty"`
	MaxStorageGB *int    `json:"max_storage_gb,omitempty"`
	CustomDomain *string `json:"custom_domain,omitempty"`
}

// Validate delegates to tenant.Patch.Validate.
func (r *UpdateTenantRequest) Validate() error {
	return r.ToPatch().Validate()
}

// ToPatch maps the request onto a domain patch.
func (r *UpdateTenantRequest) ToPatch() *tenant.Patch {
	p := &tenant.Patch{
		Name:         r.Name,
		Description:  r.Description,
		MaxUsers:     r.MaxUsers,
		MaxStorageGB: r.MaxStorageGB,
		CustomDomain: r.CustomDomain,
	}
	if r.Status != nil {
		s := tenant.Status(*r.Status)
		p.Status = &s
	}
	if r.Package != nil {
		id := catalog.PackageID(*r.Package)
		p.PackageID = &id
	}
	return p
}

// BulkStatusRequest is the JSON body of POST /tenants/bulk-status.
type BulkStatusRequest struct {
	IDs    []string `json:"ids"`
	Status string   `json:"status"`
}

// Validate checks request shape. Duplicate ids and the batch limit are
// enforced by the service.
func (r *BulkStatusRequest) Validate() error {
	fields := make(map[string]string)

	if len(r.IDs) == 0 {
		fields["ids"] = domain.MsgMustNotEmpty
	}
	if r.Status == "" {
		fields["status"] = domain.MsgRequired
	} else if !tenant.Status(r.Status).IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", r.Status)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
