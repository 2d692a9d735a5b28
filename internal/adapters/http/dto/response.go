// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/tenant-console/internal/domain/catalog"
	"github.com/jsamuelsen11/tenant-console/internal/domain/tenant"
	"github.com/jsamuelsen11/tenant-console/internal/domain/wizard"
	"github.com/jsamuelsen11/tenant-console/internal/ports"
)

// PackageResponse is one catalog entry.
type PackageResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	MonthlyPrice int      `json:"monthly_price"`
	Currency     string   `json:"currency"`
	PriceLabel   string   `json:"price_label"`
	Features     []string `json:"features"`
	Recommended  bool     `json:"recommended"`
	MaxUsers     int      `json:"max_users"`
	MaxStorageGB int      `json:"max_storage_gb"`
	StorageLabel string   `json:"storage_label"`
}

// PackageListResponse is the body of GET /packages.
type PackageListResponse struct {
	Packages []PackageResponse `json:"packages"`
	Default  string            `json:"default"`
}

// ToPackageResponse converts a catalog package.
func ToPackageResponse(p catalog.Package) PackageResponse {
	return PackageResponse{
		ID:           p.ID.String(),
		Name:         p.Name,
		MonthlyPrice: p.MonthlyPrice,
		Currency:     p.Currency,
		PriceLabel:   wizard.PriceLabel(p),
		Features:     p.Features,
		Recommended:  p.Recommended,
		MaxUsers:     p.MaxUsers,
		MaxStorageGB: p.MaxStorageGB,
		StorageLabel: wizard.StorageLabel(p.MaxStorageGB),
	}
}

// ToPackageListResponse converts the whole catalog in display order.
func ToPackageListResponse(pkgs []catalog.Package) PackageListResponse {
	items := make([]PackageResponse, len(pkgs))
	for i, p := range pkgs {
		items[i] = ToPackageResponse(p)
	}
	return PackageListResponse{Packages: items, Default: catalog.DefaultPackageID.String()}
}

// StepResponse describes the current wizard position.
type StepResponse struct {
	Index int    `json:"index"`
	Total int    `json:"total"`
	Name  string `json:"name"`
	Title string `json:"title"`
}

// CodeCheckResponse is the latest subdomain availability check.
type CodeCheckResponse struct {
	Code      string `json:"code,omitempty"`
	Status    string `json:"status"`
	Available *bool  `json:"available,omitempty"`
	Message   string `json:"message,omitempty"`
	CheckedAt string `json:"checked_at,omitempty"`
}

// WizardResponse is a wizard session snapshot. Values are nested by path
// segment, so "owner.email" appears under values.owner.email.
type WizardResponse struct {
	ID                  string            `json:"id"`
	Step                StepResponse      `json:"step"`
	IsLast              bool              `json:"is_last"`
	Package             string            `json:"package"`
	CustomDomainEnabled bool              `json:"custom_domain_enabled"`
	RequiredFields      []string          `json:"required_fields"`
	Values              map[string]any    `json:"values"`
	CodeCheck           CodeCheckResponse `json:"code_check"`
	CreatedAt           string            `json:"created_at"`
	UpdatedAt           string            `json:"updated_at"`
}

// ToWizardResponse converts a session snapshot.
func ToWizardResponse(s *ports.WizardSession) WizardResponse {
	st := s.State
	return WizardResponse{
		ID: s.ID,
		Step: StepResponse{
			Index: int(st.Step) + 1,
			Total: len(wizard.Steps()),
			Name:  st.Step.String(),
			Title: st.Step.Title(),
		},
		IsLast:              st.IsLast(),
		Package:             st.PackageID.String(),
		CustomDomainEnabled: st.CustomDomainEnabled,
		RequiredFields:      wizard.RequiredFields(st, st.Step),
		Values:              st.Values.Nested(),
		CodeCheck:           ToCodeCheckResponse(&s.CodeCheck),
		CreatedAt:           s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           s.UpdatedAt.Format(time.RFC3339),
	}
}

// ToCodeCheckResponse converts a code check. Availability is reported only
// once the check has completed.
func ToCodeCheckResponse(c *ports.CodeCheck) CodeCheckResponse {
	resp := CodeCheckResponse{
		Code:    c.Code,
		Status:  string(c.Status),
		Message: c.Message,
	}
	if resp.Status == "" {
		resp.Status = string(ports.CodeCheckIdle)
	}
	if c.Status == ports.CodeCheckDone {
		available := c.Available
		resp.Available = &available
	}
	if !c.CheckedAt.IsZero() {
		resp.CheckedAt = c.CheckedAt.Format(time.RFC3339)
	}
	return resp
}

// OwnerResponse is the primary contact.
type OwnerResponse struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Title     string `json:"title,omitempty"`
}

// CompanyResponse is the legal entity.
type CompanyResponse struct {
	Name      string `json:"name,omitempty"`
	TaxNumber string `json:"tax_number,omitempty"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	Country   string `json:"country,omitempty"`
}

// SummaryResponse is the review step projection.
type SummaryResponse struct {
	Name          string `json:"name"`
	Subdomain     string `json:"subdomain"`
	TenantURL     string `json:"tenant_url"`
	Description   string `json:"description,omitempty"`
	Industry      string `json:"industry"`
	EmployeeCount string `json:"employee_count,omitempty"`

	Package      PackageResponse `json:"package"`
	BillingCycle string          `json:"billing_cycle"`
	TrialDays    int             `json:"trial_days"`

	MaxUsers       int      `json:"max_users"`
	MaxStorageGB   int      `json:"max_storage_gb"`
	StorageLabel   string   `json:"storage_label"`
	CustomDomain   string   `json:"custom_domain,omitempty"`
	Features       []string `json:"features"`
	DatabaseRegion string   `json:"database_region"`

	Owner   OwnerResponse   `json:"owner"`
	Company CompanyResponse `json:"company"`

	TermsAccepted bool `json:"terms_accepted"`
}

// ToSummaryResponse converts a review summary. baseDomain is the hosting
// domain tenant subdomains live under.
func ToSummaryResponse(sum *wizard.Summary, baseDomain string) SummaryResponse {
	features := sum.Features
	if features == nil {
		features = []string{}
	}
	return SummaryResponse{
		Name:           sum.Name,
		Subdomain:      sum.Subdomain,
		TenantURL:      sum.TenantURL(baseDomain),
		Description:    sum.Description,
		Industry:       sum.Industry,
		EmployeeCount:  sum.EmployeeCount,
		Package:        ToPackageResponse(sum.Package),
		BillingCycle:   sum.BillingCycle,
		TrialDays:      sum.TrialDays,
		MaxUsers:       sum.MaxUsers,
		MaxStorageGB:   sum.MaxStorageGB,
		StorageLabel:   sum.StorageLabel(),
		CustomDomain:   sum.CustomDomain,
		Features:       features,
		DatabaseRegion: sum.DatabaseRegion,
		Owner:          toOwnerResponse(sum.Owner),
		Company:        CompanyResponse(sum.Company),
		TermsAccepted:  sum.TermsAccepted,
	}
}

func toOwnerResponse(o tenant.Owner) OwnerResponse {
	return OwnerResponse{
		FirstName: o.FirstName,
		LastName:  o.LastName,
		FullName:  o.FullName(),
		Email:     o.Email,
		Phone:     o.Phone,
		Title:     o.Title,
	}
}

// TenantResponse represents a single tenant in HTTP responses.
type TenantResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Code           string          `json:"code"`
	Description    string          `json:"description,omitempty"`
	Industry       string          `json:"industry,omitempty"`
	EmployeeCount  string          `json:"employee_count,omitempty"`
	Status         string          `json:"status"`
	Package        string          `json:"package"`
	BillingCycle   string          `json:"billing_cycle,omitempty"`
	TrialDays      int             `json:"trial_days"`
	MaxUsers       int             `json:"max_users"`
	MaxStorageGB   int             `json:"max_storage_gb"`
	CustomDomain   string          `json:"custom_domain,omitempty"`
	Features       []string        `json:"features"`
	DatabaseRegion string          `json:"database_region,omitempty"`
	Owner          OwnerResponse   `json:"owner"`
	Company        CompanyResponse `json:"company"`
	CreatedAt      string          `json:"created_at"`
	UpdatedAt      string          `json:"updated_at"`
}

// ToTenantResponse converts a domain Tenant to an HTTP response DTO.
func ToTenantResponse(t *tenant.Tenant) TenantResponse {
	features := t.Features
	if features == nil {
		features = []string{}
	}
	return TenantResponse{
		ID:             t.ID,
		Name:           t.Name,
		Code:           t.Code,
		Description:    t.Description,
		Industry:       t.Industry,
		EmployeeCount:  t.EmployeeCount,
		Status:         t.Status.String(),
		Package:        t.PackageID.String(),
		BillingCycle:   t.BillingCycle,
		TrialDays:      t.TrialDays,
		MaxUsers:       t.Limits.MaxUsers,
		MaxStorageGB:   t.Limits.MaxStorageGB,
		CustomDomain:   t.CustomDomain,
		Features:       features,
		DatabaseRegion: t.DatabaseRegion,
		Owner:          toOwnerResponse(t.Owner),
		Company:        CompanyResponse(t.Company),
		CreatedAt:      t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      t.UpdatedAt.Format(time.RFC3339),
	}
}

// TenantListResponse is one page of tenants. Stale is set when the page
// was served from the last successful listing because the directory was
// unreachable.
type TenantListResponse struct {
	Tenants  []TenantResponse `json:"tenants"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
	Stale    bool             `json:"stale"`
}

// ToTenantListResponse converts a page for the query that produced it.
func ToTenantListResponse(p *tenant.Page, q tenant.Query) TenantListResponse {
	items := make([]TenantResponse, len(p.Data))
	for i := range p.Data {
		items[i] = ToTenantResponse(&p.Data[i])
	}
	return TenantListResponse{
		Tenants:  items,
		Total:    p.Total,
		Page:     q.Page,
		PageSize: q.PageSize,
		Stale:    p.Stale,
	}
}

// BulkStatusResponse represents the result of a bulk status update.
// It includes both successful updates and per-tenant errors.
type BulkStatusResponse struct {
	Updated   []TenantResponse      `json:"updated"`
	Errors    []BulkStatusErrorItem `json:"errors"`
	Total     int                   `json:"total"`
	Succeeded int                   `json:"succeeded"`
	Failed    int                   `json:"failed"`
}

// BulkStatusErrorItem represents a single failed update within a bulk operation.
type BulkStatusErrorItem struct {
	TenantID string `json:"tenant_id"`
	Message  string `json:"message"`
}

// ToBulkStatusResponse converts a ports.BulkStatusResult to an HTTP response DTO.
func ToBulkStatusResponse(result *ports.BulkStatusResult) BulkStatusResponse {
	updated := make([]TenantResponse, len(result.Updated))
	for i := range result.Updated {
		updated[i] = ToTenantResponse(&result.Updated[i])
	}

	errs := make([]BulkStatusErrorItem, len(result.Errors))
	for i, e := range result.Errors {
		errs[i] = BulkStatusErrorItem{
			TenantID: e.TenantID,
			Message:  e.Err.Error(),
		}
	}

	return BulkStatusResponse{
		Updated:   updated,
		Errors:    errs,
		Total:     len(result.Updated) + len(result.Errors),
		Succeeded: len(result.Updated),
		Failed:    len(result.Errors),
	}
}
