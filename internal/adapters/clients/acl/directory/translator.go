package directory

import (
	"net/url"
	"strconv"
	"time"

	"github.com/jsamuelsen11/tenant-console/internal/domain/catalog"
	"github.com/jsamuelsen11/tenant-console/internal/domain/tenant"
)

// ToDomainTenant converts a downstream TenantDTO to a domain Tenant.
// Unparseable timestamps become the zero time.
func ToDomainTenant(dto *TenantDTO) tenant.Tenant {
	createdAt, _ := time.Parse(time.RFC3339, dto.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339, dto.UpdatedAt)

	return tenant.Tenant{
		ID:            dto.ID,
		Name:          dto.Name,
		Code:          dto.Code,
		Description:   dto.Description,
		Industry:      dto.Industry,
		EmployeeCount: dto.EmployeeCount,
		Status:        tenant.Status(dto.Status),
		PackageID:     catalog.PackageID(dto.PackageID),
		BillingCycle:  dto.BillingCycle,
		TrialDays:     dto.TrialDays,
		Limits: tenant.Limits{
			MaxUsers:     dto.MaxUsers,
			MaxStorageGB: dto.MaxStorageGB,
		},
		CustomDomain:   dto.CustomDomain,
		Features:       append([]string(nil), dto.Features...),
		DatabaseRegion: dto.DatabaseRegion,
		Owner: tenant.Owner{
			FirstName: dto.Owner.FirstName,
			LastName:  dto.Owner.LastName,
			Email:     dto.Owner.Email,
			Phone:     dto.Owner.Phone,
			Title:     dto.Owner.Title,
		},
		Company: tenant.Company{
			Name:      dto.Company.Name,
			TaxNumber: dto.Company.TaxNumber,
			Address:   dto.Company.Address,
			City:      dto.Company.City,
			Country:   dto.Company.Country,
		},
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// ToDomainPage converts a downstream list response to a domain Page.
func ToDomainPage(dto TenantListResponseDTO) *tenant.Page {
	data := make([]tenant.Tenant, len(dto.Items))
	for i := range dto.Items {
		data[i] = ToDomainTenant(&dto.Items[i])
	}
	return &tenant.Page{Data: data, Total: dto.TotalCount}
}

// ToCreateTenantRequest converts the wizard's submission payload to the
// downstream CreateTenantRequestDTO. The subdomain travels as "code".
func ToCreateTenantRequest(r *tenant.CreateRequest) CreateTenantRequestDTO {
	features := r.Features
	if features == nil {
		features = []string{}
	}
	return CreateTenantRequestDTO{
		Name:           r.Name,
		Code:           r.Code,
		Description:    r.Description,
		Industry:       r.Industry,
		EmployeeCount:  r.EmployeeCount,
		PackageID:      r.PackageID.String(),
		BillingCycle:   r.BillingCycle,
		TrialDays:      r.TrialDays,
		MaxUsers:       r.Limits.MaxUsers,
		MaxStorageGB:   r.Limits.MaxStorageGB,
		CustomDomain:   r.CustomDomain,
		Features:       features,
		DatabaseRegion: r.DatabaseRegion,
		Owner: OwnerDTO{
			FirstName: r.Owner.FirstName,
			LastName:  r.Owner.LastName,
			Email:     r.Owner.Email,
			Phone:     r.Owner.Phone,
			Title:     r.Owner.Title,
		},
		Company: CompanyDTO{
			Name:      r.Company.Name,
			TaxNumber: r.Company.TaxNumber,
			Address:   r.Company.Address,
			City:      r.Company.City,
			Country:   r.Company.Country,
		},
		TermsAccepted: r.TermsAccepted,
	}
}

// ToUpdateTenantRequest converts a domain Patch to the downstream
// UpdateTenantRequestDTO. Nil patch fields stay nil.
func ToUpdateTenantRequest(p *tenant.Patch) UpdateTenantRequestDTO {
	dto := UpdateTenantRequestDTO{
		Name:         p.Name,
		Description:  p.Description,
		MaxUsers:     p.MaxUsers,
		MaxStorageGB: p.MaxStorageGB,
		CustomDomain: p.CustomDomain,
	}
	if p.Status != nil {
		s := p.Status.String()
		dto.Status = &s
	}
	if p.PackageID != nil {
		id := p.PackageID.String()
		dto.PackageID = &id
	}
	return dto
}

// ToListQuery encodes a normalized domain Query as downstream query
// parameters. Multi-value filters repeat the key.
func ToListQuery(q tenant.Query) url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("pageSize", strconv.Itoa(q.PageSize))
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	for _, s := range q.Statuses {
		v.Add("status", s.String())
	}
	for _, p := range q.Packages {
		v.Add("package", p.String())
	}
	if q.SortBy != "" {
		v.Set("sortBy", q.SortBy)
		if q.SortDesc {
			v.Set("sortDesc", "true")
		}
	}
	return v
}

// ToDomainCodeAvailability converts the downstream availability answer.
// The requested code is kept when the directory omits it.
func ToDomainCodeAvailability(dto CodeAvailabilityDTO, requested string) *tenant.CodeAvailability {
	code := dto.Code
	if code == "" {
		code = requested
	}
	return &tenant.CodeAvailability{
		Code:        code,
		IsAvailable: dto.IsAvailable,
		Message:     dto.Message,
	}
}
