// Package directory implements the Anti-Corruption Layer translators for the
// downstream tenant directory API's tenant resources.
package directory

// OwnerDTO matches the downstream TenantOwner schema.
type OwnerDTO struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Title     string `json:"title,omitempty"`
}

// CompanyDTO matches the downstream TenantCompany schema.
type CompanyDTO struct {
	Name      string `json:"name,omitempty"`
	TaxNumber string `json:"taxNumber,omitempty"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	Country   string `json:"country,omitempty"`
}

// TenantDTO matches the downstream Tenant schema. Timestamps are RFC 3339.
type TenantDTO struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Code           string     `json:"code"`
	Description    string     `json:"description"`
	Industry       string     `json:"industry"`
	EmployeeCount  string     `json:"employeeCount"`
	Status         string     `json:"status"`
	PackageID      string     `json:"packageId"`
	BillingCycle   string     `json:"billingCycle"`
	TrialDays      int        `json:"trialDays"`
	MaxUsers       int        `json:"maxUsers"`
	MaxStorageGB   int        `json:"maxStorageGb"`
	CustomDomain   string     `json:"customDomain,omitempty"`
	Features       []string   `json:"features"`
	DatabaseRegion string     `json:"databaseRegion"`
	Owner          OwnerDTO   `json:"owner"`
	Company        CompanyDTO `json:"company"`
	CreatedAt      string     `json:"createdAt"`
	UpdatedAt      string     `json:"updatedAt"`
}

// CreateTenantRequestDTO matches the downstream CreateTenantRequest schema.
type CreateTenantRequestDTO struct {
	Name           string     `json:"name"`
	Code           string     `json:"code"`
	Description    string     `json:"description,omitempty"`
	Industry       string     `json:"industry"`
	EmployeeCount  string     `json:"employeeCount,omitempty"`
	PackageID      string     `json:"packageId"`
	BillingCycle   string     `json:"billingCycle"`
	TrialDays      int        `json:"trialDays"`
	MaxUsers       int        `json:"maxUsers"`
	MaxStorageGB   int        `json:"maxStorageGb"`
	CustomDomain   string     `json:"customDomain,omitempty"`
	Features       []string   `json:"features"`
	DatabaseRegion string     `json:"databaseRegion"`
	Owner          OwnerDTO   `json:"owner"`
	Company        CompanyDTO `json:"company"`
	TermsAccepted  bool       `json:"termsAccepted"`
}

// UpdateTenantRequestDTO matches the downstream UpdateTenantRequest schema.
// All fields are optional; nil means "do not change this field".
type UpdateTenantRequestDTO struct {
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	Status       *string `json:"status,omitempty"`
	PackageID    *string `json:"packageId,omitempty"`
	MaxUsers     *int    `json:"maxUsers,omitempty"`
	MaxStorageGB *int    `json:"maxStorageGb,omitempty"`
	CustomDomain *string `json:"customDomain,omitempty"`
}

// TenantListResponseDTO matches the downstream paged TenantList schema.
type TenantListResponseDTO struct {
	Items      []TenantDTO `json:"items"`
	TotalCount int         `json:"totalCount"`
}

// CodeAvailabilityDTO matches the downstream code-availability response.
type CodeAvailabilityDTO struct {
	Code        string `json:"code"`
	IsAvailable bool   `json:"isAvailable"`
	Message     string `json:"message"`
}
