package wizard

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/jsamuelsen11/tenant-console/internal/domain/catalog"
	"github.com/jsamuelsen11/tenant-console/internal/domain/tenant"
)

// Summary is the read-only projection rendered on the review step.
type Summary struct {
	Name          string
	Subdomain     string
	Description   string
	Industry      string
	EmployeeCount string

	Package      catalog.Package
	BillingCycle string
	TrialDays    int

	MaxUsers            int
	MaxStorageGB        int
	CustomDomainEnabled bool
	CustomDomain        string
	Features            []string
	DatabaseRegion      string

	Owner   tenant.Owner
	Company tenant.Company

	TermsAccepted bool
}

// Review projects the current values into a Summary.
func (s State) Review() Summary {
	v := s.Values
	maxUsers, _ := v.Int(FieldMaxUsers)
	maxStorage, _ := v.Int(FieldMaxStorage)
	trialDays, _ := v.Int(FieldTrialDays)

	sum := Summary{
		Name:                v.String(FieldName),
		Subdomain:           v.String(FieldSubdomain),
		Description:         v.String(FieldDescription),
		Industry:            v.String(FieldIndustry),
		EmployeeCount:       v.String(FieldEmployeeCount),
		Package:             s.Package(),
		BillingCycle:        v.String(FieldBillingCycle),
		TrialDays:           trialDays,
		MaxUsers:            maxUsers,
		MaxStorageGB:        maxStorage,
		CustomDomainEnabled: s.CustomDomainEnabled,
		Features:            v.Strings(FieldFeatures),
		DatabaseRegion:      v.String(FieldDatabaseRegion),
		Owner:               ownerOf(v),
		Company:             companyOf(v),
		TermsAccepted:       v.Bool(FieldTermsAccepted),
	}
	if s.CustomDomainEnabled {
		sum.CustomDomain = v.String(FieldCustomDomain)
	}
	return sum
}

// TenantURL is the hosted address of the tenant under baseDomain.
func (m Summary) TenantURL(baseDomain string) string {
	if m.Subdomain == "" {
		return ""
	}
	return fmt.Sprintf("https://%s.%s", m.Subdomain, strings.TrimPrefix(baseDomain, "."))
}

// PriceLabel renders the monthly price, e.g. "₺1,299/month".
func (m Summary) PriceLabel() string {
	return PriceLabel(m.Package)
}

// StorageLabel renders the storage quota in bytes-aware form, e.g. "100 GB".
func (m Summary) StorageLabel() string {
	return StorageLabel(m.MaxStorageGB)
}

// PriceLabel renders a package's monthly price.
func PriceLabel(p catalog.Package) string {
	symbol := p.Currency
	if p.Currency == "TRY" {
		symbol = "₺"
	}
	return fmt.Sprintf("%s%s/month", symbol, humanize.Comma(int64(p.MonthlyPrice)))
}

// StorageLabel renders a storage quota in gigabytes.
func StorageLabel(gb int) string {
	if gb == catalog.Unlimited {
		return "Unlimited"
	}
	return humanize.Bytes(uint64(gb) * humanize.GByte)
}

// Submission validates every step and builds the creation payload. The
// custom domain is included only while the toggle is on.
func (s State) Submission() (tenant.CreateRequest, error) {
	if err := s.ValidateAll(); err != nil {
		return tenant.CreateRequest{}, err
	}

	sum := s.Review()
	return tenant.CreateRequest{
		Name:           strings.TrimSpace(sum.Name),
		Code:           sum.Subdomain,
		Description:    sum.Description,
		Industry:       sum.Industry,
		EmployeeCount:  sum.EmployeeCount,
		PackageID:      s.PackageID,
		BillingCycle:   sum.BillingCycle,
		TrialDays:      sum.TrialDays,
		Limits:         tenant.Limits{MaxUsers: sum.MaxUsers, MaxStorageGB: sum.MaxStorageGB},
		CustomDomain:   sum.CustomDomain,
		Features:       sum.Features,
		DatabaseRegion: sum.DatabaseRegion,
		Owner:          sum.Owner,
		Company:        sum.Company,
		TermsAccepted:  sum.TermsAccepted,
	}, nil
}

func ownerOf(v Values) tenant.Owner {
	return tenant.Owner{
		FirstName: v.String(FieldOwnerFirstName),
		LastName:  v.String(FieldOwnerLastName),
		Email:     v.String(FieldOwnerEmail),
		Phone:     v.String(FieldOwnerPhone),
		Title:     v.String(FieldOwnerTitle),
	}
}

func companyOf(v Values) tenant.Company {
	return tenant.Company{
		Name:      v.String(FieldCompanyName),
		TaxNumber: v.String(FieldCompanyTaxNumber),
		Address:   v.String(FieldCompanyAddress),
		City:      v.String(FieldCompanyCity),
		Country:   v.String(FieldCompanyCountry),
	}
}
