// Package tenant defines the tenant directory entities: the Tenant record,
// the creation payload produced by the provisioning wizard, partial
// updates, and list queries.
package tenant

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jsamuelsen11/tenant-console/internal/domain"
	"github.com/jsamuelsen11/tenant-console/internal/domain/catalog"
)

// MinCodeLength is the minimum length of a tenant code (subdomain).
const MinCodeLength = 3

var codePattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Owner is the primary administrator contact of a tenant.
type Owner struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Title     string
}

// FullName joins first and last name.
func (o Owner) FullName() string {
	return strings.TrimSpace(o.FirstName + " " + o.LastName)
}

// Company holds the legal entity details of a tenant.
type Company struct {
	Name      string
	TaxNumber string
	Address   string
	City      string
	Country   string
}

// Limits are the resource quotas applied to a tenant.
type Limits struct {
	MaxUsers     int
	MaxStorageGB int
}

// Tenant is a customer organization record in the directory.
type Tenant struct {
	ID             string
	Name           string
	Code           string
	Description    string
	Industry       string
	EmployeeCount  string
	Status         Status
	PackageID      catalog.PackageID
	BillingCycle   string
	TrialDays      int
	Limits         Limits
	CustomDomain   string
	Features       []string
	DatabaseRegion string
	Owner          Owner
	Company        Company
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// URL is where the tenant is served: its custom domain when set, otherwise
// its subdomain under baseDomain.
func (t *Tenant) URL(baseDomain string) string {
	if t.CustomDomain != "" {
		return "https://" + t.CustomDomain
	}
	return fmt.Sprintf("https://%s.%s", t.Code, strings.TrimPrefix(baseDomain, "."))
}

// CreateRequest is the payload submitted to the directory when the
// provisioning wizard completes.
type CreateRequest struct {
	Name           string
	Code           string
	Description    string
	Industry       string
	EmployeeCount  string
	PackageID      catalog.PackageID
	BillingCycle   string
	TrialDays      int
	Limits         Limits
	CustomDomain   string
	Features       []string
	DatabaseRegion string
	Owner          Owner
	Company        Company
	TermsAccepted  bool
}

// Validate checks the invariants the directory relies on. The wizard
// enforces the full per-step rules; this is the last line before submission.
// Returns a *domain.ValidationError with per-field details, or nil.
func (r *CreateRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if msg := CodeProblem(r.Code); msg != "" {
		fields["subdomain"] = msg
	}
	if !r.PackageID.IsValid() {
		fields["package"] = fmt.Sprintf("invalid: %q", r.PackageID)
	}
	if strings.TrimSpace(r.Owner.Email) == "" {
		fields["owner.email"] = domain.MsgRequired
	}
	if !r.TermsAccepted {
		fields["termsAccepted"] = "terms of service must be accepted"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// CodeProblem returns a human-readable reason why code is not a valid
// tenant code, or "" when it is valid.
func CodeProblem(code string) string {
	switch {
	case code == "":
		return domain.MsgRequired
	case !codePattern.MatchString(code):
		return "may contain only lowercase letters, digits and hyphens"
	case len(code) < MinCodeLength:
		return fmt.Sprintf("must be at least %d characters", MinCodeLength)
	default:
		return ""
	}
}

// ValidateCode returns a *domain.ValidationError for an invalid tenant code.
func ValidateCode(code string) error {
	if msg := CodeProblem(code); msg != "" {
		return domain.NewValidationError("code", msg)
	}
	return nil
}

// Patch is a partial update. Nil fields are left unchanged.
type Patch struct {
	Name         *string
	Description  *string
	Status       *Status
	PackageID    *catalog.PackageID
	MaxUsers     *int
	MaxStorageGB *int
	CustomDomain *string
}

// IsEmpty reports whether the patch changes nothing.
func (p *Patch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Status == nil &&
		p.PackageID == nil && p.MaxUsers == nil && p.MaxStorageGB == nil &&
		p.CustomDomain == nil
}

// Validate checks that any provided fields have valid values.
func (p *Patch) Validate() error {
	fields := make(map[string]string)

	if p.IsEmpty() {
		fields["body"] = "at least one field must be provided"
	}
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		fields["name"] = domain.MsgMustNotEmpty
	}
	if p.Status != nil && !p.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", *p.Status)
	}
	if p.PackageID != nil && !p.PackageID.IsValid() {
		fields["package"] = fmt.Sprintf("invalid: %q", *p.PackageID)
	}
	if p.MaxUsers != nil && *p.MaxUsers < 1 {
		fields["maxUsers"] = fmt.Sprintf("must be positive, got %d", *p.MaxUsers)
	}
	if p.MaxStorageGB != nil && *p.MaxStorageGB < 1 {
		fields["maxStorage"] = fmt.Sprintf("must be positive, got %d", *p.MaxStorageGB)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// CodeAvailability is the directory's answer to a code uniqueness check.
type CodeAvailability struct {
	Code        string
	IsAvailable bool
	Message     string
}
