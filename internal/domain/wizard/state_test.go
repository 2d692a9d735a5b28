package wizard

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jsamuelsen11/tenant-console/internal/domain"
	"github.com/jsamuelsen11/tenant-console/internal/domain/catalog"
	"github.com/jsamuelsen11/tenant-console/internal/domain/tenant"
)

// stepInputs holds a valid set of values for each step.
var stepInputs = map[Step]map[string]any{
	StepBasics: {
		FieldName:      "Acme",
		FieldSubdomain: "acme-co",
		FieldIndustry:  "technology",
	},
	StepPackage: {
		FieldPackage: "starter",
	},
	StepConfiguration: {},
	StepContact: {
		FieldOwnerFirstName: "A",
		FieldOwnerLastName:  "B",
		FieldOwnerEmail:     "a@b.com",
		FieldOwnerPhone:     "+905551112233",
		FieldCompanyName:    "Acme Ltd",
	},
	StepReview: {
		FieldTermsAccepted: true,
	},
}

func mustSet(t *testing.T, s State, path string, value any) State {
	t.Helper()

	next, err := s.Set(path, value)
	if err != nil {
		t.Fatalf("Set(%q, %v) error = %v", path, value, err)
	}
	return next
}

// filledThrough returns a state at step `at` with valid values for every
// step up to and including `through`.
func filledThrough(t *testing.T, through, at Step) State {
	t.Helper()

	s := New()
	for step := FirstStep; step <= through; step++ {
		var err error
		s, err = s.SetAll(stepInputs[step])
		if err != nil {
			t.Fatalf("SetAll(step %s) error = %v", step, err)
		}
	}
	s.Step = at
	return s
}

func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("error = nil, want validation error")
	}
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	s := New()

	if s.Step != StepBasics {
		t.Errorf("Step = %v, want %v", s.Step, StepBasics)
	}
	if s.PackageID != catalog.Professional {
		t.Errorf("PackageID = %q, want %q", s.PackageID, catalog.Professional)
	}
	if s.CustomDomainEnabled {
		t.Error("CustomDomainEnabled = true, want false")
	}

	want := map[string]any{
		FieldPackage:            "professional",
		FieldBillingCycle:       "monthly",
		FieldTrialDays:          14,
		FieldMaxUsers:           50,
		FieldMaxStorage:         100,
		FieldEnableCustomDomain: false,
		FieldDatabaseRegion:     "eu-west-1",
		FieldCompanyCountry:     "Türkiye",
	}
	if diff := cmp.Diff(want, s.Values.Flat()); diff != "" {
		t.Errorf("New().Values mismatch (-want +got):\n%s", diff)
	}
}

func TestState_Advance_BlocksOnMissingRequired(t *testing.T) {
	t.Parallel()

	for _, step := range []Step{StepBasics, StepPackage, StepConfiguration, StepContact} {
		for _, field := range RequiredFields(filledThrough(t, step, step), step) {
			t.Run(step.String()+"/"+field, func(t *testing.T) {
				t.Parallel()

				s := filledThrough(t, step, step)
				s = mustSet(t, s, FieldOwnerTitle, "untouched")
				s.Values = s.Values.With(field, nil)
				before := s.Values.Flat()

				got, err := s.Advance()

				requireValidationField(t, err, field)
				if got.Step != step {
					t.Errorf("Step = %v, want %v", got.Step, step)
				}
				if diff := cmp.Diff(before, got.Values.Flat()); diff != "" {
					t.Errorf("Values changed on failed advance (-want +got):\n%s", diff)
				}
			})
		}
	}
}

func TestState_Advance_ValidatesCurrentStepOnly(t *testing.T) {
	t.Parallel()

	// Contact fields are empty, but Basics is complete.
	s := filledThrough(t, StepBasics, StepBasics)

	got, err := s.Advance()
	if err != nil {
		t.Fatalf("Advance() error = %v", err)
	}
	if got.Step != StepPackage {
		t.Errorf("Step = %v, want %v", got.Step, StepPackage)
	}
	if s.Step != StepBasics {
		t.Errorf("receiver Step = %v, want %v (must not mutate)", s.Step, StepBasics)
	}
}

func TestState_Advance_ClampsAtReview(t *testing.T) {
	t.Parallel()

	s := filledThrough(t, StepReview, StepReview)

	got, err := s.Advance()
	if err != nil {
		t.Fatalf("Advance() error = %v", err)
	}
	if got.Step != StepReview {
		t.Errorf("Step = %v, want %v", got.Step, StepReview)
	}
}

func TestState_Advance_ReviewRequiresTerms(t *testing.T) {
	t.Parallel()

	s := filledThrough(t, StepContact, StepReview)

	_, err := s.Advance()
	requireValidationField(t, err, FieldTermsAccepted)
}

func TestState_Retreat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		from Step
		want Step
	}{
		{name: "floors at basics", from: StepBasics, want: StepBasics},
		{name: "package to basics", from: StepPackage, want: StepBasics},
		{name: "review to contact", from: StepReview, want: StepContact},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// Retreat never validates, so an empty form can go back.
			s := New()
			s.Step = tt.from

			if got := s.Retreat().Step; got != tt.want {
				t.Errorf("Retreat().Step = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestState_Subdomain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		subdomain string
		wantErr   bool
	}{
		{name: "minimum length", subdomain: "abc", wantErr: false},
		{name: "digits and hyphens", subdomain: "a-1-b", wantErr: false},
		{name: "all hyphens", subdomain: "---", wantErr: false},
		{name: "long", subdomain: "acme-corporation-2024", wantErr: false},
		{name: "too short", subdomain: "ab", wantErr: true},
		{name: "uppercase", subdomain: "Acme", wantErr: true},
		{name: "underscore", subdomain: "acme_co", wantErr: true},
		{name: "dot", subdomain: "acme.co", wantErr: true},
		{name: "empty", subdomain: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := filledThrough(t, StepBasics, StepBasics)
			s = mustSet(t, s, FieldSubdomain, tt.subdomain)

			got, err := s.Advance()
			if tt.wantErr {
				requireValidationField(t, err, FieldSubdomain)
				return
			}
			if err != nil {
				t.Fatalf("Advance() error = %v", err)
			}
			if got.Step != StepPackage {
				t.Errorf("Step = %v, want %v", got.Step, StepPackage)
			}
		})
	}
}

func TestState_PackageSurvivesNavigation(t *testing.T) {
	t.Parallel()

	s := filledThrough(t, StepBasics, StepPackage)

	s, err := s.SelectPackage(catalog.Enterprise)
	if err != nil {
		t.Fatalf("SelectPackage() error = %v", err)
	}
	s, err = s.Advance()
	if err != nil {
		t.Fatalf("Advance() error = %v", err)
	}
	s = s.Retreat()

	if s.Step != StepPackage {
		t.Errorf("Step = %v, want %v", s.Step, StepPackage)
	}
	if s.PackageID != catalog.Enterprise {
		t.Errorf("PackageID = %q, want %q", s.PackageID, catalog.Enterprise)
	}
	if got := s.Values.String(FieldPackage); got != "enterprise" {
		t.Errorf("Values[package] = %q, want %q", got, "enterprise")
	}
}

func TestState_SelectPackage_Unknown(t *testing.T) {
	t.Parallel()

	s := New()

	got, err := s.SelectPackage("platinum")
	if !errors.Is(err, ErrUnknownPackage) {
		t.Fatalf("SelectPackage() error = %v, want ErrUnknownPackage", err)
	}
	if got.PackageID != catalog.Professional {
		t.Errorf("PackageID = %q, want unchanged %q", got.PackageID, catalog.Professional)
	}

	_, err = s.Set(FieldPackage, "platinum")
	if !errors.Is(err, ErrUnknownPackage) {
		t.Errorf("Set(package) error = %v, want ErrUnknownPackage", err)
	}
}

func TestState_Set_MirrorsPackage(t *testing.T) {
	t.Parallel()

	s := mustSet(t, New(), FieldPackage, "starter")

	if s.PackageID != catalog.Starter {
		t.Errorf("PackageID = %q, want %q", s.PackageID, catalog.Starter)
	}
}

func TestState_CustomDomainToggle(t *testing.T) {
	t.Parallel()

	s := filledThrough(t, StepPackage, StepConfiguration)

	s = mustSet(t, s, FieldEnableCustomDomain, true)
	if !s.CustomDomainEnabled {
		t.Fatal("CustomDomainEnabled = false after enabling")
	}
	required := RequiredFields(s, StepConfiguration)
	if !contains(required, FieldCustomDomain) {
		t.Errorf("RequiredFields() = %v, want customDomain present", required)
	}
	_, err := s.Advance()
	requireValidationField(t, err, FieldCustomDomain)

	s = mustSet(t, s, FieldCustomDomain, "not a domain")
	_, err = s.Advance()
	requireValidationField(t, err, FieldCustomDomain)

	s = mustSet(t, s, FieldEnableCustomDomain, false)
	if contains(RequiredFields(s, StepConfiguration), FieldCustomDomain) {
		t.Error("RequiredFields() contains customDomain after disabling")
	}

	// The stale invalid value is kept but no longer blocks.
	got, err := s.Advance()
	if err != nil {
		t.Fatalf("Advance() error = %v, want hidden field ignored", err)
	}
	if got.Step != StepContact {
		t.Errorf("Step = %v, want %v", got.Step, StepContact)
	}
	if v := got.Values.String(FieldCustomDomain); v != "not a domain" {
		t.Errorf("Values[customDomain] = %q, want value retained", v)
	}
}

func TestState_CustomDomainFormats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		domain  string
		wantErr bool
	}{
		{domain: "app.acme.com", wantErr: false},
		{domain: "https://app.acme.com", wantErr: false},
		{domain: "http://acme.com.tr/", wantErr: false},
		{domain: "localhost", wantErr: true},
		{domain: "ftp://acme.com", wantErr: true},
		{domain: "acme com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.domain, func(t *testing.T) {
			t.Parallel()

			s := filledThrough(t, StepPackage, StepConfiguration)
			s = mustSet(t, s, FieldEnableCustomDomain, true)
			s = mustSet(t, s, FieldCustomDomain, tt.domain)

			_, err := s.Advance()
			if tt.wantErr {
				requireValidationField(t, err, FieldCustomDomain)
				return
			}
			if err != nil {
				t.Errorf("Advance() error = %v", err)
			}
		})
	}
}

func TestState_ConfigurationRanges(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		field   string
		value   any
		wantErr bool
	}{
		{name: "max users lower bound", field: FieldMaxUsers, value: 1},
		{name: "max users upper bound", field: FieldMaxUsers, value: 99999},
		{name: "max users zero", field: FieldMaxUsers, value: 0, wantErr: true},
		{name: "max users over", field: FieldMaxUsers, value: 100000, wantErr: true},
		{name: "max storage from json number", field: FieldMaxStorage, value: float64(250)},
		{name: "max storage from text", field: FieldMaxStorage, value: "42"},
		{name: "unknown feature", field: FieldFeatures, value: []any{"api_access", "teleport"}, wantErr: true},
		{name: "known features", field: FieldFeatures, value: []string{"api_access", "white_label"}},
		{name: "unknown region", field: FieldDatabaseRegion, value: "mars-1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := filledThrough(t, StepPackage, StepConfiguration)
			s = mustSet(t, s, tt.field, tt.value)

			_, err := s.Advance()
			if tt.wantErr {
				requireValidationField(t, err, tt.field)
				return
			}
			if err != nil {
				t.Errorf("Advance() error = %v", err)
			}
		})
	}
}

func TestState_PackageStepRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		field   string
		value   any
		wantErr bool
	}{
		{name: "yearly billing", field: FieldBillingCycle, value: "yearly"},
		{name: "weekly billing", field: FieldBillingCycle, value: "weekly", wantErr: true},
		{name: "no trial", field: FieldTrialDays, value: 0},
		{name: "max trial", field: FieldTrialDays, value: 90},
		{name: "negative trial", field: FieldTrialDays, value: -1, wantErr: true},
		{name: "long trial", field: FieldTrialDays, value: 91, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := filledThrough(t, StepPackage, StepPackage)
			s = mustSet(t, s, tt.field, tt.value)

			_, err := s.Advance()
			if tt.wantErr {
				requireValidationField(t, err, tt.field)
				return
			}
			if err != nil {
				t.Errorf("Advance() error = %v", err)
			}
		})
	}
}

func TestState_ContactEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{name: "plain", email: "ada@acme.com", valid: true},
		{name: "subdomain host", email: "ops@mail.acme.co.uk", valid: true},
		{name: "not an address", email: "not-an-email"},
		{name: "dotless host", email: "a@b"},
		{name: "localhost", email: "owner@localhost"},
		{name: "one letter tld", email: "a@b.c"},
		{name: "numeric tld", email: "a@b.123"},
		{name: "display name", email: "Ada <ada@acme.com>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := filledThrough(t, StepContact, StepContact)
			s = mustSet(t, s, FieldOwnerEmail, tt.email)

			_, err := s.Advance()
			if tt.valid {
				if err != nil {
					t.Fatalf("Advance() error = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, FieldOwnerEmail)
		})
	}
}

func TestState_Set_Coercion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		field string
		value any
	}{
		{name: "unknown field", field: "owner.nickname", value: "x"},
		{name: "string field with number", field: FieldName, value: 12},
		{name: "int field with fraction", field: FieldMaxUsers, value: 1.5},
		{name: "int field with text", field: FieldMaxUsers, value: "many"},
		{name: "int field beyond range", field: FieldMaxUsers, value: 1e300},
		{name: "int field infinite", field: FieldMaxUsers, value: math.Inf(1)},
		{name: "int field not a number", field: FieldMaxUsers, value: math.NaN()},
		{name: "bool field with text", field: FieldTermsAccepted, value: "sure"},
		{name: "list field with numbers", field: FieldFeatures, value: []any{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := New()
			got, err := s.Set(tt.field, tt.value)

			requireValidationField(t, err, tt.field)
			if diff := cmp.Diff(s.Values.Flat(), got.Values.Flat()); diff != "" {
				t.Errorf("Values changed on failed Set (-want +got):\n%s", diff)
			}
		})
	}
}

func TestState_SetAll_Atomic(t *testing.T) {
	t.Parallel()

	s := New()

	got, err := s.SetAll(map[string]any{
		FieldName:     "Acme",
		FieldMaxUsers: "lots",
		FieldPackage:  "platinum",
	})

	requireValidationField(t, err, FieldMaxUsers)
	requireValidationField(t, err, FieldPackage)
	if got.Values.Has(FieldName) {
		t.Error("SetAll() applied name despite failures")
	}
}

func TestState_ValuesAccumulate(t *testing.T) {
	t.Parallel()

	s := filledThrough(t, StepContact, StepBasics)
	for range 4 {
		var err error
		s, err = s.Advance()
		if err != nil {
			t.Fatalf("Advance() error = %v", err)
		}
	}
	for range 4 {
		s = s.Retreat()
	}

	for step, inputs := range stepInputs {
		if step == StepReview {
			continue
		}
		for field := range inputs {
			if !s.Values.Has(field) {
				t.Errorf("Values missing %q after navigation", field)
			}
		}
	}
}

func TestState_Submission(t *testing.T) {
	t.Parallel()

	s := filledThrough(t, StepReview, StepReview)

	got, err := s.Submission()
	if err != nil {
		t.Fatalf("Submission() error = %v", err)
	}

	want := tenant.CreateRequest{
		Name:           "Acme",
		Code:           "acme-co",
		Industry:       "technology",
		PackageID:      catalog.Starter,
		BillingCycle:   "monthly",
		TrialDays:      14,
		Limits:         tenant.Limits{MaxUsers: 50, MaxStorageGB: 100},
		DatabaseRegion: "eu-west-1",
		Owner: tenant.Owner{
			FirstName: "A",
			LastName:  "B",
			Email:     "a@b.com",
			Phone:     "+905551112233",
		},
		Company: tenant.Company{
			Name:    "Acme Ltd",
			Country: "Türkiye",
		},
		TermsAccepted: true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Submission() mismatch (-want +got):\n%s", diff)
	}
	if err := got.Validate(); err != nil {
		t.Errorf("CreateRequest.Validate() error = %v", err)
	}
}

func TestState_Submission_CustomDomain(t *testing.T) {
	t.Parallel()

	s := filledThrough(t, StepReview, StepReview)
	s = mustSet(t, s, FieldCustomDomain, "app.acme.com")

	got, err := s.Submission()
	if err != nil {
		t.Fatalf("Submission() error = %v", err)
	}
	if got.CustomDomain != "" {
		t.Errorf("CustomDomain = %q, want excluded while disabled", got.CustomDomain)
	}

	s = mustSet(t, s, FieldEnableCustomDomain, true)
	got, err = s.Submission()
	if err != nil {
		t.Fatalf("Submission() error = %v", err)
	}
	if got.CustomDomain != "app.acme.com" {
		t.Errorf("CustomDomain = %q, want %q", got.CustomDomain, "app.acme.com")
	}
}

func TestState_Submission_RequiresEveryStep(t *testing.T) {
	t.Parallel()

	s := filledThrough(t, StepBasics, StepReview)
	s = mustSet(t, s, FieldTermsAccepted, true)

	_, err := s.Submission()

	requireValidationField(t, err, FieldOwnerEmail)
	requireValidationField(t, err, FieldOwnerPhone)
}

func TestState_Review(t *testing.T) {
	t.Parallel()

	s := filledThrough(t, StepReview, StepReview)

	sum := s.Review()

	if sum.Package.ID != catalog.Starter {
		t.Errorf("Package.ID = %q, want %q", sum.Package.ID, catalog.Starter)
	}
	if got := sum.Owner.FullName(); got != "A B" {
		t.Errorf("Owner.FullName() = %q, want %q", got, "A B")
	}
	if got := sum.TenantURL("stocker.app"); got != "https://acme-co.stocker.app" {
		t.Errorf("TenantURL() = %q", got)
	}
	if got := sum.PriceLabel(); got != "₺99/month" {
		t.Errorf("PriceLabel() = %q, want %q", got, "₺99/month")
	}
	if got := sum.StorageLabel(); got != "100 GB" {
		t.Errorf("StorageLabel() = %q, want %q", got, "100 GB")
	}
}

func TestStorageLabel_Unlimited(t *testing.T) {
	t.Parallel()

	if got := StorageLabel(catalog.Unlimited); got != "Unlimited" {
		t.Errorf("StorageLabel(Unlimited) = %q", got)
	}
}

func TestValues_Nested(t *testing.T) {
	t.Parallel()

	v := NewValues(nil).
		With(FieldName, "Acme").
		With(FieldOwnerEmail, "a@b.com").
		With(FieldOwnerFirstName, "A")

	want := map[string]any{
		"name": "Acme",
		"owner": map[string]any{
			"email":     "a@b.com",
			"firstName": "A",
		},
	}
	if diff := cmp.Diff(want, v.Nested()); diff != "" {
		t.Errorf("Nested() mismatch (-want +got):\n%s", diff)
	}
}

func TestValues_WithDoesNotMutate(t *testing.T) {
	t.Parallel()

	base := NewValues(map[string]any{FieldName: "Acme"})
	_ = base.With(FieldName, "Other")

	if got := base.String(FieldName); got != "Acme" {
		t.Errorf("base.String(name) = %q, want %q", got, "Acme")
	}
}

func TestStep_String(t *testing.T) {
	t.Parallel()

	if got := StepConfiguration.String(); got != "configuration" {
		t.Errorf("String() = %q", got)
	}
	if got := Step(9).String(); got != "step(9)" {
		t.Errorf("String() = %q", got)
	}
	if got := StepReview.Title(); got != "Review & Confirm" {
		t.Errorf("Title() = %q", got)
	}
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
