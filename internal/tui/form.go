package tui

import (
	"strconv"
	"strings"

	"github.com/jsamuelsen11/tenant-console/internal/domain/catalog"
	"github.com/jsamuelsen11/tenant-console/internal/domain/wizard"
)

// widget is how a field is edited on screen.
type widget int

const (
	widgetText widget = iota
	widgetChoice
	widgetToggle
	widgetMulti
	widgetPackages
)

type field struct {
	path    string
	label   string
	widget  widget
	options []string
	hint    string
}

// stepFields is the on-screen layout of each step, in focus order.
var stepFields = map[wizard.Step][]field{
	wizard.StepBasics: {
		{path: wizard.FieldName, label: "Tenant name", hint: "Acme Corporation"},
		{path: wizard.FieldSubdomain, label: "Subdomain", hint: "acme"},
		{path: wizard.FieldDescription, label: "Description"},
		{path: wizard.FieldIndustry, label: "Industry", widget: widgetChoice, options: wizard.Industries},
		{path: wizard.FieldEmployeeCount, label: "Employees", widget: widgetChoice, options: wizard.EmployeeCounts},
	},
	wizard.StepPackage: {
		{path: wizard.FieldPackage, label: "Package", widget: widgetPackages},
		{path: wizard.FieldBillingCycle, label: "Billing cycle", widget: widgetChoice, options: wizard.BillingCycles},
		{path: wizard.FieldTrialDays, label: "Trial days", hint: "14"},
	},
	wizard.StepConfiguration: {
		{path: wizard.FieldMaxUsers, label: "Max users", hint: "50"},
		{path: wizard.FieldMaxStorage, label: "Max storage (GB)", hint: "100"},
		{path: wizard.FieldEnableCustomDomain, label: "Use a custom domain", widget: widgetToggle},
		{path: wizard.FieldCustomDomain, label: "Custom domain", hint: "app.acme.com"},
		{path: wizard.FieldFeatures, label: "Features", widget: widgetMulti, options: wizard.Features},
		{path: wizard.FieldDatabaseRegion, label: "Database region", widget: widgetChoice, options: wizard.DatabaseRegions},
	},
	wizard.StepContact: {
		{path: wizard.FieldOwnerFirstName, label: "Owner first name"},
		{path: wizard.FieldOwnerLastName, label: "Owner last name"},
		{path: wizard.FieldOwnerEmail, label: "Owner email", hint: "owner@acme.com"},
		{path: wizard.FieldOwnerPhone, label: "Owner phone", hint: "+90 555 000 0000"},
		{path: wizard.FieldOwnerTitle, label: "Owner title"},
		{path: wizard.FieldCompanyName, label: "Company legal name"},
		{path: wizard.FieldCompanyTaxNumber, label: "Tax number"},
		{path: wizard.FieldCompanyAddress, label: "Address"},
		{path: wizard.FieldCompanyCity, label: "City"},
		{path: wizard.FieldCompanyCountry, label: "Country"},
	},
	wizard.StepReview: {
		{path: wizard.FieldTermsAccepted, label: "I accept the terms of service", widget: widgetToggle},
	},
}

// packageOptions lists the catalog ids in card order.
func packageOptions() []string {
	ids := catalog.IDs()
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

// cycle moves from current by delta through options, wrapping at both
// ends. An unset current starts before the first option.
func cycle(options []string, current string, delta int) string {
	if len(options) == 0 {
		return current
	}
	i := -1
	for j, o := range options {
		if o == current {
			i = j
			break
		}
	}
	if i < 0 && delta < 0 {
		i = 0
	}
	n := len(options)
	return options[((i+delta)%n+n)%n]
}

// textValue renders a stored value for a text input.
func textValue(v wizard.Values, path string) string {
	if n, ok := v.Int(path); ok {
		return strconv.Itoa(n)
	}
	return v.String(path)
}

// inputValue converts text input contents back into a field value. Blank
// integer fields are cleared rather than sent as text.
func inputValue(path, text string) any {
	if kind, _ := wizard.KindOf(path); kind == wizard.KindInt {
		text = strings.TrimSpace(text)
		if text == "" {
			return nil
		}
	}
	return text
}
