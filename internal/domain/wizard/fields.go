package wizard

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/tenant-console/internal/domain"
)

// Field paths. Nested groups use dotted paths.
const (
	FieldName          = "name"
	FieldSubdomain     = "subdomain"
	FieldDescription   = "description"
	FieldIndustry      = "industry"
	FieldEmployeeCount = "employeeCount"

	FieldPackage      = "package"
	FieldBillingCycle = "billingCycle"
	FieldTrialDays    = "trialDays"

	FieldMaxUsers           = "maxUsers"
	FieldMaxStorage         = "maxStorage"
	FieldEnableCustomDomain = "enableCustomDomain"
	FieldCustomDomain       = "customDomain"
	FieldFeatures           = "features"
	FieldDatabaseRegion     = "databaseRegion"

	FieldOwnerFirstName = "owner.firstName"
	FieldOwnerLastName  = "owner.lastName"
	FieldOwnerEmail     = "owner.email"
	FieldOwnerPhone     = "owner.phone"
	FieldOwnerTitle     = "owner.title"

	FieldCompanyName      = "company.name"
	FieldCompanyTaxNumber = "company.taxNumber"
	FieldCompanyAddress   = "company.address"
	FieldCompanyCity      = "company.city"
	FieldCompanyCountry   = "company.country"

	FieldTermsAccepted = "termsAccepted"
)

// Kind is the value type stored for a field.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindBool
	KindStrings
)

// fieldKinds is the registry of every field the wizard accepts.
var fieldKinds = map[string]Kind{
	FieldName:          KindString,
	FieldSubdomain:     KindString,
	FieldDescription:   KindString,
	FieldIndustry:      KindString,
	FieldEmployeeCount: KindString,

	FieldPackage:      KindString,
	FieldBillingCycle: KindString,
	FieldTrialDays:    KindInt,

	FieldMaxUsers:           KindInt,
	FieldMaxStorage:         KindInt,
	FieldEnableCustomDomain: KindBool,
	FieldCustomDomain:       KindString,
	FieldFeatures:           KindStrings,
	FieldDatabaseRegion:     KindString,

	FieldOwnerFirstName: KindString,
	FieldOwnerLastName:  KindString,
	FieldOwnerEmail:     KindString,
	FieldOwnerPhone:     KindString,
	FieldOwnerTitle:     KindString,

	FieldCompanyName:      KindString,
	FieldCompanyTaxNumber: KindString,
	FieldCompanyAddress:   KindString,
	FieldCompanyCity:      KindString,
	FieldCompanyCountry:   KindString,

	FieldTermsAccepted: KindBool,
}

// Option lists offered by the form's select inputs.
var (
	Industries      = []string{"technology", "finance", "healthcare", "education", "retail", "manufacturing", "other"}
	EmployeeCounts  = []string{"1-10", "11-50", "51-200", "201-500", "500+"}
	BillingCycles   = []string{"monthly", "yearly"}
	Features        = []string{"api_access", "custom_branding", "advanced_analytics", "priority_support", "white_label", "sla_guarantee"}
	DatabaseRegions = []string{"eu-west-1", "eu-central-1", "us-east-1", "ap-southeast-1"}
)

// Resource bounds for the configuration step.
const (
	MinLimit     = 1
	MaxLimit     = 99999
	MinTrialDays = 0
	MaxTrialDays = 90
)

// KindOf returns the registered kind for a field path.
func KindOf(path string) (Kind, bool) {
	k, ok := fieldKinds[path]
	return k, ok
}

// coerce converts an input value (typically decoded from JSON or typed into
// a terminal) into the field's registered kind.
func coerce(path string, value any) (any, error) {
	kind, ok := fieldKinds[path]
	if !ok {
		return nil, domain.NewValidationError(path, "unknown field")
	}
	if value == nil {
		return nil, nil
	}

	switch kind {
	case KindString:
		if s, ok := value.(string); ok {
			return s, nil
		}
		return nil, domain.NewValidationError(path, "must be a string")

	case KindInt:
		n, ok := toInt(value)
		if !ok {
			return nil, domain.NewValidationError(path, "must be an integer")
		}
		return n, nil

	case KindBool:
		switch v := value.(type) {
		case bool:
			return v, nil
		case string:
			b, err := strconv.ParseBool(v)
			if err == nil {
				return b, nil
			}
		}
		return nil, domain.NewValidationError(path, "must be a boolean")

	case KindStrings:
		switch v := value.(type) {
		case []string:
			return append([]string(nil), v...), nil
		case []any:
			out := make([]string, 0, len(v))
			for _, item := range v {
				s, ok := item.(string)
				if !ok {
					return nil, domain.NewValidationError(path, "must be a list of strings")
				}
				out = append(out, s)
			}
			return out, nil
		}
		return nil, domain.NewValidationError(path, "must be a list of strings")
	}

	return nil, fmt.Errorf("wizard: unhandled kind %d for %s", kind, path)
}

func toInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float64:
		if v != math.Trunc(v) || v > math.MaxInt32 || v < math.MinInt32 {
			return 0, false
		}
		return int(v), true
	case json.Number:
		n, err := v.Int64()
		return int(n), err == nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		return n, err == nil
	default:
		return 0, false
	}
}
