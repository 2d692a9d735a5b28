package wizard

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"slices"
	"strings"

	"github.com/jsamuelsen11/tenant-console/internal/domain"
	"github.com/jsamuelsen11/tenant-console/internal/domain/catalog"
	"github.com/jsamuelsen11/tenant-console/internal/domain/tenant"
)

// RuleKind discriminates the check a Rule performs.
type RuleKind int

const (
	RuleRequired RuleKind = iota
	RulePattern
	RuleMinLength
	RuleEmail
	RuleURL
	RuleOneOf
	RuleSubset
	RuleRange
	RuleTrue
	RulePackage
)

// Rule is a single declarative constraint on one field. Every kind except
// RuleRequired and RuleTrue passes when the field is empty, so optional
// fields are validated only once the user fills them in.
type Rule struct {
	Field   string
	Kind    RuleKind
	Message string
	Pattern *regexp.Regexp
	Min     int
	Max     int
	Options []string
}

var subdomainPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Check evaluates the rule against v and returns the failure message, or ""
// when the rule holds.
func (r Rule) Check(v Values) string {
	if r.Kind == RuleRequired {
		if isEmpty(v, r.Field) {
			return r.message(domain.MsgRequired)
		}
		return ""
	}
	if r.Kind == RuleTrue {
		if !v.Bool(r.Field) {
			return r.message("must be accepted")
		}
		return ""
	}
	if isEmpty(v, r.Field) {
		return ""
	}

	switch r.Kind {
	case RulePattern:
		if !r.Pattern.MatchString(v.String(r.Field)) {
			return r.message("has an invalid format")
		}
	case RuleMinLength:
		if len([]rune(v.String(r.Field))) < r.Min {
			return r.message(fmt.Sprintf("must be at least %d characters", r.Min))
		}
	case RuleEmail:
		if !isEmail(v.String(r.Field)) {
			return r.message("must be a valid email address")
		}
	case RuleURL:
		if !isURLShaped(v.String(r.Field)) {
			return r.message("must be a valid domain or URL")
		}
	case RuleOneOf:
		if !slices.Contains(r.Options, v.String(r.Field)) {
			return r.message("must be one of: " + strings.Join(r.Options, ", "))
		}
	case RuleSubset:
		for _, item := range v.Strings(r.Field) {
			if !slices.Contains(r.Options, item) {
				return r.message(fmt.Sprintf("unknown option %q", item))
			}
		}
	case RuleRange:
		n, ok := v.Int(r.Field)
		if !ok || n < r.Min || n > r.Max {
			return r.message(fmt.Sprintf("must be between %d and %d", r.Min, r.Max))
		}
	case RulePackage:
		if !catalog.PackageID(v.String(r.Field)).IsValid() {
			return r.message("must be one of: " + strings.Join(packageIDStrings(), ", "))
		}
	}
	return ""
}

func (r Rule) message(fallback string) string {
	if r.Message != "" {
		return r.Message
	}
	return fallback
}

func isEmpty(v Values, path string) bool {
	raw, ok := v.Get(path)
	if !ok || raw == nil {
		return true
	}
	switch val := raw.(type) {
	case string:
		return strings.TrimSpace(val) == ""
	case []string:
		return len(val) == 0
	default:
		return false
	}
}

// isEmail accepts a bare address whose domain is dotted and ends in a label
// of at least two letters.
func isEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	at := strings.LastIndex(s, "@")
	if at < 0 {
		return false
	}
	host := s[at+1:]
	dot := strings.LastIndex(host, ".")
	if dot <= 0 {
		return false
	}
	tld := host[dot+1:]
	return len(tld) >= 2 && strings.IndexFunc(tld, func(r rune) bool {
		return (r < 'a' || r > 'z') && (r < 'A' || r > 'Z')
	}) < 0
}

// isURLShaped accepts either a bare host ("app.acme.com") or an absolute
// http(s) URL with a dotted host.
func isURLShaped(s string) bool {
	raw := s
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return false
	}
	host := u.Hostname()
	return host != "" && strings.Contains(host, ".") && !strings.ContainsAny(host, " _")
}

func packageIDStrings() []string {
	ids := catalog.IDs()
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

// Schema returns the rules that apply to step for the given state. The
// configuration step only includes customDomain rules while the custom
// domain toggle is on.
func Schema(s State, step Step) []Rule {
	switch step {
	case StepBasics:
		return []Rule{
			{Field: FieldName, Kind: RuleRequired},
			{Field: FieldSubdomain, Kind: RuleRequired},
			{
				Field: FieldSubdomain, Kind: RulePattern, Pattern: subdomainPattern,
				Message: "may contain only lowercase letters, digits and hyphens",
			},
			{Field: FieldSubdomain, Kind: RuleMinLength, Min: tenant.MinCodeLength},
			{Field: FieldIndustry, Kind: RuleRequired},
			{Field: FieldIndustry, Kind: RuleOneOf, Options: Industries},
			{Field: FieldEmployeeCount, Kind: RuleOneOf, Options: EmployeeCounts},
		}

	case StepPackage:
		return []Rule{
			{Field: FieldPackage, Kind: RuleRequired, Message: "a package must be selected"},
			{Field: FieldPackage, Kind: RulePackage},
			{Field: FieldBillingCycle, Kind: RuleOneOf, Options: BillingCycles},
			{Field: FieldTrialDays, Kind: RuleRange, Min: MinTrialDays, Max: MaxTrialDays},
		}

	case StepConfiguration:
		rules := []Rule{
			{Field: FieldMaxUsers, Kind: RuleRequired},
			{Field: FieldMaxUsers, Kind: RuleRange, Min: MinLimit, Max: MaxLimit},
			{Field: FieldMaxStorage, Kind: RuleRequired},
			{Field: FieldMaxStorage, Kind: RuleRange, Min: MinLimit, Max: MaxLimit},
		}
		if s.CustomDomainEnabled {
			rules = append(rules,
				Rule{Field: FieldCustomDomain, Kind: RuleRequired},
				Rule{Field: FieldCustomDomain, Kind: RuleURL},
			)
		}
		return append(rules,
			Rule{Field: FieldFeatures, Kind: RuleSubset, Options: Features},
			Rule{Field: FieldDatabaseRegion, Kind: RuleOneOf, Options: DatabaseRegions},
		)

	case StepContact:
		return []Rule{
			{Field: FieldOwnerFirstName, Kind: RuleRequired},
			{Field: FieldOwnerLastName, Kind: RuleRequired},
			{Field: FieldOwnerEmail, Kind: RuleRequired},
			{Field: FieldOwnerEmail, Kind: RuleEmail},
			{Field: FieldOwnerPhone, Kind: RuleRequired},
		}

	case StepReview:
		return []Rule{
			{Field: FieldTermsAccepted, Kind: RuleTrue, Message: "terms of service must be accepted"},
		}
	}
	return nil
}

// RequiredFields lists the fields step requires in state s, in schema order.
func RequiredFields(s State, step Step) []string {
	var out []string
	for _, r := range Schema(s, step) {
		if (r.Kind == RuleRequired || r.Kind == RuleTrue) && !slices.Contains(out, r.Field) {
			out = append(out, r.Field)
		}
	}
	return out
}

// validate runs rules and collects the first failure per field.
func validate(v Values, rules []Rule) error {
	fields := make(map[string]string)
	for _, r := range rules {
		if _, failed := fields[r.Field]; failed {
			continue
		}
		if msg := r.Check(v); msg != "" {
			fields[r.Field] = msg
		}
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
