// Package wizard implements the tenant provisioning wizard: a linear
// five-step form whose per-step rules are declared as data and whose state
// is an immutable value. Every operation returns a new State.
package wizard

import (
	"errors"
	"fmt"
	"maps"
	"sort"

	"github.com/jsamuelsen11/tenant-console/internal/domain"
	"github.com/jsamuelsen11/tenant-console/internal/domain/catalog"
)

// ErrUnknownPackage is returned when selecting a package id that is not in
// the catalog.
var ErrUnknownPackage = fmt.Errorf("unknown package: %w", domain.ErrValidation)

// Step is a wizard position.
type Step int

const (
	StepBasics Step = iota
	StepPackage
	StepConfiguration
	StepContact
	StepReview
)

// FirstStep and LastStep bound navigation.
const (
	FirstStep = StepBasics
	LastStep  = StepReview
)

var stepNames = [...]string{"basics", "package", "configuration", "contact", "review"}

var stepTitles = [...]string{
	"Basic Information",
	"Package Selection",
	"Configuration",
	"Contact Details",
	"Review & Confirm",
}

// String returns the step's machine name.
func (s Step) String() string {
	if s < FirstStep || s > LastStep {
		return fmt.Sprintf("step(%d)", int(s))
	}
	return stepNames[s]
}

// Title returns the step's display title.
func (s Step) Title() string {
	if s < FirstStep || s > LastStep {
		return s.String()
	}
	return stepTitles[s]
}

// Steps returns every step in order.
func Steps() []Step {
	return []Step{StepBasics, StepPackage, StepConfiguration, StepContact, StepReview}
}

// State is the whole wizard: current step, accumulated values and the two
// derived selections the schema depends on.
type State struct {
	Step                Step
	Values              Values
	PackageID           catalog.PackageID
	CustomDomainEnabled bool
}

// defaults are the initial form values.
var defaults = map[string]any{
	FieldPackage:            catalog.DefaultPackageID.String(),
	FieldBillingCycle:       "monthly",
	FieldTrialDays:          14,
	FieldMaxUsers:           50,
	FieldMaxStorage:         100,
	FieldEnableCustomDomain: false,
	FieldDatabaseRegion:     "eu-west-1",
	FieldCompanyCountry:     "Türkiye",
}

// New returns a wizard at the first step with default values seeded.
func New() State {
	return State{
		Step:      FirstStep,
		Values:    NewValues(defaults),
		PackageID: catalog.DefaultPackageID,
	}
}

// Set returns a new State with path set to value. Values are coerced to the
// field's kind. Setting "package" or "enableCustomDomain" also updates the
// mirrored selection.
func (s State) Set(path string, value any) (State, error) {
	v, err := coerce(path, value)
	if err != nil {
		return s, err
	}

	next := s
	switch path {
	case FieldPackage:
		id := catalog.PackageID(stringOf(v))
		if !id.IsValid() {
			return s, fmt.Errorf("%w: %q", ErrUnknownPackage, id)
		}
		next.PackageID = id
	case FieldEnableCustomDomain:
		next.CustomDomainEnabled, _ = v.(bool)
	}
	next.Values = s.Values.With(path, v)
	return next, nil
}

// SetAll applies every entry atomically in sorted path order. Any failure
// leaves the receiver unchanged and reports all failing fields together.
func (s State) SetAll(values map[string]any) (State, error) {
	paths := make([]string, 0, len(values))
	for p := range values {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	next := s
	fields := make(map[string]string)
	for _, p := range paths {
		updated, err := next.Set(p, values[p])
		if err != nil {
			var verr *domain.ValidationError
			switch {
			case errors.As(err, &verr):
				maps.Copy(fields, verr.Fields)
			case errors.Is(err, ErrUnknownPackage):
				fields[p] = err.Error()
			default:
				return s, err
			}
			continue
		}
		next = updated
	}
	if len(fields) > 0 {
		return s, &domain.ValidationError{Fields: fields}
	}
	return next, nil
}

// SelectPackage returns a new State with id selected and mirrored into the
// "package" value.
func (s State) SelectPackage(id catalog.PackageID) (State, error) {
	if !id.IsValid() {
		return s, fmt.Errorf("%w: %q", ErrUnknownPackage, id)
	}
	next := s
	next.PackageID = id
	next.Values = s.Values.With(FieldPackage, id.String())
	return next, nil
}

// Package resolves the selected package against the catalog.
func (s State) Package() catalog.Package {
	p, _ := catalog.Lookup(s.PackageID)
	return p
}

// Validate checks the rules of step against the current values.
func (s State) Validate(step Step) error {
	return validate(s.Values, Schema(s, step))
}

// ValidateAll checks every step, including terms acceptance.
func (s State) ValidateAll() error {
	var rules []Rule
	for _, step := range Steps() {
		rules = append(rules, Schema(s, step)...)
	}
	return validate(s.Values, rules)
}

// Advance validates the current step only. On success the step moves
// forward (staying at LastStep when already there); on failure the
// returned State is the receiver, unchanged, and the error is a
// *domain.ValidationError.
func (s State) Advance() (State, error) {
	if err := s.Validate(s.Step); err != nil {
		return s, err
	}
	next := s
	if next.Step < LastStep {
		next.Step++
	}
	return next, nil
}

// Retreat moves back one step without validation, stopping at FirstStep.
func (s State) Retreat() State {
	next := s
	if next.Step > FirstStep {
		next.Step--
	}
	return next
}

// IsLast reports whether the wizard is on the review step.
func (s State) IsLast() bool {
	return s.Step == LastStep
}

func stringOf(v any) string {
	str, _ := v.(string)
	return str
}
