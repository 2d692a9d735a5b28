package tui

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/tenant-console/internal/domain"
	"github.com/jsamuelsen11/tenant-console/internal/domain/catalog"
	"github.com/jsamuelsen11/tenant-console/internal/domain/tenant"
	"github.com/jsamuelsen11/tenant-console/internal/domain/wizard"
	"github.com/jsamuelsen11/tenant-console/internal/ports"
	"github.com/jsamuelsen11/tenant-console/mocks"
)

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func typed(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newSession(t *testing.T, step wizard.Step, values map[string]any) *ports.WizardSession {
	t.Helper()
	st, err := wizard.New().SetAll(values)
	require.NoError(t, err)
	st.Step = step
	return &ports.WizardSession{ID: "w-1", State: st}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok, "Update returned %T", next)
	return nm, cmd
}

// collect runs cmd and flattens batches. Only use it on commands that do not
// sleep (service calls, spinner.Tick, tea.Quit).
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, collect(c)...)
	}
	return out
}

func findMsg[T tea.Msg](t *testing.T, msgs []tea.Msg) T {
	t.Helper()
	for _, msg := range msgs {
		if m, ok := msg.(T); ok {
			return m
		}
	}
	var zero T
	t.Fatalf("no %T among %v", zero, msgs)
	return zero
}

func started(t *testing.T, svc ports.WizardService, sess *ports.WizardSession) Model {
	t.Helper()
	m, _ := update(t, New(context.Background(), svc, "stocker.app"), sessionMsg{sess})
	return m
}

func TestModel_StartsSession(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockWizardService(t)
	svc.EXPECT().Start(mock.Anything).Return(newSession(t, wizard.StepBasics, nil), nil)

	m := New(context.Background(), svc, "stocker.app")
	if !strings.Contains(m.View(), "Starting wizard") {
		t.Errorf("View() before start = %q", m.View())
	}

	m, _ = update(t, m, findMsg[sessionMsg](t, collect(m.Init())))

	if m.SessionID() != "w-1" {
		t.Errorf("SessionID() = %q, want w-1", m.SessionID())
	}
	view := m.View()
	for _, want := range []string{"Step 1 of 5 · Basic Information", "Tenant name *", "Subdomain *", "Industry *"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}

func TestModel_StartFailureQuits(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockWizardService(t)
	svc.EXPECT().Start(mock.Anything).Return(nil, domain.ErrUnavailable)

	m := New(context.Background(), svc, "stocker.app")
	m, cmd := update(t, m, findMsg[startFailedMsg](t, collect(m.Init())))

	require.ErrorIs(t, m.Err(), domain.ErrUnavailable)
	findMsg[tea.QuitMsg](t, collect(cmd))
	if !strings.Contains(m.View(), "Could not start the wizard") {
		t.Errorf("View() = %q", m.View())
	}
}

func TestModel_AdvanceShowsFieldErrors(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockWizardService(t)
	sess := newSession(t, wizard.StepBasics, nil)
	m := started(t, svc, sess)

	m, _ = update(t, m, typed("Acme"))

	svc.EXPECT().SetFields(mock.Anything, "w-1", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, values map[string]any) (*ports.WizardSession, error) {
			if values[wizard.FieldName] != "Acme" {
				t.Errorf("committed name = %v, want Acme", values[wizard.FieldName])
			}
			return sess, nil
		})
	svc.EXPECT().Advance(mock.Anything, "w-1").Return(nil, &domain.ValidationError{Fields: map[string]string{
		wizard.FieldSubdomain: domain.MsgRequired,
		wizard.FieldIndustry:  domain.MsgRequired,
	}})

	m, cmd := update(t, m, keyEnter)
	if !m.busy {
		t.Error("busy = false while advancing")
	}
	m, _ = update(t, m, findMsg[errMsg](t, collect(cmd)))

	if m.busy {
		t.Error("busy = true after the call returned")
	}
	if m.focus != 1 {
		t.Errorf("focus = %d, want 1 (first offending field)", m.focus)
	}
	view := m.View()
	if strings.Count(view, domain.MsgRequired) != 2 {
		t.Errorf("View() should show two inline errors:\n%s", view)
	}
	if !strings.Contains(view, "Please fix the highlighted fields.") {
		t.Errorf("View() missing notice:\n%s", view)
	}
}

func TestModel_AdvanceLoadsNextStep(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockWizardService(t)
	m := started(t, svc, newSession(t, wizard.StepBasics, nil))

	svc.EXPECT().SetFields(mock.Anything, "w-1", mock.Anything).Return(newSession(t, wizard.StepBasics, nil), nil)
	svc.EXPECT().Advance(mock.Anything, "w-1").Return(newSession(t, wizard.StepPackage, nil), nil)

	m, cmd := update(t, m, keyEnter)
	m, _ = update(t, m, findMsg[sessionMsg](t, collect(cmd)))

	view := m.View()
	for _, want := range []string{"Step 2 of 5 · Package Selection", "Professional", "Recommended", "₺299/month"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
	if got := m.draftString(wizard.FieldPackage); got != catalog.DefaultPackageID.String() {
		t.Errorf("package draft = %q, want %q", got, catalog.DefaultPackageID)
	}
}

func TestModel_KeysIgnoredWhileBusy(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockWizardService(t)
	m := started(t, svc, newSession(t, wizard.StepPackage, nil))
	m.busy = true

	_, cmd := update(t, m, keyEnter)
	if cmd != nil {
		t.Error("enter while busy returned a command")
	}
}

func TestModel_RetreatCommitsAndGoesBack(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockWizardService(t)
	m := started(t, svc, newSession(t, wizard.StepPackage, nil))

	svc.EXPECT().SetFields(mock.Anything, "w-1", mock.Anything).Return(newSession(t, wizard.StepPackage, nil), nil)
	svc.EXPECT().Retreat(mock.Anything, "w-1").Return(newSession(t, wizard.StepBasics, map[string]any{
		wizard.FieldName: "Acme",
	}), nil)

	m, cmd := update(t, m, keyEsc)
	m, _ = update(t, m, findMsg[sessionMsg](t, collect(cmd)))

	if !strings.Contains(m.View(), "Basic Information") {
		t.Errorf("View() not on basics:\n%s", m.View())
	}
	if got := m.inputs[wizard.FieldName].Value(); got != "Acme" {
		t.Errorf("name input = %q, want stored value Acme", got)
	}

	if _, cmd := update(t, m, keyEsc); cmd != nil {
		t.Error("esc on the first step returned a command")
	}
}

func TestModel_RetreatSkipsRejectedValues(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockWizardService(t)
	sess := newSession(t, wizard.StepConfiguration, nil)
	m := started(t, svc, sess)

	m, _ = update(t, m, typed("x"))

	var commits []map[string]any
	svc.EXPECT().SetFields(mock.Anything, "w-1", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, values map[string]any) (*ports.WizardSession, error) {
			commits = append(commits, values)
			if _, ok := values[wizard.FieldMaxUsers]; ok {
				return nil, domain.NewValidationError(wizard.FieldMaxUsers, "must be an integer")
			}
			return sess, nil
		}).Times(2)
	svc.EXPECT().Retreat(mock.Anything, "w-1").Return(newSession(t, wizard.StepPackage, nil), nil)

	m, cmd := update(t, m, keyEsc)
	m, _ = update(t, m, findMsg[sessionMsg](t, collect(cmd)))

	if m.session.State.Step != wizard.StepPackage {
		t.Errorf("step = %v, want %v", m.session.State.Step, wizard.StepPackage)
	}
	require.Len(t, commits, 2)
	if got, _ := commits[0][wizard.FieldMaxUsers].(string); !strings.HasSuffix(got, "x") {
		t.Errorf("first commit maxUsers = %q, want the typed text", got)
	}
	if _, ok := commits[1][wizard.FieldMaxUsers]; ok {
		t.Error("second commit still carries the rejected maxUsers value")
	}
	if m.notice != "" {
		t.Errorf("notice = %q, want none after going back", m.notice)
	}
}

func TestModel_SubdomainAvailabilityHint(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockWizardService(t)
	m := started(t, svc, newSession(t, wizard.StepBasics, nil))
	m, _ = update(t, m, keyTab)

	svc.EXPECT().CheckCode(mock.Anything, "w-1", "acme").
		Return(&ports.CodeCheck{Code: "acme", Status: ports.CodeCheckPending}, nil)

	m, cmd := update(t, m, typed("acme"))
	m, poll := update(t, m, findMsg[codeCheckMsg](t, collect(cmd)))

	if poll == nil || !m.polling {
		t.Fatal("pending check did not start polling")
	}
	if !strings.Contains(m.View(), "checking availability") {
		t.Errorf("View() missing pending hint:\n%s", m.View())
	}

	m, poll = update(t, m, codeCheckMsg{
		check:    &ports.CodeCheck{Code: "acme", Status: ports.CodeCheckDone, Available: true},
		fromPoll: true,
	})
	if poll != nil || m.polling {
		t.Error("finished check kept polling")
	}
	if !strings.Contains(m.View(), "acme.stocker.app is available") {
		t.Errorf("View() missing available hint:\n%s", m.View())
	}
}

func TestModel_SubdomainHintForOlderValueHidden(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockWizardService(t)
	m := started(t, svc, newSession(t, wizard.StepBasics, map[string]any{wizard.FieldSubdomain: "acme-co"}))

	m, _ = update(t, m, codeCheckMsg{check: &ports.CodeCheck{Code: "acme", Status: ports.CodeCheckDone}})
	if strings.Contains(m.View(), "already taken") {
		t.Errorf("View() shows a result for an older subdomain:\n%s", m.View())
	}

	m, _ = update(t, m, codeCheckMsg{check: &ports.CodeCheck{Code: "acme-co", Status: ports.CodeCheckDone}})
	if !strings.Contains(m.View(), "acme-co is already taken") {
		t.Errorf("View() missing taken hint:\n%s", m.View())
	}
}

func TestModel_SelectPackage(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockWizardService(t)
	m := started(t, svc, newSession(t, wizard.StepPackage, nil))

	want := catalog.PackageID(cycle(packageOptions(), catalog.DefaultPackageID.String(), 1))
	selected := newSession(t, wizard.StepPackage, map[string]any{wizard.FieldPackage: want.String()})
	svc.EXPECT().SelectPackage(mock.Anything, "w-1", want).Return(selected, nil)

	m, cmd := update(t, m, keyRight)
	m, _ = update(t, m, findMsg[sessionMsg](t, collect(cmd)))

	if got := m.draftString(wizard.FieldPackage); got != want.String() {
		t.Errorf("package draft = %q, want %q", got, want)
	}
	if m.focus != 0 {
		t.Errorf("focus = %d, selecting a package must not reload the step", m.focus)
	}
}

func TestModel_CustomDomainToggle(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockWizardService(t)
	m := started(t, svc, newSession(t, wizard.StepConfiguration, nil))

	if strings.Contains(m.View(), "Custom domain") {
		t.Fatalf("custom domain input shown while the toggle is off:\n%s", m.View())
	}

	m, _ = update(t, m, keyTab)
	m, _ = update(t, m, keyTab)
	m, _ = update(t, m, keySpace)

	if !strings.Contains(m.View(), "Custom domain *") {
		t.Errorf("custom domain input missing or not required:\n%s", m.View())
	}

	m, _ = update(t, m, keySpace)
	if strings.Contains(m.View(), "Custom domain") {
		t.Errorf("custom domain input shown after toggling off:\n%s", m.View())
	}
}

func TestModel_FeatureMultiSelect(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockWizardService(t)
	m := started(t, svc, newSession(t, wizard.StepConfiguration, nil))

	for range 3 {
		m, _ = update(t, m, keyTab)
	}
	if f, _ := m.focused(); f.path != wizard.FieldFeatures {
		t.Fatalf("focused %q, want features", f.path)
	}

	m, _ = update(t, m, keySpace)
	m, _ = update(t, m, keyRight)
	m, _ = update(t, m, keySpace)
	m, _ = update(t, m, keySpace)

	want := []string{wizard.Features[0]}
	if diff := cmp.Diff(want, m.stepValues()[wizard.FieldFeatures]); diff != "" {
		t.Errorf("features mismatch (-want +got):\n%s", diff)
	}
}

func TestModel_SubmitCreatesTenant(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockWizardService(t)
	sess := newSession(t, wizard.StepReview, map[string]any{
		wizard.FieldName:      "Acme",
		wizard.FieldSubdomain: "acme",
	})
	sum := sess.State.Review()
	svc.EXPECT().Review(mock.Anything, "w-1").Return(&sum, nil)

	m, cmd := update(t, New(context.Background(), svc, "stocker.app"), sessionMsg{sess})
	m, _ = update(t, m, findMsg[summaryMsg](t, collect(cmd)))

	if !strings.Contains(m.View(), "https://acme.stocker.app") {
		t.Errorf("View() missing tenant URL:\n%s", m.View())
	}

	m, _ = update(t, m, keySpace)

	svc.EXPECT().SetFields(mock.Anything, "w-1", map[string]any{wizard.FieldTermsAccepted: true}).Return(sess, nil)
	svc.EXPECT().Submit(mock.Anything, "w-1").Return(&tenant.Tenant{ID: "t-9", Name: "Acme"}, nil)

	m, cmd = update(t, m, keyEnter)
	if !strings.Contains(m.View(), "Creating tenant") {
		t.Errorf("View() missing spinner line:\n%s", m.View())
	}

	m, quit := update(t, m, findMsg[createdMsg](t, collect(cmd)))
	findMsg[tea.QuitMsg](t, collect(quit))

	require.NotNil(t, m.Created())
	if m.Created().ID != "t-9" {
		t.Errorf("Created().ID = %q, want t-9", m.Created().ID)
	}
	if !strings.Contains(m.View(), `Tenant "Acme" created (t-9).`) {
		t.Errorf("View() = %q", m.View())
	}
}

func TestModel_SubmitFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantNotice string
	}{
		{
			name:       "directory down",
			err:        fmt.Errorf("creating tenant: %w", domain.ErrUnavailable),
			wantNotice: "creating tenant",
		},
		{
			name: "earlier step invalid",
			err: &domain.ValidationError{Fields: map[string]string{
				wizard.FieldOwnerEmail: "must be a valid email address",
			}},
			wantNotice: "Earlier steps need attention: owner.email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockWizardService(t)
			sess := newSession(t, wizard.StepReview, map[string]any{wizard.FieldTermsAccepted: true})
			m := started(t, svc, sess)

			svc.EXPECT().SetFields(mock.Anything, "w-1", mock.Anything).Return(sess, nil)
			svc.EXPECT().Submit(mock.Anything, "w-1").Return(nil, tt.err)

			m, cmd := update(t, m, keyEnter)
			m, _ = update(t, m, findMsg[errMsg](t, collect(cmd)))

			if m.submitting || m.Created() != nil {
				t.Errorf("submitting = %v, created = %v after failure", m.submitting, m.Created())
			}
			if !strings.Contains(m.View(), tt.wantNotice) {
				t.Errorf("View() missing %q:\n%s", tt.wantNotice, m.View())
			}
		})
	}
}

func TestCycle(t *testing.T) {
	t.Parallel()

	opts := []string{"a", "b", "c"}
	tests := []struct {
		current string
		delta   int
		want    string
	}{
		{current: "", delta: 1, want: "a"},
		{current: "", delta: -1, want: "c"},
		{current: "a", delta: 1, want: "b"},
		{current: "c", delta: 1, want: "a"},
		{current: "a", delta: -1, want: "c"},
	}

	for _, tt := range tests {
		if got := cycle(opts, tt.current, tt.delta); got != tt.want {
			t.Errorf("cycle(%q, %d) = %q, want %q", tt.current, tt.delta, got, tt.want)
		}
	}
}

func TestInputValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		text string
		want any
	}{
		{path: wizard.FieldMaxUsers, text: "  ", want: nil},
		{path: wizard.FieldMaxUsers, text: " 25 ", want: "25"},
		{path: wizard.FieldTrialDays, text: "soon", want: "soon"},
		{path: wizard.FieldName, text: " ", want: " "},
	}

	for _, tt := range tests {
		if got := inputValue(tt.path, tt.text); got != tt.want {
			t.Errorf("inputValue(%q, %q) = %v, want %v", tt.path, tt.text, got, tt.want)
		}
	}
}

func TestModel_ReviewTruncatesLongValues(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("Kurumsal kaynak planlama ", 6)
	svc := mocks.NewMockWizardService(t)
	sess := newSession(t, wizard.StepReview, map[string]any{
		wizard.FieldName:        "Acme",
		wizard.FieldSubdomain:   "acme",
		wizard.FieldDescription: long,
	})
	sum := sess.State.Review()
	svc.EXPECT().Review(mock.Anything, "w-1").Return(&sum, nil)

	m, cmd := update(t, New(context.Background(), svc, "stocker.app"), sessionMsg{sess})
	m, _ = update(t, m, findMsg[summaryMsg](t, collect(cmd)))

	view := m.View()
	if strings.Contains(view, long) {
		t.Errorf("View() shows the full description:\n%s", view)
	}
	if !strings.Contains(view, "…") {
		t.Errorf("View() missing truncation marker:\n%s", view)
	}
}
