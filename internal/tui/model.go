// Package tui is the terminal rendition of the provisioning wizard. The
// model drives a ports.WizardService, so validation, the debounced
// subdomain check and submission behave exactly as they do over HTTP.
package tui

import (
	"context"
	"errors"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jsamuelsen11/tenant-console/internal/domain"
	"github.com/jsamuelsen11/tenant-console/internal/domain/catalog"
	"github.com/jsamuelsen11/tenant-console/internal/domain/tenant"
	"github.com/jsamuelsen11/tenant-console/internal/domain/wizard"
	"github.com/jsamuelsen11/tenant-console/internal/ports"
)

// Model is the bubbletea model of one wizard session.
type Model struct {
	ctx        context.Context
	svc        ports.WizardService
	baseDomain string

	keys    KeyMap
	help    help.Model
	spinner spinner.Model

	session *ports.WizardSession
	summary *wizard.Summary
	check   *ports.CodeCheck
	polling bool

	// Local edits of the current step. They are committed to the session
	// on every step change.
	inputs map[string]textinput.Model
	draft  map[string]any
	cursor map[string]int
	focus  int

	errs   map[string]string
	notice string

	busy       bool
	submitting bool
	created    *tenant.Tenant
	err        error
}

// New returns a model that opens a session on Init. baseDomain is used to
// show the tenant URL on the review step.
func New(ctx context.Context, svc ports.WizardService, baseDomain string) Model {
	return Model{
		ctx:        ctx,
		svc:        svc,
		baseDomain: baseDomain,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		inputs:     make(map[string]textinput.Model),
		draft:      make(map[string]any),
		cursor:     make(map[string]int),
	}
}

// Created returns the tenant created by a successful submission.
func (m Model) Created() *tenant.Tenant {
	return m.created
}

// Err returns the error that prevented the session from starting.
func (m Model) Err() error {
	return m.err
}

// SessionID returns the wizard session id, or "" before it started.
func (m Model) SessionID() string {
	if m.session == nil {
		return ""
	}
	return m.session.ID
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.startCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case startFailedMsg:
		m.err = msg.err
		return m, tea.Quit

	case sessionMsg:
		return m.applySession(msg.session)

	case summaryMsg:
		m.summary = msg.summary
		return m, nil

	case codeCheckMsg:
		return m.applyCodeCheck(msg)

	case pollCodeCheckMsg:
		if m.session == nil {
			m.polling = false
			return m, nil
		}
		return m, m.codeCheckResultCmd()

	case createdMsg:
		m.submitting = false
		m.created = msg.tenant
		return m, tea.Quit

	case errMsg:
		m.busy = false
		m.submitting = false
		m.polling = false
		m.applyError(msg.err)
		return m, nil

	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.session == nil || m.busy || m.submitting {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		m.moveFocus(1)
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		m.moveFocus(-1)
		return m, nil
	case key.Matches(msg, m.keys.Advance):
		return m.advance()
	case key.Matches(msg, m.keys.Back):
		return m.retreat()
	}

	f, ok := m.focused()
	if !ok {
		return m, nil
	}
	if f.widget == widgetText {
		return m.updateInput(f, msg)
	}
	return m.updateWidget(f, msg)
}

func (m Model) updateInput(f field, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	in := m.inputs[f.path]
	before := in.Value()

	in, cmd := in.Update(msg)
	m.inputs[f.path] = in

	if in.Value() == before {
		return m, cmd
	}
	delete(m.errs, f.path)
	if f.path == wizard.FieldSubdomain {
		return m, tea.Batch(cmd, m.checkCodeCmd(in.Value()))
	}
	return m, cmd
}

func (m Model) updateWidget(f field, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	delta := 0
	switch {
	case key.Matches(msg, m.keys.Left):
		delta = -1
	case key.Matches(msg, m.keys.Right):
		delta = 1
	}
	toggle := key.Matches(msg, m.keys.Toggle)

	switch f.widget {
	case widgetChoice:
		if delta != 0 {
			m.draft[f.path] = cycle(f.options, m.draftString(f.path), delta)
			delete(m.errs, f.path)
		}

	case widgetPackages:
		if delta != 0 {
			next := cycle(packageOptions(), m.draftString(f.path), delta)
			m.draft[f.path] = next
			m.busy = true
			return m, m.selectPackageCmd(catalog.PackageID(next))
		}

	case widgetToggle:
		if toggle {
			on, _ := m.draft[f.path].(bool)
			m.draft[f.path] = !on
			delete(m.errs, f.path)
		}

	case widgetMulti:
		n := len(f.options)
		c := m.cursor[f.path]
		switch {
		case delta != 0:
			m.cursor[f.path] = ((c+delta)%n + n) % n
		case toggle:
			selected, _ := m.draft[f.path].([]string)
			opt := f.options[c]
			if i := slices.Index(selected, opt); i >= 0 {
				selected = slices.Delete(slices.Clone(selected), i, i+1)
			} else {
				selected = append(slices.Clone(selected), opt)
			}
			m.draft[f.path] = selected
			delete(m.errs, f.path)
		}
	}
	return m, nil
}

func (m Model) advance() (tea.Model, tea.Cmd) {
	m.notice = ""
	if m.session.State.Step == wizard.StepReview {
		m.submitting = true
		return m, tea.Batch(m.spinner.Tick, m.submitCmd(m.stepValues()))
	}
	m.busy = true
	return m, m.commitCmd(m.stepValues(), m.svc.Advance)
}

func (m Model) retreat() (tea.Model, tea.Cmd) {
	if m.session.State.Step == wizard.FirstStep {
		return m, nil
	}
	m.notice = ""
	m.busy = true
	return m, m.retreatCmd(m.stepValues())
}

func (m Model) applySession(sess *ports.WizardSession) (tea.Model, tea.Cmd) {
	m.busy = false
	stepChanged := m.session == nil || m.session.State.Step != sess.State.Step
	m.session = sess

	if !stepChanged {
		// Same step: keep local edits, only mirror the package selection.
		m.draft[wizard.FieldPackage] = sess.State.PackageID.String()
		delete(m.errs, wizard.FieldPackage)
		return m, nil
	}

	m.loadStep()
	if sess.State.Step == wizard.StepReview {
		m.summary = nil
		return m, m.reviewCmd()
	}
	return m, nil
}

func (m Model) applyCodeCheck(msg codeCheckMsg) (tea.Model, tea.Cmd) {
	m.check = msg.check
	if msg.check.Status != ports.CodeCheckPending {
		if msg.fromPoll {
			m.polling = false
		}
		return m, nil
	}
	if msg.fromPoll || !m.polling {
		m.polling = true
		return m, pollCodeCheck()
	}
	return m, nil
}

func (m *Model) applyError(err error) {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		m.notice = err.Error()
		return
	}

	m.errs = maps.Clone(verr.Fields)
	for i, f := range m.visibleFields() {
		if _, bad := m.errs[f.path]; bad {
			m.focus = i
			m.focusField()
			m.notice = "Please fix the highlighted fields."
			return
		}
	}
	// Submission re-validates every step; name what lies elsewhere.
	paths := slices.Sorted(maps.Keys(m.errs))
	m.notice = "Earlier steps need attention: " + strings.Join(paths, ", ")
}

// loadStep resets the local edits from the session's stored values.
func (m *Model) loadStep() {
	st := m.session.State
	m.inputs = make(map[string]textinput.Model)
	m.draft = make(map[string]any)
	m.cursor = make(map[string]int)
	m.errs = nil
	m.focus = 0

	for _, f := range stepFields[st.Step] {
		switch f.widget {
		case widgetText:
			m.inputs[f.path] = newInput(f, textValue(st.Values, f.path))
		case widgetToggle:
			m.draft[f.path] = st.Values.Bool(f.path)
		case widgetMulti:
			m.draft[f.path] = st.Values.Strings(f.path)
		case widgetPackages:
			m.draft[f.path] = st.PackageID.String()
		default:
			m.draft[f.path] = st.Values.String(f.path)
		}
	}
	m.focusField()
}

func newInput(f field, value string) textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = f.hint
	in.CharLimit = 255
	in.Cursor.SetMode(cursor.CursorStatic)
	in.SetValue(value)
	return in
}

// stepValues is what gets committed for the current step. Hidden fields are
// included; the schema ignores them.
func (m Model) stepValues() map[string]any {
	values := make(map[string]any, len(m.inputs)+len(m.draft))
	for path, in := range m.inputs {
		values[path] = inputValue(path, in.Value())
	}
	maps.Copy(values, m.draft)
	return values
}

func (m Model) customDomainOn() bool {
	on, _ := m.draft[wizard.FieldEnableCustomDomain].(bool)
	return on
}

func (m Model) visibleFields() []field {
	if m.session == nil {
		return nil
	}
	var out []field
	for _, f := range stepFields[m.session.State.Step] {
		if f.path == wizard.FieldCustomDomain && !m.customDomainOn() {
			continue
		}
		out = append(out, f)
	}
	return out
}

func (m Model) focused() (field, bool) {
	fields := m.visibleFields()
	if m.focus < 0 || m.focus >= len(fields) {
		return field{}, false
	}
	return fields[m.focus], true
}

func (m *Model) moveFocus(delta int) {
	n := len(m.visibleFields())
	if n == 0 {
		return
	}
	m.focus = ((m.focus+delta)%n + n) % n
	m.focusField()
}

func (m *Model) focusField() {
	f, _ := m.focused()
	for path, in := range m.inputs {
		if path == f.path {
			in.Focus()
		} else {
			in.Blur()
		}
		m.inputs[path] = in
	}
}

func (m Model) draftString(path string) string {
	s, _ := m.draft[path].(string)
	return s
}

// requiredNow reports the fields the current step requires given the local
// custom domain toggle.
func (m Model) requiredNow() []string {
	st := m.session.State
	if st.Step == wizard.StepConfiguration {
		st.CustomDomainEnabled = m.customDomainOn()
	}
	return wizard.RequiredFields(st, st.Step)
}
