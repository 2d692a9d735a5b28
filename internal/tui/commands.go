package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jsamuelsen11/tenant-console/internal/domain"
	"github.com/jsamuelsen11/tenant-console/internal/domain/catalog"
	"github.com/jsamuelsen11/tenant-console/internal/domain/tenant"
	"github.com/jsamuelsen11/tenant-console/internal/domain/wizard"
	"github.com/jsamuelsen11/tenant-console/internal/ports"
)

// codeCheckPollInterval is how often a pending availability check is
// re-read.
const codeCheckPollInterval = 250 * time.Millisecond

type (
	sessionMsg struct{ session *ports.WizardSession }
	summaryMsg struct{ summary *wizard.Summary }
	createdMsg struct{ tenant *tenant.Tenant }

	codeCheckMsg struct {
		check    *ports.CodeCheck
		fromPoll bool
	}
	pollCodeCheckMsg struct{}

	// errMsg reports a failed service call. The session is unchanged.
	errMsg struct{ err error }
	// startFailedMsg ends the program: there is no session to work on.
	startFailedMsg struct{ err error }
)

type sessionCall func(ctx context.Context, id string) (*ports.WizardSession, error)

func (m Model) startCmd() tea.Cmd {
	return func() tea.Msg {
		sess, err := m.svc.Start(m.ctx)
		if err != nil {
			return startFailedMsg{err}
		}
		return sessionMsg{sess}
	}
}

// commitCmd stores the step's values and then runs next, so navigation
// never loses what was typed.
func (m Model) commitCmd(values map[string]any, next sessionCall) tea.Cmd {
	id := m.session.ID
	return func() tea.Msg {
		if _, err := m.svc.SetFields(m.ctx, id, values); err != nil {
			return errMsg{err}
		}
		sess, err := next(m.ctx, id)
		if err != nil {
			return errMsg{err}
		}
		return sessionMsg{sess}
	}
}

// retreatCmd goes back one step without validating. Values the session
// rejects are left out of the commit instead of blocking navigation.
func (m Model) retreatCmd(values map[string]any) tea.Cmd {
	id := m.session.ID
	return func() tea.Msg {
		_, err := m.svc.SetFields(m.ctx, id, values)
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			kept := make(map[string]any, len(values))
			for path, v := range values {
				if _, bad := verr.Fields[path]; !bad {
					kept[path] = v
				}
			}
			_, err = m.svc.SetFields(m.ctx, id, kept)
			if errors.As(err, &verr) {
				err = nil
			}
		}
		if err != nil {
			return errMsg{err}
		}
		sess, err := m.svc.Retreat(m.ctx, id)
		if err != nil {
			return errMsg{err}
		}
		return sessionMsg{sess}
	}
}

func (m Model) selectPackageCmd(pkg catalog.PackageID) tea.Cmd {
	id := m.session.ID
	return func() tea.Msg {
		sess, err := m.svc.SelectPackage(m.ctx, id, pkg)
		if err != nil {
			return errMsg{err}
		}
		return sessionMsg{sess}
	}
}

func (m Model) reviewCmd() tea.Cmd {
	id := m.session.ID
	return func() tea.Msg {
		sum, err := m.svc.Review(m.ctx, id)
		if err != nil {
			return errMsg{err}
		}
		return summaryMsg{sum}
	}
}

func (m Model) submitCmd(values map[string]any) tea.Cmd {
	id := m.session.ID
	return func() tea.Msg {
		if _, err := m.svc.SetFields(m.ctx, id, values); err != nil {
			return errMsg{err}
		}
		created, err := m.svc.Submit(m.ctx, id)
		if err != nil {
			return errMsg{err}
		}
		return createdMsg{created}
	}
}

func (m Model) checkCodeCmd(code string) tea.Cmd {
	id := m.session.ID
	return func() tea.Msg {
		check, err := m.svc.CheckCode(m.ctx, id, code)
		if err != nil {
			return errMsg{err}
		}
		return codeCheckMsg{check: check}
	}
}

func (m Model) codeCheckResultCmd() tea.Cmd {
	id := m.session.ID
	return func() tea.Msg {
		check, err := m.svc.CodeCheckResult(m.ctx, id)
		if err != nil {
			return errMsg{err}
		}
		return codeCheckMsg{check: check, fromPoll: true}
	}
}

func pollCodeCheck() tea.Cmd {
	return tea.Tick(codeCheckPollInterval, func(time.Time) tea.Msg {
		return pollCodeCheckMsg{}
	})
}
