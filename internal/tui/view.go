package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/jsamuelsen11/tenant-console/internal/domain/catalog"
	"github.com/jsamuelsen11/tenant-console/internal/domain/tenant"
	"github.com/jsamuelsen11/tenant-console/internal/domain/wizard"
	"github.com/jsamuelsen11/tenant-console/internal/ports"
)

// summaryValueWidth caps review values, in terminal cells, so a long
// description does not wrap the summary.
const summaryValueWidth = 48

// View implements tea.Model.
func (m Model) View() string {
	switch {
	case m.err != nil:
		return appStyle.Render(noticeStyle.Render("Could not start the wizard: "+m.err.Error())) + "\n"
	case m.created != nil:
		return appStyle.Render(doneStyle.Render(
			fmt.Sprintf("%s Tenant %q created (%s).", iconDone, m.created.Name, m.created.ID))) + "\n"
	case m.session == nil:
		return appStyle.Render("Starting wizard...") + "\n"
	}

	st := m.session.State
	var b strings.Builder
	b.WriteString(titleStyle.Render("New tenant"))
	b.WriteString("\n\n")
	b.WriteString(m.renderProgress())
	fmt.Fprintf(&b, "\n\nStep %d of %d · %s\n\n", int(st.Step)+1, len(wizard.Steps()), st.Step.Title())

	if st.Step == wizard.StepReview {
		b.WriteString(m.renderSummary())
		b.WriteString("\n")
	}

	required := m.requiredNow()
	for i, f := range m.visibleFields() {
		b.WriteString(m.renderField(f, i == m.focus, slices.Contains(required, f.path)))
	}

	if m.submitting {
		fmt.Fprintf(&b, "\n%s Creating tenant...\n", m.spinner.View())
	}
	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return appStyle.Render(b.String()) + "\n"
}

func (m Model) renderProgress() string {
	current := m.session.State.Step
	parts := make([]string, 0, len(wizard.Steps()))
	for _, s := range wizard.Steps() {
		switch {
		case s < current:
			parts = append(parts, stepDoneStyle.Render(iconDone+" "+s.Title()))
		case s == current:
			parts = append(parts, stepCurrentStyle.Render(iconCurrent+" "+s.Title()))
		default:
			parts = append(parts, stepTodoStyle.Render(iconTodo+" "+s.Title()))
		}
	}
	return strings.Join(parts, stepTodoStyle.Render(" ─ "))
}

func (m Model) renderField(f field, focused, required bool) string {
	label := f.label
	if required {
		label += requiredStyle.Render(" *")
	}
	ls := labelStyle
	if focused {
		ls = focusedLabelStyle
	}

	var value string
	switch f.widget {
	case widgetText:
		value = m.inputs[f.path].View()
	case widgetChoice:
		value = renderChoice(m.draftString(f.path), focused)
	case widgetToggle:
		on, _ := m.draft[f.path].(bool)
		value = checkbox(on)
	case widgetMulti:
		value = m.renderMulti(f, focused)
	case widgetPackages:
		value = "\n" + m.renderPackages()
	}

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, ls.Render(label), value))
	b.WriteString("\n")
	if msg := m.errs[f.path]; msg != "" {
		b.WriteString(errorStyle.Render(msg))
		b.WriteString("\n")
	}
	if f.path == wizard.FieldSubdomain {
		if hint := m.subdomainHint(); hint != "" {
			b.WriteString(hint)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderChoice(value string, focused bool) string {
	if value == "" {
		value = "(choose)"
	}
	if focused {
		return optionStyle.Render("‹ " + value + " ›")
	}
	return value
}

func checkbox(on bool) string {
	if on {
		return iconChecked
	}
	return iconUnchecked
}

func (m Model) renderMulti(f field, focused bool) string {
	selected, _ := m.draft[f.path].([]string)
	lines := make([]string, len(f.options))
	for i, opt := range f.options {
		line := checkbox(slices.Contains(selected, opt)) + " " + opt
		if focused && i == m.cursor[f.path] {
			line = optionStyle.Render(line)
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderPackages() string {
	selected := m.draftString(wizard.FieldPackage)
	pkgs := catalog.All()
	cards := make([]string, 0, len(pkgs))
	for _, p := range pkgs {
		style := cardStyle
		if p.ID.String() == selected {
			style = selectedCardStyle
		}

		var c strings.Builder
		c.WriteString(lipgloss.NewStyle().Bold(true).Render(p.Name))
		if p.Recommended {
			c.WriteString(" " + badgeStyle.Render("Recommended"))
		}
		c.WriteString("\n" + wizard.PriceLabel(p) + "\n")
		for _, feat := range p.Features {
			c.WriteString("\n• " + feat)
		}
		cards = append(cards, style.Render(c.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// subdomainHint renders the availability check for the subdomain currently
// typed. Results for an older value are not shown.
func (m Model) subdomainHint() string {
	in, ok := m.inputs[wizard.FieldSubdomain]
	if !ok || m.check == nil || m.check.Code != in.Value() {
		return ""
	}

	switch m.check.Status {
	case ports.CodeCheckPending:
		return hintStyle.Render("checking availability...")
	case ports.CodeCheckInvalid:
		msg := m.check.Message
		if msg == "" {
			msg = tenant.CodeProblem(m.check.Code)
		}
		return errorStyle.Render(msg)
	case ports.CodeCheckDone:
		if m.check.Available {
			return okHintStyle.Render(fmt.Sprintf("%s %s.%s is available", iconDone, m.check.Code, m.baseDomain))
		}
		return errorStyle.Render(m.check.Code + " is already taken")
	case ports.CodeCheckFailed:
		return hintStyle.Render("availability could not be checked")
	}
	return ""
}

func (m Model) renderSummary() string {
	if m.summary == nil {
		return hintStyle.UnsetPaddingLeft().Render("Loading summary...") + "\n"
	}
	s := m.summary

	sections := []struct {
		title string
		rows  [][2]string
	}{
		{"Basics", [][2]string{
			{"Name", s.Name},
			{"URL", s.TenantURL(m.baseDomain)},
			{"Industry", s.Industry},
			{"Employees", s.EmployeeCount},
			{"Description", s.Description},
		}},
		{"Package", [][2]string{
			{"Package", s.Package.Name},
			{"Price", s.PriceLabel()},
			{"Billing", s.BillingCycle},
			{"Trial", fmt.Sprintf("%d days", s.TrialDays)},
		}},
		{"Configuration", [][2]string{
			{"Users", humanize.Comma(int64(s.MaxUsers))},
			{"Storage", s.StorageLabel()},
			{"Custom domain", s.CustomDomain},
			{"Features", strings.Join(s.Features, ", ")},
			{"Region", s.DatabaseRegion},
		}},
		{"Contact", [][2]string{
			{"Owner", s.Owner.FullName()},
			{"Email", s.Owner.Email},
			{"Phone", s.Owner.Phone},
			{"Company", s.Company.Name},
		}},
	}

	var b strings.Builder
	for _, sec := range sections {
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, row := range sec.rows {
			value := runewidth.Truncate(row[1], summaryValueWidth, "…")
			if value == "" {
				value = "-"
			}
			b.WriteString(labelStyle.Render(row[0]) + value + "\n")
		}
	}
	return b.String()
}
