package tui

import "github.com/charmbracelet/lipgloss"

const (
	iconDone      = "✔"
	iconCurrent   = "●"
	iconTodo      = "○"
	iconChecked   = "[x]"
	iconUnchecked = "[ ]"
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
	highlight = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	danger    = lipgloss.AdaptiveColor{Light: "#D7263D", Dark: "#FF5F87"}
	success   = lipgloss.AdaptiveColor{Light: "#1B873F", Dark: "#43BF6D"}

	appStyle = lipgloss.NewStyle().Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
			Background(highlight).
			Padding(0, 1)

	stepDoneStyle    = lipgloss.NewStyle().Foreground(success)
	stepCurrentStyle = lipgloss.NewStyle().Foreground(highlight).Bold(true)
	stepTodoStyle    = lipgloss.NewStyle().Foreground(subtle)

	labelStyle        = lipgloss.NewStyle().Width(26)
	focusedLabelStyle = labelStyle.Foreground(highlight).Bold(true)
	requiredStyle     = lipgloss.NewStyle().Foreground(danger)
	errorStyle        = lipgloss.NewStyle().Foreground(danger).PaddingLeft(26)
	hintStyle         = lipgloss.NewStyle().Foreground(subtle).PaddingLeft(26)
	okHintStyle       = hintStyle.Foreground(success)
	optionStyle       = lipgloss.NewStyle().Foreground(highlight).Bold(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(subtle).
			Padding(0, 1).
			Width(28)
	selectedCardStyle = cardStyle.BorderForeground(highlight)
	badgeStyle        = lipgloss.NewStyle().Foreground(success).Bold(true)

	sectionStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
	noticeStyle  = lipgloss.NewStyle().Foreground(danger).MarginTop(1)
	doneStyle    = lipgloss.NewStyle().Foreground(success).Bold(true)
)
