package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/formtrack/formtrack/internal/domain/entity"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	focusedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	selectedRowStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color("236"))

	statusStyles = map[entity.Status]lipgloss.Style{
		entity.StatusPending:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		entity.StatusApproved:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		entity.StatusRejected:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		entity.StatusCompleted: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	}
)

// renderStatusPadded styles the status after padding it, so ANSI
// escapes do not break column alignment
func renderStatusPadded(status entity.Status, width int) string {
	padded := fmt.Sprintf("%-*s", width, status.String())
	style, ok := statusStyles[status]
	if !ok {
		return padded
	}
	return style.Render(padded)
}
