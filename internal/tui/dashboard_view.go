package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) renderDashboard() string {
	if m.dashLoading || !m.dashLoaded {
		return panelStyle.Render("Loading your dashboard…")
	}

	var sections []string

	if m.snap.StatsErr != nil {
		sections = append(sections, errorStyle.Render("Stats are unavailable right now."))
	} else if m.snap.Stats != nil {
		stats := m.snap.Stats
		boxes := []string{
			statBox("Total", stats.TotalForms),
			statBox("Pending", stats.PendingForms),
			statBox("Approved", stats.ApprovedForms),
			statBox("Rejected", stats.RejectedForms),
		}
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
	}

	sections = append(sections, titleStyle.Render("Recent Forms"))

	switch {
	case m.snap.RecentErr != nil:
		sections = append(sections, errorStyle.Render("Recent forms are unavailable right now."))
	case len(m.snap.Recent) == 0:
		sections = append(sections, mutedStyle.Render("No forms submitted yet. Press n to create your first form."))
	default:
		var rows []string
		rows = append(rows, mutedStyle.Render(fmt.Sprintf("%-16s %-14s %12s  %-10s %s",
			"Form Number", "Type", "Amount", "Status", "Date")))
		for _, f := range m.snap.Recent {
			rows = append(rows, fmt.Sprintf("%-16s %-14s %12s  %s %s",
				f.FormNumber,
				f.FormType.Label(),
				f.TotalAmount.StringFixed(2),
				renderStatusPadded(f.Status, 10),
				f.DateCreated.Format("2006-01-02")))
		}
		sections = append(sections, strings.Join(rows, "\n"))
	}

	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func statBox(label string, value int) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(fmt.Sprintf("%d", value)),
		labelStyle.Render(label))
	return panelStyle.Render(content)
}
