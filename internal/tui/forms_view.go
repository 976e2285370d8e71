package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/formtrack/formtrack/internal/domain/entity"
	"github.com/formtrack/formtrack/internal/domain/workflow"
	"github.com/formtrack/formtrack/internal/listing"
)

func (m Model) updateForms(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	forms := m.list.Forms()

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(forms)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.listLoading = true
		return m, m.refreshFormsCmd()

	case key.Matches(msg, m.keys.TypeFilter):
		m.listLoading = true
		current, _ := m.list.Filter()
		return m, m.setTypeFilterCmd(nextTypeFilter(current))

	case key.Matches(msg, m.keys.StatFilter):
		m.listLoading = true
		_, current := m.list.Filter()
		return m, m.setStatusFilterCmd(nextStatusFilter(current))

	case key.Matches(msg, m.keys.Export):
		if len(forms) == 0 {
			m.errNotice = "Nothing to export."
			return m, nil
		}
		return m, m.exportCmd()

	case key.Matches(msg, m.keys.Approve):
		if f, ok := m.selectedActionable(forms, workflow.TriggerApprove); ok {
			return m, m.transitionCmd(f, m.list.Approve)
		}
		return m, nil

	case key.Matches(msg, m.keys.Reject):
		if f, ok := m.selectedActionable(forms, workflow.TriggerReject); ok {
			return m, m.transitionCmd(f, m.list.Reject)
		}
		return m, nil
	}

	return m, nil
}

// selectedActionable returns the form under the cursor if the given
// transition is currently offered for it
func (m Model) selectedActionable(forms []entity.Form, trigger workflow.Trigger) (entity.Form, bool) {
	if m.cursor >= len(forms) {
		return entity.Form{}, false
	}
	f := forms[m.cursor]
	for _, t := range m.list.Actions(f) {
		if t == trigger {
			return f, true
		}
	}
	return entity.Form{}, false
}

func nextTypeFilter(current entity.FormType) entity.FormType {
	order := append([]entity.FormType{""}, entity.FormTypes()...)
	for i, t := range order {
		if t == current {
			return order[(i+1)%len(order)]
		}
	}
	return ""
}

func nextStatusFilter(current entity.Status) entity.Status {
	order := append([]entity.Status{""}, entity.Statuses()...)
	for i, s := range order {
		if s == current {
			return order[(i+1)%len(order)]
		}
	}
	return ""
}

func filterLabel(value string) string {
	if value == "" {
		return "all"
	}
	return value
}

func (m Model) renderForms() string {
	review := m.list.Mode() == listing.ModeReview

	title := "My Forms"
	if review {
		title = "Forms for Review"
	}

	typeFilter, statusFilter := m.list.Filter()
	filters := mutedStyle.Render(fmt.Sprintf("type: %s   status: %s   total: %d",
		filterLabel(typeFilter.String()), filterLabel(statusFilter.String()), m.list.Total()))

	var sections []string
	sections = append(sections, titleStyle.Render(title), filters)

	if m.listLoading {
		sections = append(sections, mutedStyle.Render("Loading forms…"))
		return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
	}

	forms := m.list.Forms()
	if len(forms) == 0 {
		empty := "No forms found."
		if !review {
			empty += " Press n to create one."
		}
		sections = append(sections, mutedStyle.Render(empty))
		return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
	}

	header := fmt.Sprintf("%-16s %-14s %12s  %-10s %-20s", "Form Number", "Type", "Amount", "Status", "Cost Center")
	if review {
		header += fmt.Sprintf(" %-20s", "Submitted By")
	}
	sections = append(sections, mutedStyle.Render(header))

	for i, f := range forms {
		row := fmt.Sprintf("%-16s %-14s %12s  %s %-20s",
			f.FormNumber,
			f.FormType.Label(),
			f.TotalAmount.StringFixed(2),
			renderStatusPadded(f.Status, 10),
			f.CostCenter.Name)
		if review {
			row += fmt.Sprintf(" %-20s", f.SubmittedBy.FullName)
		}

		var hints []string
		if f.HasAttachment() {
			hints = append(hints, "file: "+m.app.Client.AttachmentURL(f.AttachmentPath))
		}
		if len(m.list.Actions(f)) > 0 {
			hints = append(hints, "a approve / x reject")
		}

		if i == m.cursor {
			row = selectedRowStyle.Render("> " + row)
			if len(hints) > 0 {
				row += "\n" + mutedStyle.Render("    "+strings.Join(hints, "   "))
			}
		} else {
			row = "  " + row
		}
		sections = append(sections, row)
	}

	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
