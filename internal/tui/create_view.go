package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/formtrack/formtrack/internal/domain/entity"
	"github.com/formtrack/formtrack/internal/form"
	"go.uber.org/zap"
)

const (
	fieldType = iota
	fieldCustomer
	fieldCostCenter
	fieldManager
	fieldAmount
	fieldRemarks
	fieldAttachment
	fieldCount
)

// createFields is the view-local input state for the create screen.
// Selector fields hold an index into the workflow's reference lists;
// -1 means nothing chosen. Text fields are bubbles inputs.
type createFields struct {
	focus int

	typeIdx     int
	customerIdx int
	ccIdx       int
	mgrIdx      int

	amount     textinput.Model
	remarks    textinput.Model
	attachment textinput.Model
}

func newCreateFields() createFields {
	amount := textinput.New()
	amount.Placeholder = "0.00"
	amount.CharLimit = 20
	amount.Width = 20

	remarks := textinput.New()
	remarks.Placeholder = "optional"
	remarks.CharLimit = 500
	remarks.Width = 48

	attachment := textinput.New()
	attachment.Placeholder = "path to receipt (optional)"
	attachment.CharLimit = 255
	attachment.Width = 48

	return createFields{
		customerIdx: -1,
		ccIdx:       -1,
		mgrIdx:      -1,
		amount:      amount,
		remarks:     remarks,
		attachment:  attachment,
	}
}

// typing reports whether keystrokes currently go into a text input,
// which suppresses the single-letter global shortcuts
func (f createFields) typing() bool {
	switch f.focus {
	case fieldAmount, fieldRemarks, fieldAttachment:
		return true
	}
	return false
}

func (f *createFields) syncFocus() {
	f.amount.Blur()
	f.remarks.Blur()
	f.attachment.Blur()
	switch f.focus {
	case fieldAmount:
		f.amount.Focus()
	case fieldRemarks:
		f.remarks.Focus()
	case fieldAttachment:
		f.attachment.Focus()
	}
}

func (m Model) updateCreate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.create.State()

	switch {
	case key.Matches(msg, m.keys.Acknowledge):
		if state == form.StateSubmittedError {
			if err := m.create.Acknowledge(context.Background()); err != nil {
				m.app.Logger.Error("Failed to dismiss submission error", zap.Error(err))
			}
			m.errNotice = ""
			return m, nil
		}
		m.mode = modeDashboard
		m.errNotice = ""
		return m, m.loadDashboardCmd()

	case key.Matches(msg, m.keys.Next):
		m.fields.focus = (m.fields.focus + 1) % fieldCount
		m.fields.syncFocus()
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.fields.focus = (m.fields.focus + fieldCount - 1) % fieldCount
		m.fields.syncFocus()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m.submitDraft()

	case key.Matches(msg, m.keys.Cycle):
		return m.cycleSelector(msg.String() == "right")
	}

	if state == form.StateSubmitting {
		return m, nil
	}

	var cmd tea.Cmd
	switch m.fields.focus {
	case fieldAmount:
		m.fields.amount, cmd = m.fields.amount.Update(msg)
	case fieldRemarks:
		m.fields.remarks, cmd = m.fields.remarks.Update(msg)
	case fieldAttachment:
		m.fields.attachment, cmd = m.fields.attachment.Update(msg)
	}
	return m, cmd
}

// cycleSelector advances the value of the focused selector field.
// Changing the customer clears the dependent cost-center choice and
// kicks off the fetch for its cost centers.
func (m Model) cycleSelector(forward bool) (tea.Model, tea.Cmd) {
	step := func(idx, n int) int {
		if n == 0 {
			return -1
		}
		if forward {
			return (idx + 1) % n
		}
		return (idx + n - 1 + n) % n
	}

	switch m.fields.focus {
	case fieldType:
		types := entity.FormTypes()
		m.fields.typeIdx = step(m.fields.typeIdx, len(types))
		if err := m.create.SetFormType(types[m.fields.typeIdx]); err != nil {
			m.errNotice = "Unknown form type."
		}
		return m, nil

	case fieldCustomer:
		customers := m.create.Customers()
		next := step(m.fields.customerIdx, len(customers))
		if next < 0 || next == m.fields.customerIdx {
			return m, nil
		}
		m.fields.customerIdx = next
		m.fields.ccIdx = -1
		return m, m.selectCustomerCmd(customers[next].ID)

	case fieldCostCenter:
		if m.fields.customerIdx < 0 {
			m.errNotice = "Select a customer first."
			return m, nil
		}
		centers := m.create.CostCenters()
		next := step(m.fields.ccIdx, len(centers))
		if next < 0 {
			return m, nil
		}
		m.fields.ccIdx = next
		if err := m.create.SelectCostCenter(centers[next].ID); err != nil {
			m.errNotice = "Select a customer first."
		}
		return m, nil

	case fieldManager:
		managers := m.create.Managers()
		next := step(m.fields.mgrIdx, len(managers))
		if next < 0 {
			return m, nil
		}
		m.fields.mgrIdx = next
		m.create.SelectManager(managers[next].ID)
		return m, nil
	}
	return m, nil
}

// submitDraft pushes the text inputs into the workflow, validates,
// and either surfaces the per-field errors or starts the submission
func (m Model) submitDraft() (tea.Model, tea.Cmd) {
	if m.create.State() == form.StateSubmitting {
		return m, nil
	}

	m.create.SetAmount(strings.TrimSpace(m.fields.amount.Value()))
	m.create.SetRemarks(strings.TrimSpace(m.fields.remarks.Value()))

	path := strings.TrimSpace(m.fields.attachment.Value())
	if path == "" {
		m.create.ClearAttachment()
	} else {
		info, err := os.Stat(path)
		if err != nil {
			m.errNotice = "Attachment file not found: " + path
			return m, nil
		}
		m.create.Attach(path, info.Size())
	}

	if verr := m.create.Validate(); verr != nil {
		m.errNotice = verr.Error()
		return m, nil
	}

	m.errNotice = ""
	return m, m.submitCmd()
}

func (m Model) renderCreate() string {
	state := m.create.State()

	var sections []string
	sections = append(sections, titleStyle.Render("New Form"))

	switch state {
	case form.StateIdle, form.StateLoadingReferenceData:
		sections = append(sections, mutedStyle.Render("Loading customers and reviewers…"))
		return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
	case form.StateSubmitting:
		sections = append(sections, mutedStyle.Render("Submitting…"))
		return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
	}

	for _, err := range m.create.ReferenceDataErrors() {
		sections = append(sections, errorStyle.Render("Warning: "+err.Error()))
	}

	draft := m.create.Draft()

	sections = append(sections,
		m.fieldRow(fieldType, "Type", selectorValue(draft.FormType.Label(), true)),
		m.fieldRow(fieldCustomer, "Customer", selectorValue(m.customerName(), m.fields.customerIdx >= 0)),
		m.fieldRow(fieldCostCenter, "Cost Center", m.costCenterValue()),
		m.fieldRow(fieldManager, "Reviewer", selectorValue(m.managerName(), m.fields.mgrIdx >= 0)),
		m.fieldRow(fieldAmount, "Amount", m.fields.amount.View()),
		m.fieldRow(fieldRemarks, "Remarks", m.fields.remarks.View()),
		m.fieldRow(fieldAttachment, "Attachment", m.fields.attachment.View()),
	)

	sections = append(sections, "", mutedStyle.Render("tab next field · ←/→ change value · ctrl+s submit · esc back"))
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) fieldRow(field int, label, value string) string {
	rendered := labelStyle.Render(fmt.Sprintf("%-12s", label))
	if m.fields.focus == field {
		return focusedStyle.Render("> ") + rendered + value
	}
	return "  " + rendered + value
}

func selectorValue(value string, chosen bool) string {
	if !chosen || value == "" {
		return mutedStyle.Render("‹ none ›")
	}
	return "‹ " + value + " ›"
}

func (m Model) customerName() string {
	customers := m.create.Customers()
	if m.fields.customerIdx < 0 || m.fields.customerIdx >= len(customers) {
		return ""
	}
	return customers[m.fields.customerIdx].Name
}

func (m Model) costCenterValue() string {
	if m.fields.customerIdx < 0 {
		return mutedStyle.Render("select a customer first")
	}
	centers := m.create.CostCenters()
	if len(centers) == 0 {
		return mutedStyle.Render("no cost centers for this customer")
	}
	if m.fields.ccIdx < 0 || m.fields.ccIdx >= len(centers) {
		return mutedStyle.Render("‹ none ›")
	}
	return "‹ " + centers[m.fields.ccIdx].Name + " ›"
}

func (m Model) managerName() string {
	managers := m.create.Managers()
	if m.fields.mgrIdx < 0 || m.fields.mgrIdx >= len(managers) {
		return ""
	}
	return managers[m.fields.mgrIdx].FullName
}
