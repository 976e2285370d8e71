package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/formtrack/formtrack/internal/api"
	"github.com/formtrack/formtrack/internal/dashboard"
	"github.com/formtrack/formtrack/internal/domain/entity"
	"github.com/formtrack/formtrack/internal/export"
	"github.com/formtrack/formtrack/internal/form"
	"github.com/formtrack/formtrack/internal/listing"
	"go.uber.org/zap"
)

type viewMode int

const (
	modeDashboard viewMode = iota
	modeForms
	modeCreate
)

// App bundles the dependencies the terminal UI needs
type App struct {
	Client    *api.Client
	Identity  entity.Identity
	Limits    form.UploadLimits
	ExportDir string
	Logger    *zap.Logger
}

// Model is the root bubbletea model. All mutable view state lives in
// the workflows; the model re-reads it after every message, so a late
// response for a view the user already left is simply not rendered.
type Model struct {
	app App

	keys keyMap
	help help.Model

	mode   viewMode
	width  int
	height int

	dash        *dashboard.Loader
	snap        dashboard.Snapshot
	dashLoaded  bool
	dashLoading bool

	list        *listing.Workflow
	cursor      int
	listLoading bool

	create  *form.Workflow
	fields  createFields
	started bool

	reporter *export.Reporter

	notice    string
	errNotice string
}

// Run starts the terminal UI and blocks until the user quits
func Run(app App) error {
	p := tea.NewProgram(NewModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// NewModel assembles the root model and its workflows
func NewModel(app App) Model {
	return Model{
		app:      app,
		keys:     defaultKeyMap(),
		help:     help.New(),
		mode:     modeDashboard,
		dash:     dashboard.NewLoader(app.Client, app.Identity, app.Logger),
		list:     listing.NewWorkflow(app.Client, app.Identity, app.Logger),
		create:   form.NewWorkflow(app.Client, app.Identity, app.Limits, app.Logger),
		fields:   newCreateFields(),
		reporter: export.NewReporter(app.Logger),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.loadDashboardCmd()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case dashboardLoadedMsg:
		m.dashLoading = false
		m.dashLoaded = true
		m.snap = msg.snap
		return m, nil

	case referenceDataLoadedMsg:
		if msg.err != nil {
			m.errNotice = "Error loading data. Parts of the form may be unavailable."
		}
		return m, nil

	case costCentersLoadedMsg:
		if msg.err != nil {
			m.errNotice = "Error loading cost centers for the selected customer."
		}
		return m, nil

	case formsRefreshedMsg:
		m.listLoading = false
		if msg.err != nil {
			m.errNotice = "Error loading forms. Press r to retry."
		} else {
			m.clampCursor()
		}
		return m, nil

	case submitDoneMsg:
		if msg.err != nil {
			m.errNotice = "Error submitting form. Please try again."
			return m, nil
		}
		m.notice = fmt.Sprintf("Form %s submitted successfully!", msg.created.FormNumber)
		m.fields = newCreateFields()
		// return the view to ready for the next entry
		if err := m.create.Acknowledge(context.Background()); err != nil {
			m.app.Logger.Error("Failed to reset submission view", zap.Error(err))
		}
		return m, nil

	case transitionDoneMsg:
		if msg.err != nil {
			m.errNotice = "Error updating form status."
			return m, nil
		}
		m.notice = fmt.Sprintf("Form #%d updated.", msg.formID)
		m.clampCursor()
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.errNotice = "Error exporting forms."
		} else {
			m.notice = "Exported to " + msg.path
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) && (m.mode != modeCreate || !m.fields.typing()) {
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Help) && (m.mode != modeCreate || !m.fields.typing()) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	m.notice = ""

	if m.mode == modeCreate {
		return m.updateCreate(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Dashboard):
		m.mode = modeDashboard
		m.errNotice = ""
		m.dashLoading = true
		return m, m.loadDashboardCmd()

	case key.Matches(msg, m.keys.Forms):
		m.mode = modeForms
		m.errNotice = ""
		m.cursor = 0
		m.listLoading = true
		return m, m.setListModeCmd(listing.ModeOwn)

	case key.Matches(msg, m.keys.Review):
		if !m.app.Identity.CanReview() {
			m.errNotice = "Your role cannot review forms."
			return m, nil
		}
		m.mode = modeForms
		m.errNotice = ""
		m.cursor = 0
		m.listLoading = true
		return m, m.setListModeCmd(listing.ModeReview)

	case key.Matches(msg, m.keys.Create):
		m.mode = modeCreate
		m.errNotice = ""
		if !m.started {
			m.started = true
			return m, m.startCreateCmd()
		}
		return m, nil
	}

	if m.mode == modeForms {
		return m.updateForms(msg)
	}
	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading…"
	}

	header := m.renderHeader()

	var body string
	switch m.mode {
	case modeDashboard:
		body = m.renderDashboard()
	case modeForms:
		body = m.renderForms()
	case modeCreate:
		body = m.renderCreate()
	}

	var notices string
	if m.errNotice != "" {
		notices = errorStyle.Render(m.errNotice)
	} else if m.notice != "" {
		notices = successStyle.Render(m.notice)
	}

	footer := m.help.View(m.keys)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, notices, footer)
}

func (m Model) renderHeader() string {
	tabs := []struct {
		label string
		mode  viewMode
	}{
		{"Dashboard", modeDashboard},
		{"Forms", modeForms},
		{"New Form", modeCreate},
	}

	rendered := make([]string, 0, len(tabs)+1)
	rendered = append(rendered, headerStyle.Render("formtrack"))
	for _, tab := range tabs {
		if tab.mode == m.mode {
			rendered = append(rendered, activeTabStyle.Render(tab.label))
		} else {
			rendered = append(rendered, tabStyle.Render(tab.label))
		}
	}

	who := fmt.Sprintf("%s (%s)", m.app.Identity.FullName, m.app.Identity.Role)
	rendered = append(rendered, mutedStyle.Render(who))

	return lipgloss.JoinHorizontal(lipgloss.Center, rendered...)
}

func (m *Model) clampCursor() {
	n := len(m.list.Forms())
	if n == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
}

// Commands. Each captures the workflow pointer and runs blocking work
// off the event loop.

func (m Model) loadDashboardCmd() tea.Cmd {
	loader := m.dash
	return func() tea.Msg {
		return dashboardLoadedMsg{snap: loader.Load(context.Background())}
	}
}

func (m Model) setListModeCmd(mode listing.Mode) tea.Cmd {
	w := m.list
	return func() tea.Msg {
		return formsRefreshedMsg{err: w.SetMode(context.Background(), mode)}
	}
}

func (m Model) refreshFormsCmd() tea.Cmd {
	w := m.list
	return func() tea.Msg {
		return formsRefreshedMsg{err: w.Refresh(context.Background())}
	}
}

func (m Model) setTypeFilterCmd(t entity.FormType) tea.Cmd {
	w := m.list
	return func() tea.Msg {
		return formsRefreshedMsg{err: w.SetTypeFilter(context.Background(), t)}
	}
}

func (m Model) setStatusFilterCmd(s entity.Status) tea.Cmd {
	w := m.list
	return func() tea.Msg {
		return formsRefreshedMsg{err: w.SetStatusFilter(context.Background(), s)}
	}
}

func (m Model) startCreateCmd() tea.Cmd {
	w := m.create
	return func() tea.Msg {
		return referenceDataLoadedMsg{err: w.Start(context.Background())}
	}
}

func (m Model) selectCustomerCmd(customerID int64) tea.Cmd {
	w := m.create
	return func() tea.Msg {
		return costCentersLoadedMsg{customerID: customerID, err: w.SelectCustomer(context.Background(), customerID)}
	}
}

func (m Model) submitCmd() tea.Cmd {
	w := m.create
	return func() tea.Msg {
		created, err := w.Submit(context.Background())
		return submitDoneMsg{created: created, err: err}
	}
}

func (m Model) transitionCmd(f entity.Form, trigger func(context.Context, entity.Form) error) tea.Cmd {
	return func() tea.Msg {
		return transitionDoneMsg{formID: f.ID, err: trigger(context.Background(), f)}
	}
}

func (m Model) exportCmd() tea.Cmd {
	forms := m.list.Forms()
	reporter := m.reporter
	path := filepath.Join(m.app.ExportDir, fmt.Sprintf("forms-%s.xlsx", time.Now().Format("20060102-150405")))
	return func() tea.Msg {
		return exportDoneMsg{path: path, err: reporter.WriteForms(path, forms)}
	}
}
