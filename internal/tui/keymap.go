package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Dashboard key.Binding
	Forms     key.Binding
	Create    key.Binding
	Review    key.Binding

	Up     key.Binding
	Down   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Cycle  key.Binding
	Submit key.Binding

	Approve     key.Binding
	Reject      key.Binding
	TypeFilter  key.Binding
	StatFilter  key.Binding
	Refresh     key.Binding
	Export      key.Binding
	Acknowledge key.Binding

	Help key.Binding
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Dashboard: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "dashboard")),
		Forms:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "my forms")),
		Create:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new form")),
		Review:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "review queue")),

		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Cycle:  key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "change value")),
		Submit: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "submit form")),

		Approve:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "approve")),
		Reject:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "reject")),
		TypeFilter:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "cycle type filter")),
		StatFilter:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "cycle status filter")),
		Refresh:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Export:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export to xlsx")),
		Acknowledge: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),

		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Dashboard, k.Forms, k.Create, k.Review, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Dashboard, k.Forms, k.Create, k.Review},
		{k.Up, k.Down, k.Next, k.Cycle, k.Submit},
		{k.Approve, k.Reject, k.TypeFilter, k.StatFilter, k.Refresh, k.Export},
		{k.Acknowledge, k.Help, k.Quit},
	}
}
