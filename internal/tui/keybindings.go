// Package tui implements the terminal user interface using Bubble Tea.
package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the TUI.
type KeyMap struct {
	// Practice
	Submit     key.Binding
	NewSession key.Binding

	// Summary
	Export  key.Binding
	Restart key.Binding
	Up      key.Binding
	Down    key.Binding

	// Control
	Escape key.Binding
	CtrlC  key.Binding
}

// DefaultKeyMap provides the default key bindings for the TUI.
var DefaultKeyMap = KeyMap{
	Submit: key.NewBinding(
		key.WithKeys(KeyCtrlS),
		key.WithHelp("ctrl+s", "submit answer"),
	),
	NewSession: key.NewBinding(
		key.WithKeys(KeyCtrlR),
		key.WithHelp("ctrl+r", "new session"),
	),
	Export: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export CSV"),
	),
	Restart: key.NewBinding(
		key.WithKeys("n", KeyCtrlR),
		key.WithHelp("n", "start new session"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Escape: key.NewBinding(
		key.WithKeys(KeyEsc),
		key.WithHelp("esc", "quit"),
	),
	CtrlC: key.NewBinding(
		key.WithKeys(KeyCtrlC),
		key.WithHelp("ctrl+c", "exit"),
	),
}

// PracticeHelp is the help.KeyMap shown under the answer box.
type PracticeHelp struct{ Keys KeyMap }

// ShortHelp implements help.KeyMap.
func (h PracticeHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.Keys.Submit, h.Keys.NewSession, h.Keys.CtrlC}
}

// FullHelp implements help.KeyMap.
func (h PracticeHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// SummaryHelp is the help.KeyMap shown on the summary screen.
type SummaryHelp struct{ Keys KeyMap }

// ShortHelp implements help.KeyMap.
func (h SummaryHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.Keys.Export, h.Keys.Restart, h.Keys.Up, h.Keys.Down, h.Keys.Escape}
}

// FullHelp implements help.KeyMap.
func (h SummaryHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
