package bubbletea

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the panel's key bindings.
type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	Copy        key.Binding
	Toggle      key.Binding
	Markdown    key.Binding
	CopyAll     key.Binding
	CopyBullets key.Binding
	Delete      key.Binding
	DeleteAll   key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c", "enter"),
			key.WithHelp("c", "copy link"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle markdown for link"),
		),
		Markdown: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "toggle markdown for bulk copy"),
		),
		CopyAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "copy all"),
		),
		CopyBullets: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "copy all bulleted"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "backspace"),
			key.WithHelp("d", "delete link"),
		),
		DeleteAll: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "delete all"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Copy, k.CopyAll, k.Delete, k.Markdown, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Copy, k.Toggle},
		{k.CopyAll, k.CopyBullets, k.Markdown},
		{k.Delete, k.DeleteAll, k.Quit},
	}
}
