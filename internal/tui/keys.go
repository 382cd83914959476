package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit key.Binding // enter on the input
	Press  key.Binding // activates the focused button
	Delete key.Binding
	Next   key.Binding
	Prev   key.Binding
	Quit   key.Binding
	QuitQ  key.Binding // q, ignored while typing
}

func newKeyMap(addHelp, deleteHelp, focusHelp, quitHelp string) keyMap {
	return keyMap{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", addHelp)),
		Press:  key.NewBinding(key.WithKeys("enter", " ")),
		Delete: key.NewBinding(key.WithKeys("enter", "d", "delete"), key.WithHelp("d", deleteHelp)),
		Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", focusHelp)),
		Prev:   key.NewBinding(key.WithKeys("shift+tab")),
		Quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", quitHelp)),
		QuitQ:  key.NewBinding(key.WithKeys("q")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Delete, k.Next, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
