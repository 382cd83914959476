package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/tada/internal/ui"
)

// Notice is a modal message. While it is visible the model routes every key
// to it and nothing else happens until it is dismissed.
type Notice struct {
	visible bool
	message string
	hint    string
}

// Notify shows message. It satisfies widget.Notifier.
func (n *Notice) Notify(message string) {
	n.visible = true
	n.message = message
}

func (n *Notice) Visible() bool   { return n.visible }
func (n *Notice) Message() string { return n.message }

// Update dismisses the notice on enter, esc or space. Other keys are dropped.
func (n *Notice) Update(msg tea.Msg) {
	if !n.visible {
		return
	}
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter", "esc", " ":
			n.visible = false
		}
	}
}

func (n *Notice) View(t ui.Theme) string {
	if !n.visible {
		return ""
	}
	body := t.Error.Render(t.SymFail + " " + n.message)
	if n.hint != "" {
		body += "\n" + t.Muted.Render(n.hint)
	}
	return t.Notice.Render(body)
}
