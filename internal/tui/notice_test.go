package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/tada/internal/ui"
)

func TestNoticeLifecycle(t *testing.T) {
	n := &Notice{hint: "press enter to close"}
	if n.Visible() || n.View(ui.ThemeFor("mono")) != "" {
		t.Fatal("new notice should be hidden")
	}

	n.Notify("Please enter a to-do.")
	if !n.Visible() || n.Message() != "Please enter a to-do." {
		t.Fatalf("notice = %+v", n)
	}
	view := n.View(ui.ThemeFor("mono"))
	if !strings.Contains(view, "Please enter a to-do.") || !strings.Contains(view, "press enter to close") {
		t.Errorf("view = %q", view)
	}

	n.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if !n.Visible() {
		t.Error("other keys must not dismiss the notice")
	}
}

func TestNoticeDismissKeys(t *testing.T) {
	for _, k := range []tea.KeyMsg{
		{Type: tea.KeyEnter},
		{Type: tea.KeyEsc},
		{Type: tea.KeySpace, Runes: []rune{' '}},
	} {
		n := &Notice{}
		n.Notify("x")
		n.Update(k)
		if n.Visible() {
			t.Errorf("%q should dismiss the notice", k.String())
		}
	}
}
