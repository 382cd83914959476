// Package ui holds the themes and the plain-terminal output helpers shared
// by the interactive view and the command line.
package ui

import (
	"fmt"
	"io"
	"strings"
)

// Panel frames lines with the theme's border.
func Panel(t Theme, lines []string) string {
	return t.Frame.Render(strings.Join(lines, "\n"))
}

// Button renders a bracketed control label.
func Button(t Theme, label string, focused, danger bool) string {
	s := t.Button
	switch {
	case danger && focused:
		s = t.DangerFocused
	case danger:
		s = t.Danger
	case focused:
		s = t.ButtonFocused
	}
	return s.Render("[" + label + "]")
}

func Fail(w io.Writer, t Theme, msg string) {
	fmt.Fprintln(w, t.Error.Render(t.SymFail+" "+msg))
}
