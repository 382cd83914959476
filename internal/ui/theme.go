package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles the styles and symbols every view draws with.
type Theme struct {
	Name string

	Title, Muted, Accent, Error lipgloss.Style
	Selected                    lipgloss.Style

	Button, ButtonFocused lipgloss.Style
	Danger, DangerFocused lipgloss.Style

	Frame  lipgloss.Style
	Notice lipgloss.Style

	SymFail, SymBullet, SymCursor string
}

// ThemeFor returns the named theme; unknown names get classic.
func ThemeFor(name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		return newTheme("neon", palette{
			title: "13", muted: "8", accent: "14", err: "9", border: "13",
		}, lipgloss.RoundedBorder(), "✖", "•", "❯")
	case "mono":
		// no colors at all, ASCII borders
		plain := lipgloss.NewStyle()
		border := lipgloss.Border{
			Top: "-", Bottom: "-", Left: "|", Right: "|",
			TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
		}
		return Theme{
			Name:          "mono",
			Title:         plain.Bold(true),
			Muted:         plain,
			Accent:        plain,
			Error:         plain.Bold(true),
			Selected:      plain.Bold(true),
			Button:        plain,
			ButtonFocused: plain.Reverse(true),
			Danger:        plain,
			DangerFocused: plain.Reverse(true),
			Frame:         plain.Border(border).Padding(0, 1),
			Notice:        plain.Border(border).Padding(0, 2),
			SymFail:       "x",
			SymBullet:     "-",
			SymCursor:     ">",
		}
	default:
		return newTheme("classic", palette{
			title: "", muted: "8", accent: "12", err: "9", border: "8",
		}, lipgloss.RoundedBorder(), "✖", "•", ">")
	}
}

type palette struct {
	title, muted, accent, err, border string
}

func newTheme(name string, p palette, border lipgloss.Border, fail, bullet, cursor string) Theme {
	title := lipgloss.NewStyle().Bold(true)
	if p.title != "" {
		title = title.Foreground(lipgloss.Color(p.title))
	}
	accent := lipgloss.Color(p.accent)
	errColor := lipgloss.Color(p.err)

	return Theme{
		Name:          name,
		Title:         title,
		Muted:         lipgloss.NewStyle().Foreground(lipgloss.Color(p.muted)).Faint(true),
		Accent:        lipgloss.NewStyle().Foreground(accent),
		Error:         lipgloss.NewStyle().Foreground(errColor).Bold(true),
		Selected:      lipgloss.NewStyle().Bold(true),
		Button:        lipgloss.NewStyle().Foreground(accent),
		ButtonFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(accent).Bold(true),
		Danger:        lipgloss.NewStyle().Foreground(errColor),
		DangerFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(errColor).Bold(true),
		Frame: lipgloss.NewStyle().
			Border(border).
			BorderForeground(lipgloss.Color(p.border)).
			Padding(0, 1),
		Notice: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(errColor).
			Padding(0, 2),
		SymFail:   fail,
		SymBullet: bullet,
		SymCursor: cursor,
	}
}
