package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/ui"
	"github.com/idilsaglam/tada/internal/widget"
)

// row adapts an Item to bubbles/list.Item.
type row struct {
	item model.Item
}

func (r row) FilterValue() string { return r.item.Title }

// listContainer is the widget.Container the controller writes to. The
// widget.List is the source of truth; the bubbles list mirrors it for display.
type listContainer struct {
	*widget.List
	view *list.Model
}

func newListContainer(view *list.Model) *listContainer {
	return &listContainer{List: widget.NewList(), view: view}
}

func (c *listContainer) Append(it model.Item) {
	c.List.Append(it)
	c.view.InsertItem(len(c.view.Items()), row{item: it})
}

func (c *listContainer) Remove(id model.ItemID) bool {
	if !c.List.Remove(id) {
		return false
	}
	for i, li := range c.view.Items() {
		if r, ok := li.(row); ok && r.item.ID == id {
			c.view.RemoveItem(i)
			break
		}
	}
	if n := len(c.view.Items()); n > 0 && c.view.Index() >= n {
		c.view.Select(n - 1)
	}
	return true
}

// itemDelegate renders one row per item: cursor, title, delete control.
type itemDelegate struct {
	theme       ui.Theme
	deleteLabel string
	focused     *bool // whether the list has focus
}

func (d itemDelegate) Height() int                             { return 1 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, li list.Item) {
	r, ok := li.(row)
	if !ok {
		return
	}
	selected := index == m.Index() && d.focused != nil && *d.focused

	prefix := "  "
	title := r.item.Title
	if selected {
		prefix = d.theme.Selected.Render(d.theme.SymCursor + " ")
		title = d.theme.Selected.Render(title)
	}
	button := ui.Button(d.theme, d.deleteLabel, selected, true)
	fmt.Fprintf(w, "%s%s %s", prefix, title, button)
}
