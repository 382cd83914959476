// Package tui hosts the todo list widget in a Bubble Tea program.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/tada/internal/i18n"
	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/ui"
	"github.com/idilsaglam/tada/internal/widget"
)

type focus int

const (
	focusInput focus = iota
	focusAdd
	focusList
)

// Settings configure a Model.
type Settings struct {
	Translator *i18n.Translator
	Theme      ui.Theme
	CharLimit  int
	Logger     *log.Logger
	// IDFunc overrides item id generation; nil uses random ids.
	IDFunc func() model.ItemID
}

// inputField exposes the text input as a widget.Input.
type inputField struct{ m *textinput.Model }

func (f inputField) Value() string     { return f.m.Value() }
func (f inputField) SetValue(s string) { f.m.SetValue(s) }

// Model is the Bubble Tea model around a widget.Controller.
type Model struct {
	tr     *i18n.Translator
	theme  ui.Theme
	logger *log.Logger

	input     textinput.Model
	list      list.Model
	items     *listContainer
	notice    *Notice
	help      help.Model
	keys      keyMap
	addButton *widget.Button
	enterKey  *widget.Button
	ctrl      *widget.Controller

	focus       focus
	listFocused bool
	width       int
	height      int
	quitting    bool
}

// New builds a Model with an empty list.
func New(s Settings) (*Model, error) {
	if s.Translator == nil {
		return nil, fmt.Errorf("translator: %w", widget.ErrMissingElement)
	}
	if s.Logger == nil {
		s.Logger = log.New(io.Discard)
	}
	if s.CharLimit <= 0 {
		s.CharLimit = 200
	}
	tr := s.Translator

	m := &Model{
		tr:        tr,
		theme:     s.Theme,
		logger:    s.Logger,
		notice:    &Notice{hint: tr.T(i18n.NoticeDismiss)},
		help:      help.New(),
		addButton: &widget.Button{},
		enterKey:  &widget.Button{},
		keys: newKeyMap(
			tr.T(i18n.HelpAdd), tr.T(i18n.HelpDelete), tr.T(i18n.HelpFocus), tr.T(i18n.HelpQuit),
		),
	}

	m.input = textinput.New()
	m.input.Prompt = "> "
	m.input.Placeholder = tr.T(i18n.InputPlaceholder)
	m.input.CharLimit = s.CharLimit
	m.input.Focus()

	delegate := itemDelegate{
		theme:       s.Theme,
		deleteLabel: tr.T(i18n.ButtonDelete),
		focused:     &m.listFocused,
	}
	m.list = list.New(nil, delegate, 0, 0)
	m.list.SetShowTitle(false)
	m.list.SetShowHelp(false)
	m.list.SetShowStatusBar(false)
	m.list.SetShowPagination(true)
	m.list.SetFilteringEnabled(false)
	m.list.DisableQuitKeybindings()
	m.list.Styles.PaginationStyle = s.Theme.Muted
	m.items = newListContainer(&m.list)

	opts := []widget.Option{
		widget.WithLogger(s.Logger),
		widget.WithMessages(widget.Messages{EmptyInput: tr.T(i18n.NoticeEmptyInput)}),
	}
	if s.IDFunc != nil {
		opts = append(opts, widget.WithIDFunc(s.IDFunc))
	}
	ctrl, err := widget.New(inputField{&m.input}, m.items, m.notice, opts...)
	if err != nil {
		return nil, err
	}
	ctrl.Bind(m.addButton, m.enterKey)
	m.ctrl = ctrl

	m.setSize(80, 24)
	return m, nil
}

// Seed adds titles through the controller before the program starts.
// Blank titles are skipped without raising the notice. Seeded titles pass
// through the text input, so its sanitizer and char limit apply.
func (m *Model) Seed(titles ...string) {
	for _, t := range titles {
		want := widget.Trim(t)
		if want == "" {
			m.logger.Warn("skipping blank item")
			continue
		}
		m.input.SetValue(t)
		it, err := m.ctrl.Add()
		if err != nil {
			m.logger.Warn("seed item", "err", err)
			continue
		}
		if it.Title != want {
			m.logger.Warn("seed item changed by input", "arg", want, "title", it.Title)
		}
	}
	m.input.SetValue("")
}

// Items returns the current items in order.
func (m *Model) Items() []model.Item { return m.ctrl.Items() }

func (m *Model) Init() tea.Cmd { return textinput.Blink }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.notice.Visible() {
			m.notice.Update(msg)
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.quit()
		case key.Matches(msg, m.keys.Next):
			return m, m.moveFocus(1)
		case key.Matches(msg, m.keys.Prev):
			return m, m.moveFocus(-1)
		}
		return m.updateFocused(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateFocused(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.focus {
	case focusInput:
		if key.Matches(msg, m.keys.Submit) {
			m.enterKey.Press()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case focusAdd:
		switch {
		case key.Matches(msg, m.keys.Press):
			m.addButton.Press()
		case key.Matches(msg, m.keys.QuitQ):
			return m.quit()
		}
		return m, nil

	case focusList:
		switch {
		case key.Matches(msg, m.keys.Delete):
			m.deleteSelected()
			return m, nil
		case key.Matches(msg, m.keys.QuitQ):
			return m.quit()
		}
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) deleteSelected() {
	r, ok := m.list.SelectedItem().(row)
	if !ok {
		return
	}
	if err := m.ctrl.Delete(r.item.ID); err != nil {
		m.logger.Error("delete", "err", err)
	}
	if m.items.Len() == 0 {
		m.setFocus(focusInput)
	}
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// moveFocus cycles input → add button → list, skipping an empty list.
func (m *Model) moveFocus(step int) tea.Cmd {
	stops := []focus{focusInput, focusAdd}
	if m.items.Len() > 0 {
		stops = append(stops, focusList)
	}
	idx := 0
	for i, f := range stops {
		if f == m.focus {
			idx = i
		}
	}
	idx = (idx + step + len(stops)) % len(stops)
	return m.setFocus(stops[idx])
}

func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	m.listFocused = f == focusList
	if f == focusInput {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

func (m *Model) setSize(w, h int) {
	m.width, m.height = w, h
	m.help.Width = w
	m.input.Width = max(10, w-lipgloss.Width(m.addLabel())-12)
	m.list.SetSize(max(10, w-4), max(1, h-9))
}

func (m *Model) addLabel() string {
	return "[" + m.tr.T(i18n.ButtonAdd) + "]"
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	t := m.theme

	header := fmt.Sprintf("%s   %s %d",
		t.Title.Render(m.tr.T(i18n.AppTitle)),
		t.Accent.Render(m.tr.T(i18n.ListCount)), m.items.Len(),
	)
	inputRow := lipgloss.JoinHorizontal(lipgloss.Center,
		m.input.View(), "  ",
		ui.Button(t, m.tr.T(i18n.ButtonAdd), m.focus == focusAdd, false),
	)

	body := m.list.View()
	if m.items.Len() == 0 {
		body = t.Muted.Render(m.tr.T(i18n.ListEmpty))
	}
	if m.notice.Visible() {
		body = m.notice.View(t)
	}

	content := strings.Join([]string{
		header,
		inputRow,
		"",
		body,
		"",
		m.help.View(m.keys),
	}, "\n")
	return ui.Panel(t, []string{content})
}
