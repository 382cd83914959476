package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/tada/internal/model"
)

// RunOptions tune how the program is started.
type RunOptions struct {
	AltScreen bool
	// Seed items are added before the first frame.
	Seed []string
	// Input and Output default to the terminal when nil.
	Input  io.Reader
	Output io.Writer
}

// Run starts the interactive list and blocks until the user quits or ctx is
// cancelled. It returns the items left on screen.
func Run(ctx context.Context, s Settings, opts RunOptions) ([]model.Item, error) {
	m, err := New(s)
	if err != nil {
		return nil, err
	}
	m.Seed(opts.Seed...)

	popts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.AltScreen {
		popts = append(popts, tea.WithAltScreen())
	}
	if opts.Input != nil {
		popts = append(popts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		popts = append(popts, tea.WithOutput(opts.Output))
	}

	final, err := tea.NewProgram(m, popts...).Run()
	if err != nil {
		return m.Items(), fmt.Errorf("run program: %w", err)
	}
	if fm, ok := final.(*Model); ok {
		return fm.Items(), nil
	}
	return m.Items(), nil
}
