// Package cli wires configuration, logging and the interactive list into the
// todo command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/tada/internal/config"
	"github.com/idilsaglam/tada/internal/i18n"
	"github.com/idilsaglam/tada/internal/logging"
	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/tui"
	"github.com/idilsaglam/tada/internal/ui"
)

// Version is set at build time with -ldflags.
var Version = "dev"

// runProgram starts the interactive list. Tests swap it out.
var runProgram = tui.Run

type rootFlags struct {
	configPath string
	summary    bool
}

// NewRootCmd builds the todo command tree.
func NewRootCmd() *cobra.Command {
	var f rootFlags

	cmd := &cobra.Command{
		Use:   "todo [items...]",
		Short: "todo - a tiny to-do list for the terminal",
		Long: `todo opens an interactive to-do list.

Type an item and press enter (or tab to [Add] and press enter) to add it.
Tab to the list and press d to delete the selected item.
Items given as arguments are added before the list opens.
Nothing is saved: the list is gone when you quit.`,
		Example: `  todo
  todo "Buy milk" "Walk the dog"
  todo --lang ko --theme neon`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, args, f)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&f.configPath, "config", "c", "", "config file (default ./"+config.DefaultConfigPath+" when present)")
	fs.BoolVar(&f.summary, "summary", false, "print the remaining items when quitting")
	fs.String("lang", "", "UI language, e.g. en or ko")
	fs.String("theme", "", "color theme: classic, neon or mono")
	fs.Bool("alt-screen", true, "draw on the alternate screen")
	fs.Int("char-limit", 0, "maximum length of an item")
	fs.String("log-file", "", "write logs to this file")
	fs.String("log-level", "", "log level: debug, info, warn, error")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func runRoot(cmd *cobra.Command, args []string, f rootFlags) error {
	loader := config.NewLoader()
	if err := loader.BindFlags(cmd.Flags()); err != nil {
		return err
	}
	cfg, err := loader.Load(f.configPath)
	if err != nil {
		return err
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	tr, err := i18n.New(cfg.Lang)
	if err != nil {
		return err
	}
	theme := ui.ThemeFor(string(cfg.Theme))

	logger.Info("starting", "lang", tr.Lang(), "theme", theme.Name, "seed", len(args))
	items, err := runProgram(cmd.Context(), tui.Settings{
		Translator: tr,
		Theme:      theme,
		CharLimit:  cfg.CharLimit,
		Logger:     logger,
	}, tui.RunOptions{
		AltScreen: cfg.AltScreen,
		Seed:      args,
		Input:     cmd.InOrStdin(),
		Output:    cmd.OutOrStdout(),
	})
	switch {
	case err == nil:
	case errors.Is(err, tea.ErrProgramKilled) && cmd.Context().Err() != nil:
		// interrupted from outside (SIGINT); same as quitting
		logger.Info("interrupted", "err", err)
	default:
		logger.Error("program stopped", "err", err)
		return err
	}
	logger.Info("quit", "remaining", len(items))

	if f.summary {
		printSummary(cmd.OutOrStdout(), theme, tr, items)
	}
	return nil
}

// maxTitle is where summary lines get cut.
const maxTitle = 80

func printSummary(w io.Writer, t ui.Theme, tr *i18n.Translator, items []model.Item) {
	lines := []string{
		fmt.Sprintf("%s   %s %d", t.Title.Render(tr.T(i18n.SummaryTitle)), t.Accent.Render(tr.T(i18n.ListCount)), len(items)),
		"",
	}
	if len(items) == 0 {
		lines = append(lines, t.Muted.Render(tr.T(i18n.ListEmpty)))
	}
	for i, it := range items {
		title := []rune(it.Title)
		if len(title) > maxTitle {
			title = append(title[:maxTitle-3], []rune("...")...)
		}
		lines = append(lines, fmt.Sprintf("%s %s %s",
			t.Muted.Render(fmt.Sprintf("%2d.", i+1)), t.Accent.Render(t.SymBullet), string(title)))
	}
	fmt.Fprintln(w, ui.Panel(t, lines))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "todo %s\n", Version)
		},
	}
}

// Execute runs the command and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		ui.Fail(stderr, ui.ThemeFor(""), err.Error())
		return 1
	}
	return 0
}
