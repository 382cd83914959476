package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/tada/internal/i18n"
	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/tui"
	"github.com/idilsaglam/tada/internal/ui"
)

// fakeRun records what the command passed to the program and returns the
// seed as the final list.
type fakeRun struct {
	settings tui.Settings
	opts     tui.RunOptions
	err      error
}

func (f *fakeRun) run(_ context.Context, s tui.Settings, o tui.RunOptions) ([]model.Item, error) {
	f.settings, f.opts = s, o
	items := make([]model.Item, 0, len(o.Seed))
	for i, t := range o.Seed {
		items = append(items, model.Item{ID: model.ItemID(fmt.Sprintf("item-%d", i)), Title: t})
	}
	return items, f.err
}

func stubProgram(t *testing.T) *fakeRun {
	t.Helper()
	chdir(t, t.TempDir())
	f := &fakeRun{}
	prev := runProgram
	runProgram = f.run
	t.Cleanup(func() { runProgram = prev })
	return f
}

func execute(args ...string) (int, string, string) {
	return executeContext(context.Background(), args...)
}

func executeContext(ctx context.Context, args ...string) (int, string, string) {
	var out, errOut bytes.Buffer
	code := Execute(ctx, args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRootPassesSeedAndSettings(t *testing.T) {
	f := stubProgram(t)

	code, _, stderr := execute("--lang", "ko", "--theme", "mono", "--alt-screen=false", "Buy milk", "Walk dog")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", code, stderr)
	}
	if got := strings.Join(f.opts.Seed, ","); got != "Buy milk,Walk dog" {
		t.Errorf("seed = %s", got)
	}
	if f.opts.AltScreen {
		t.Error("alt screen should be off")
	}
	if f.settings.Theme.Name != "mono" {
		t.Errorf("theme = %s", f.settings.Theme.Name)
	}
	if got := f.settings.Translator.T(i18n.ButtonDelete); got != "삭제" {
		t.Errorf("translator gave %q, want korean", got)
	}
	if f.settings.CharLimit != 200 {
		t.Errorf("char limit = %d, want default 200", f.settings.CharLimit)
	}
}

func TestRootSummary(t *testing.T) {
	stubProgram(t)

	code, stdout, _ := execute("--summary", "--theme", "mono", "A", "B")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	for _, want := range []string{"Remaining", "Total 2", " 1. - A", " 2. - B"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("summary missing %q:\n%s", want, stdout)
		}
	}
}

func TestRootNoSummaryByDefault(t *testing.T) {
	stubProgram(t)
	_, stdout, _ := execute("A")
	if stdout != "" {
		t.Errorf("unexpected output %q", stdout)
	}
}

func TestRootConfigFile(t *testing.T) {
	f := stubProgram(t)
	path := filepath.Join(t.TempDir(), "c.yaml")
	if err := os.WriteFile(path, []byte("theme: neon\nchar_limit: 42\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if code, _, stderr := execute("--config", path); code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", code, stderr)
	}
	if f.settings.Theme.Name != "neon" || f.settings.CharLimit != 42 {
		t.Errorf("settings = %+v", f.settings)
	}
}

func TestRootErrors(t *testing.T) {
	stubProgram(t)

	code, _, stderr := execute("--config", "missing.yaml")
	if code != 1 || !strings.Contains(stderr, "config file not found") {
		t.Errorf("code = %d, stderr = %q", code, stderr)
	}

	code, _, stderr = execute("--theme", "disco")
	if code != 1 || !strings.Contains(stderr, "invalid configuration") {
		t.Errorf("code = %d, stderr = %q", code, stderr)
	}
}

func TestRootProgramError(t *testing.T) {
	f := stubProgram(t)
	f.err = errors.New("no tty")

	code, _, stderr := execute()
	if code != 1 || !strings.Contains(stderr, "no tty") {
		t.Errorf("code = %d, stderr = %q", code, stderr)
	}
}

func TestRootInterruptIsCleanQuit(t *testing.T) {
	f := stubProgram(t)
	f.err = fmt.Errorf("run program: %w", tea.ErrProgramKilled)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code, stdout, stderr := executeContext(ctx, "--summary", "--theme", "mono", "A")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr)
	}
	if !strings.Contains(stdout, " 1. - A") {
		t.Errorf("summary should still print:\n%s", stdout)
	}
}

func TestRootKilledWithoutCancelIsError(t *testing.T) {
	f := stubProgram(t)
	f.err = fmt.Errorf("run program: %w", tea.ErrProgramKilled)

	if code, _, _ := execute("A"); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}

func TestLogFile(t *testing.T) {
	stubProgram(t)
	path := filepath.Join(t.TempDir(), "tada.log")

	if code, _, stderr := execute("--log-file", path, "--log-level", "debug", "A"); code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", code, stderr)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "starting") || !strings.Contains(string(data), "remaining=1") {
		t.Errorf("log = %s", data)
	}
}

func TestVersion(t *testing.T) {
	prev := Version
	Version = "1.2.3"
	defer func() { Version = prev }()

	code, stdout, _ := execute("version")
	if code != 0 || strings.TrimSpace(stdout) != "todo 1.2.3" {
		t.Errorf("code = %d, stdout = %q", code, stdout)
	}
}

func TestPrintSummaryTruncates(t *testing.T) {
	tr, err := i18n.New("en")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	long := strings.Repeat("x", 100)
	printSummary(&buf, ui.ThemeFor("mono"), tr, []model.Item{{ID: "a", Title: long}})

	out := buf.String()
	if strings.Contains(out, long) {
		t.Error("long title should be cut")
	}
	if !strings.Contains(out, strings.Repeat("x", 77)+"...") {
		t.Errorf("missing truncated title:\n%s", out)
	}
}

func TestPrintSummaryEmpty(t *testing.T) {
	tr, _ := i18n.New("en")
	var buf bytes.Buffer
	printSummary(&buf, ui.ThemeFor("mono"), tr, nil)
	if !strings.Contains(buf.String(), "no items") {
		t.Errorf("output = %s", buf.String())
	}
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent of testing.T.Chdir for older toolchains).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore cwd: %v", err)
		}
	})
}
