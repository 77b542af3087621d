package cmd

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/fakeyudi/capturecli/internal/config"
	"github.com/fakeyudi/capturecli/internal/journal"
)

// executeCommand runs a cobra command with the given args and captures combined output.
func executeCommand(root *cobra.Command, args ...string) (output string, err error) {
	return executeCommandWithInput(root, "", args...)
}

// executeCommandWithInput is executeCommand with input fed to prompts.
func executeCommandWithInput(root *cobra.Command, input string, args ...string) (output string, err error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetIn(strings.NewReader(input))
	root.SetArgs(args)
	_, err = root.ExecuteC()
	return buf.String(), err
}

// isolate points HOME and the XDG data directory at a temp dir and returns
// the script home directory the commands will use.
func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("XDG_DATA_HOME", filepath.Join(tmp, "data"))
	t.Setenv(config.HomeEnv, "")
	return filepath.Join(tmp, "CaptureCLI")
}

func requireSh(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func readScript(t *testing.T, home, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(home, name+".sh"))
	if err != nil {
		t.Fatalf("reading %s.sh: %v", name, err)
	}
	return string(data)
}

// journalEntries loads the journal of the isolated test environment.
func journalEntries(t *testing.T) []journal.Entry {
	t.Helper()
	j, err := journal.NewStore(0)
	if err != nil {
		t.Fatalf("journal.NewStore: %v", err)
	}
	entries, err := j.Load()
	if err != nil {
		t.Fatalf("loading journal: %v", err)
	}
	return entries
}

func TestNoArgsProducesNoOutput(t *testing.T) {
	isolate(t)
	out, err := executeCommand(rootCmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "" {
		t.Errorf("expected no output, got %q", out)
	}
}

func TestHomeDirIsCreated(t *testing.T) {
	home := isolate(t)
	if _, err := executeCommand(rootCmd, "list"); err != nil {
		t.Fatal(err)
	}
	if info, err := os.Stat(home); err != nil || !info.IsDir() {
		t.Fatalf("home directory not created: %v", err)
	}
}

func TestHomeEnvOverride(t *testing.T) {
	isolate(t)
	custom := filepath.Join(t.TempDir(), "elsewhere")
	t.Setenv(config.HomeEnv, custom)
	requireSh(t)

	if _, err := executeCommand(rootCmd, "true"); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(custom, "default.sh")); err != nil {
		t.Errorf("default.sh not created under %s: %v", custom, err)
	}
}

func TestBadConfigIsFatal(t *testing.T) {
	isolate(t)
	dir := filepath.Join(os.Getenv("HOME"), ".config", "capturecli")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := executeCommand(rootCmd, "list")
	if err == nil || !strings.Contains(err.Error(), "loading config") {
		t.Fatalf("expected config error, got %v", err)
	}
}

func TestHelpListsSubcommands(t *testing.T) {
	isolate(t)
	t.Cleanup(func() { rootCmd.Flags().Set("help", "false") })
	out, err := executeCommand(rootCmd, "--help")
	if err != nil {
		t.Fatal(err)
	}
	for _, sub := range []string{"new", "config", "list", "view", "history"} {
		if !strings.Contains(out, sub) {
			t.Errorf("help output missing %q", sub)
		}
	}
}
