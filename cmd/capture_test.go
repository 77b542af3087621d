package cmd

import (
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/fakeyudi/capturecli/internal/script"
)

func TestCaptureWithStepComment(t *testing.T) {
	requireSh(t)
	home := isolate(t)

	if _, err := executeCommandWithInput(rootCmd, "y\n", "new", "foo"); err != nil {
		t.Fatalf("new: %v", err)
	}
	out, err := executeCommandWithInput(rootCmd, "hello\n", "foo", "echo", "hi")
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	if !strings.Contains(out, "Enter a comment for this step") {
		t.Errorf("comment prompt missing: %q", out)
	}
	if !strings.Contains(out, "hi\n") {
		t.Errorf("command output missing: %q", out)
	}
	if !strings.Contains(out, "Command executed and captured: echo hi") {
		t.Errorf("confirmation missing: %q", out)
	}

	text := readScript(t, home, "foo")
	want := "echo -e \"\\033[0;32mhello\\033[0m\"\necho hi\n"
	if !strings.HasSuffix(text, want) {
		t.Errorf("script tail mismatch:\n%s", text)
	}
}

func TestCaptureSingleTokenUsesDefaultScript(t *testing.T) {
	requireSh(t)
	home := isolate(t)

	out, err := executeCommand(rootCmd, "ls -la")
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	if !strings.Contains(out, "Created or updated script file: default") {
		t.Errorf("unexpected output: %q", out)
	}
	if text := readScript(t, home, "default"); !strings.HasSuffix(text, "\nls -la\n") {
		t.Errorf("default.sh tail mismatch:\n%s", text)
	}
}

func TestCapturePassesCommandFlagsThrough(t *testing.T) {
	requireSh(t)
	home := isolate(t)

	if _, err := executeCommand(rootCmd, "build", "ls", "-la", "--color=never"); err != nil {
		t.Fatalf("capture: %v", err)
	}
	if text := readScript(t, home, "build"); !strings.HasSuffix(text, "\nls -la --color=never\n") {
		t.Errorf("flags not captured verbatim:\n%s", text)
	}
}

func TestCaptureFailingCommandIsRecordedAndNotFatal(t *testing.T) {
	requireSh(t)
	home := isolate(t)

	out, err := executeCommand(rootCmd, "broken", "exit 7")
	if err != nil {
		t.Fatalf("failing command must not fail the tool: %v", err)
	}
	if !strings.Contains(out, "warning: command exited with status 7: exit 7") {
		t.Errorf("warning missing: %q", out)
	}
	if strings.Contains(out, "Command executed and captured") {
		t.Errorf("success confirmation printed for a failing command: %q", out)
	}
	if text := readScript(t, home, "broken"); !strings.HasSuffix(text, "\nexit 7\n") {
		t.Errorf("failing command not recorded:\n%s", text)
	}
}

func TestCaptureSignalledCommandIsAWarning(t *testing.T) {
	requireSh(t)
	home := isolate(t)

	out, err := executeCommand(rootCmd, "sig", "kill -TERM $$")
	if err != nil {
		t.Fatalf("signalled command must not fail the tool: %v", err)
	}
	if !strings.Contains(out, "warning: command exited with status 143: kill -TERM $$") {
		t.Errorf("warning missing: %q", out)
	}
	if text := readScript(t, home, "sig"); !strings.HasSuffix(text, "\nkill -TERM $$\n") {
		t.Errorf("signalled command not recorded:\n%s", text)
	}
	entries := journalEntries(t)
	if len(entries) != 1 || entries[0].ExitCode != 143 {
		t.Errorf("journal entries = %+v", entries)
	}
}

func TestCaptureChildReadsInputAfterComment(t *testing.T) {
	requireSh(t)
	home := isolate(t)

	if _, err := executeCommandWithInput(rootCmd, "y\n", "new", "in"); err != nil {
		t.Fatal(err)
	}
	out, err := executeCommandWithInput(rootCmd, "note\nfed to cat\n", "in", "cat")
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	if !strings.Contains(out, "fed to cat\n") {
		t.Errorf("child did not receive the input after the comment: %q", out)
	}
	if text := readScript(t, home, "in"); !strings.Contains(text, script.StepCommentLine("note")+"\ncat\n") {
		t.Errorf("script tail mismatch:\n%s", text)
	}
}

func TestCaptureSkipsPromptWhenDisabled(t *testing.T) {
	requireSh(t)
	home := isolate(t)

	if _, err := executeCommandWithInput(rootCmd, "n\n", "config", "quiet"); err != nil {
		t.Fatal(err)
	}
	out, err := executeCommandWithInput(rootCmd, "not a comment\n", "quiet", "true")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "Enter a comment") {
		t.Errorf("prompted with step comments disabled: %q", out)
	}
	if text := readScript(t, home, "quiet"); strings.Contains(text, "not a comment") {
		t.Errorf("answer leaked into the script:\n%s", text)
	}
}

// Feature: capturecli, the captured command is the last line regardless of exit status
func TestCaptureCommandIsAlwaysLastLine(t *testing.T) {
	requireSh(t)
	home := isolate(t)

	rapid.Check(t, func(rt *rapid.T) {
		code := rapid.IntRange(0, 5).Draw(rt, "exit")
		command := "exit " + string(rune('0'+code))
		if _, err := executeCommand(rootCmd, "prop", command); err != nil {
			rt.Fatalf("capture: %v", err)
		}
		text := readScript(t, home, "prop")
		lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
		if lines[len(lines)-1] != command {
			rt.Fatalf("last line = %q, want %q", lines[len(lines)-1], command)
		}
	})
}
