package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fakeyudi/capturecli/internal/journal"
	"github.com/fakeyudi/capturecli/internal/recorder"
	"github.com/fakeyudi/capturecli/internal/script"
	"github.com/fakeyudi/capturecli/internal/shell"
)

// runCapture handles `capturecli <name> <command...>` and `capturecli <command>`.
// The command is appended to the script before it runs, so it is kept even
// when it fails.
func runCapture(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	name, command := script.DefaultName, args[0]
	if len(args) > 1 {
		name, command = args[0], strings.Join(args[1:], " ")
	}

	path, _, err := store.Ensure(name)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created or updated script file: %s\n", name)

	step, err := recorder.New(newPrompter(cmd)).Record(path, command)
	if err != nil {
		return err
	}

	runner := &shell.ShellRunner{
		Shell:  cfg.Shell,
		Stdin:  cmd.InOrStdin(),
		Stdout: out,
		Stderr: cmd.ErrOrStderr(),
	}
	res, err := runner.Run(cmd.Context(), command)
	if err != nil {
		return err
	}

	logRun(cmd, journal.NewEntry(name, command, step.Comment, res.ExitCode))

	if !res.Success() {
		cmd.PrintErrf("warning: command exited with status %d: %s\n", res.ExitCode, command)
		return nil
	}
	fmt.Fprintf(out, "Command executed and captured: %s\n", command)
	return nil
}

// logRun appends e to the journal. The journal is a convenience, so failures
// only produce a warning.
func logRun(cmd *cobra.Command, e journal.Entry) {
	j, err := journal.NewStore(cfg.JournalLimit)
	if err == nil {
		err = j.Append(e)
	}
	if err != nil {
		cmd.PrintErrf("warning: %v\n", err)
	}
}
