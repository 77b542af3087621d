// Package recorder appends executed commands to captured scripts.
package recorder

import (
	"fmt"
	"os"

	"github.com/fakeyudi/capturecli/internal/prompt"
	"github.com/fakeyudi/capturecli/internal/script"
)

// CommentQuestion is asked before each step when step comments are enabled.
const CommentQuestion = "Enter a comment for this step (press Enter to skip): "

// Step is what Record wrote for one command.
type Step struct {
	Comment string // empty when no comment was recorded
	Command string
}

// Recorder appends commands, and optional step comments, to script files.
// It never rewrites existing lines.
type Recorder struct {
	Prompter prompt.Prompter
}

// New returns a Recorder asking for step comments through p.
func New(p prompt.Prompter) *Recorder {
	return &Recorder{Prompter: p}
}

// Record appends command to the script at path. When the script enables step
// comments the user is asked for one first; a non-blank answer is written as
// a green echo line directly above the command.
func (r *Recorder) Record(path, command string) (Step, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Step{}, fmt.Errorf("reading script: %w", err)
	}

	step := Step{Command: command}
	lines := make([]string, 0, 2)
	if script.StepCommentsEnabled(string(data)) && r.Prompter != nil {
		comment, err := r.Prompter.Ask(CommentQuestion)
		if err != nil {
			return Step{}, fmt.Errorf("reading step comment: %w", err)
		}
		if comment != "" {
			step.Comment = comment
			lines = append(lines, script.StepCommentLine(comment))
		}
	}
	lines = append(lines, command)

	if err := script.AppendLines(path, lines...); err != nil {
		return Step{}, fmt.Errorf("appending to script: %w", err)
	}
	return step, nil
}
