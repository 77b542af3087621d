package script

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind classifies a single line of a captured script.
type Kind int

const (
	KindBlank Kind = iota
	KindShebang
	KindComment
	KindSettingsMarker
	KindSetting
	KindStepComment
	KindCommand
)

func (k Kind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindShebang:
		return "shebang"
	case KindComment:
		return "comment"
	case KindSettingsMarker:
		return "settings-marker"
	case KindSetting:
		return "setting"
	case KindStepComment:
		return "step-comment"
	case KindCommand:
		return "command"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// The green color codes are written literally; the shell expands them when
// the script runs.
const (
	stepCommentPrefix = `echo -e "\033[0;32m`
	stepCommentSuffix = `\033[0m"`
)

var stepCommentPattern = regexp.MustCompile(`^echo -e "\\033\[0;32m(.*)\\033\[0m"$`)

// StepCommentLine renders the line that echoes comment in green.
func StepCommentLine(comment string) string {
	return stepCommentPrefix + comment + stepCommentSuffix
}

// StepCommentText extracts the comment from a line built by StepCommentLine.
func StepCommentText(line string) (string, bool) {
	m := stepCommentPattern.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Classify returns the kind of a single script line.
func Classify(line string) Kind {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return KindBlank
	case strings.HasPrefix(trimmed, "#!"):
		return KindShebang
	case settingPattern.MatchString(line):
		return KindSetting
	case strings.Contains(line, SettingsMarker) && (trimmed == SettingsMarker || strings.HasPrefix(trimmed, "#")):
		return KindSettingsMarker
	case strings.HasPrefix(trimmed, "#"):
		return KindComment
	case stepCommentPattern.MatchString(line):
		return KindStepComment
	}
	return KindCommand
}

// Step is one recorded command with the comment echoed before it, if any.
type Step struct {
	Comment string
	Command string
	Line    int // zero-based index of the command line
}

// Steps returns the recorded commands in file order. A step comment attaches
// to the command line that directly follows it.
func (d *Document) Steps() []Step {
	var steps []Step
	pending := ""
	for i, l := range d.Lines {
		switch Classify(l) {
		case KindStepComment:
			pending, _ = StepCommentText(l)
		case KindCommand:
			steps = append(steps, Step{Comment: pending, Command: l, Line: i})
			pending = ""
		}
	}
	return steps
}
