package script

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/fakeyudi/capturecli/internal/fsutil"
	"github.com/fakeyudi/capturecli/internal/prompt"
)

// SettingsMarker opens the settings section. The header's last line carries it.
const SettingsMarker = "CaptureSettings:"

// StepCommentsQuestion is asked by Configure.
const StepCommentsQuestion = "Do you want to be prompted for comments before each command? [y/N]: "

const stepCommentsKey = "enable_step_comments"

// settingPattern matches a well-formed step-comments line. Anything else, even
// a near miss, is treated as an unrelated comment.
var settingPattern = regexp.MustCompile(`^# - enable_step_comments=(true|false)$`)

// SettingLine renders the step-comments setting as stored in a script.
func SettingLine(enabled bool) string {
	return fmt.Sprintf("# - %s=%t", stepCommentsKey, enabled)
}

// StepCommentsEnabled reports whether text turns step comments on.
func StepCommentsEnabled(text string) bool {
	return strings.Contains(text, SettingLine(true))
}

// Document is the text of a script split into lines. Parse followed by
// String reproduces the input byte for byte.
type Document struct {
	Lines           []string
	TrailingNewline bool
}

// Parse splits text into a Document.
func Parse(text string) *Document {
	d := &Document{TrailingNewline: strings.HasSuffix(text, "\n")}
	if text == "" {
		return d
	}
	d.Lines = strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	return d
}

// String serializes the document back to text.
func (d *Document) String() string {
	s := strings.Join(d.Lines, "\n")
	if d.TrailingNewline {
		s += "\n"
	}
	return s
}

// StepComments returns the value of the first well-formed setting line and
// whether one was found.
func (d *Document) StepComments() (enabled, found bool) {
	for _, l := range d.Lines {
		if m := settingPattern.FindStringSubmatch(l); m != nil {
			return m[1] == "true", true
		}
	}
	return false, false
}

// SetStepComments updates the setting in place. With a settings section it
// replaces the first setting line, or inserts one right below the first
// marker line. Without a section it appends a blank line, the marker and the
// setting.
func (d *Document) SetStepComments(enabled bool) {
	line := SettingLine(enabled)

	marker := -1
	for i, l := range d.Lines {
		if strings.Contains(l, SettingsMarker) {
			marker = i
			break
		}
	}
	if marker < 0 {
		d.Lines = append(d.Lines, "", SettingsMarker, line)
		d.TrailingNewline = true
		return
	}

	for i, l := range d.Lines {
		if settingPattern.MatchString(l) {
			d.Lines[i] = line
			return
		}
	}

	d.Lines = append(d.Lines, "")
	copy(d.Lines[marker+2:], d.Lines[marker+1:])
	d.Lines[marker+1] = line
	if marker+2 == len(d.Lines) {
		// The inserted line is now the last one.
		d.TrailingNewline = true
	}
}

// SetStepComments rewrites the script at path with the setting applied.
func SetStepComments(path string, enabled bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading script settings: %w", err)
	}
	doc := Parse(string(data))
	doc.SetStepComments(enabled)
	if err := fsutil.WriteFileAtomic(path, []byte(doc.String())); err != nil {
		return fmt.Errorf("writing script settings: %w", err)
	}
	return nil
}

// Configure asks whether step comments should be prompted for and stores the
// answer in the script at path.
func Configure(path string, p prompt.Prompter) (bool, error) {
	enabled, err := p.Confirm(StepCommentsQuestion)
	if err != nil {
		return false, fmt.Errorf("reading answer: %w", err)
	}
	if err := SetStepComments(path, enabled); err != nil {
		return false, err
	}
	return enabled, nil
}
