// Package prompt asks the user yes/no and free-text questions.
// Callers depend on the Prompter interface so tests can script the answers.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompter asks a single question and returns the answer.
type Prompter interface {
	// Confirm returns true for a case-insensitive "y" or "yes"; anything
	// else, including empty input, is false.
	Confirm(question string) (bool, error)
	// Ask returns the answer line with surrounding whitespace trimmed.
	Ask(question string) (string, error)
}

// linePrompter reads one answer per line from r and prints questions to w.
// It never reads past the end of an answer, so whatever follows stays in r
// for the next reader, such as a command run after the prompt.
type linePrompter struct {
	r io.Reader
	w io.Writer
}

// New returns a Prompter reading answers from r and writing questions to w.
func New(r io.Reader, w io.Writer) Prompter {
	return &linePrompter{r: r, w: w}
}

func (p *linePrompter) Ask(question string) (string, error) {
	fmt.Fprintln(p.w, question)
	line, err := p.readLine()
	// A final answer without a newline is still an answer.
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readLine reads up to and including the next '\n', one byte at a time.
func (p *linePrompter) readLine() (string, error) {
	var sb strings.Builder
	b := make([]byte, 1)
	for {
		n, err := p.r.Read(b)
		if n > 0 {
			if b[0] == '\n' {
				return sb.String(), nil
			}
			sb.WriteByte(b[0])
		}
		if err != nil {
			return sb.String(), err
		}
	}
}

func (p *linePrompter) Confirm(question string) (bool, error) {
	ans, err := p.Ask(question)
	if err != nil {
		return false, err
	}
	return IsYes(ans), nil
}

// IsYes reports whether ans is an affirmative answer.
func IsYes(ans string) bool {
	switch strings.ToLower(strings.TrimSpace(ans)) {
	case "y", "yes":
		return true
	}
	return false
}

// Scripted is a Prompter that replays fixed answers in order.
// Once the answers run out every question gets an empty answer.
type Scripted struct {
	Answers   []string
	Questions []string
}

func (s *Scripted) Ask(question string) (string, error) {
	s.Questions = append(s.Questions, question)
	if len(s.Answers) == 0 {
		return "", nil
	}
	ans := s.Answers[0]
	s.Answers = s.Answers[1:]
	return strings.TrimSpace(ans), nil
}

func (s *Scripted) Confirm(question string) (bool, error) {
	ans, err := s.Ask(question)
	if err != nil {
		return false, err
	}
	return IsYes(ans), nil
}
