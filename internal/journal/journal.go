// Package journal keeps a bounded history of capture runs.
package journal

import (
	"time"

	"github.com/google/uuid"
)

// Entry records one captured and executed command.
type Entry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Script    string    `json:"script"`
	Command   string    `json:"command"`
	Comment   string    `json:"comment,omitempty"`
	ExitCode  int       `json:"exit_code"`
}

// NewEntry returns an Entry with a fresh ID stamped with the current time.
func NewEntry(script, command, comment string, exitCode int) Entry {
	return Entry{
		ID:        uuid.New().String(),
		Timestamp: time.Now(),
		Script:    script,
		Command:   command,
		Comment:   comment,
		ExitCode:  exitCode,
	}
}

// Filter returns the newest limit entries of entries, restricted to script
// when it is non-empty. A limit <= 0 keeps everything. Order is preserved.
func Filter(entries []Entry, script string, limit int) []Entry {
	var out []Entry
	for _, e := range entries {
		if script != "" && e.Script != script {
			continue
		}
		out = append(out, e)
	}
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out
}
