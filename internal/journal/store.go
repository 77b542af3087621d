package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fakeyudi/capturecli/internal/fsutil"
)

// Store persists journal entries to disk.
type Store interface {
	Append(e Entry) error
	Load() ([]Entry, error) // oldest first; empty when nothing was recorded
}

// diskStore is the concrete Store that writes to the XDG data directory.
type diskStore struct {
	path  string // full path to journal.json
	limit int    // entries kept; <= 0 keeps all
}

// NewStore returns a Store backed by the XDG data directory, keeping at most
// limit entries.
// Path: $XDG_DATA_HOME/capturecli/journal.json or ~/.local/share/capturecli/journal.json
func NewStore(limit int) (Store, error) {
	dir, err := dataDir()
	if err != nil {
		return nil, fmt.Errorf("resolving data directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &diskStore{path: filepath.Join(dir, "journal.json"), limit: limit}, nil
}

// dataDir returns the capturecli-specific XDG data directory.
func dataDir() (string, error) {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(base, "capturecli"), nil
}

// Append adds e and drops the oldest entries beyond the limit.
func (d *diskStore) Append(e Entry) error {
	entries, err := d.Load()
	if err != nil {
		return err
	}
	entries = append(entries, e)
	entries = Filter(entries, "", d.limit)
	return d.save(entries)
}

// save marshals entries to JSON and replaces the journal file atomically.
func (d *diskStore) save(entries []Entry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to persist journal: %w", err)
	}
	if err := fsutil.WriteFileAtomic(d.path, data); err != nil {
		return fmt.Errorf("failed to persist journal: %w", err)
	}
	return nil
}

// Load reads and unmarshals the journal file.
func (d *diskStore) Load() ([]Entry, error) {
	data, err := os.ReadFile(d.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse journal: %w", err)
	}
	return entries, nil
}
