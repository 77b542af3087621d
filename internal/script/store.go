// Package script manages captured shell scripts: file lifecycle, the header
// block, and the settings stored as comment lines inside each script.
package script

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Ext is the file extension of every captured script.
const Ext = ".sh"

// DefaultName is the script used when a capture names no script.
const DefaultName = "default"

var (
	// ErrInvalidName is returned for empty names or names with path separators.
	ErrInvalidName = errors.New("invalid script name")
	// ErrNotFound is returned when a script file does not exist.
	ErrNotFound = errors.New("script not found")
)

// Store resolves script names to files under a single home directory.
type Store struct {
	dir string
}

// NewStore returns a Store rooted at dir, creating the directory if needed.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("script home directory is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating script home directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the home directory of the store.
func (s *Store) Dir() string { return s.dir }

// Path returns the file path for name without touching the filesystem.
func (s *Store) Path(name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(s.dir, name+Ext), nil
}

// Ensure makes sure the script for name exists and carries the header block.
// A new file gets the header as its entire content; an existing file whose
// text lacks the Marker gets the header appended at the end.
// The created result reports whether the file was newly created.
func (s *Store) Ensure(name string) (path string, created bool, err error) {
	path, err = s.Path(name)
	if err != nil {
		return "", false, err
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		if err := os.WriteFile(path, []byte(Header+"\n"), 0o644); err != nil {
			return "", false, fmt.Errorf("creating script %s: %w", name, err)
		}
		return path, true, nil
	case err != nil:
		return "", false, fmt.Errorf("reading script %s: %w", name, err)
	}

	if strings.Contains(string(data), Marker) {
		return path, false, nil
	}
	block := Header + "\n"
	if len(data) > 0 && data[len(data)-1] != '\n' {
		block = "\n" + block
	}
	if err := appendText(path, block); err != nil {
		return "", false, fmt.Errorf("adding header to script %s: %w", name, err)
	}
	return path, false, nil
}

// Open returns the path of an existing script, or ErrNotFound.
func (s *Store) Open(name string) (string, error) {
	path, err := s.Path(name)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return path, nil
}

// List returns the file names of all scripts directly under the home
// directory, in directory order.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("listing scripts: %w", err)
	}
	var names []string
	for _, e := range entries {
		if filepath.Ext(e.Name()) != Ext || !isFile(filepath.Join(s.dir, e.Name()), e) {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// AppendLines appends each line, newline-terminated, to the script at path in
// a single write. A missing newline at the end of the file is added first so
// the new lines never join an existing one.
func AppendLines(path string, lines ...string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	needsNewline, err := endsWithoutNewline(f)
	f.Close()
	if err != nil {
		return err
	}

	var sb strings.Builder
	if needsNewline {
		sb.WriteByte('\n')
	}
	for _, l := range lines {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
	return appendText(path, sb.String())
}

// endsWithoutNewline reports whether f is non-empty and its last byte is not '\n'.
func endsWithoutNewline(f *os.File) (bool, error) {
	info, err := f.Stat()
	if err != nil {
		return false, err
	}
	if info.Size() == 0 {
		return false, nil
	}
	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil {
		return false, err
	}
	return last[0] != '\n', nil
}

// isFile reports whether e is a regular file, following symlinks.
func isFile(path string, e os.DirEntry) bool {
	if e.Type().IsRegular() {
		return true
	}
	if e.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// appendText appends text to the file at path in a single write.
func appendText(path, text string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(text); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
