package tui

import (
	"context"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// Watch sends a reload message through send every time the script at path is
// written, replaced or recreated. It blocks until ctx is cancelled and only
// returns an error when the watch cannot be set up.
func Watch(ctx context.Context, path string, send func(tea.Msg)) error {
	w, err := watchFile(path)
	if err != nil {
		return err
	}
	forward(ctx, w, path, send)
	return nil
}

// watchFile watches the directory holding path. Settings updates replace the
// file via rename, which a watch on the file itself would not survive.
func watchFile(path string) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}
	return watcher, nil
}

// forward turns watcher events for path into reload messages and closes the
// watcher when ctx is done.
func forward(ctx context.Context, watcher *fsnotify.Watcher, path string, send func(tea.Msg)) {
	defer watcher.Close()
	target := filepath.Clean(path)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				doc, err := Load(path)
				send(reloadMsg{doc: doc, err: err})
			}

		case _, ok := <-watcher.Errors:
			if !ok {
				return
			}
			// Watcher errors are non-fatal; continue watching.
		}
	}
}
