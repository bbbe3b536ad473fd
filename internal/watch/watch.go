// Package watch re-runs a formatting callback whenever one of the
// watched input files is rewritten.
package watch

import (
	"fmt"
	"path/filepath"

	"gopkg.in/fsnotify.v1"
)

// Watcher monitors individual files by watching their directories,
// since most editors replace files on save instead of writing in place.
type Watcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]bool
	onChange func(path string)
	stopChan chan struct{}
}

// New creates a watcher that invokes onChange with the changed path.
func New(onChange func(path string)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	return &Watcher{
		watcher:  fw,
		files:    make(map[string]bool),
		onChange: onChange,
		stopChan: make(chan struct{}),
	}, nil
}

// Add registers a file to monitor.
func (w *Watcher) Add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := w.watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching directory %s: %w", filepath.Dir(abs), err)
	}
	w.files[abs] = true
	return nil
}

// Run blocks handling file system events until Close is called.
func (w *Watcher) Run() {
	for {
		select {
		case <-w.stopChan:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !w.files[abs] {
				continue
			}
			switch {
			case event.Op&fsnotify.Write == fsnotify.Write:
				w.onChange(abs)
			case event.Op&fsnotify.Create == fsnotify.Create:
				// Editors that save via rename surface as create.
				w.onChange(abs)
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Keep watching; transient errors are not fatal.
		}
	}
}

// Close stops the event loop and releases the underlying watcher.
func (w *Watcher) Close() error {
	close(w.stopChan)
	return w.watcher.Close()
}
