package file

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/udl-cli/internal/core/ports/driven"
	"github.com/custodia-labs/udl-cli/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.ContentWatcher = (*Watcher)(nil)

// Watcher reports edits to the JSON documents in a content directory.
// The callback fires from the watcher goroutine; consumers mark state
// stale rather than rebuilding inline.
type Watcher struct {
	dir string

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewWatcher creates a watcher for a content directory. Watching an
// embedded dataset is meaningless; callers only construct one for a
// real directory.
func NewWatcher(dir string) *Watcher {
	return &Watcher{dir: dir}
}

// Watch starts delivering onChange for every relevant document event
// until Close. Chmod-only events and non-JSON files are ignored.
func (w *Watcher) Watch(onChange func()) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.watcher != nil {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(w.dir); err != nil {
		_ = watcher.Close()
		return err
	}

	w.watcher = watcher
	w.done = make(chan struct{})
	go w.run(watcher, w.done, onChange)

	logger.Debug("Watching content directory %s", w.dir)
	return nil
}

func (w *Watcher) run(watcher *fsnotify.Watcher, done chan struct{}, onChange func()) {
	for {
		select {
		case <-done:
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !relevantEvent(event) {
				continue
			}
			logger.Debug("Content change: %s %s", event.Op, event.Name)
			onChange()
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("Content watcher: %v", err)
		}
	}
}

// relevantEvent filters for document mutations.
func relevantEvent(event fsnotify.Event) bool {
	if !strings.EqualFold(filepath.Ext(event.Name), ".json") {
		return false
	}
	return event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0
}

// Close stops watching.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.watcher == nil {
		return nil
	}
	close(w.done)
	err := w.watcher.Close()
	w.watcher = nil
	return err
}
