package file

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/wikifinder/internal/core/ports/driven"
	"github.com/custodia-labs/wikifinder/internal/logger"
)

// Ensure SkipListWatcher implements the interface.
var _ driven.SkipListWatcher = (*SkipListWatcher)(nil)

// SkipListWatcher watches the config file and re-reads the skip-site
// list whenever it changes, so a running find picks up newly
// blacklisted sites without a restart.
type SkipListWatcher struct {
	store *ConfigStore
	key   string

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	updates chan []string
	done    chan struct{}
}

// NewSkipListWatcher creates a watcher over the store's file for the
// given skip-list key.
func NewSkipListWatcher(store *ConfigStore, key string) *SkipListWatcher {
	return &SkipListWatcher{store: store, key: key}
}

// Watch starts watching and returns a channel of full skip lists.
// The channel is closed when watching stops.
func (w *SkipListWatcher) Watch() (<-chan []string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.watcher != nil {
		return w.updates, nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory, not the file: editors replace the file on
	// save and the inode watch would be lost.
	if err := watcher.Add(filepath.Dir(w.store.Path())); err != nil {
		watcher.Close()
		return nil, err
	}

	w.watcher = watcher
	w.updates = make(chan []string, 1)
	w.done = make(chan struct{})

	go w.run(watcher, w.updates, w.done)
	return w.updates, nil
}

func (w *SkipListWatcher) run(watcher *fsnotify.Watcher, updates chan []string, done chan struct{}) {
	defer close(updates)

	for {
		select {
		case <-done:
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Name != w.store.Path() {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := w.store.Load(); err != nil {
				logger.Warn("Failed to reload config: %v", err)
				continue
			}
			select {
			case updates <- w.store.GetStringSlice(w.key):
			case <-done:
				return
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Debug("Config watch error: %v", err)
		}
	}
}

// Close stops watching. Safe to call more than once.
func (w *SkipListWatcher) Close() error {
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
