package fixture

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/aadhaar-sanket/sanket/internal/logging"
)

// reloadDebounce collapses the burst of events editors emit for one save.
const reloadDebounce = 50 * time.Millisecond

// Watcher reloads a Store from its payload file when the file changes
type Watcher struct {
	watcher *fsnotify.Watcher
	store   *Store
	path    string
	logger  *logging.Logger

	// Callback after every reload attempt; err is nil on success
	onReload func(err error)

	mu       sync.RWMutex
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewWatcher creates a watcher for path. The parent directory is watched so
// that editors replacing the file by rename are still seen.
func NewWatcher(store *Store, path string, logger *logging.Logger) (*Watcher, error) {
	if logger == nil {
		logger = logging.NopLogger()
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	return &Watcher{
		watcher: watcher,
		store:   store,
		path:    abs,
		logger:  logger.WithComponent("fixture-watcher"),
		stopCh:  make(chan struct{}),
	}, nil
}

// SetReloadCallback sets the callback invoked after each reload attempt
func (w *Watcher) SetReloadCallback(cb func(err error)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onReload = cb
}

// Start begins watching for file changes
func (w *Watcher) Start() {
	go w.watchLoop()
}

// Stop stops the watcher and cleans up resources. It is safe to call more
// than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		_ = w.watcher.Close()
	})
}

// watchLoop processes filesystem events
func (w *Watcher) watchLoop() {
	debounceTimer := time.NewTimer(0)
	<-debounceTimer.C // drain initial timer
	pending := false

	for {
		select {
		case <-w.stopCh:
			debounceTimer.Stop()
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = true
			debounceTimer.Reset(reloadDebounce)

		case <-debounceTimer.C:
			if pending {
				pending = false
				w.reload()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("payload watcher error", "error", err)
		}
	}
}

// reload loads the payload file into the store, keeping the previous
// payload when the file is invalid
func (w *Watcher) reload() {
	err := w.store.LoadFile(w.path)
	if err != nil {
		w.logger.Warn("payload reload failed, keeping previous payload", "path", w.path, "error", err)
	} else {
		i1, i2, i3 := w.store.Get().Rows()
		w.logger.Info("payload reloaded", "path", w.path, "insight1", i1, "insight2", i2, "insight3", i3)
	}

	w.mu.RLock()
	cb := w.onReload
	w.mu.RUnlock()
	if cb != nil {
		cb(err)
	}
}
