package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ReloadHandler is called after the watched config file is reloaded.
// err is non-nil when the reload failed; the registry then keeps its
// previous values.
type ReloadHandler func(path string, err error)

// Watcher reloads a configuration file when it changes on disk.
//
// The file's directory is watched rather than the file itself, so
// editors that replace the file on save (rename-over-write) still
// trigger a reload.
type Watcher struct {
	mu sync.Mutex

	watcher *fsnotify.Watcher
	loader  *Loader
	path    string
	handler ReloadHandler

	// Debounce window for editors that emit bursts of events.
	debounce time.Duration

	closed  bool
	closeCh chan struct{}
	doneWg  sync.WaitGroup
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the debounce window for rapid change bursts.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// WithReloadHandler sets the callback invoked after each reload.
func WithReloadHandler(h ReloadHandler) WatcherOption {
	return func(w *Watcher) {
		w.handler = h
	}
}

// NewWatcher creates a watcher that reloads path into the registry on
// change. The initial load is the caller's responsibility.
func NewWatcher(registry *Registry, path string, opts ...WatcherOption) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher:  fsw,
		loader:   NewLoader(registry),
		path:     absPath,
		debounce: 100 * time.Millisecond,
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w.doneWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Path returns the watched file path.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	err := w.watcher.Close()
	w.doneWg.Wait()
	return err
}

// processLoop handles incoming fsnotify events.
func (w *Watcher) processLoop() {
	defer w.doneWg.Done()

	var timer *time.Timer
	var timerCh <-chan time.Time

	for {
		select {
		case <-w.closeCh:
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			// Debounce: restart the timer on every relevant event.
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerCh = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case <-timerCh:
			w.reload()

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// relevant reports whether the event concerns the watched file.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Rename)
}

// reload re-applies the config file and notifies the handler.
func (w *Watcher) reload() {
	err := w.loader.Load(w.path)

	w.mu.Lock()
	handler := w.handler
	w.mu.Unlock()

	if handler != nil {
		handler(w.path, err)
	}
}
