package style

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/inkdown/internal/logging"
)

// Watcher reloads a style file into a Store when the file changes on
// disk. Rapid write bursts (editors often write twice) are debounced so
// the store is reconfigured once per burst.
type Watcher struct {
	mu       sync.Mutex
	path     string
	store    *Store
	log      *logging.Logger
	fs       *fsnotify.Watcher
	debounce time.Duration
	timer    *time.Timer
	done     chan struct{}
	wg       sync.WaitGroup
	running  bool
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithWatcherDebounce sets the debounce window for reload bursts.
func WithWatcherDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// WithWatcherLogger sets the logger.
func WithWatcherLogger(log *logging.Logger) WatcherOption {
	return func(w *Watcher) {
		if log != nil {
			w.log = log.WithComponent("style-watcher")
		}
	}
}

// NewWatcher creates a watcher for the given style file feeding the
// given store. Call Start to begin watching.
func NewWatcher(path string, store *Store, opts ...WatcherOption) *Watcher {
	w := &Watcher{
		path:     path,
		store:    store,
		log:      logging.Discard(),
		debounce: 100 * time.Millisecond,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start begins watching the style file's directory. Watching the
// directory rather than the file survives rename-based atomic writes.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fs.Add(filepath.Dir(w.path)); err != nil {
		fs.Close()
		return err
	}

	w.fs = fs
	w.running = true
	w.wg.Add(1)
	go w.loop()
	return nil
}

// Stop stops watching. Safe to call multiple times.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	close(w.done)
	w.fs.Close()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	w.wg.Wait()
}

// loop consumes fsnotify events until stopped.
func (w *Watcher) loop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.scheduleReload()
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error: %v", err)
		}
	}
}

// scheduleReload arms (or re-arms) the debounce timer.
func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

// reload re-reads the style file and applies it to the store.
func (w *Watcher) reload() {
	cfg, theme, err := Load(w.path)
	if err != nil {
		w.log.Warn("style reload failed: %v", err)
		return
	}
	w.store.Update(func(c *Config) { *c = cfg })
	w.store.SetTheme(theme)
	w.log.Debug("style configuration reloaded from %s", w.path)
}
