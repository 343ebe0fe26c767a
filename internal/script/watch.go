package script

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/ember/internal/log"
)

// ReloadWatcher watches script files on disk and reports the virtual
// paths whose content changed. It does not touch the Engine itself:
// the host drains Events from its own update loop and re-runs the
// script there, keeping all Lua execution on the owning goroutine.
type ReloadWatcher struct {
	mu sync.Mutex

	watcher *fsnotify.Watcher
	paths   map[string]string // absolute fs path -> virtual path
	events  chan string
	log     *log.Logger

	closeCh chan struct{}
	wg      sync.WaitGroup
	closed  bool
}

// NewReloadWatcher creates a watcher. Call Close when done.
func NewReloadWatcher(logger *log.Logger) (*ReloadWatcher, error) {
	if logger == nil {
		logger = log.NullLogger
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &ReloadWatcher{
		watcher: fsw,
		paths:   make(map[string]string),
		events:  make(chan string, 16),
		log:     logger.WithComponent("watch"),
		closeCh: make(chan struct{}),
	}

	w.wg.Add(1)
	go w.processLoop()

	return w, nil
}

// Watch maps a file on disk to the virtual path it should be re-run
// under when it changes.
func (w *ReloadWatcher) Watch(fsPath, virtualPath string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}

	abs, err := filepath.Abs(fsPath)
	if err != nil {
		return err
	}
	if err := w.watcher.Add(abs); err != nil {
		return err
	}
	w.paths[abs] = virtualPath
	return nil
}

// Events delivers virtual paths whose backing files changed.
func (w *ReloadWatcher) Events() <-chan string {
	return w.events
}

func (w *ReloadWatcher) processLoop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.closeCh:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			w.mu.Lock()
			virtual, watched := w.paths[ev.Name]
			w.mu.Unlock()
			if !watched {
				continue
			}
			select {
			case w.events <- virtual:
			default:
				// A reload is already pending; coalesce.
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error: %v", err)
		}
	}
}

// Close stops watching. Safe to call more than once.
func (w *ReloadWatcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()

	close(w.closeCh)
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}
