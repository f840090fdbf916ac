package content

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"folio/internal/debounce"
	"folio/internal/eventbus"
	"folio/internal/logger"
)

// DefaultReloadDelay is the quiet period before a changed file is re-read
const DefaultReloadDelay = 250 * time.Millisecond

// Watcher reloads a content file whenever it changes on disk
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	bus      eventbus.EventBus
	onReload func(*Portfolio)
	debounce *debounce.Debouncer
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewWatcher creates a watcher for path. onReload receives every
// successfully parsed document; parse failures are logged and published as
// ErrorEvent, and the previous content stays in use.
func NewWatcher(path string, delay time.Duration, bus eventbus.EventBus, onReload func(*Portfolio)) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	w := &Watcher{
		watcher:  fsWatcher,
		path:     filepath.Clean(path),
		bus:      bus,
		onReload: onReload,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	w.debounce = debounce.New(delay, w.reload)
	return w, nil
}

// Start begins watching. The parent directory is watched so editors that
// save by rename are still seen.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.path, err)
	}
	go w.watchLoop()
	logger.Debug("Content watcher: watching %s", w.path)
	return nil
}

// Stop stops watching and waits for the loop to exit
func (w *Watcher) Stop() error {
	close(w.stopCh)
	err := w.watcher.Close()
	<-w.doneCh
	if w.debounce.Pending() {
		logger.Debug("Content watcher stopped with a reload pending for %s; dropping it", w.path)
	}
	w.debounce.Stop()
	return err
}

func (w *Watcher) watchLoop() {
	defer close(w.doneCh)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.debounce.Trigger()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("Content watcher: %v", err)

		case <-w.stopCh:
			return
		}
	}
}

func (w *Watcher) reload() {
	p, err := LoadFile(w.path)
	if err != nil {
		logger.Error("Content reload failed: %v", err)
		if w.bus != nil {
			w.bus.Publish(eventbus.ErrorEvent{Message: "content reload failed", Err: err})
		}
		return
	}

	logger.Info("Content reloaded from %s", w.path)
	if w.onReload != nil {
		w.onReload(p)
	}
	if w.bus != nil {
		w.bus.Publish(eventbus.ContentReloadedEvent{Source: w.path})
	}
}
