// Package watch monitors an OpenIntent export file and re-runs generation
// whenever it changes.
package watch

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Handler is invoked after the watched file changes and the debounce window
// passes. A returned error is logged; watching continues.
type Handler func() error

// Watcher monitors a single file for changes. It watches the parent
// directory rather than the file itself because most editors and exporters
// replace files on save.
type Watcher struct {
	Logger *log.Logger

	path     string
	debounce time.Duration
	handler  Handler

	fsw   *fsnotify.Watcher
	mu    sync.Mutex
	timer *time.Timer
	runs  int
}

// New creates a watcher for path. debounce collapses rapid write bursts into
// a single handler invocation; zero or negative means 500ms.
func New(path string, debounce time.Duration, handler Handler) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("could not resolve %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not create file watcher: %w", err)
	}

	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}

	return &Watcher{
		Logger:   log.New(os.Stderr, "[watch] ", log.LstdFlags),
		path:     abs,
		debounce: debounce,
		handler:  handler,
		fsw:      fsw,
	}, nil
}

// Start begins watching. It blocks until the context is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.fsw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("could not watch %s: %w", filepath.Dir(w.path), err)
	}

	w.Logger.Printf("Watching %s", w.path)

	for {
		select {
		case <-ctx.Done():
			w.Logger.Println("Stopping watcher")
			return w.fsw.Close()
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.Logger.Printf("Error: %v", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
		return
	}
	if filepath.Clean(event.Name) != w.path {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.run)
}

func (w *Watcher) run() {
	if err := w.handler(); err != nil {
		w.Logger.Printf("Error regenerating from %s: %v", w.path, err)
		return
	}

	w.mu.Lock()
	w.runs++
	w.mu.Unlock()
	w.Logger.Printf("Regenerated from %s", w.path)
}

// Runs reports how many times the handler completed successfully.
func (w *Watcher) Runs() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.runs
}
