package catalog

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher keeps an in-memory snapshot of a directory listing current by
// watching the directory for changes.
type Watcher struct {
	dir           string
	exclude       []string
	debounceDelay time.Duration

	mu     sync.RWMutex
	files  []string
	loaded bool

	onRefresh func(files []string, err error)
}

// WatcherConfig holds configuration options for the Watcher.
type WatcherConfig struct {
	Dir           string
	Exclude       []string                        // Glob patterns of names to skip
	DebounceDelay time.Duration                   // Default: 100ms
	OnRefresh     func(files []string, err error) // Optional callback
}

// NewWatcher creates a new Watcher with the given configuration.
func NewWatcher(cfg WatcherConfig) (*Watcher, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("directory is required")
	}

	debounce := cfg.DebounceDelay
	if debounce == 0 {
		debounce = 100 * time.Millisecond
	}

	return &Watcher{
		dir:           cfg.Dir,
		exclude:       cfg.Exclude,
		debounceDelay: debounce,
		onRefresh:     cfg.OnRefresh,
	}, nil
}

// Files returns the latest snapshot. Before Start has loaded the directory it
// lists the directory directly.
func (w *Watcher) Files() ([]string, error) {
	w.mu.RLock()
	if w.loaded {
		files := append([]string(nil), w.files...)
		w.mu.RUnlock()
		return files, nil
	}
	w.mu.RUnlock()
	return List(w.dir, w.exclude...)
}

// Start loads the directory and refreshes the snapshot whenever it changes.
// It blocks until the context is cancelled, then returns nil.
func (w *Watcher) Start(ctx context.Context) error {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fsWatcher.Close()

	if err := fsWatcher.Add(w.dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}
	if err := w.refresh(); err != nil {
		return err
	}

	var timer *time.Timer
	var debounced <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsWatcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounceDelay)
			} else {
				timer.Reset(w.debounceDelay)
			}
			debounced = timer.C

		case <-debounced:
			debounced = nil
			if err := w.refresh(); err != nil {
				log.Printf("Warning: Failed to refresh %s: %v", w.dir, err)
			}

		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Warning: Watcher error on %s: %v", w.dir, err)
		}
	}
}

func (w *Watcher) refresh() error {
	files, err := List(w.dir, w.exclude...)
	if err == nil {
		w.mu.Lock()
		w.files = files
		w.loaded = true
		w.mu.Unlock()
	}
	if w.onRefresh != nil {
		w.onRefresh(files, err)
	}
	return err
}
