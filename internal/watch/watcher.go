// Package watch detects change log file modifications so the CLI can
// re-render its display. It uses fsnotify for efficient file change
// detection, with periodic polling as a backup for missed events.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports modifications of a single file.
type Watcher struct {
	path     string
	interval time.Duration
	watcher  *fsnotify.Watcher
	mu       sync.Mutex
	closed   bool
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithPollInterval sets the backup polling interval.
func WithPollInterval(d time.Duration) Option {
	return func(w *Watcher) {
		w.interval = d
	}
}

// New creates a Watcher for the given file path. The file does not need
// to exist yet; creation counts as a change.
func New(path string, opts ...Option) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	w := &Watcher{
		path:     path,
		interval: 500 * time.Millisecond,
		watcher:  fsw,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Changes watches the file and sends a timestamp on every detected
// modification. The channel is closed when the context is cancelled or
// Close is called. Editors often replace files instead of writing in
// place, so the parent directory is watched rather than the file itself.
func (w *Watcher) Changes(ctx context.Context) (<-chan time.Time, error) {
	parent := filepath.Dir(w.path)
	if err := w.watcher.Add(parent); err != nil {
		return nil, fmt.Errorf("watching %s: %w", parent, err)
	}

	changes := make(chan time.Time, 1)
	go w.watchLoop(ctx, changes)
	return changes, nil
}

func (w *Watcher) watchLoop(ctx context.Context, changes chan<- time.Time) {
	defer close(changes)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	lastMod := w.modTime()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Name != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				lastMod = w.modTime()
				w.notify(ctx, changes)
			}
		case <-ticker.C:
			// Backup poll: catch events fsnotify missed.
			if mod := w.modTime(); mod.After(lastMod) {
				lastMod = mod
				w.notify(ctx, changes)
			}
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Keep going; polling covers missed reads.
		}
	}
}

func (w *Watcher) notify(ctx context.Context, changes chan<- time.Time) {
	select {
	case changes <- time.Now():
	case <-ctx.Done():
	default:
		// A pending notification already covers this change.
	}
}

// modTime returns the file's modification time, zero when absent.
func (w *Watcher) modTime() time.Time {
	info, err := os.Stat(w.path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}

// Close stops the watcher. Safe to call multiple times.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true
	return w.watcher.Close()
}
