package preview

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatcherConfig configures the manifest file watcher.
type WatcherConfig struct {
	// Path is the manifest file to watch.
	Path string

	// Debounce is the delay before triggering on change. Editors
	// often produce several events per save.
	Debounce time.Duration
}

// Watcher monitors the manifest file for changes.
type Watcher struct {
	config   WatcherConfig
	onChange func(path string)
}

// NewWatcher creates a manifest watcher.
func NewWatcher(config WatcherConfig) *Watcher {
	if config.Debounce == 0 {
		config.Debounce = 100 * time.Millisecond
	}
	return &Watcher{config: config}
}

// OnChange sets the callback invoked after a debounced change.
func (w *Watcher) OnChange(fn func(path string)) {
	w.onChange = fn
}

// Run watches until the context is cancelled. The watch is attached to
// the manifest's directory so editors that replace the file on save
// (rename + create) are still observed.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	dir := filepath.Dir(w.config.Path)
	if err := fsw.Add(dir); err != nil {
		return err
	}

	target := filepath.Clean(w.config.Path)
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.config.Debounce, func() {
				if w.onChange != nil {
					w.onChange(target)
				}
			})

		case _, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
		}
	}
}
