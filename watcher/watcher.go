package watcher

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher calls onChange when the dataset file is written or replaced.
type Watcher struct {
	path     string
	onChange func()
	debounce time.Duration
}

// New creates a watcher for path with a 500ms debounce.
func New(path string, onChange func()) *Watcher {
	return &Watcher{
		path:     path,
		onChange: onChange,
		debounce: 500 * time.Millisecond,
	}
}

// WithDebounce sets the debounce duration
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	w.debounce = d
	return w
}

// Watch blocks until ctx is cancelled or the underlying watcher closes.
func (w *Watcher) Watch(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	// The directory is watched so that files replaced by rename are seen.
	dir := filepath.Dir(w.path)
	name := filepath.Base(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	log.Printf("[watcher] Watching %s for changes", w.path)

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				log.Printf("[watcher] File changed: %s", w.path)
				w.onChange()
			})

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Printf("[watcher] Error: %v", err)

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
