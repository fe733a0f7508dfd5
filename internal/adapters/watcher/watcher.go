// Package watcher reports corpus mutations so the host can trigger rebuilds.
package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/refdex/internal/core/ports"
)

const eventChannelBuffer = 100

// skipDirectories are directories that should not be watched.
var skipDirectories = map[string]bool{
	".git": true,
	".jj":  true,
}

// Watcher watches a corpus root recursively using fsnotify and emits the
// paths of changed entries. The index supports no incremental refresh, so
// consumers only need the fact that something changed, debounced.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	log       ports.Logger
	events    chan string
}

// New creates a new file system watcher.
func New(log ports.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fsWatcher: fsWatcher,
		log:       log,
		events:    make(chan string, eventChannelBuffer),
	}, nil
}

// Start begins watching the given root directory recursively. Events are
// delivered on Events until ctx is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context, root string) error {
	if err := w.addRecursively(root); err != nil {
		return err
	}
	go w.processEvents(ctx)
	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events returns the channel of changed paths.
func (w *Watcher) Events() <-chan string {
	return w.events
}

func (w *Watcher) addRecursively(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Skip unreadable directories and keep walking.
			return nil //nolint:nilerr // unreadable entries are not fatal
		}
		if !d.IsDir() {
			return nil
		}
		if skipDirectories[d.Name()] {
			return filepath.SkipDir
		}
		return w.fsWatcher.Add(path)
	})
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			select {
			case w.events <- event.Name:
			case <-ctx.Done():
				return
			}

			// Newly created directories need watching too.
			if event.Op&fsnotify.Create != 0 {
				_ = w.addRecursively(event.Name)
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.log.Warn(fmt.Sprintf("watcher: file system error: %v", err))
		}
	}
}
