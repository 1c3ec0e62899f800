package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches a single file for changes and triggers a callback.
// The parent directory is watched rather than the file itself, so the
// watch survives editors that replace the file on save.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	mu       sync.Mutex
	path     string
	callback func(string)
	debounce time.Duration
	timer    *time.Timer
}

// NewFileWatcher creates a watcher for the given file. callback is
// invoked with the absolute path after each change, debounced to absorb
// editor write bursts.
func NewFileWatcher(path string, debounce time.Duration, callback func(string)) (*FileWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &FileWatcher{
		watcher:  watcher,
		path:     absPath,
		callback: callback,
		debounce: debounce,
	}, nil
}

// Start begins watching for file changes
func (fw *FileWatcher) Start() error {
	if err := fw.watcher.Add(filepath.Dir(fw.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(fw.path), err)
	}

	go func() {
		for {
			select {
			case event, ok := <-fw.watcher.Events:
				if !ok {
					return
				}
				if event.Name != fw.path {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					fw.handleChange()
				}

			case err, ok := <-fw.watcher.Errors:
				if !ok {
					return
				}
				fmt.Printf("Watcher error: %v\n", err)
			}
		}
	}()

	return nil
}

// handleChange restarts the debounce timer
func (fw *FileWatcher) handleChange() {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.timer = time.AfterFunc(fw.debounce, func() {
		fw.callback(fw.path)
	})
}

// Close stops the watcher
func (fw *FileWatcher) Close() error {
	fw.mu.Lock()
	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.mu.Unlock()

	return fw.watcher.Close()
}
