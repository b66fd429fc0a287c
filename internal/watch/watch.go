// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package watch re-runs an action whenever one file changes.
package watch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses the burst of events a single save produces.
const DefaultDebounce = 500 * time.Millisecond

// Watcher observes a single file. It watches the parent directory so that
// files replaced by rename (as browsers and unzip tools do) are still seen.
type Watcher struct {
	target   string
	debounce time.Duration
	fs       *fsnotify.Watcher

	// Warn receives watcher errors. Defaults to stderr.
	Warn io.Writer
}

// New starts watching path. Events arriving within debounce of each other
// trigger a single action.
func New(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fs.Add(filepath.Dir(abs)); err != nil {
		fs.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{target: abs, debounce: debounce, fs: fs, Warn: os.Stderr}, nil
}

// Run calls action after every settled change to the file until ctx is done.
// Actions run one at a time on the calling goroutine.
func (w *Watcher) Run(ctx context.Context, action func(context.Context)) error {
	defer w.fs.Close()

	var settle <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.target {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				settle = time.After(w.debounce)
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(w.Warn, "warning: watch: %v\n", err)

		case <-settle:
			settle = nil
			action(ctx)
		}
	}
}
