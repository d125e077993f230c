// Copyright 2025 Tom Barlow
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package watch reruns a callback when files under a project tree change.
// It backs the --watch flag of the dev commands.
package watch

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/tombee/scaffold/internal/log"
	scafferrors "github.com/tombee/scaffold/pkg/errors"
)

// DefaultDebounce batches bursts of filesystem events (editor save storms)
// into a single rerun.
const DefaultDebounce = 300 * time.Millisecond

// Watcher watches a directory tree and invokes a callback after changes
// settle.
type Watcher struct {
	root     string
	fsw      *fsnotify.Watcher
	logger   *slog.Logger
	debounce time.Duration
}

// New creates a watcher rooted at dir. Hidden directories and common
// dependency/build trees are not watched. A nil logger falls back to
// slog.Default.
func New(dir string, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	absRoot, err := filepath.Abs(dir)
	if err != nil {
		return nil, scafferrors.Wrap(err, "resolving watch root")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, scafferrors.Wrap(err, "creating fsnotify watcher")
	}

	w := &Watcher{
		root:     absRoot,
		fsw:      fsw,
		logger:   log.WithComponent(logger, "watch"),
		debounce: DefaultDebounce,
	}

	if err := w.addTree(absRoot); err != nil {
		fsw.Close()
		return nil, err
	}
	return w, nil
}

// skippedDirs are never watched; they churn constantly and never hold
// sources the dev checks care about.
var skippedDirs = map[string]bool{
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"target":       true,
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		name := d.Name()
		if path != root && (strings.HasPrefix(name, ".") || skippedDirs[name]) {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			return scafferrors.Wrapf(err, "watching %s", path)
		}
		return nil
	})
}

// Run blocks, invoking fn after each settled burst of changes, until the
// context is cancelled. New directories are added to the watch as they
// appear.
func (w *Watcher) Run(ctx context.Context, fn func()) error {
	defer w.fsw.Close()

	var timer *time.Timer
	var timerC <-chan time.Time

	w.logger.Info("watching for changes", log.String(log.PathKey, w.root))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			if event.Op.Has(fsnotify.Create) {
				// Newly created subdirectories need watching too;
				// Add on a file path fails silently enough to ignore.
				_ = w.addTree(event.Name)
			}
			w.logger.Debug("change detected", log.String(log.PathKey, event.Name))
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", log.Error(err))

		case <-timerC:
			timer = nil
			timerC = nil
			fn()
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) &&
		!event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
		return false
	}
	base := filepath.Base(event.Name)
	return !strings.HasPrefix(base, ".")
}
