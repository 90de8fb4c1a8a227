// Package watcher keeps the workspace index in step with proto files
// modified outside the editor, batching filesystem events behind a debounce
// window so a branch switch produces one re-index, not hundreds.
package watcher

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/tliron/commonlog"
)

// DefaultDebounce is the quiet period after the last event before a batch is
// delivered.
const DefaultDebounce = 500 * time.Millisecond

// Handler receives the batch of proto file paths that changed since the last
// delivery. Paths may no longer exist; deletions are part of the batch.
type Handler func(paths []string)

type Watcher struct {
	notify   *fsnotify.Watcher
	logger   commonlog.Logger
	handler  Handler
	debounce time.Duration

	pending map[string]struct{}
}

func New(logger commonlog.Logger, debounce time.Duration, handler Handler) (*Watcher, error) {
	notify, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		notify:   notify,
		logger:   logger,
		handler:  handler,
		debounce: debounce,
		pending:  make(map[string]struct{}),
	}, nil
}

// AddRoot watches root and every directory below it. fsnotify watches are
// per-directory, not recursive, so the tree is walked once here and new
// directories get picked up from create events in Run.
func (w *Watcher) AddRoot(root string) error {
	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !entry.IsDir() {
			return nil
		}
		if name := entry.Name(); name == ".git" || name == "node_modules" {
			return filepath.SkipDir
		}
		return w.notify.Add(path)
	})
}

// Run consumes filesystem events until ctx is cancelled, delivering batches
// of changed proto files to the handler once the debounce window closes.
func (w *Watcher) Run(ctx context.Context) {
	var flush <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.notify.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.notify.Add(event.Name); err != nil {
						w.logger.Error("failed to watch new directory", "path", event.Name, "err", err)
					}
					continue
				}
			}
			if !isProtoFile(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			w.pending[event.Name] = struct{}{}
			flush = time.After(w.debounce)

		case err, ok := <-w.notify.Errors:
			if !ok {
				return
			}
			w.logger.Error("watch error", "err", err)

		case <-flush:
			flush = nil
			if len(w.pending) == 0 {
				continue
			}
			paths := make([]string, 0, len(w.pending))
			for path := range w.pending {
				paths = append(paths, path)
			}
			sort.Strings(paths)
			w.pending = make(map[string]struct{})
			w.handler(paths)
		}
	}
}

func (w *Watcher) Close() error {
	return w.notify.Close()
}

func isProtoFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".proto")
}
