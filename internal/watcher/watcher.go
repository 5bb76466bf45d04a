package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/kaustubh03-ks/covid-19-analysis/pkg/logger"
)

const DefaultDebounce = 500 * time.Millisecond

type Reloader interface {
	Reload(ctx context.Context) error
}

// Watcher reloads the dataset when its file changes. Editors and copy tools
// often write a file in several steps, so events are debounced.
type Watcher struct {
	path     string
	reloader Reloader
	debounce time.Duration
	fs       *fsnotify.Watcher
}

// New starts watching the directory of path, which also catches files that
// are replaced by rename.
func New(path string, reloader Reloader, debounce time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	return &Watcher{
		path:     filepath.Clean(path),
		reloader: reloader,
		debounce: debounce,
		fs:       fw,
	}, nil
}

// Run blocks until ctx is cancelled and then releases the watch.
func (w *Watcher) Run(ctx context.Context) {
	defer w.fs.Close()

	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			fire = time.After(w.debounce)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			logger.Warn("dataset watcher error", zap.Error(err))
		case <-fire:
			fire = nil
			if err := w.reloader.Reload(ctx); err != nil {
				logger.Error("dataset reload failed, keeping the previous snapshot", zap.String("path", w.path), zap.Error(err))
				continue
			}
			logger.Info("dataset reloaded", zap.String("path", w.path))
		}
	}
}
