package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reloads a settings file when it changes on disk.
//
// The parent directory is watched, so a file replaced by rename still
// triggers a reload.
type Watcher struct {
	path string
	fsw  *fsnotify.Watcher
	log  *zap.Logger
}

// NewWatcher starts watching path. Events are delivered by Run.
func NewWatcher(path string, log *zap.Logger) (*Watcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}
	return &Watcher{path: abs, fsw: fsw, log: log.Named("config")}, nil
}

// Run calls fn with the reloaded settings after each change until ctx is
// done or the watcher is closed. Files that fail to parse are logged and
// skipped.
func (w *Watcher) Run(ctx context.Context, fn func(Settings)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			s, err := Load(w.path)
			if err != nil {
				w.log.Warn("reload", zap.String("path", w.path), zap.Error(err))
				continue
			}
			w.log.Debug("reloaded", zap.String("path", w.path), zap.Stringer("op", ev.Op))
			fn(s)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch", zap.Error(err))
		}
	}
}

func (w *Watcher) Close() error { return w.fsw.Close() }
