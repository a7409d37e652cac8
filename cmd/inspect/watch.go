package main

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/wippyai/pretty-debug/errors"
)

// watchFile calls onChange after every write to path until ctx is done or
// onChange fails. The parent directory is watched so files replaced by
// rename (as most editors save) keep being followed.
func watchFile(ctx context.Context, path string, logger *zap.Logger, onChange func() error) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.IO(errors.PhaseWatch, "resolve "+path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.IO(errors.PhaseWatch, "create watcher", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return errors.IO(errors.PhaseWatch, "watch "+filepath.Dir(abs), err)
	}
	logger.Debug("watching", zap.String("path", abs))

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event, abs) {
				continue
			}
			logger.Debug("input changed", zap.Stringer("op", event.Op))
			if err := onChange(); err != nil {
				return err
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", zap.Error(err))
		}
	}
}

func relevant(event fsnotify.Event, abs string) bool {
	if filepath.Clean(event.Name) != abs {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
