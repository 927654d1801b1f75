package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watch prints owner and permissions of path once and again after every
// filesystem event concerning path until ctx is done or path disappears.
func (a *app) watch(ctx context.Context, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	a.logger.WithField("path", path).Info("watching for changes")

	if err := a.render(a.out, a.lookup(path, true, true)); err != nil {
		return err
	}

	clean := filepath.Clean(path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			a.logger.WithField("event", event.String()).Debug("filesystem event")

			if filepath.Clean(event.Name) != clean {
				// entries inside a watched directory
				continue
			}

			r := a.lookup(path, true, true)
			if err := a.render(a.out, r); err != nil {
				return err
			}
			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				return errWatchedPathGone
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.logger.WithError(err).Error("file watcher error")
		}
	}
}

var errWatchedPathGone = errors.New("watched path was removed")
