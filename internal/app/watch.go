package app

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/uno-labs/waroster/pkg/log"
)

// defaultDebounce absorbs editor/download write bursts before re-running.
const defaultDebounce = 500 * time.Millisecond

// Watch re-runs fn whenever the file at path changes, until the context is
// canceled. Events are debounced: a burst of writes triggers one run after
// the burst settles. The parent directory is watched rather than the file
// itself so atomic save-and-rename (how browsers replace downloads) keeps
// working.
func Watch(ctx context.Context, path string, fn func(context.Context) error, logger log.Logger) error {
	if logger == nil {
		logger = log.NewNoopLogger()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}

	logger.Info("watching for changes", log.String("path", abs))

	var debounce *time.Timer
	runs := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(defaultDebounce, func() {
				select {
				case runs <- struct{}{}:
				default:
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", log.Err(err))

		case <-runs:
			logger.Info("input changed, reprocessing", log.String("path", abs))
			if err := fn(ctx); err != nil {
				logger.Error("reprocess failed", log.Err(err))
			}
		}
	}
}
