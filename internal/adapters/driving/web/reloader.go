package web

import (
	"context"
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/custodia-labs/benefits-portal/internal/logger"
)

// WatchTemplates reloads the renderer from dir whenever a file in it changes.
// It blocks until ctx is cancelled. A reload that fails to parse is logged
// and the previous templates stay in use.
func WatchTemplates(ctx context.Context, dir string, r *Renderer) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating template watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	logger.Info("watching templates in %s", dir)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !needsReload(event) {
				continue
			}
			if err := r.Reload(os.DirFS(dir)); err != nil {
				logger.L().Warn("template reload failed", zap.String("file", event.Name), zap.Error(err))
				continue
			}
			logger.Debug("templates reloaded after %s", event)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.L().Warn("template watcher", zap.Error(err))
		}
	}
}

func needsReload(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) ||
		event.Has(fsnotify.Rename)
}
