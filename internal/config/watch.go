package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/vovakirdan/tui-snake/internal/game"
)

// WatchTheme reloads path whenever it is written and publishes the new
// theme. Files that fail to load are logged and skipped. The channel keeps
// only the newest theme and is closed when ctx is done.
//
// The parent directory is watched rather than the file itself, so editors
// that save by renaming a temp file over the original are still seen.
func WatchTheme(ctx context.Context, path string, logger *log.Logger) (<-chan game.Theme, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: watcher: %w", err)
	}
	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}

	themes := make(chan game.Theme, 1)
	go func() {
		defer close(themes)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				cfg, err := LoadFile(target)
				if err != nil {
					logger.Warn("config reload failed", "error", err)
					continue
				}
				theme, err := cfg.GameTheme()
				if err != nil {
					logger.Warn("config reload failed", "error", err)
					continue
				}
				publish(themes, theme)
				logger.Info("theme reloaded", "path", target)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("config watcher error", "error", err)
			}
		}
	}()
	return themes, nil
}

// publish replaces any theme the game has not picked up yet.
func publish(ch chan game.Theme, t game.Theme) {
	for {
		select {
		case ch <- t:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
