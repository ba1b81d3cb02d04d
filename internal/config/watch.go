package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// reloadDebounce coalesces the burst of events editors emit on save.
const reloadDebounce = 150 * time.Millisecond

// Watch reloads path into live whenever the file changes, until ctx is done.
// The parent directory is watched so that atomic saves (write temp, rename)
// are seen. Invalid documents are logged and the previous config is kept.
// Preset is reapplied to every reloaded document.
func Watch(ctx context.Context, path string, preset DifficultyPreset, live *Live, logger *log.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: cannot create watcher: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		watcher.Close()
		return fmt.Errorf("config: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return fmt.Errorf("config: cannot watch %s: %w", path, err)
	}

	go func() {
		defer watcher.Close()

		var pending <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return

			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs {
					continue
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
					pending = time.After(reloadDebounce)
				}

			case <-pending:
				pending = nil
				cfg, err := parseFile(abs)
				if err != nil {
					logger.Warn("config reload rejected", "path", abs, "error", err)
					continue
				}
				cfg, err = Overlay(cfg, preset, func(err error) {
					logger.Warn("ignoring environment overrides", "error", err)
				})
				if err != nil {
					logger.Warn("config reload rejected", "path", abs, "error", err)
					continue
				}
				live.Store(cfg)
				logger.Info("config reloaded", "path", abs)

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("config watcher error", "error", err)
			}
		}
	}()
	return nil
}
