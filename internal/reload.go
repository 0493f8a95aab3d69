package internal

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	pkgconfig "github.com/starford/note/pkg/config"
)

const reloadDebounce = 200 * time.Millisecond

// WatchConfig re-reads the config file at path whenever it changes and applies
// its log level to level. It returns when ctx is cancelled.
//
// The parent directory is watched rather than the file itself, so editors that
// save by rename are picked up and a file created after startup is noticed.
// Invalid configs are logged and ignored.
func WatchConfig(ctx context.Context, path string, level *slog.LevelVar, logger *slog.Logger) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	path = filepath.Clean(path)
	if err := w.Add(filepath.Dir(path)); err != nil {
		return err
	}
	logger.Debug("config watcher: started", slog.String("path", path))

	var timer *time.Timer
	var fire <-chan time.Time
	schedule := func() {
		if timer == nil {
			timer = time.NewTimer(reloadDebounce)
			fire = timer.C
		} else {
			timer.Reset(reloadDebounce)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			logger.Debug("config watcher: stopped")
			return nil

		case <-fire:
			applyConfig(path, level, logger)

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) != 0 {
				schedule()
			}

		case werr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("config watcher: error", slog.String("error", werr.Error()))
		}
	}
}

// applyConfig loads path over the defaults. A removed file falls back to the
// default level.
func applyConfig(path string, level *slog.LevelVar, logger *slog.Logger) {
	cfg := NewDefaultConfig()
	if err := pkgconfig.LoadOptional(path, cfg); err != nil {
		logger.Warn("config reload failed", slog.String("path", path), slog.String("error", err.Error()))
		return
	}

	prev := level.Level()
	if prev == cfg.App.LogLevel {
		return
	}
	level.Set(cfg.App.LogLevel)
	logger.Info("log level changed",
		slog.String("from", prev.String()),
		slog.String("to", cfg.App.LogLevel.String()))
}
