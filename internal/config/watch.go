package config

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watch resolves the source again whenever its file is written and hands the
// result to fn, so flags and overrides keep precedence over the file.
// Invalid edits are logged and skipped. The parent directory is watched so
// editors that replace the file on save are still noticed. Watching stops
// when ctx ends.
func (s Source) Watch(ctx context.Context, logger *log.Logger, fn func(Config)) error {
	if s.Path == "" {
		return errors.New("watch config: no config file")
	}
	target, err := filepath.Abs(s.Path)
	if err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	if err := w.Add(filepath.Dir(target)); err != nil {
		w.Close()
		return fmt.Errorf("watch config: %w", err)
	}

	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				name, err := filepath.Abs(ev.Name)
				if err != nil || name != target {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				cfg, err := s.Resolve()
				if err != nil {
					logger.Warn("config reload failed", "path", target, "err", err)
					continue
				}
				logger.Debug("config reloaded", "path", target)
				fn(cfg)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Warn("config watcher error", "err", err)
			}
		}
	}()
	return nil
}
