// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package watch re-runs documentation generation whenever a source file
// changes on disk.
package watch

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

const defaultDebounce = 100 * time.Millisecond

// Config configures a Watcher.
type Config struct {
	Path     string             // Source file to watch
	Debounce time.Duration      // Quiet period before regenerating (default 100ms)
	Log      logrus.FieldLogger // Defaults to a discarding logger
}

// Func regenerates the documentation. Its errors are logged and do not stop
// the watcher.
type Func func(ctx context.Context) error

// Watcher calls a Func once at start and again after each burst of
// changes to the source file.
type Watcher struct {
	cfg        Config
	regenerate Func
}

// New creates a Watcher.
func New(cfg Config, regenerate Func) *Watcher {
	if cfg.Debounce <= 0 {
		cfg.Debounce = defaultDebounce
	}
	if cfg.Log == nil {
		quiet := logrus.New()
		quiet.SetOutput(io.Discard)
		cfg.Log = quiet
	}
	return &Watcher{cfg: cfg, regenerate: regenerate}
}

// Run blocks until ctx is cancelled. The file's directory is watched
// rather than the file itself so editors that save by rename-and-replace
// keep triggering events.
func (w *Watcher) Run(ctx context.Context) error {
	target, err := filepath.Abs(w.cfg.Path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", w.cfg.Path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(target), err)
	}

	log := w.cfg.Log.WithField("file", w.cfg.Path)
	w.fire(ctx, log)

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			log.WithField("op", event.Op.String()).Debug("source changed")
			pending = time.After(w.cfg.Debounce)

		case <-pending:
			pending = nil
			w.fire(ctx, log)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("watcher error")
		}
	}
}

func (w *Watcher) fire(ctx context.Context, log logrus.FieldLogger) {
	start := time.Now()
	if err := w.regenerate(ctx); err != nil {
		log.WithError(err).Error("regeneration failed")
		return
	}
	log.WithField("elapsed", time.Since(start).Round(time.Millisecond)).Info("documentation regenerated")
}
