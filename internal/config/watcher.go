// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-logr/logr"
)

const defaultDebounce = 250 * time.Millisecond

// Watcher reloads the site config file into a Store whenever it changes.
// A file that fails to load is logged and the previous settings are kept.
type Watcher struct {
	path     string
	store    *Store
	log      logr.Logger
	debounce time.Duration
}

// NewWatcher creates a watcher for path that updates store.
func NewWatcher(path string, store *Store, log logr.Logger) *Watcher {
	return &Watcher{
		path:     filepath.Clean(path),
		store:    store,
		log:      log.WithName("site-config"),
		debounce: defaultDebounce,
	}
}

// NeedLeaderElection reports false: every replica serves its own copy of the file.
func (w *Watcher) NeedLeaderElection() bool {
	return false
}

// Start watches until ctx is done. It satisfies manager.Runnable.
func (w *Watcher) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer fsw.Close()

	// Watch the directory: editors and ConfigMap mounts replace the file
	// instead of writing to it.
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}

	w.log.Info("Watching site config", "path", w.path)

	timer := time.NewTimer(w.debounce)
	timer.Stop()

	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}

			if !w.relevant(event) {
				continue
			}

			timer.Reset(w.debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}

			w.log.Error(err, "File watcher error")

		case <-timer.C:
			w.reload()
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}

	// ConfigMap volumes swap a "..data" symlink, so any change in the
	// directory counts when the file itself is a symlink target.
	name := filepath.Clean(event.Name)

	return name == w.path || filepath.Base(name) == "..data"
}

func (w *Watcher) reload() {
	site, err := Load(w.path)
	if err != nil {
		w.log.Error(err, "Failed to reload site config, keeping previous settings")

		return
	}

	w.store.Set(site)
	w.log.Info("Reloaded site config", "name", site.Name)
}
