package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Start begins monitoring the input directory for request files. Files
// already present at startup are processed first; requests run one at a
// time, in arrival order.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started. Monitoring: %s", w.inputDir)
	w.logger.Info(ctx, "Drop .url request files to queue videos")

	if err := w.processExisting(ctx); err != nil {
		w.logger.Warn(ctx, "Initial scan failed: %v", err)
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Op&fsnotify.Create == fsnotify.Create && isRequestFile(event.Name) {
				w.logger.Info(ctx, "New request detected: %s", event.Name)
				// Wait for the file to be fully written
				if !w.waitSettle(ctx) {
					return ctx.Err()
				}
				w.handle(ctx, event.Name)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the underlying fsnotify watcher
func (w *implWatcher) Stop() {
	w.watcher.Close()
}

// waitSettle blocks for the configured settle delay. Returns false when
// the context is cancelled first.
func (w *implWatcher) waitSettle(ctx context.Context) bool {
	timer := time.NewTimer(w.settleDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}

func (w *implWatcher) handle(ctx context.Context, path string) {
	if err := w.handler(ctx, path); err != nil {
		w.logger.Error(ctx, "Request %s failed: %v", filepath.Base(path), err)
	}
}

// processExisting handles request files that were already in the input
// directory before the watcher started.
func (w *implWatcher) processExisting(ctx context.Context) error {
	entries, err := os.ReadDir(w.inputDir)
	if err != nil {
		return err
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(w.inputDir, e.Name())
		if isRequestFile(path) {
			w.logger.Info(ctx, "Found existing request: %s", path)
			w.handle(ctx, path)
		}
	}
	return nil
}

func isRequestFile(path string) bool {
	name := filepath.Base(path)
	if strings.HasPrefix(name, ".") {
		return false
	}
	return strings.ToLower(filepath.Ext(name)) == ".url"
}
