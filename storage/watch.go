package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// DebounceDelay collapses the bursts of events a single save produces.
const DebounceDelay = 150 * time.Millisecond

// Watch reports changes to the document at path on the returned channel until
// ctx is done. The parent directory is watched so atomic replaces are seen.
// A notification is sent at most once per DebounceDelay burst and dropped when
// the previous one has not been received yet. The channel is closed once the
// watcher stops.
func Watch(ctx context.Context, path string, logger *log.Logger) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	if logger == nil {
		logger = log.Default()
	}

	changes := make(chan struct{}, 1)
	go runWatcher(ctx, watcher, abs, changes, logger)
	return changes, nil
}

func runWatcher(ctx context.Context, watcher *fsnotify.Watcher, target string, changes chan<- struct{}, logger *log.Logger) {
	var (
		debounce *time.Timer
		fire     <-chan time.Time
	)
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
		_ = watcher.Close()
		close(changes)
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case <-fire:
			fire = nil
			select {
			case changes <- struct{}{}:
			default:
			}

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			logger.Debug("data file changed", "path", event.Name, "op", event.Op.String())
			if debounce == nil {
				debounce = time.NewTimer(DebounceDelay)
			} else {
				debounce.Reset(DebounceDelay)
			}
			fire = debounce.C

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("file watcher error", "err", err)
		}
	}
}
