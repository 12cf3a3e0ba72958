package filesystem

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/example/morg/internal/logger"
	"github.com/example/morg/internal/ports/secondary"
)

// PhotoWatcher implements secondary.PhotoWatcher with fsnotify.
type PhotoWatcher struct {
	dataDir string
}

// NewPhotoWatcher creates a watcher over the photo directories of dataDir.
func NewPhotoWatcher(dataDir string) *PhotoWatcher {
	return &PhotoWatcher{dataDir: dataDir}
}

// Watch emits an event for each created, written, removed or renamed file in
// photo/ and sets/ until ctx is cancelled. Both directories must exist.
func (w *PhotoWatcher) Watch(ctx context.Context, events chan<- secondary.PhotoEvent) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range []string{GarmentPhotoDir, SetPhotoDir} {
		if err := watcher.Add(filepath.Join(w.dataDir, dir)); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			op := translateOp(event.Op)
			if op == "" {
				continue
			}

			ref, err := filepath.Rel(w.dataDir, event.Name)
			if err != nil {
				continue
			}

			logger.Debug("photo event", "ref", ref, "op", op)

			select {
			case events <- secondary.PhotoEvent{Ref: filepath.ToSlash(ref), Op: op}:
			case <-ctx.Done():
				return nil
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("photo watcher error", "error", err)
		}
	}
}

// translateOp maps fsnotify operations to photo event operations.
// Chmod-only events are ignored.
func translateOp(op fsnotify.Op) string {
	switch {
	case op&fsnotify.Create == fsnotify.Create:
		return secondary.PhotoCreated
	case op&fsnotify.Write == fsnotify.Write:
		return secondary.PhotoWritten
	case op&fsnotify.Remove == fsnotify.Remove:
		return secondary.PhotoRemoved
	case op&fsnotify.Rename == fsnotify.Rename:
		return secondary.PhotoRemoved
	default:
		return ""
	}
}

// Ensure PhotoWatcher implements the interface
var _ secondary.PhotoWatcher = (*PhotoWatcher)(nil)
