package filesystem_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/example/morg/internal/adapters/filesystem"
	"github.com/example/morg/internal/ports/secondary"
)

func TestPhotoWatcher_ReportsCreatedPhoto(t *testing.T) {
	dataDir := t.TempDir()
	if err := filesystem.NewPhotoStore(dataDir).EnsureDirs(context.Background()); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan secondary.PhotoEvent, 16)
	done := make(chan error, 1)
	watcher := filesystem.NewPhotoWatcher(dataDir)
	go func() { done <- watcher.Watch(ctx, events) }()

	// Give the watcher time to register its directories.
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(dataDir, "photo", "7.jpg"), []byte("jpeg"), 0644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(3 * time.Second)
	for {
		select {
		case ev := <-events:
			if ev.Ref == "photo/7.jpg" && (ev.Op == secondary.PhotoCreated || ev.Op == secondary.PhotoWritten) {
				cancel()
				select {
				case err := <-done:
					if err != nil {
						t.Errorf("expected nil on cancel, got %v", err)
					}
				case <-time.After(2 * time.Second):
					t.Fatal("watcher did not stop after cancel")
				}
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for photo event")
		}
	}
}

func TestPhotoWatcher_MissingDirs(t *testing.T) {
	watcher := filesystem.NewPhotoWatcher(filepath.Join(t.TempDir(), "absent"))

	err := watcher.Watch(context.Background(), make(chan secondary.PhotoEvent))
	if err == nil {
		t.Error("expected error when photo directories do not exist")
	}
}
