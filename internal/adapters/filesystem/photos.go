// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/morg/internal/apperr"
	"github.com/example/morg/internal/ports/secondary"
)

// Photo directories under the data directory.
const (
	GarmentPhotoDir = "photo"
	SetPhotoDir     = "sets"
)

// PhotoStore implements secondary.PhotoStore over a data directory.
type PhotoStore struct {
	dataDir string
}

// NewPhotoStore creates a photo store rooted at dataDir.
func NewPhotoStore(dataDir string) *PhotoStore {
	return &PhotoStore{dataDir: dataDir}
}

// DataDir returns the root directory photo references resolve against.
func (s *PhotoStore) DataDir() string {
	return s.dataDir
}

// Resolve turns a relative photo reference into a path under the data directory.
// Absolute references and references escaping the directory are rejected.
func (s *PhotoStore) Resolve(ref string) (string, error) {
	if ref == "" {
		return "", apperr.Validation("photo reference is empty")
	}
	if filepath.IsAbs(ref) || strings.HasPrefix(ref, "/") {
		return "", apperr.Validation("photo reference %q must be relative", ref)
	}

	clean := filepath.Clean(filepath.FromSlash(ref))
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", apperr.Validation("photo reference %q escapes the data directory", ref)
	}

	return filepath.Join(s.dataDir, clean), nil
}

// Exists reports whether the referenced photo file is present.
func (s *PhotoStore) Exists(ctx context.Context, ref string) (bool, error) {
	path, err := s.Resolve(ref)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to stat photo: %w", err)
	}
	return !info.IsDir(), nil
}

// EnsureDirs creates the photo and sets directories if missing.
func (s *PhotoStore) EnsureDirs(ctx context.Context) error {
	for _, dir := range []string{GarmentPhotoDir, SetPhotoDir} {
		if err := os.MkdirAll(filepath.Join(s.dataDir, dir), 0755); err != nil {
			return fmt.Errorf("failed to create %s directory: %w", dir, err)
		}
	}
	return nil
}

// Ensure PhotoStore implements the interface
var _ secondary.PhotoStore = (*PhotoStore)(nil)
