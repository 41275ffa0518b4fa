package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MediaStorage persists uploaded images on disk under a base directory.
// Stored names are generated server-side so client filenames never touch
// the filesystem.
type MediaStorage struct {
	baseDir string
}

// NewMediaStorage ensures the base directory exists and returns a handle.
func NewMediaStorage(baseDir string) (*MediaStorage, error) {
	if baseDir == "" {
		baseDir = "./media"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create media directory: %w", err)
	}
	return &MediaStorage{baseDir: baseDir}, nil
}

// Save streams an upload into a generated file name and returns it. Only
// the extension of the original name is kept.
func (s *MediaStorage) Save(originalName string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	name := uuid.NewString() + ext
	path := s.resolve(name)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create media file: %w", err)
	}
	defer file.Close() //nolint:errcheck
	if _, err := io.Copy(file, r); err != nil {
		return "", fmt.Errorf("write media file: %w", err)
	}
	return name, nil
}

// Open returns a read-only handle for a stored file.
func (s *MediaStorage) Open(name string) (*os.File, error) {
	path := s.resolve(name)
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open media file: %w", err)
	}
	return file, nil
}

// Delete removes a stored file if present.
func (s *MediaStorage) Delete(name string) error {
	path := s.resolve(name)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete media file: %w", err)
	}
	return nil
}

// CleanupOlderThan removes files older than the TTL and returns the
// deleted names. Used to purge orphaned uploads.
func (s *MediaStorage) CleanupOlderThan(ttl time.Duration) ([]string, error) {
	cutoff := time.Now().Add(-ttl)
	deleted := make([]string, 0)
	err := filepath.WalkDir(s.baseDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		if info.ModTime().After(cutoff) {
			return nil
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return err
		}
		rel, err := filepath.Rel(s.baseDir, path)
		if err != nil {
			rel = path
		}
		deleted = append(deleted, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cleanup media: %w", err)
	}
	return deleted, nil
}

// resolve joins the name under the base dir, rejecting path escapes.
func (s *MediaStorage) resolve(name string) string {
	cleaned := filepath.Base(filepath.Clean(name))
	return filepath.Join(s.baseDir, cleaned)
}
