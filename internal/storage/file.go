package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileBackend persists the ledger blob as a single JSON file on disk.
// This is the default backend.
type FileBackend struct {
	path string
}

// NewFileBackend creates a file backend rooted at the given path. The
// parent directory is created if it does not exist.
func NewFileBackend(path string) (*FileBackend, error) {
	if path == "" {
		return nil, fmt.Errorf("storage: data file path is empty")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: create data directory: %w", err)
		}
	}
	return &FileBackend{path: path}, nil
}

// Read returns the file contents, or ErrNotFound when the file has never
// been written.
func (b *FileBackend) Read() ([]byte, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("storage: read %s: %w", b.path, err)
	}
	return data, nil
}

// Write replaces the file contents. The blob is written to a temporary
// file and renamed into place so a crash mid-write never leaves a torn
// ledger behind.
func (b *FileBackend) Write(data []byte) error {
	tmp := b.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("storage: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, b.path); err != nil {
		return fmt.Errorf("storage: rename %s: %w", tmp, err)
	}
	return nil
}
