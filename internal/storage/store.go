// Package storage implements the JSON file stores backing the in-memory
// caches. The rest of the system only depends on the Load/Save contract;
// the file format is an implementation detail of this package.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Store persists one snapshot type to a JSON file.
type Store[T any] struct {
	path string
}

// NewStore creates a store writing to path. Parent directories are created
// on the first save.
func NewStore[T any](path string) *Store[T] {
	return &Store[T]{path: path}
}

// Path returns the file path backing this store.
func (s *Store[T]) Path() string {
	return s.path
}

// Load reads the snapshot from disk. A missing or corrupt file is tolerated:
// the zero snapshot is returned and a warning logged, so a fresh install and
// a damaged store both start empty instead of crashing.
func (s *Store[T]) Load() (T, error) {
	var snapshot T

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Info("Store file not found, starting empty", "path", s.path)
			return snapshot, nil
		}
		return snapshot, fmt.Errorf("reading %s: %w", s.path, err)
	}

	if err := json.Unmarshal(data, &snapshot); err != nil {
		slog.Warn("Store file corrupt, starting empty", "path", s.path, "error", err)
		var zero T
		return zero, nil
	}

	return snapshot, nil
}

// Save writes the snapshot atomically: encode to a temp file in the same
// directory, then rename over the target so readers never see a torn file.
func (s *Store[T]) Save(snapshot T) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", s.path, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing %s: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}

	return nil
}
