package document

import (
	"errors"
	"os"
	"path/filepath"
)

// Store is a file-based implementation of domain.DocumentStore.
type Store struct{}

// New creates a new file-based document store.
func New() *Store {
	return &Store{}
}

// Read returns the file contents, or "" if the file does not exist. A missing
// README is scored like an empty one.
func (s *Store) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return string(data), nil
}

// Write replaces the file contents, creating parent directories as needed.
// Existing file permissions are kept.
func (s *Store) Write(path, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	return os.WriteFile(path, []byte(text), mode)
}
