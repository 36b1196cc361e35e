package services

import (
	"fmt"
	"os"
)

// memStore is an in-memory FileStore for service tests.
type memStore struct {
	files  map[string]string
	reads  int
	writes int
}

func newMemStore(files map[string]string) *memStore {
	if files == nil {
		files = make(map[string]string)
	}
	return &memStore{files: files}
}

func (m *memStore) Read(path string) (string, error) {
	m.reads++
	content, ok := m.files[path]
	if !ok {
		return "", fmt.Errorf("open %s: %w", path, os.ErrNotExist)
	}
	return content, nil
}

func (m *memStore) WriteAtomic(path, content string) error {
	m.writes++
	m.files[path] = content
	return nil
}
