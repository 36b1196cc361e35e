// Package file implements the FileStore port on the local filesystem.
// Writes are atomic: content is staged in a uniquely named temporary file
// in the target's directory and renamed into place, so readers never
// observe a partial document and a crash leaves the original intact.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/custodia-labs/markdown-doc/internal/core/ports/driven"
)

var _ driven.FileStore = (*Store)(nil)

// Store is a stateless filesystem-backed FileStore.
type Store struct{}

// NewStore creates a Store.
func NewStore() *Store {
	return &Store{}
}

// Read returns the full contents of the file at path.
func (s *Store) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteAtomic replaces the file at path with content via a temp file and
// rename. The temp file lands in the same directory as the target so the
// rename never crosses filesystems. On any failure the temp file is
// removed and the original file is untouched.
func (s *Store) WriteAtomic(path, content string) error {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	if _, err := f.WriteString(content); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
