// Package ignore implements the IgnoreList port from a plain-text pattern
// file (one pattern per line, '#' comments). Patterns are doublestar
// globs; a bare filename pattern also matches a path by its base name so
// "CHANGELOG.md" excludes that file anywhere in the tree.
package ignore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/custodia-labs/markdown-doc/internal/core/ports/driven"
	"github.com/custodia-labs/markdown-doc/internal/logger"
)

var _ driven.IgnoreList = (*Store)(nil)

// Store reads ignore patterns lazily and caches them until the pattern
// file's modification time changes, so long-running watchers pick up
// edits to the ignore file without a restart.
type Store struct {
	path string

	mu       sync.Mutex
	patterns []string
	loadedAt time.Time
	loaded   bool
}

// NewStore creates a Store reading patterns from the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// IsIgnored reports whether path matches any ignore pattern. A missing
// pattern file means nothing is ignored.
func (s *Store) IsIgnored(path string) (bool, error) {
	patterns, err := s.currentPatterns()
	if err != nil {
		return false, err
	}
	if len(patterns) == 0 {
		return false, nil
	}

	candidate := filepath.ToSlash(filepath.Clean(path))
	base := filepath.Base(candidate)
	for _, pattern := range patterns {
		if pattern == candidate || pattern == base {
			return true, nil
		}
		matched, err := doublestar.Match(pattern, candidate)
		if err != nil {
			return false, fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
		}
		if matched {
			return true, nil
		}
		// A pattern without a separator applies to the base name, the
		// same way .gitignore treats bare names.
		if !strings.Contains(pattern, "/") {
			matched, err = doublestar.Match(pattern, base)
			if err != nil {
				return false, fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
			}
			if matched {
				return true, nil
			}
		}
	}
	return false, nil
}

// currentPatterns returns the cached pattern list, reloading it when the
// file changed since the last load.
func (s *Store) currentPatterns() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	info, err := os.Stat(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.patterns = nil
			s.loaded = true
			return nil, nil
		}
		return nil, fmt.Errorf("reading ignore file %s: %w", s.path, err)
	}
	if s.loaded && info.ModTime().Equal(s.loadedAt) {
		return s.patterns, nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading ignore file %s: %w", s.path, err)
	}

	var patterns []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, filepath.ToSlash(line))
	}
	logger.Debug("ignore: loaded %d pattern(s) from %s", len(patterns), s.path)

	s.patterns = patterns
	s.loadedAt = info.ModTime()
	s.loaded = true
	return patterns, nil
}
