package ignore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeIgnoreFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".markdown-doc-ignore")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestStore_MissingFileIgnoresNothing(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "absent"))

	ignored, err := store.IsIgnored("README.md")

	require.NoError(t, err)
	assert.False(t, ignored)
}

func TestStore_ExactPath(t *testing.T) {
	store := NewStore(writeIgnoreFile(t, "docs/generated.md\n"))

	ignored, err := store.IsIgnored("docs/generated.md")
	require.NoError(t, err)
	assert.True(t, ignored)

	ignored, err = store.IsIgnored("docs/other.md")
	require.NoError(t, err)
	assert.False(t, ignored)
}

func TestStore_BareFilenameMatchesAnywhere(t *testing.T) {
	store := NewStore(writeIgnoreFile(t, "CHANGELOG.md\n"))

	ignored, err := store.IsIgnored("deep/nested/CHANGELOG.md")
	require.NoError(t, err)
	assert.True(t, ignored)
}

func TestStore_Globs(t *testing.T) {
	store := NewStore(writeIgnoreFile(t, "vendor/**\n*.generated.md\n"))

	tests := []struct {
		path string
		want bool
	}{
		{"vendor/pkg/README.md", true},
		{"api.generated.md", true},
		{"docs/api.generated.md", true},
		{"docs/manual.md", false},
	}
	for _, tt := range tests {
		ignored, err := store.IsIgnored(tt.path)
		require.NoError(t, err)
		assert.Equal(t, tt.want, ignored, tt.path)
	}
}

func TestStore_CommentsAndBlankLines(t *testing.T) {
	store := NewStore(writeIgnoreFile(t, "# generated files\n\nbuild.md\n"))

	ignored, err := store.IsIgnored("build.md")
	require.NoError(t, err)
	assert.True(t, ignored)

	ignored, err = store.IsIgnored("generated")
	require.NoError(t, err)
	assert.False(t, ignored)
}

func TestStore_ReloadsWhenFileChanges(t *testing.T) {
	path := writeIgnoreFile(t, "first.md\n")
	store := NewStore(path)

	ignored, err := store.IsIgnored("first.md")
	require.NoError(t, err)
	require.True(t, ignored)

	require.NoError(t, os.WriteFile(path, []byte("second.md\n"), 0o644))
	// Force a distinct modification time so the cache invalidates even on
	// coarse-grained filesystems.
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	ignored, err = store.IsIgnored("first.md")
	require.NoError(t, err)
	assert.False(t, ignored)

	ignored, err = store.IsIgnored("second.md")
	require.NoError(t, err)
	assert.True(t, ignored)
}
