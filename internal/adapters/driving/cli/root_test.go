package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	storagefile "github.com/custodia-labs/markdown-doc/internal/adapters/driven/storage/file"
	"github.com/custodia-labs/markdown-doc/internal/core/services"
)

// setupCLITest wires real services over the real file store so commands
// operate on files in a temp dir.
func setupCLITest(t *testing.T) string {
	t.Helper()
	files := storagefile.NewStore()
	extractService = services.NewExtractService(files)
	editService = services.NewEditService(files)
	tocService = services.NewTocService(files, nil, services.DefaultTocMarkers())
	t.Cleanup(func() {
		extractService = nil
		editService = nil
		tocService = nil
	})
	return t.TempDir()
}

// executeCommand runs the root command with args and captures output.
func executeCommand(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	if stdin != nil {
		rootCmd.SetIn(stdin)
	}
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	})
	err := rootCmd.Execute()
	return buf.String(), err
}

func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readDoc(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
