package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/markdown-doc/internal/core/domain"
)

func TestExtractCmd_FromFile(t *testing.T) {
	dir := setupCLITest(t)
	path := writeDoc(t, dir, "readme.md", "# Intro\nhello\n# Other\nx\n")

	out, err := executeCommand(t, nil, "extract", "Intro", path)

	require.NoError(t, err)
	assert.Equal(t, "# Intro\nhello\n", out)
}

func TestExtractCmd_FromStdin(t *testing.T) {
	setupCLITest(t)

	out, err := executeCommand(t, strings.NewReader("# Piped\nbody\n"), "extract", "Piped")

	require.NoError(t, err)
	assert.Equal(t, "# Piped\nbody\n", out)
}

func TestExtractCmd_NoMatchFails(t *testing.T) {
	dir := setupCLITest(t)
	path := writeDoc(t, dir, "readme.md", "# Intro\nhello\n")

	_, err := executeCommand(t, nil, "extract", "Missing", path)

	assert.ErrorIs(t, err, domain.ErrNoMatch)
}

func TestExtractCmd_AmbiguousWithoutAll(t *testing.T) {
	dir := setupCLITest(t)
	path := writeDoc(t, dir, "readme.md", "# Setup\nx\n# Setup Guide\ny\n")

	_, err := executeCommand(t, nil, "extract", "Setup", path, "--all=false")

	assert.ErrorIs(t, err, domain.ErrAmbiguousMatch)
}

func TestExtractCmd_AllMatches(t *testing.T) {
	dir := setupCLITest(t)
	path := writeDoc(t, dir, "readme.md", "# Setup\nx\n# Setup Guide\ny\n")

	out, err := executeCommand(t, nil, "extract", "Setup", path, "--all")

	require.NoError(t, err)
	assert.Contains(t, out, "# Setup\nx\n")
	assert.Contains(t, out, "# Setup Guide\ny\n")
}

func TestSectionsCmd_ListsOutline(t *testing.T) {
	dir := setupCLITest(t)
	path := writeDoc(t, dir, "readme.md", "# A\n## B\nbody\n")

	out, err := executeCommand(t, nil, "sections", path, "--json=false")

	require.NoError(t, err)
	assert.Contains(t, out, "# A")
	assert.Contains(t, out, "## B")
}

func TestSectionsCmd_JSON(t *testing.T) {
	dir := setupCLITest(t)
	path := writeDoc(t, dir, "readme.md", "# A\nbody\n")

	out, err := executeCommand(t, nil, "sections", path, "--json")

	require.NoError(t, err)
	assert.Contains(t, out, `"heading": "A"`)
	assert.Contains(t, out, `"level": 1`)
}
