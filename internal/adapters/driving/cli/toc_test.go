package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tocTestDoc = "# Title\n\n<!-- toc -->\nstale\n<!-- tocstop -->\n\n## Section One\nbody\n"

// resetTocMode restores the mode flag to its declared default so a test
// can exercise a bare invocation regardless of what earlier tests set.
func resetTocMode(t *testing.T) {
	t.Helper()
	flag := tocCmd.Flags().Lookup("mode")
	require.NotNil(t, flag)
	require.NoError(t, flag.Value.Set(flag.DefValue))
}

func TestTocCmd_DefaultModeIsCheck(t *testing.T) {
	assert.Equal(t, "check", tocCmd.Flags().Lookup("mode").DefValue)
}

func TestTocCmd_BareInvocationNeverWrites(t *testing.T) {
	dir := setupCLITest(t)
	path := writeDoc(t, dir, "doc.md", tocTestDoc)
	resetTocMode(t)

	out, err := executeCommand(t, nil, "toc", path)

	assert.ErrorIs(t, err, errTocStale)
	assert.Contains(t, out, "stale")
	assert.Equal(t, tocTestDoc, readDoc(t, path))
}

func TestTocCmd_Update(t *testing.T) {
	dir := setupCLITest(t)
	path := writeDoc(t, dir, "doc.md", tocTestDoc)

	out, err := executeCommand(t, nil, "toc", path, "--mode", "update")

	require.NoError(t, err)
	assert.Contains(t, out, "Updated "+path)
	assert.Contains(t, readDoc(t, path), "- [Title](#title)\n  - [Section One](#section-one)\n")
}

func TestTocCmd_CheckFailsWhenStale(t *testing.T) {
	dir := setupCLITest(t)
	path := writeDoc(t, dir, "doc.md", tocTestDoc)

	out, err := executeCommand(t, nil, "toc", path, "--mode", "check")

	assert.ErrorIs(t, err, errTocStale)
	assert.Contains(t, out, "stale")
	assert.Equal(t, tocTestDoc, readDoc(t, path))
}

func TestTocCmd_CheckPassesWhenClean(t *testing.T) {
	dir := setupCLITest(t)
	path := writeDoc(t, dir, "doc.md", tocTestDoc)

	_, err := executeCommand(t, nil, "toc", path, "--mode", "update")
	require.NoError(t, err)

	out, err := executeCommand(t, nil, "toc", path, "--mode", "check")
	require.NoError(t, err)
	assert.Contains(t, out, "up to date")
}

func TestTocCmd_DiffFailsWhenStale(t *testing.T) {
	dir := setupCLITest(t)
	path := writeDoc(t, dir, "doc.md", tocTestDoc)

	out, err := executeCommand(t, nil, "toc", path, "--mode", "diff")

	assert.ErrorIs(t, err, errTocStale)
	assert.Contains(t, out, "+- [Title](#title)")
	assert.Contains(t, out, "-stale")
}

func TestTocCmd_InvalidMode(t *testing.T) {
	dir := setupCLITest(t)
	path := writeDoc(t, dir, "doc.md", tocTestDoc)

	_, err := executeCommand(t, nil, "toc", path, "--mode", "verify")

	assert.Error(t, err)
}

func TestTocCmd_NoMarkersIsClean(t *testing.T) {
	dir := setupCLITest(t)
	path := writeDoc(t, dir, "doc.md", "# Title\nno markers\n")

	out, err := executeCommand(t, nil, "toc", path, "--mode", "check")

	require.NoError(t, err)
	assert.Contains(t, out, "up to date")
}
