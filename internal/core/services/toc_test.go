package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/markdown-doc/internal/core/domain"
)

const tocDoc = "# Title\n\n<!-- toc -->\nstale\n<!-- tocstop -->\n\n## Section One\n\nbody\n"

// fakeIgnore is a canned IgnoreList for TOC tests.
type fakeIgnore struct {
	ignored bool
	err     error
	calls   int
}

func (f *fakeIgnore) IsIgnored(string) (bool, error) {
	f.calls++
	return f.ignored, f.err
}

func newTocFixture(t *testing.T, content string, ignored bool) (*TocService, *memStore, *fakeIgnore) {
	t.Helper()
	store := newMemStore(map[string]string{"doc.md": content})
	ign := &fakeIgnore{ignored: ignored}
	return NewTocService(store, ign, DefaultTocMarkers()), store, ign
}

func TestTocService_Update(t *testing.T) {
	svc, store, _ := newTocFixture(t, tocDoc, false)

	result, err := svc.Sync(context.Background(), "doc.md", domain.TocOptions{Mode: domain.TocModeUpdate})

	require.NoError(t, err)
	assert.Equal(t, domain.TocStatusChanged, result.Status)
	assert.Equal(t,
		"# Title\n\n<!-- toc -->\n- [Title](#title)\n  - [Section One](#section-one)\n<!-- tocstop -->\n\n## Section One\n\nbody\n",
		store.files["doc.md"])
}

func TestTocService_UpdateThenCheckIsClean(t *testing.T) {
	svc, _, _ := newTocFixture(t, tocDoc, false)
	ctx := context.Background()

	_, err := svc.Sync(ctx, "doc.md", domain.TocOptions{Mode: domain.TocModeUpdate})
	require.NoError(t, err)

	result, err := svc.Sync(ctx, "doc.md", domain.TocOptions{Mode: domain.TocModeCheck})
	require.NoError(t, err)
	assert.Equal(t, domain.TocStatusClean, result.Status)
}

func TestTocService_CheckDoesNotWrite(t *testing.T) {
	svc, store, _ := newTocFixture(t, tocDoc, false)

	result, err := svc.Sync(context.Background(), "doc.md", domain.TocOptions{Mode: domain.TocModeCheck})

	require.NoError(t, err)
	assert.Equal(t, domain.TocStatusChanged, result.Status)
	assert.Zero(t, store.writes)
	assert.Equal(t, tocDoc, store.files["doc.md"])
}

func TestTocService_DiffMode(t *testing.T) {
	svc, store, _ := newTocFixture(t, tocDoc, false)

	result, err := svc.Sync(context.Background(), "doc.md", domain.TocOptions{Mode: domain.TocModeDiff})

	require.NoError(t, err)
	assert.Equal(t, domain.TocStatusChanged, result.Status)
	assert.Contains(t, result.Diff, "-stale")
	assert.Contains(t, result.Diff, "+- [Title](#title)")
	assert.Zero(t, store.writes)
}

func TestTocService_MissingMarkersIsClean(t *testing.T) {
	svc, store, _ := newTocFixture(t, "# Title\n\nno markers here\n", false)

	result, err := svc.Sync(context.Background(), "doc.md", domain.TocOptions{Mode: domain.TocModeUpdate})

	require.NoError(t, err)
	assert.Equal(t, domain.TocStatusClean, result.Status)
	assert.Zero(t, store.writes)
}

func TestTocService_UnclosedMarkerIsClean(t *testing.T) {
	svc, store, _ := newTocFixture(t, "# Title\n<!-- toc -->\nno end marker\n", false)

	result, err := svc.Sync(context.Background(), "doc.md", domain.TocOptions{Mode: domain.TocModeUpdate})

	require.NoError(t, err)
	assert.Equal(t, domain.TocStatusClean, result.Status)
	assert.Zero(t, store.writes)
}

func TestTocService_IgnoredFileIsClean(t *testing.T) {
	svc, store, ign := newTocFixture(t, tocDoc, true)

	result, err := svc.Sync(context.Background(), "doc.md", domain.TocOptions{Mode: domain.TocModeUpdate})

	require.NoError(t, err)
	assert.Equal(t, domain.TocStatusClean, result.Status)
	assert.Equal(t, 1, ign.calls)
	assert.Zero(t, store.reads)
	assert.Zero(t, store.writes)
}

func TestTocService_NoIgnoreBypassesTheList(t *testing.T) {
	svc, store, ign := newTocFixture(t, tocDoc, true)

	result, err := svc.Sync(context.Background(), "doc.md", domain.TocOptions{
		Mode:     domain.TocModeUpdate,
		NoIgnore: true,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.TocStatusChanged, result.Status)
	assert.Zero(t, ign.calls)
	assert.Equal(t, 1, store.writes)
}

func TestTocService_InvalidMode(t *testing.T) {
	svc, _, _ := newTocFixture(t, tocDoc, false)

	_, err := svc.Sync(context.Background(), "doc.md", domain.TocOptions{Mode: "verify"})

	assert.ErrorIs(t, err, domain.ErrInvalidMode)
}

func TestTocService_CRLFRendering(t *testing.T) {
	content := "# Title\r\n\r\n<!-- toc -->\r\nstale\r\n<!-- tocstop -->\r\n\r\n## Sub\r\nbody\r\n"
	svc, store, _ := newTocFixture(t, content, false)

	_, err := svc.Sync(context.Background(), "doc.md", domain.TocOptions{Mode: domain.TocModeUpdate})

	require.NoError(t, err)
	assert.Contains(t, store.files["doc.md"], "- [Title](#title)\r\n  - [Sub](#sub)\r\n")
}

func TestTocService_CustomMarkers(t *testing.T) {
	store := newMemStore(map[string]string{
		"doc.md": "# T\n<!-- index -->\nold\n<!-- /index -->\n## S\nx\n",
	})
	svc := NewTocService(store, nil, TocMarkers{Start: "<!-- index -->", End: "<!-- /index -->"})

	result, err := svc.Sync(context.Background(), "doc.md", domain.TocOptions{Mode: domain.TocModeUpdate})

	require.NoError(t, err)
	assert.Equal(t, domain.TocStatusChanged, result.Status)
	assert.Contains(t, store.files["doc.md"], "<!-- index -->\n- [T](#t)\n  - [S](#s)\n<!-- /index -->")
}

func TestOutlineEntries_IndentsRelativeToShallowest(t *testing.T) {
	doc := ParseDocument("## First\n### Deep\n## Second\n")

	entries := OutlineEntries(doc)
	body := renderTocBody(entries, "\n")

	assert.Equal(t, "- [First](#first)\n  - [Deep](#deep)\n- [Second](#second)\n", body)
}
