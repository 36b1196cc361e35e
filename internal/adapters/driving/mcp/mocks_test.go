package mcp

import (
	"context"

	"github.com/custodia-labs/markdown-doc/internal/core/domain"
)

// fakeExtractor is a canned Extractor for handler tests.
type fakeExtractor struct {
	sections []domain.Section
	err      error

	lastPattern string
	lastPath    string
	lastOpts    domain.MatchOptions
}

func (f *fakeExtractor) Extract(_ context.Context, _, _ string, _ domain.MatchOptions, noHeading bool) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]string, 0, len(f.sections))
	for _, sec := range f.sections {
		if noHeading {
			out = append(out, sec.Body)
		} else {
			out = append(out, sec.FullText)
		}
	}
	return out, nil
}

func (f *fakeExtractor) ExtractSections(_ context.Context, pattern, _ string, opts domain.MatchOptions) ([]domain.Section, error) {
	f.lastPattern = pattern
	f.lastOpts = opts
	return f.sections, f.err
}

func (f *fakeExtractor) ExtractFromFile(ctx context.Context, pattern, path string, opts domain.MatchOptions, noHeading bool) ([]string, error) {
	f.lastPath = path
	return f.Extract(ctx, pattern, "", opts, noHeading)
}

func (f *fakeExtractor) ExtractSectionsFromFile(ctx context.Context, pattern, path string, opts domain.MatchOptions) ([]domain.Section, error) {
	f.lastPath = path
	return f.ExtractSections(ctx, pattern, "", opts)
}

func (f *fakeExtractor) Outline(context.Context, string) ([]domain.Section, error) {
	return f.sections, f.err
}

func (f *fakeExtractor) OutlineFromFile(_ context.Context, path string) ([]domain.Section, error) {
	f.lastPath = path
	return f.sections, f.err
}

// fakeEditor records the operation invoked and returns a canned result.
type fakeEditor struct {
	result *domain.EditResult
	err    error

	lastOp      string
	lastPath    string
	lastPattern string
	lastContent string
	lastOpts    domain.EditOptions
}

func (f *fakeEditor) record(op, path, pattern, content string, opts domain.EditOptions) (*domain.EditResult, error) {
	f.lastOp = op
	f.lastPath = path
	f.lastPattern = pattern
	f.lastContent = content
	f.lastOpts = opts
	return f.result, f.err
}

func (f *fakeEditor) Replace(_ context.Context, path, pattern, content string, opts domain.EditOptions) (*domain.EditResult, error) {
	return f.record("replace", path, pattern, content, opts)
}

func (f *fakeEditor) Delete(_ context.Context, path, pattern string, opts domain.EditOptions) (*domain.EditResult, error) {
	return f.record("delete", path, pattern, "", opts)
}

func (f *fakeEditor) AppendTo(_ context.Context, path, pattern, content string, opts domain.EditOptions) (*domain.EditResult, error) {
	return f.record("append_to", path, pattern, content, opts)
}

func (f *fakeEditor) PrependTo(_ context.Context, path, pattern, content string, opts domain.EditOptions) (*domain.EditResult, error) {
	return f.record("prepend_to", path, pattern, content, opts)
}

func (f *fakeEditor) InsertAfter(_ context.Context, path, pattern, content string, opts domain.EditOptions) (*domain.EditResult, error) {
	return f.record("insert_after", path, pattern, content, opts)
}

func (f *fakeEditor) InsertBefore(_ context.Context, path, pattern, content string, opts domain.EditOptions) (*domain.EditResult, error) {
	return f.record("insert_before", path, pattern, content, opts)
}

// fakeTocManager returns a canned TocResult.
type fakeTocManager struct {
	result *domain.TocResult
	err    error

	lastPath string
	lastOpts domain.TocOptions
}

func (f *fakeTocManager) Sync(_ context.Context, path string, opts domain.TocOptions) (*domain.TocResult, error) {
	f.lastPath = path
	f.lastOpts = opts
	return f.result, f.err
}
