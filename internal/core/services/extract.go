package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/markdown-doc/internal/core/domain"
	"github.com/custodia-labs/markdown-doc/internal/core/ports/driven"
	"github.com/custodia-labs/markdown-doc/internal/core/ports/driving"
)

var _ driving.Extractor = (*ExtractService)(nil)

// ExtractService implements read-only section extraction over raw content
// or files.
type ExtractService struct {
	files driven.FileStore
}

// NewExtractService creates an ExtractService backed by the given store.
func NewExtractService(files driven.FileStore) *ExtractService {
	return &ExtractService{files: files}
}

// Extract returns the matched sections as strings: full text by default,
// body only when noHeading is set.
func (s *ExtractService) Extract(ctx context.Context, pattern, content string, opts domain.MatchOptions, noHeading bool) ([]string, error) {
	sections, err := s.ExtractSections(ctx, pattern, content, opts)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(sections))
	for _, sec := range sections {
		if noHeading {
			out = append(out, sec.Body)
		} else {
			out = append(out, sec.FullText)
		}
	}
	return out, nil
}

// ExtractSections returns the matched sections as structured records.
func (s *ExtractService) ExtractSections(ctx context.Context, pattern, content string, opts domain.MatchOptions) ([]domain.Section, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc := ParseDocument(content)
	set, err := FindSections(doc, pattern, opts)
	if err != nil {
		return nil, err
	}
	return set.Sections, nil
}

// ExtractFromFile is Extract over the contents of path.
func (s *ExtractService) ExtractFromFile(ctx context.Context, pattern, path string, opts domain.MatchOptions, noHeading bool) ([]string, error) {
	content, err := s.files.Read(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return s.Extract(ctx, pattern, content, opts, noHeading)
}

// ExtractSectionsFromFile is ExtractSections over the contents of path.
func (s *ExtractService) ExtractSectionsFromFile(ctx context.Context, pattern, path string, opts domain.MatchOptions) ([]domain.Section, error) {
	content, err := s.files.Read(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return s.ExtractSections(ctx, pattern, content, opts)
}

// Outline returns every section of the document in order.
func (s *ExtractService) Outline(ctx context.Context, content string) ([]domain.Section, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ParseDocument(content).Sections, nil
}

// OutlineFromFile is Outline over the contents of path.
func (s *ExtractService) OutlineFromFile(ctx context.Context, path string) ([]domain.Section, error) {
	content, err := s.files.Read(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return s.Outline(ctx, content)
}
