package driving

import (
	"context"

	"github.com/custodia-labs/markdown-doc/internal/core/domain"
)

// Extractor exposes read-only section extraction.
type Extractor interface {
	// Extract returns the matched sections as strings: full text by
	// default, body only when noHeading is set.
	Extract(ctx context.Context, pattern, content string, opts domain.MatchOptions, noHeading bool) ([]string, error)

	// ExtractSections returns the matched sections as structured records.
	ExtractSections(ctx context.Context, pattern, content string, opts domain.MatchOptions) ([]domain.Section, error)

	// ExtractFromFile is Extract over the contents of path.
	ExtractFromFile(ctx context.Context, pattern, path string, opts domain.MatchOptions, noHeading bool) ([]string, error)

	// ExtractSectionsFromFile is ExtractSections over the contents of path.
	ExtractSectionsFromFile(ctx context.Context, pattern, path string, opts domain.MatchOptions) ([]domain.Section, error)

	// Outline returns every section of the document in order, without
	// pattern filtering.
	Outline(ctx context.Context, content string) ([]domain.Section, error)

	// OutlineFromFile is Outline over the contents of path.
	OutlineFromFile(ctx context.Context, path string) ([]domain.Section, error)
}
