package driving

import (
	"context"

	"github.com/custodia-labs/markdown-doc/internal/core/domain"
)

// TocManager keeps the generated table-of-contents block of a document in
// sync with its heading outline.
type TocManager interface {
	// Sync checks, diffs or rewrites the TOC block of the file at path
	// according to opts.Mode. Files matched by the ignore list report
	// clean unless opts.NoIgnore is set.
	Sync(ctx context.Context, path string, opts domain.TocOptions) (*domain.TocResult, error)
}
