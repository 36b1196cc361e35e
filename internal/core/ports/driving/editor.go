package driving

import (
	"context"

	"github.com/custodia-labs/markdown-doc/internal/core/domain"
)

// Editor exposes the mutating section operations. Every method resolves
// the pattern against the file at path, computes the full new document in
// memory, and writes it atomically unless opts.DryRun is set.
type Editor interface {
	// Replace substitutes each matched section with content (or the
	// contents of opts.WithPath). With opts.KeepHeading the heading line
	// is preserved and only the body is replaced.
	Replace(ctx context.Context, path, pattern, content string, opts domain.EditOptions) (*domain.EditResult, error)

	// Delete removes each matched section entirely.
	Delete(ctx context.Context, path, pattern string, opts domain.EditOptions) (*domain.EditResult, error)

	// AppendTo adds a block to the end of each matched section's body.
	AppendTo(ctx context.Context, path, pattern, content string, opts domain.EditOptions) (*domain.EditResult, error)

	// PrependTo adds a block to the start of each matched section's body.
	PrependTo(ctx context.Context, path, pattern, content string, opts domain.EditOptions) (*domain.EditResult, error)

	// InsertAfter inserts a block immediately after each matched section,
	// as a sibling rather than inside the body.
	InsertAfter(ctx context.Context, path, pattern, content string, opts domain.EditOptions) (*domain.EditResult, error)

	// InsertBefore inserts a block immediately before each matched section.
	InsertBefore(ctx context.Context, path, pattern, content string, opts domain.EditOptions) (*domain.EditResult, error)
}
