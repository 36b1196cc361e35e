package domain

// EditStatus distinguishes the outcomes of an edit operation that did not
// fail outright.
type EditStatus string

const (
	// EditStatusChanged means the document content changed (and, outside
	// dry-run, was written).
	EditStatusChanged EditStatus = "changed"

	// EditStatusUnchanged means every matched section was skipped (for
	// example by the duplicate guard) and the file was left untouched.
	EditStatusUnchanged EditStatus = "unchanged"
)

// EditOptions carries the common knobs for all mutating operations.
type EditOptions struct {
	// Match controls pattern resolution.
	Match MatchOptions

	// DryRun computes the new text and diff without writing the file.
	DryRun bool

	// KeepHeading preserves the matched heading line on replace,
	// substituting only the body.
	KeepHeading bool

	// AllowDuplicate disables the duplicate guard on append, prepend and
	// insert operations.
	AllowDuplicate bool

	// WithPath names a file to read the payload from. When set it takes
	// precedence over the literal content argument.
	WithPath string
}

// EditResult reports the outcome of one mutating operation.
type EditResult struct {
	// Applied is true when the document content actually changed.
	// For multi-match edits it is true if at least one section changed.
	Applied bool

	// Status distinguishes changed from unchanged/skipped.
	Status EditStatus

	// Diff is the unified diff between the original and new document
	// text. Empty when nothing changed.
	Diff string

	// NewContent is the full new document text, also populated on dry
	// runs so callers can inspect the would-be result.
	NewContent string

	// WrittenPath is the path written on success, empty for dry runs and
	// unchanged results.
	WrittenPath string

	// Skipped lists the heading texts of matched sections that were left
	// alone by the duplicate guard.
	Skipped []string
}
