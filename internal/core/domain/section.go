package domain

// Section represents one heading and its body within a markdown document.
// A section spans from its heading line to the next heading of equal or
// shallower level (or the end of the document). Deeper headings remain part
// of the body, so sections for nested headings overlap their parents.
type Section struct {
	// Level is the heading depth: the number of leading '#' markers (1-6).
	Level int

	// HeadingLine is the literal heading line including the '#' markers,
	// without the trailing newline.
	HeadingLine string

	// HeadingText is HeadingLine with the leading '#' markers and
	// surrounding whitespace stripped.
	HeadingText string

	// Body is all text strictly between the heading line and the next
	// heading of equal or shallower level, with original line breaks.
	Body string

	// FullText is the heading line plus body exactly as it appears in the
	// source, with no normalisation.
	FullText string

	// Start is the byte offset of the heading line within the source.
	Start int

	// End is the byte offset one past the last byte of the section.
	End int
}

// Document is raw markdown source plus its derived section sequence.
// It is immutable once parsed; edits parse fresh text and discard the old
// Document.
type Document struct {
	// Source is the raw document text.
	Source string

	// Preamble is the text before the first heading. It is never matched
	// or extracted but is preserved for reconstruction during edits.
	Preamble string

	// Sections holds every heading's section in document order.
	Sections []Section
}

// MatchSet is the result of matching a pattern against a document.
// It is consumed immediately by the edit or TOC engine and never persisted.
type MatchSet struct {
	// Indexes are positions into the parsed document's Sections slice,
	// in document order.
	Indexes []int

	// Sections are the matched sections, parallel to Indexes.
	Sections []Section

	// All reports whether the caller requested every match.
	All bool
}

// MatchOptions controls how a pattern is matched against heading text.
type MatchOptions struct {
	// CaseSensitive disables the default case-insensitive comparison.
	CaseSensitive bool

	// AllMatches permits the pattern to select more than one section.
	// Without it, multiple matches are an error.
	AllMatches bool

	// MaxMatches caps the number of matched sections when greater than
	// zero. Exceeding the cap is an error, not a truncation.
	MaxMatches int
}
