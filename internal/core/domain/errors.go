package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNoMatch indicates a pattern matched zero sections.
	ErrNoMatch = errors.New("no matching section")

	// ErrAmbiguousMatch indicates a pattern matched more than one section
	// without the caller opting into multi-match mode. Editing the wrong
	// section is destructive and hard to notice, so this fails closed
	// rather than silently picking the first match.
	ErrAmbiguousMatch = errors.New("pattern matches multiple sections")

	// ErrTooManyMatches indicates the match count exceeded an explicit
	// MaxMatches cap.
	ErrTooManyMatches = errors.New("too many matching sections")

	// ErrInvalidPattern indicates an empty or malformed section pattern.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrInvalidMode indicates an unrecognised TOC mode string.
	ErrInvalidMode = errors.New("invalid TOC mode")

	// ErrOverlappingEdits indicates a multi-match edit produced splices
	// that overlap, which would corrupt the rebuilt document.
	ErrOverlappingEdits = errors.New("overlapping edits")
)
