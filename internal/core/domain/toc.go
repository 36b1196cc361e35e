package domain

import "fmt"

// TocMode selects what the TOC engine does when a table of contents is
// out of date.
type TocMode string

const (
	// TocModeCheck reports staleness without computing a diff.
	TocModeCheck TocMode = "check"

	// TocModeDiff reports staleness with a unified diff of the rewrite.
	TocModeDiff TocMode = "diff"

	// TocModeUpdate rewrites the TOC block in place.
	TocModeUpdate TocMode = "update"
)

// ParseTocMode validates a mode string. Unrecognised values fail with
// ErrInvalidMode before any file I/O happens.
func ParseTocMode(mode string) (TocMode, error) {
	switch TocMode(mode) {
	case TocModeCheck, TocModeDiff, TocModeUpdate:
		return TocMode(mode), nil
	default:
		return "", fmt.Errorf("%w: %q (expected check, diff or update)", ErrInvalidMode, mode)
	}
}

// TocStatus reports whether a document's TOC block matched the generated
// outline.
type TocStatus string

const (
	// TocStatusClean means the TOC already matches (or the file is
	// ignored, or carries no markers).
	TocStatusClean TocStatus = "clean"

	// TocStatusChanged means the TOC needed regeneration.
	TocStatusChanged TocStatus = "changed"
)

// TocOptions carries the knobs for one TOC operation.
type TocOptions struct {
	// Mode is check, diff or update.
	Mode TocMode

	// NoIgnore bypasses the ignore list.
	NoIgnore bool
}

// TocEntry is one rendered outline entry.
type TocEntry struct {
	// Level is the heading depth the entry was generated from.
	Level int

	// Text is the heading text.
	Text string

	// Anchor is the generated link fragment for the heading.
	Anchor string
}

// TocResult reports the outcome of one TOC operation.
type TocResult struct {
	// Status is clean or changed.
	Status TocStatus

	// Diff is populated in diff mode when the TOC is stale.
	Diff string
}
