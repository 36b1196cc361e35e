// Package domain defines the core business entities for markdown-doc.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Section: A heading plus its body within a markdown document
//   - Document: Raw source text and its ordered section sequence
//   - MatchSet: Sections selected by a pattern
//   - EditResult / TocResult: Operation outcomes
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
