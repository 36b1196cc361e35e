package mcp

import (
	"github.com/custodia-labs/markdown-doc/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Extractor provides read-only section access.
	Extractor driving.Extractor

	// Editor provides the mutating section operations.
	Editor driving.Editor

	// TocManager keeps TOC blocks in sync.
	TocManager driving.TocManager
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Extractor == nil {
		return ErrMissingExtractor
	}
	if p.Editor == nil {
		return ErrMissingEditor
	}
	// TocManager is optional; the sync_toc tool reports an error when
	// invoked without it.
	return nil
}
