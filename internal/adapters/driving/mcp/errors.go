// Package mcp provides an MCP (Model Context Protocol) server adapter for
// markdown-doc. It lets AI assistants extract and edit markdown sections
// through structured tools instead of rewriting whole files.
package mcp

import "errors"

// ErrMissingExtractor is returned when the extractor service is not provided.
var ErrMissingExtractor = errors.New("mcp: extractor service is required")

// ErrMissingEditor is returned when the editor service is not provided.
var ErrMissingEditor = errors.New("mcp: editor service is required")

// ErrMissingTocManager is returned when sync_toc is invoked without a TOC service.
var ErrMissingTocManager = errors.New("mcp: toc manager is required")

// ErrUnknownOperation is returned for an edit_section operation the server
// does not recognise.
var ErrUnknownOperation = errors.New("mcp: unknown edit operation")
