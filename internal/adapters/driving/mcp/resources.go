package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for markdown-doc resources.
	uriScheme = "markdown-doc://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Template for a document's heading outline.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "outline/{path}",
		Name:        "document-outline",
		Description: "Heading outline of a markdown document",
		MIMEType:    "application/json",
	}, s.handleOutlineResource)
}

// handleOutlineResource returns the heading outline of the document named
// by the URI.
func (s *Server) handleOutlineResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	path := extractOutlinePath(req.Params.URI)
	if path == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	sections, err := s.ports.Extractor.OutlineFromFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("reading outline: %w", err)
	}

	type entry struct {
		Level   int    `json:"level"`
		Heading string `json:"heading"`
		Start   int    `json:"start"`
		End     int    `json:"end"`
	}
	entries := make([]entry, len(sections))
	for i := range sections {
		entries[i] = entry{
			Level:   sections[i].Level,
			Heading: sections[i].HeadingText,
			Start:   sections[i].Start,
			End:     sections[i].End,
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling outline: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractOutlinePath extracts the file path from a URI like
// markdown-doc://outline/{path}.
func extractOutlinePath(uri string) string {
	const prefix = uriScheme + "outline/"
	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	return strings.TrimPrefix(uri, prefix)
}
