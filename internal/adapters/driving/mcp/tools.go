package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/markdown-doc/internal/core/domain"
)

// ExtractInput is the input schema for the extract_section tool.
type ExtractInput struct {
	Path          string `json:"path" jsonschema:"path of the markdown file to read"`
	Pattern       string `json:"pattern" jsonschema:"substring of the heading text to match"`
	AllMatches    bool   `json:"all_matches,omitempty" jsonschema:"allow the pattern to match more than one section"`
	CaseSensitive bool   `json:"case_sensitive,omitempty" jsonschema:"match the pattern case-sensitively"`
	NoHeading     bool   `json:"no_heading,omitempty" jsonschema:"return section bodies without their heading lines"`
}

// ExtractOutput is the output schema for the extract_section tool.
type ExtractOutput struct {
	Sections []SectionOutput `json:"sections"`
	Count    int             `json:"count"`
}

// SectionOutput represents a single extracted section.
type SectionOutput struct {
	Level   int    `json:"level"`
	Heading string `json:"heading"`
	Text    string `json:"text"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
}

// EditInput is the input schema for the edit_section tool.
type EditInput struct {
	Path           string `json:"path" jsonschema:"path of the markdown file to edit"`
	Pattern        string `json:"pattern" jsonschema:"substring of the heading text to match"`
	Operation      string `json:"operation" jsonschema:"one of replace, delete, append_to, prepend_to, insert_after, insert_before"`
	Content        string `json:"content,omitempty" jsonschema:"markdown payload for every operation except delete"`
	KeepHeading    bool   `json:"keep_heading,omitempty" jsonschema:"on replace, preserve the heading line and replace only the body"`
	AllowDuplicate bool   `json:"allow_duplicate,omitempty" jsonschema:"apply the payload even when already present"`
	AllMatches     bool   `json:"all_matches,omitempty" jsonschema:"allow the pattern to match more than one section"`
	CaseSensitive  bool   `json:"case_sensitive,omitempty" jsonschema:"match the pattern case-sensitively"`
	DryRun         bool   `json:"dry_run,omitempty" jsonschema:"compute the diff without writing the file"`
}

// EditOutput is the output schema for the edit_section tool.
type EditOutput struct {
	Applied bool     `json:"applied"`
	Status  string   `json:"status"`
	Diff    string   `json:"diff,omitempty"`
	Written string   `json:"written,omitempty"`
	Skipped []string `json:"skipped,omitempty"`
}

// TocInput is the input schema for the sync_toc tool.
type TocInput struct {
	Path     string `json:"path" jsonschema:"path of the markdown file"`
	Mode     string `json:"mode,omitempty" jsonschema:"one of check, diff or update (default check)"`
	NoIgnore bool   `json:"no_ignore,omitempty" jsonschema:"bypass the ignore list"`
}

// TocOutput is the output schema for the sync_toc tool.
type TocOutput struct {
	Status string `json:"status"`
	Diff   string `json:"diff,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "extract_section",
		Description: "Extract markdown sections by heading pattern",
	}, s.handleExtract)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "edit_section",
		Description: "Edit a markdown section: replace, delete, append, prepend or insert",
	}, s.handleEdit)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "sync_toc",
		Description: "Check or update a document's table-of-contents block",
	}, s.handleToc)
}

// handleExtract handles the extract_section tool invocation.
func (s *Server) handleExtract(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExtractInput,
) (*mcp.CallToolResult, ExtractOutput, error) {
	opts := domain.MatchOptions{
		AllMatches:    input.AllMatches,
		CaseSensitive: input.CaseSensitive,
	}
	sections, err := s.ports.Extractor.ExtractSectionsFromFile(ctx, input.Pattern, input.Path, opts)
	if err != nil {
		return nil, ExtractOutput{}, err
	}

	output := ExtractOutput{
		Sections: make([]SectionOutput, len(sections)),
		Count:    len(sections),
	}
	for i := range sections {
		text := sections[i].FullText
		if input.NoHeading {
			text = sections[i].Body
		}
		output.Sections[i] = SectionOutput{
			Level:   sections[i].Level,
			Heading: sections[i].HeadingText,
			Text:    text,
			Start:   sections[i].Start,
			End:     sections[i].End,
		}
	}
	return nil, output, nil
}

// handleEdit handles the edit_section tool invocation.
func (s *Server) handleEdit(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input EditInput,
) (*mcp.CallToolResult, EditOutput, error) {
	opts := domain.EditOptions{
		Match: domain.MatchOptions{
			AllMatches:    input.AllMatches,
			CaseSensitive: input.CaseSensitive,
		},
		DryRun:         input.DryRun,
		KeepHeading:    input.KeepHeading,
		AllowDuplicate: input.AllowDuplicate,
	}

	var result *domain.EditResult
	var err error
	switch input.Operation {
	case "replace":
		result, err = s.ports.Editor.Replace(ctx, input.Path, input.Pattern, input.Content, opts)
	case "delete":
		result, err = s.ports.Editor.Delete(ctx, input.Path, input.Pattern, opts)
	case "append_to":
		result, err = s.ports.Editor.AppendTo(ctx, input.Path, input.Pattern, input.Content, opts)
	case "prepend_to":
		result, err = s.ports.Editor.PrependTo(ctx, input.Path, input.Pattern, input.Content, opts)
	case "insert_after":
		result, err = s.ports.Editor.InsertAfter(ctx, input.Path, input.Pattern, input.Content, opts)
	case "insert_before":
		result, err = s.ports.Editor.InsertBefore(ctx, input.Path, input.Pattern, input.Content, opts)
	default:
		return nil, EditOutput{}, fmt.Errorf("%w: %q", ErrUnknownOperation, input.Operation)
	}
	if err != nil {
		return nil, EditOutput{}, err
	}

	return nil, EditOutput{
		Applied: result.Applied,
		Status:  string(result.Status),
		Diff:    result.Diff,
		Written: result.WrittenPath,
		Skipped: result.Skipped,
	}, nil
}

// handleToc handles the sync_toc tool invocation.
func (s *Server) handleToc(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TocInput,
) (*mcp.CallToolResult, TocOutput, error) {
	if s.ports.TocManager == nil {
		return nil, TocOutput{}, ErrMissingTocManager
	}

	modeStr := input.Mode
	if modeStr == "" {
		modeStr = string(domain.TocModeCheck)
	}
	mode, err := domain.ParseTocMode(modeStr)
	if err != nil {
		return nil, TocOutput{}, err
	}

	result, err := s.ports.TocManager.Sync(ctx, input.Path, domain.TocOptions{
		Mode:     mode,
		NoIgnore: input.NoIgnore,
	})
	if err != nil {
		return nil, TocOutput{}, err
	}
	return nil, TocOutput{
		Status: string(result.Status),
		Diff:   result.Diff,
	}, nil
}
