package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/markdown-doc/internal/core/domain"
	"github.com/custodia-labs/markdown-doc/internal/core/ports/driven"
	"github.com/custodia-labs/markdown-doc/internal/core/ports/driving"
	"github.com/custodia-labs/markdown-doc/internal/logger"
)

var _ driving.TocManager = (*TocService)(nil)

// TocMarkers delimit the managed table-of-contents block inside a
// document. Everything between the start and end marker lines belongs to
// the generator.
type TocMarkers struct {
	Start string
	End   string
}

// DefaultTocMarkers returns the conventional HTML comment markers.
func DefaultTocMarkers() TocMarkers {
	return TocMarkers{Start: "<!-- toc -->", End: "<!-- tocstop -->"}
}

// TocService keeps the TOC block of a document in sync with its heading
// outline. Files without markers are never touched; files on the ignore
// list report clean without being read.
type TocService struct {
	files   driven.FileStore
	ignore  driven.IgnoreList
	markers TocMarkers
}

// NewTocService creates a TocService. ignore may be nil when no ignore
// list applies.
func NewTocService(files driven.FileStore, ignore driven.IgnoreList, markers TocMarkers) *TocService {
	if markers.Start == "" || markers.End == "" {
		markers = DefaultTocMarkers()
	}
	return &TocService{files: files, ignore: ignore, markers: markers}
}

// Sync checks, diffs or rewrites the TOC block of the file at path.
func (s *TocService) Sync(ctx context.Context, path string, opts domain.TocOptions) (*domain.TocResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := domain.ParseTocMode(string(opts.Mode)); err != nil {
		return nil, err
	}

	if !opts.NoIgnore && s.ignore != nil {
		ignored, err := s.ignore.IsIgnored(path)
		if err != nil {
			return nil, fmt.Errorf("consulting ignore list for %s: %w", path, err)
		}
		if ignored {
			logger.Debug("toc: %s is on the ignore list, reporting clean", path)
			return &domain.TocResult{Status: domain.TocStatusClean}, nil
		}
	}

	content, err := s.files.Read(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	block, found := locateTocBlock(content, s.markers)
	if !found {
		logger.Debug("toc: %s carries no TOC markers, reporting clean", path)
		return &domain.TocResult{Status: domain.TocStatusClean}, nil
	}

	sep := "\n"
	if strings.Contains(content, "\r\n") {
		sep = "\r\n"
	}
	rendered := renderTocBody(OutlineEntries(ParseDocument(content)), sep)

	existing := content[block.bodyStart:block.bodyEnd]
	if existing == rendered {
		return &domain.TocResult{Status: domain.TocStatusClean}, nil
	}

	switch opts.Mode {
	case domain.TocModeCheck:
		return &domain.TocResult{Status: domain.TocStatusChanged}, nil

	case domain.TocModeDiff:
		updated := content[:block.bodyStart] + rendered + content[block.bodyEnd:]
		diff, err := UnifiedDiff(content, updated, path)
		if err != nil {
			return nil, err
		}
		return &domain.TocResult{Status: domain.TocStatusChanged, Diff: diff}, nil

	default: // domain.TocModeUpdate
		updated := content[:block.bodyStart] + rendered + content[block.bodyEnd:]
		if err := s.files.WriteAtomic(path, updated); err != nil {
			return nil, fmt.Errorf("writing %s: %w", path, err)
		}
		logger.Info("toc: wrote %s", path)
		return &domain.TocResult{Status: domain.TocStatusChanged}, nil
	}
}

// OutlineEntries derives the TOC entries from a parsed document's heading
// sequence. Every heading is listed regardless of nesting.
func OutlineEntries(doc *domain.Document) []domain.TocEntry {
	entries := make([]domain.TocEntry, 0, len(doc.Sections))
	for _, sec := range doc.Sections {
		entries = append(entries, domain.TocEntry{
			Level:  sec.Level,
			Text:   sec.HeadingText,
			Anchor: AnchorFor(sec.HeadingText),
		})
	}
	return entries
}

// renderTocBody renders the outline as a markdown bullet list. Indentation
// is relative to the shallowest heading so a document that starts at h2
// still renders flush left. sep carries the document's line ending.
func renderTocBody(entries []domain.TocEntry, sep string) string {
	if len(entries) == 0 {
		return ""
	}
	minLevel := entries[0].Level
	for _, e := range entries[1:] {
		if e.Level < minLevel {
			minLevel = e.Level
		}
	}
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(strings.Repeat("  ", e.Level-minLevel))
		b.WriteString("- [")
		b.WriteString(e.Text)
		b.WriteString("](#")
		b.WriteString(e.Anchor)
		b.WriteString(")")
		b.WriteString(sep)
	}
	return b.String()
}

// tocBlock holds the byte range of the managed body, exclusive of the
// marker lines themselves.
type tocBlock struct {
	bodyStart int
	bodyEnd   int
}

// locateTocBlock finds the first start marker line and the first end
// marker line after it. Marker lines match on their trimmed text so
// trailing spaces do not hide a block.
func locateTocBlock(content string, markers TocMarkers) (tocBlock, bool) {
	lines := splitLines(content)
	start := -1
	for i, ln := range lines {
		if strings.TrimSpace(ln.text) == markers.Start {
			start = i
			break
		}
	}
	if start < 0 {
		return tocBlock{}, false
	}
	for _, ln := range lines[start+1:] {
		if strings.TrimSpace(ln.text) == markers.End {
			return tocBlock{bodyStart: lines[start].end, bodyEnd: ln.start}, true
		}
	}
	return tocBlock{}, false
}
