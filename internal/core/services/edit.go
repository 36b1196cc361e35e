package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/custodia-labs/markdown-doc/internal/core/domain"
	"github.com/custodia-labs/markdown-doc/internal/core/ports/driven"
	"github.com/custodia-labs/markdown-doc/internal/core/ports/driving"
	"github.com/custodia-labs/markdown-doc/internal/logger"
)

var _ driving.Editor = (*EditService)(nil)

// EditService implements the mutating section operations. Every operation
// works the same way: read the file, parse, match, compute byte-range
// splices, rebuild the full document in memory, then write atomically
// unless the caller asked for a dry run.
type EditService struct {
	files driven.FileStore
}

// NewEditService creates an EditService backed by the given store.
func NewEditService(files driven.FileStore) *EditService {
	return &EditService{files: files}
}

// editOp names the six section operations.
type editOp int

const (
	opReplace editOp = iota
	opDelete
	opAppend
	opPrepend
	opInsertAfter
	opInsertBefore
)

// sectionEdit is one byte-range splice against the original source.
// Insertions use start == end.
type sectionEdit struct {
	start       int
	end         int
	replacement string
}

// Replace substitutes each matched section with the payload. With
// opts.KeepHeading the heading line survives and only the body changes.
func (s *EditService) Replace(ctx context.Context, path, pattern, content string, opts domain.EditOptions) (*domain.EditResult, error) {
	return s.apply(ctx, path, pattern, content, opts, opReplace)
}

// Delete removes each matched section entirely.
func (s *EditService) Delete(ctx context.Context, path, pattern string, opts domain.EditOptions) (*domain.EditResult, error) {
	return s.apply(ctx, path, pattern, "", opts, opDelete)
}

// AppendTo adds the payload to the end of each matched section's body.
func (s *EditService) AppendTo(ctx context.Context, path, pattern, content string, opts domain.EditOptions) (*domain.EditResult, error) {
	return s.apply(ctx, path, pattern, content, opts, opAppend)
}

// PrependTo adds the payload to the start of each matched section's body.
func (s *EditService) PrependTo(ctx context.Context, path, pattern, content string, opts domain.EditOptions) (*domain.EditResult, error) {
	return s.apply(ctx, path, pattern, content, opts, opPrepend)
}

// InsertAfter inserts the payload immediately after each matched section,
// past any nested subsections.
func (s *EditService) InsertAfter(ctx context.Context, path, pattern, content string, opts domain.EditOptions) (*domain.EditResult, error) {
	return s.apply(ctx, path, pattern, content, opts, opInsertAfter)
}

// InsertBefore inserts the payload immediately before each matched
// section's heading line.
func (s *EditService) InsertBefore(ctx context.Context, path, pattern, content string, opts domain.EditOptions) (*domain.EditResult, error) {
	return s.apply(ctx, path, pattern, content, opts, opInsertBefore)
}

func (s *EditService) apply(ctx context.Context, path, pattern, content string, opts domain.EditOptions, op editOp) (*domain.EditResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	source, err := s.files.Read(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	payload := content
	if op != opDelete && opts.WithPath != "" {
		payload, err = s.files.Read(opts.WithPath)
		if err != nil {
			return nil, fmt.Errorf("reading payload %s: %w", opts.WithPath, err)
		}
	}

	doc := ParseDocument(source)
	set, err := FindSections(doc, pattern, opts.Match)
	if err != nil {
		return nil, err
	}

	edits, skipped := buildEdits(doc, set, op, payload, opts)
	logger.Debug("edit: %d match(es), %d splice(s), %d skipped", len(set.Indexes), len(edits), len(skipped))

	if len(edits) == 0 {
		return &domain.EditResult{
			Applied:    false,
			Status:     domain.EditStatusUnchanged,
			NewContent: source,
			Skipped:    skipped,
		}, nil
	}

	updated, err := spliceEdits(source, edits)
	if err != nil {
		return nil, err
	}
	if updated == source {
		return &domain.EditResult{
			Applied:    false,
			Status:     domain.EditStatusUnchanged,
			NewContent: source,
			Skipped:    skipped,
		}, nil
	}

	diff, err := UnifiedDiff(source, updated, path)
	if err != nil {
		return nil, err
	}

	result := &domain.EditResult{
		Applied:    true,
		Status:     domain.EditStatusChanged,
		Diff:       diff,
		NewContent: updated,
		Skipped:    skipped,
	}
	if !opts.DryRun {
		if err := s.files.WriteAtomic(path, updated); err != nil {
			return nil, fmt.Errorf("writing %s: %w", path, err)
		}
		result.WrittenPath = path
		logger.Info("wrote %s", path)
	}
	return result, nil
}

// buildEdits computes the byte-range splices for one operation across all
// matched sections, applying the duplicate guard per section.
func buildEdits(doc *domain.Document, set *domain.MatchSet, op editOp, payload string, opts domain.EditOptions) ([]sectionEdit, []string) {
	var edits []sectionEdit
	var skipped []string

	source := doc.Source
	for _, sec := range set.Sections {
		// followed reports whether any content comes after the section;
		// trailing blocks get a blank-line separator only in that case.
		followed := sec.End < len(source)
		header := sec.FullText[:len(sec.FullText)-len(sec.Body)]

		switch op {
		case opReplace:
			if opts.KeepHeading {
				newBody := normalizeBlock(payload)
				if !opts.AllowDuplicate && normalizeBlock(sec.Body) == newBody {
					skipped = append(skipped, sec.HeadingText)
					continue
				}
				edits = append(edits, sectionEdit{
					start:       sec.Start,
					end:         sec.End,
					replacement: normalizeSectionEnd(header+newBody, followed),
				})
			} else {
				edits = append(edits, sectionEdit{
					start:       sec.Start,
					end:         sec.End,
					replacement: normalizeSectionEnd(payload, followed),
				})
			}

		case opDelete:
			edits = append(edits, sectionEdit{start: sec.Start, end: sec.End})

		case opAppend:
			block := normalizeBlock(payload)
			if !opts.AllowDuplicate && bodyEndsWith(sec.Body, block) {
				skipped = append(skipped, sec.HeadingText)
				continue
			}
			edits = append(edits, sectionEdit{
				start:       sec.Start,
				end:         sec.End,
				replacement: normalizeSectionEnd(header+appendBody(sec.Body, block), followed),
			})

		case opPrepend:
			block := normalizeBlock(payload)
			if !opts.AllowDuplicate && bodyStartsWith(sec.Body, block) {
				skipped = append(skipped, sec.HeadingText)
				continue
			}
			edits = append(edits, sectionEdit{
				start:       sec.Start,
				end:         sec.End,
				replacement: normalizeSectionEnd(header+prependBody(sec.Body, block), followed),
			})

		case opInsertAfter:
			block := normalizeSectionEnd(payload, followed)
			if !opts.AllowDuplicate && adjacentAfterEquals(source[sec.End:], block) {
				skipped = append(skipped, sec.HeadingText)
				continue
			}
			edits = append(edits, sectionEdit{start: sec.End, end: sec.End, replacement: block})

		case opInsertBefore:
			block := normalizeSectionEnd(payload, true)
			if !opts.AllowDuplicate && adjacentBeforeEquals(source[:sec.Start], block) {
				skipped = append(skipped, sec.HeadingText)
				continue
			}
			edits = append(edits, sectionEdit{start: sec.Start, end: sec.Start, replacement: block})
		}
	}
	return edits, skipped
}

// spliceEdits rebuilds the document by applying the splices in offset
// order. Overlapping ranges mean the matcher produced sections that claim
// the same bytes for rewriting, which is always a bug to surface, never
// silently resolved.
func spliceEdits(source string, edits []sectionEdit) (string, error) {
	sorted := make([]sectionEdit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].start < sorted[j].start })

	var b strings.Builder
	cursor := 0
	for _, e := range sorted {
		if e.start < cursor {
			return "", fmt.Errorf("%w: splice at byte %d overlaps edit ending at byte %d",
				domain.ErrOverlappingEdits, e.start, cursor)
		}
		b.WriteString(source[cursor:e.start])
		b.WriteString(e.replacement)
		cursor = e.end
	}
	b.WriteString(source[cursor:])
	return b.String(), nil
}

// normalizeBlock trims trailing newlines and terminates the block with
// exactly one.
func normalizeBlock(s string) string {
	return strings.TrimRight(s, "\n") + "\n"
}

// normalizeSectionEnd terminates a rebuilt section with one newline, plus
// a blank line when more content follows it.
func normalizeSectionEnd(s string, followed bool) string {
	out := strings.TrimRight(s, "\n") + "\n"
	if followed {
		out += "\n"
	}
	return out
}

// appendBody places block after the existing body, separated by a single
// newline.
func appendBody(body, block string) string {
	existing := strings.TrimRight(body, "\n")
	if existing == "" {
		return block
	}
	return existing + "\n" + block
}

// prependBody places block before the existing body.
func prependBody(body, block string) string {
	existing := strings.TrimLeft(body, "\n")
	if existing == "" {
		return block
	}
	return block + existing
}

// bodyEndsWith reports whether the body already ends with the block,
// ignoring trailing newlines on both sides.
func bodyEndsWith(body, block string) bool {
	trimmed := strings.TrimRight(block, "\n")
	if trimmed == "" {
		return false
	}
	return strings.HasSuffix(strings.TrimRight(body, "\n"), trimmed)
}

// bodyStartsWith reports whether the body already starts with the block,
// ignoring leading newlines on both sides.
func bodyStartsWith(body, block string) bool {
	trimmed := strings.TrimRight(block, "\n")
	if trimmed == "" {
		return false
	}
	return strings.HasPrefix(strings.TrimLeft(body, "\n"), trimmed)
}

// adjacentAfterEquals reports whether the text following an insertion
// point already begins with the block.
func adjacentAfterEquals(suffix, block string) bool {
	trimmed := strings.Trim(block, "\n")
	if trimmed == "" {
		return false
	}
	return strings.HasPrefix(strings.TrimLeft(suffix, " \t\r\n"), trimmed)
}

// adjacentBeforeEquals reports whether the text preceding an insertion
// point already ends with the block.
func adjacentBeforeEquals(prefix, block string) bool {
	trimmed := strings.Trim(block, "\n")
	if trimmed == "" {
		return false
	}
	return strings.HasSuffix(strings.TrimRight(prefix, " \t\r\n"), trimmed)
}
