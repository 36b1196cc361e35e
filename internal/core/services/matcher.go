package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/markdown-doc/internal/core/domain"
)

// FindSections resolves pattern against the document's heading texts.
// Matching is plain substring containment, case-insensitive unless
// opts.CaseSensitive is set. Multiple matches without opts.AllMatches fail
// closed with ErrAmbiguousMatch so an edit never touches sections the
// caller did not name.
func FindSections(doc *domain.Document, pattern string, opts domain.MatchOptions) (*domain.MatchSet, error) {
	if strings.TrimSpace(pattern) == "" {
		return nil, fmt.Errorf("%w: pattern is empty", domain.ErrInvalidPattern)
	}

	needle := pattern
	if !opts.CaseSensitive {
		needle = strings.ToLower(needle)
	}

	var indexes []int
	for i, sec := range doc.Sections {
		haystack := sec.HeadingText
		if !opts.CaseSensitive {
			haystack = strings.ToLower(haystack)
		}
		if strings.Contains(haystack, needle) {
			indexes = append(indexes, i)
		}
	}

	if len(indexes) == 0 {
		return nil, fmt.Errorf("%w: pattern %q", domain.ErrNoMatch, pattern)
	}
	if len(indexes) > 1 && !opts.AllMatches {
		headings := make([]string, 0, len(indexes))
		for _, i := range indexes {
			headings = append(headings, fmt.Sprintf("%q", doc.Sections[i].HeadingText))
		}
		return nil, fmt.Errorf("%w: pattern %q matched %d sections (%s)",
			domain.ErrAmbiguousMatch, pattern, len(indexes), strings.Join(headings, ", "))
	}
	if opts.MaxMatches > 0 && len(indexes) > opts.MaxMatches {
		return nil, fmt.Errorf("%w: pattern %q matched %d sections, limit is %d",
			domain.ErrTooManyMatches, pattern, len(indexes), opts.MaxMatches)
	}

	set := &domain.MatchSet{
		Indexes: indexes,
		All:     opts.AllMatches,
	}
	for _, i := range indexes {
		set.Sections = append(set.Sections, doc.Sections[i])
	}
	return set, nil
}
