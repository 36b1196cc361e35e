package services

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

// UnifiedDiff renders a unified diff between two versions of the document
// at path, with three lines of context and git-style a/ b/ headers.
// Identical inputs yield the empty string.
func UnifiedDiff(original, updated, path string) (string, error) {
	if original == updated {
		return "", nil
	}
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(original),
		B:        difflib.SplitLines(updated),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("rendering diff for %s: %w", path, err)
	}
	return text, nil
}
