package revision

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

// Present renders a unified diff of the pair with "Original" and
// "Modified" side labels and default context. An unchanged pair renders
// as an empty string. The output is display text only; which common
// subsequence the algorithm picks on ties is not significant.
func Present(pair Pair) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(pair.Original),
		B:        difflib.SplitLines(pair.Revised),
		FromFile: "Original",
		ToFile:   "Modified",
		Context:  3,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("render diff: %w", err)
	}

	return text, nil
}
