package revision

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/JaimeStill/redline/internal/prompts"
)

var blankLinePattern = regexp.MustCompile(`\n\s*\n`)

// Normalize asks the generative capability to regroup raw extracted lines
// into coherent paragraphs and returns them in narrative order. An empty
// or all-blank response yields an empty list, not an error; callers treat
// that as nothing to process.
func Normalize(ctx context.Context, g Generator, text string) ([]string, error) {
	instructions, err := prompts.Instructions(prompts.StageNormalize)
	if err != nil {
		return nil, err
	}

	grouped, err := g.Generate(ctx, instructions, text)
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}

	return SplitParagraphs(grouped), nil
}

// SplitParagraphs splits grouped text on blank-line boundaries (one or
// more lines containing only whitespace), trims each segment, and drops
// empty segments. The split is pure: the same input always produces the
// same ordered result.
func SplitParagraphs(grouped string) []string {
	var paragraphs []string
	for _, segment := range blankLinePattern.Split(grouped, -1) {
		if trimmed := strings.TrimSpace(segment); trimmed != "" {
			paragraphs = append(paragraphs, trimmed)
		}
	}
	return paragraphs
}
