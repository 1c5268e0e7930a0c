// Package revision implements the paragraph revision pipeline core:
// normalizing raw extracted text into paragraphs, revising each paragraph
// against a user instruction, and rendering unified diffs of the results.
// All generative work flows through the narrow Generator contract so the
// pipeline is testable with a substitutable fake.
package revision

import "context"

// Generator is the narrow contract for the external generative-text
// capability: fixed stage instructions plus user content in, generated
// text out. Provider faults surface as ErrGenerateFailed; an empty
// response is valid and means the model produced nothing.
type Generator interface {
	Generate(ctx context.Context, instructions, content string) (string, error)
}

// Pair is one paragraph's original text alongside its revised counterpart.
// Pairs are index-aligned with the paragraph list they were produced from.
type Pair struct {
	Original string `json:"original"`
	Revised  string `json:"revised"`
}
