package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/JaimeStill/redline/internal/revision"
)

// NormalizeNode returns a state node that regroups the extracted text into
// coherent paragraphs with a single generative call. Zero paragraphs is a
// valid outcome; downstream nodes pass the empty list through.
func NormalizeNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		rt.stage(StageNormalize)

		text, err := stateValue[string](s, KeyText)
		if err != nil {
			return s, fmt.Errorf("%w: %w", ErrNormalizeFailed, err)
		}

		paragraphs, err := revision.Normalize(ctx, rt.Generator, text)
		if err != nil {
			return s, fmt.Errorf("%w: %w", ErrNormalizeFailed, err)
		}

		rt.Logger.InfoContext(
			ctx, "paragraphs normalized",
			"count", len(paragraphs),
		)

		s = s.Set(KeyParagraphs, paragraphs)
		return s, nil
	})
}
