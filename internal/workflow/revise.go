package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/JaimeStill/redline/internal/revision"
)

// ReviseNode returns a state node that rewrites each paragraph against the
// user instruction, one generative call per paragraph on a bounded worker
// group. Output pairs are index-aligned with the paragraph list. The first
// failed paragraph aborts the run; completed revisions are discarded.
func ReviseNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		rt.stage(StageRevise)

		paragraphs, err := stateValue[[]string](s, KeyParagraphs)
		if err != nil {
			return s, fmt.Errorf("%w: %w", ErrReviseFailed, err)
		}

		instruction, err := stateValue[string](s, KeyInstruction)
		if err != nil {
			return s, fmt.Errorf("%w: %w", ErrReviseFailed, err)
		}

		pairs, err := revision.ReviseAll(
			ctx,
			rt.Generator,
			paragraphs,
			instruction,
			rt.Workers,
			rt.OnProgress,
		)
		if err != nil {
			return s, fmt.Errorf("%w: %w", ErrReviseFailed, err)
		}

		rt.Logger.InfoContext(
			ctx, "paragraphs revised",
			"count", len(pairs),
			"workers", max(rt.Workers, 1),
		)

		s = s.Set(KeyPairs, pairs)
		return s, nil
	})
}
