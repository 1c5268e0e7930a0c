package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/JaimeStill/redline/internal/revision"
)

// PresentNode returns a state node that renders a unified diff for each
// revision pair and assembles the 1-based paragraph results in source
// order.
func PresentNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		rt.stage(StagePresent)

		pairs, err := stateValue[[]revision.Pair](s, KeyPairs)
		if err != nil {
			return s, fmt.Errorf("%w: %w", ErrPresentFailed, err)
		}

		results := make([]ParagraphResult, len(pairs))
		for i, pair := range pairs {
			diff, err := revision.Present(pair)
			if err != nil {
				return s, fmt.Errorf("%w: paragraph %d: %w", ErrPresentFailed, i+1, err)
			}

			results[i] = ParagraphResult{
				Index:    i + 1,
				Original: pair.Original,
				Revised:  pair.Revised,
				Diff:     diff,
			}
		}

		s = s.Set(KeyResults, results)
		return s, nil
	})
}
