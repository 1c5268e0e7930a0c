package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/JaimeStill/redline/internal/extract"
)

// ExtractNode returns a state node that converts the uploaded bytes into
// plain text, dispatching by file name. Extraction failures abort the run
// before any generative call is made.
func ExtractNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		rt.stage(StageExtract)

		data, err := stateValue[[]byte](s, KeyUpload)
		if err != nil {
			return s, fmt.Errorf("%w: %w", ErrExtractFailed, err)
		}

		filename, err := stateValue[string](s, KeyFilename)
		if err != nil {
			return s, fmt.Errorf("%w: %w", ErrExtractFailed, err)
		}

		result, err := extract.Extract(data, filename)
		if err != nil {
			return s, fmt.Errorf("%w: %w", ErrExtractFailed, err)
		}

		rt.Logger.InfoContext(
			ctx, "text extracted",
			"filename", filename,
			"kind", result.Kind,
			"bytes", len(data),
			"chars", len(result.Text),
		)

		s = s.Set(KeyText, result.Text)
		if result.PageCount != nil {
			s = s.Set(KeyPageCount, *result.PageCount)
		}
		return s, nil
	})
}
