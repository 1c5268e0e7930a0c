package revision

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/redline/internal/prompts"
)

// ReviseAll revises every paragraph against the user instruction and
// returns pairs index-aligned with the input. Work runs on a bounded
// errgroup: workers of 1 (the default when a smaller value is given)
// reproduces strict sequential order. Results are written to
// index-addressed slots, so output order matches input order regardless
// of the worker limit, and no two workers ever hold the same index.
//
// The first failed paragraph cancels the remaining work and fails the
// whole run; no partial results are returned. onProgress, when non-nil,
// is invoked after each completed paragraph with the completed and total
// counts; it may be called concurrently when workers exceeds 1.
func ReviseAll(
	ctx context.Context,
	g Generator,
	paragraphs []string,
	instruction string,
	workers int,
	onProgress func(completed, total int),
) ([]Pair, error) {
	instructions, err := prompts.Instructions(prompts.StageRevise)
	if err != nil {
		return nil, err
	}

	pairs := make([]Pair, len(paragraphs))
	total := len(paragraphs)

	var completed atomic.Int64

	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(workers, 1))

	for i, paragraph := range paragraphs {
		eg.Go(func() error {
			if egctx.Err() != nil {
				return egctx.Err()
			}

			content := fmt.Sprintf("Instructions: %s\n\nParagraph:\n%s", instruction, paragraph)

			revised, err := g.Generate(egctx, instructions, content)
			if err != nil {
				return fmt.Errorf("paragraph %d: %w", i+1, err)
			}

			pairs[i] = Pair{Original: paragraph, Revised: revised}

			if onProgress != nil {
				onProgress(int(completed.Add(1)), total)
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return pairs, nil
}
