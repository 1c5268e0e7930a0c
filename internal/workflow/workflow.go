package workflow

import (
	"context"
	"fmt"
	"time"

	gaoconfig "github.com/JaimeStill/go-agents-orchestration/pkg/config"
	"github.com/JaimeStill/go-agents-orchestration/pkg/state"
	"github.com/google/uuid"
)

// Execute runs the analysis pipeline for a single request. It builds the
// state graph (extract → normalize → revise → present), executes it, and
// extracts the AnalysisResult from the final state. Data flows strictly
// downstream; nothing from the run is retained after the result is
// returned.
func Execute(ctx context.Context, rt *Runtime, req Request) (*AnalysisResult, error) {
	graph, err := buildGraph(rt)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}

	initial := state.New(nil)
	initial = initial.Set(KeyAnalysisID, req.ID)
	initial = initial.Set(KeyFilename, req.Filename)
	initial = initial.Set(KeyInstruction, req.Instruction)
	initial = initial.Set(KeyUpload, req.Data)

	final, err := graph.Execute(ctx, initial)
	if err != nil {
		return nil, err
	}

	return extractResult(final)
}

func buildGraph(rt *Runtime) (state.StateGraph, error) {
	cfg := gaoconfig.DefaultGraphConfig("redline-analysis")
	cfg.Observer = "noop"

	graph, err := state.NewGraph(cfg)
	if err != nil {
		return nil, err
	}

	if err := graph.AddNode("extract", ExtractNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("normalize", NormalizeNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("revise", ReviseNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("present", PresentNode(rt)); err != nil {
		return nil, err
	}

	// strictly linear pipeline
	if err := graph.AddEdge("extract", "normalize", nil); err != nil {
		return nil, err
	}

	if err := graph.AddEdge("normalize", "revise", nil); err != nil {
		return nil, err
	}

	if err := graph.AddEdge("revise", "present", nil); err != nil {
		return nil, err
	}

	if err := graph.SetEntryPoint("extract"); err != nil {
		return nil, err
	}

	if err := graph.SetExitPoint("present"); err != nil {
		return nil, err
	}

	return graph, nil
}

func extractResult(s state.State) (*AnalysisResult, error) {
	id, err := stateValue[uuid.UUID](s, KeyAnalysisID)
	if err != nil {
		return nil, err
	}

	filename, err := stateValue[string](s, KeyFilename)
	if err != nil {
		return nil, err
	}

	instruction, err := stateValue[string](s, KeyInstruction)
	if err != nil {
		return nil, err
	}

	results, err := stateValue[[]ParagraphResult](s, KeyResults)
	if err != nil {
		return nil, err
	}

	result := &AnalysisResult{
		ID:          id,
		Filename:    filename,
		Instruction: instruction,
		Paragraphs:  results,
		CompletedAt: time.Now(),
	}

	if pages, err := stateValue[int](s, KeyPageCount); err == nil {
		result.PageCount = &pages
	}

	return result, nil
}

func stateValue[T any](s state.State, key string) (T, error) {
	var zero T

	val, ok := s.Get(key)
	if !ok {
		return zero, fmt.Errorf("missing %s in state", key)
	}

	typed, ok := val.(T)
	if !ok {
		return zero, fmt.Errorf("%s has unexpected type %T", key, val)
	}

	return typed, nil
}
