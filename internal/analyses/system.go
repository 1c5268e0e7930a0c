// Package analyses implements the analysis domain for Redline. It runs
// the document revision pipeline for one upload at a time and streams
// run events to the caller; no run state is retained afterwards.
package analyses

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JaimeStill/redline/internal/revision"
	"github.com/JaimeStill/redline/internal/workflow"
)

// AnalyzeCommand carries the inputs for one analysis run.
type AnalyzeCommand struct {
	Instruction string
	Filename    string
	Data        []byte
}

// System defines the public contract for analysis domain operations.
type System interface {
	Handler(maxUploadSize int64) *Handler

	// Analyze runs the pipeline for cmd, emitting run events on events.
	// It returns after emitting a terminal complete, warning, or error
	// event; the caller owns closing the channel.
	Analyze(ctx context.Context, cmd AnalyzeCommand, events chan<- Event)
}

type system struct {
	generator revision.Generator
	logger    *slog.Logger
	workers   int
}

// New creates an analysis System backed by the given generative client.
func New(generator revision.Generator, logger *slog.Logger, workers int) System {
	return &system{
		generator: generator,
		logger:    logger.With("system", "analyses"),
		workers:   workers,
	}
}

// Handler creates the HTTP handler for this system.
func (s *system) Handler(maxUploadSize int64) *Handler {
	return NewHandler(s, s.logger, maxUploadSize)
}

func (s *system) Analyze(ctx context.Context, cmd AnalyzeCommand, events chan<- Event) {
	id := uuid.New()
	logger := s.logger.With("analysis_id", id)

	logger.InfoContext(
		ctx, "analysis started",
		"filename", cmd.Filename,
		"bytes", len(cmd.Data),
	)
	events <- AcceptedEvent(id, cmd.Filename)

	rt := &workflow.Runtime{
		Generator: s.generator,
		Logger:    logger,
		Workers:   s.workers,
		OnStage: func(stage string) {
			events <- StatusEvent(stage)
		},
		OnProgress: func(completed, total int) {
			events <- ProgressEvent(completed, total)
		},
	}

	req := workflow.Request{
		ID:          id,
		Filename:    cmd.Filename,
		Instruction: cmd.Instruction,
		Data:        cmd.Data,
	}

	result, err := workflow.Execute(ctx, rt, req)
	if err != nil {
		logger.ErrorContext(ctx, "analysis failed", "error", err)
		events <- ErrorEvent(err)
		return
	}

	if result.Empty() {
		logger.WarnContext(ctx, "no paragraphs found", "filename", cmd.Filename)
		events <- WarningEvent("no paragraphs found in the document")
		return
	}

	// paragraph events are emitted in source order
	for _, paragraph := range result.Paragraphs {
		events <- ParagraphEvent(paragraph)
	}

	logger.InfoContext(
		ctx, "analysis complete",
		"paragraphs", len(result.Paragraphs),
	)
	events <- CompleteEvent(result)
}
