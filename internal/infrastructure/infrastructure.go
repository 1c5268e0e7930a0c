// Package infrastructure provides core service initialization for
// application startup. It assembles the common dependencies (lifecycle
// coordination, logging, the generative-text client) that domain systems
// require.
package infrastructure

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/JaimeStill/redline/internal/config"
	"github.com/JaimeStill/redline/internal/revision"
	"github.com/JaimeStill/redline/pkg/lifecycle"
)

// Infrastructure holds the core systems required by the analysis domain.
// Generator is the single process-wide generative-text client, read-only
// after initialization and reused across sequential calls.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Generator revision.Generator
}

// New creates an Infrastructure from the application configuration.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	generator, err := revision.NewAgentGenerator(&cfg.Agent)
	if err != nil {
		return nil, fmt.Errorf("generator init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Generator: generator,
	}, nil
}
