package workflow

import (
	"log/slog"

	"github.com/JaimeStill/redline/internal/revision"
)

// Runtime bundles the dependencies that pipeline nodes require. Generator
// is injected rather than constructed in the nodes so the pipeline runs
// against a fake generative capability in tests. OnStage and OnProgress
// are optional observers; OnProgress may be called concurrently when
// Workers exceeds 1.
type Runtime struct {
	Generator  revision.Generator
	Logger     *slog.Logger
	Workers    int
	OnStage    func(stage string)
	OnProgress func(completed, total int)
}

func (rt *Runtime) stage(name string) {
	if rt.OnStage != nil {
		rt.OnStage(name)
	}
}
