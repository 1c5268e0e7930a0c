package revision

import (
	"context"
	"fmt"
	"strings"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

// AgentGenerator adapts a go-agents chat agent to the Generator contract.
// The agent client is read-only after construction and reusable across
// sequential calls.
type AgentGenerator struct {
	agent agent.Agent
}

// NewAgentGenerator creates an AgentGenerator from an agent configuration.
func NewAgentGenerator(cfg *gaconfig.AgentConfig) (*AgentGenerator, error) {
	a, err := agent.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("create agent: %w", err)
	}
	return &AgentGenerator{agent: a}, nil
}

// Generate sends the stage instructions and user content as a single chat
// prompt and returns the trimmed response text. Provider errors surface as
// ErrGenerateFailed; an empty response is returned as-is so callers can
// treat it as nothing to process.
func (g *AgentGenerator) Generate(ctx context.Context, instructions, content string) (string, error) {
	prompt := instructions + "\n\n" + content

	resp, err := g.agent.Chat(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGenerateFailed, err)
	}

	return strings.TrimSpace(resp.Content()), nil
}
