package agents

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

// Model sends a rendered prompt to a chat-completion model and returns the
// response text.
type Model interface {
	Chat(ctx context.Context, prompt string) (string, error)
}

// ModelFunc adapts a function to the Model interface.
type ModelFunc func(ctx context.Context, prompt string) (string, error)

func (f ModelFunc) Chat(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// Registry lists the fraud type categories currently known to the system.
type Registry interface {
	Names(ctx context.Context) ([]string, error)
}

type agentModel struct {
	agent   agent.Agent
	options map[string]any
}

// NewModel creates a go-agents backed Model. The temperature is sent as a
// chat option on every call.
func NewModel(cfg *gaconfig.AgentConfig, temperature float64) (Model, error) {
	a, err := agent.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: create agent: %w", ErrInvalidConfig, err)
	}

	return &agentModel{
		agent: a,
		options: map[string]any{
			"temperature": temperature,
		},
	}, nil
}

func (m *agentModel) Chat(ctx context.Context, prompt string) (string, error) {
	resp, err := m.agent.Chat(ctx, prompt, m.options)
	if err != nil {
		return "", err
	}
	return resp.Content(), nil
}
