package agents

import (
	"context"
	"encoding/json"
	"fmt"
)

type fraudTypeData struct {
	Description  string
	KnownTypes   []string
	SimilarCases []string
}

// FraudTypeAgent assigns a pattern analysis to a known fraud category or
// proposes a new one, consulting the registry for the known categories.
type FraudTypeAgent struct {
	caller   *Caller
	registry Registry
}

// NewFraudTypeAgent creates a FraudTypeAgent that calls model and reads
// known categories from registry.
func NewFraudTypeAgent(model Model, registry Registry) (*FraudTypeAgent, error) {
	if registry == nil {
		return nil, fmt.Errorf("%w: fraud type registry required", ErrInvalidConfig)
	}

	caller, err := NewCaller(model, fraudTypePrompt, SchemaFraudType)
	if err != nil {
		return nil, err
	}

	return &FraudTypeAgent{
		caller:   caller,
		registry: registry,
	}, nil
}

// Classify returns the decoded, not yet validated, classification of
// analysis. Similar cases are included in the prompt as additional context.
func (a *FraudTypeAgent) Classify(
	ctx context.Context,
	analysis PatternAnalysisOutput,
	similarCases []string,
) (Output, error) {
	known, err := a.registry.Names(ctx)
	if err != nil {
		return nil, fmt.Errorf("list known fraud types: %w", err)
	}

	description, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serialize pattern analysis: %w", err)
	}

	return a.caller.Invoke(ctx, fraudTypeData{
		Description:  string(description),
		KnownTypes:   known,
		SimilarCases: similarCases,
	})
}
