package agents

import (
	"context"
	"encoding/json"
	"fmt"
)

// SummaryInput is the combined analysis view handed to the summary agent.
type SummaryInput struct {
	PatternAnalysis *PatternAnalysisOutput `json:"pattern_analysis"`
	FraudType       *FraudTypeOutput       `json:"fraud_type"`
}

type summaryData struct {
	Analysis string
}

// SummaryAgent turns an analysis into a warning and precaution summary.
type SummaryAgent struct {
	caller *Caller
}

// NewSummaryAgent creates a SummaryAgent that calls model.
func NewSummaryAgent(model Model) (*SummaryAgent, error) {
	caller, err := NewCaller(model, summaryPrompt, SchemaFraudSummary)
	if err != nil {
		return nil, err
	}
	return &SummaryAgent{caller: caller}, nil
}

// Summarize returns the decoded, not yet validated, summary of input.
func (a *SummaryAgent) Summarize(ctx context.Context, input SummaryInput) (Output, error) {
	analysis, err := json.MarshalIndent(input, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serialize analysis: %w", err)
	}
	return a.caller.Invoke(ctx, summaryData{Analysis: string(analysis)})
}
