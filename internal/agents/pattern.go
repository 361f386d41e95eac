package agents

import "context"

type patternData struct {
	Text string
}

// PatternAgent judges whether a case plausibly describes fraud and extracts
// the deceptive patterns supporting that judgment.
type PatternAgent struct {
	caller *Caller
}

// NewPatternAgent creates a PatternAgent that calls model.
func NewPatternAgent(model Model) (*PatternAgent, error) {
	caller, err := NewCaller(model, patternPrompt, SchemaPatternAnalysis)
	if err != nil {
		return nil, err
	}
	return &PatternAgent{caller: caller}, nil
}

// Analyze returns the decoded, not yet validated, pattern analysis of text.
func (a *PatternAgent) Analyze(ctx context.Context, text string) (Output, error) {
	return a.caller.Invoke(ctx, patternData{Text: text})
}
