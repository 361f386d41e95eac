package workflow

import (
	"slices"

	"github.com/JaimeStill/curator/internal/agents"
)

// CuratorState is the record carried between workflow steps. Each step
// receives a copy, fills in its own result, and returns it.
//
// IsFraud is written only by analyze_patterns. FraudType and NewTypeName
// are populated only when IsFraud is true.
type CuratorState struct {
	Text            string                        `json:"text"`
	SimilarCases    []string                      `json:"similar_cases"`
	PatternAnalysis *agents.PatternAnalysisOutput `json:"pattern_analysis,omitempty"`
	FraudType       *agents.FraudTypeOutput       `json:"fraud_type,omitempty"`
	Summary         *agents.FraudSummaryOutput    `json:"summary,omitempty"`
	IsFraud         bool                          `json:"is_fraud"`
	NewTypeName     string                        `json:"new_type_name,omitempty"`
}

// NewState creates the initial state for a case.
func NewState(text string, similarCases []string) CuratorState {
	return CuratorState{
		Text:         text,
		SimilarCases: slices.Clone(similarCases),
	}
}

// FinalSummary returns the summary text, or an empty string when no summary
// was generated.
func (s CuratorState) FinalSummary() string {
	if s.Summary == nil {
		return ""
	}
	return s.Summary.Summary
}
