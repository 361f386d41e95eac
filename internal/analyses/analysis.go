// Package analyses stores finalized case analyses. Analyze runs a case
// through the curator, persists the result, and optionally registers a
// newly proposed fraud type.
package analyses

import (
	"github.com/google/uuid"

	"github.com/JaimeStill/curator/internal/curator"
)

// Analysis is a persisted FraudAnalysis with its source text and the model
// that produced it.
type Analysis struct {
	ID   uuid.UUID `json:"id"`
	Text string    `json:"text"`
	curator.FraudAnalysis
	Model    string `json:"model"`
	Provider string `json:"provider"`
}

// AnalyzeCommand carries a case to analyze. SimilarCases are descriptions
// already retrieved by the caller.
type AnalyzeCommand struct {
	Text         string   `json:"text"`
	SimilarCases []string `json:"similar_cases"`
}
