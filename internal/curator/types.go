package curator

import "time"

// CategoryNoFraud is the category assigned to cases the pattern analysis
// did not judge to be fraud.
const CategoryNoFraud = "NO_FRAUD"

// TextInput is the case text submitted for analysis.
type TextInput struct {
	Text string `json:"text"`
}

// FraudAnalysis is the finalized result of a case analysis.
type FraudAnalysis struct {
	IsFraud      bool      `json:"is_fraud"`
	FraudType    string    `json:"fraud_type"`
	Explanation  string    `json:"explanation"`
	SimilarCases []string  `json:"similar_cases"`
	Timestamp    time.Time `json:"timestamp"`
	NewTypeName  string    `json:"new_type_name,omitempty"`
	WarningSigns []string  `json:"warning_signs,omitempty"`
	Precautions  []string  `json:"precautions,omitempty"`
}
