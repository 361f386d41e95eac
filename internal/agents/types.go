// Package agents implements the structured LLM caller and the three fraud
// analysis agents built on it: pattern analysis, fraud type classification,
// and summary generation.
package agents

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// CategoryNew is the fraud type a classifier emits when no known category
// captures the case's core deceptive mechanism.
const CategoryNew = "NEW"

// Schema tags the output shape a caller decodes model responses into.
type Schema string

// Output schemas produced by the agents.
const (
	SchemaPatternAnalysis Schema = "pattern_analysis"
	SchemaFraudType       Schema = "fraud_type"
	SchemaFraudSummary    Schema = "fraud_summary"
)

var schemas = []Schema{
	SchemaPatternAnalysis,
	SchemaFraudType,
	SchemaFraudSummary,
}

// requiredFields lists the response keys each schema must carry. A key
// present with a JSON null value counts as absent.
var requiredFields = map[Schema][]string{
	SchemaPatternAnalysis: {"is_fraud", "patterns", "reasoning"},
	SchemaFraudType:       {"fraud_type", "explanation"},
	SchemaFraudSummary:    {"summary", "warning_signs", "precautions"},
}

// Schemas returns the known output schemas.
func Schemas() []Schema {
	return schemas
}

// Output is a decoded agent result tagged with its schema.
type Output interface {
	Schema() Schema
}

// PatternAnalysisOutput is the pattern analysis agent's verdict on a case.
type PatternAnalysisOutput struct {
	IsFraud   bool     `json:"is_fraud"`
	Patterns  []string `json:"patterns"`
	Reasoning string   `json:"reasoning"`
}

func (PatternAnalysisOutput) Schema() Schema { return SchemaPatternAnalysis }

// FraudTypeOutput is the classifier's category assignment. NewTypeName is
// set only when FraudType is CategoryNew.
type FraudTypeOutput struct {
	FraudType   string `json:"fraud_type"`
	Explanation string `json:"explanation"`
	NewTypeName string `json:"new_type_name,omitempty"`
}

func (FraudTypeOutput) Schema() Schema { return SchemaFraudType }

// IsNew reports whether the classifier proposed a new category.
func (o FraudTypeOutput) IsNew() bool {
	return o.FraudType == CategoryNew
}

// FraudSummaryOutput is the reader-facing summary of a fraud analysis.
type FraudSummaryOutput struct {
	Summary      string   `json:"summary"`
	WarningSigns []string `json:"warning_signs"`
	Precautions  []string `json:"precautions"`
}

func (FraudSummaryOutput) Schema() Schema { return SchemaFraudSummary }

// CheckRequired reports the first required key of schema that fields lacks
// or holds as null. The error wraps ErrMissingField.
func CheckRequired(schema Schema, fields map[string]json.RawMessage) error {
	for _, key := range requiredFields[schema] {
		v, ok := fields[key]
		if !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			return fmt.Errorf("%w: %s: %s", ErrMissingField, schema, key)
		}
	}
	return nil
}

// Validate checks out against the invariants of its schema. Nil lists are
// treated as missing.
func Validate(out Output) error {
	switch o := out.(type) {
	case PatternAnalysisOutput:
		if o.Patterns == nil {
			return fmt.Errorf("%w: %s: patterns", ErrMissingField, o.Schema())
		}
		if strings.TrimSpace(o.Reasoning) == "" {
			return fmt.Errorf("%s: reasoning required", o.Schema())
		}
	case FraudTypeOutput:
		if strings.TrimSpace(o.FraudType) == "" {
			return fmt.Errorf("%s: fraud_type required", o.Schema())
		}
		if strings.TrimSpace(o.Explanation) == "" {
			return fmt.Errorf("%s: explanation required", o.Schema())
		}
		if o.IsNew() && strings.TrimSpace(o.NewTypeName) == "" {
			return fmt.Errorf("%s: new_type_name required when fraud_type is %s", o.Schema(), CategoryNew)
		}
	case FraudSummaryOutput:
		if strings.TrimSpace(o.Summary) == "" {
			return fmt.Errorf("%s: summary required", o.Schema())
		}
		if o.WarningSigns == nil {
			return fmt.Errorf("%w: %s: warning_signs", ErrMissingField, o.Schema())
		}
		if o.Precautions == nil {
			return fmt.Errorf("%w: %s: precautions", ErrMissingField, o.Schema())
		}
	case nil:
		return fmt.Errorf("%w: nil output", ErrUnknownSchema)
	default:
		return fmt.Errorf("%w: %T", ErrUnknownSchema, out)
	}
	return nil
}
