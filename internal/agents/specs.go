package agents

const patternSpec = `Respond with a JSON object matching this exact structure:

{
  "is_fraud": false,
  "patterns": ["<pattern1>", "<pattern2>"],
  "reasoning": "<explanation>"
}

Field constraints:
- is_fraud: true only when clear fraud patterns imply an illegal activity.
- patterns: Distinct deceptive behaviors identified in the text. Empty array
  when is_fraud is false.
- reasoning: Explanation of the verdict. When is_fraud is false, explain why
  the case is not fraud or why the information is insufficient.

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing`

const fraudTypeSpec = `Respond with a JSON object matching this exact structure:

{
  "fraud_type": "<known type or NEW>",
  "explanation": "<explanation>",
  "new_type_name": ""
}

Field constraints:
- fraud_type: One of the known fraud types whenever possible. Use NEW only
  when no known type captures the core deceptive mechanism.
- explanation: Justification focused on the core deceptive mechanism,
  including why an existing category was or was not sufficient.
- new_type_name: Only when fraud_type is NEW, the core deceptive pattern in
  UPPER CASE (e.g., "SYNTHETIC IDENTITY LOAN STACKING"). Empty string
  otherwise.

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing`

const summarySpec = `Respond with a JSON object matching this exact structure:

{
  "summary": "<summary>",
  "warning_signs": ["<sign1>", "<sign2>"],
  "precautions": ["<precaution1>", "<precaution2>"]
}

Field constraints:
- summary: Abstract, concise description of the fraud for a non-technical
  reader.
- warning_signs: Specific signals that identify this kind of fraud.
- precautions: Practical actions that prevent similar frauds.

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing`

var specs = map[Schema]string{
	SchemaPatternAnalysis: patternSpec,
	SchemaFraudType:       fraudTypeSpec,
	SchemaFraudSummary:    summarySpec,
}

// Spec returns the response format specification for a schema.
// Returns ErrUnknownSchema if the schema is not recognized.
func Spec(schema Schema) (string, error) {
	text, ok := specs[schema]
	if !ok {
		return "", ErrUnknownSchema
	}
	return text, nil
}
