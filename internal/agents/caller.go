package agents

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/JaimeStill/curator/pkg/formatting"
)

// Caller invokes a model with a prompt and decodes the response into the
// output type tagged by its schema. It performs no retries.
type Caller struct {
	model  Model
	prompt Prompt
	schema Schema
	spec   string
}

// NewCaller binds a model and prompt to an output schema. It returns
// ErrInvalidConfig when the model, prompt template, or schema is missing,
// or when the schema is not recognized.
func NewCaller(model Model, prompt Prompt, schema Schema) (*Caller, error) {
	if model == nil {
		return nil, fmt.Errorf("%w: model required", ErrInvalidConfig)
	}
	if prompt.Human == nil {
		return nil, fmt.Errorf("%w: prompt template required", ErrInvalidConfig)
	}
	if schema == "" {
		return nil, fmt.Errorf("%w: output schema required", ErrInvalidConfig)
	}

	spec, err := Spec(schema)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %s", ErrInvalidConfig, err, schema)
	}

	return &Caller{
		model:  model,
		prompt: prompt,
		schema: schema,
		spec:   spec,
	}, nil
}

// Schema returns the output schema the caller decodes into.
func (c *Caller) Schema() Schema {
	return c.schema
}

// Invoke renders the prompt with data, calls the model, and decodes the
// response. Every failure is returned as a *ProcessingError carrying the
// raw response when one was received.
func (c *Caller) Invoke(ctx context.Context, data any) (Output, error) {
	prompt, err := c.prompt.Render(c.spec, data)
	if err != nil {
		return nil, &ProcessingError{Schema: c.schema, Err: err}
	}

	raw, err := c.model.Chat(ctx, prompt)
	if err != nil {
		return nil, &ProcessingError{
			Schema: c.schema,
			Raw:    raw,
			Err:    fmt.Errorf("chat call: %w", err),
		}
	}

	out, err := decode(c.schema, raw)
	if err != nil {
		return nil, &ProcessingError{Schema: c.schema, Raw: raw, Err: err}
	}

	return out, nil
}

func decode(schema Schema, raw string) (Output, error) {
	switch schema {
	case SchemaPatternAnalysis:
		return decodeAs[PatternAnalysisOutput](raw)
	case SchemaFraudType:
		return decodeAs[FraudTypeOutput](raw)
	case SchemaFraudSummary:
		return decodeAs[FraudSummaryOutput](raw)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownSchema, schema)
	}
}

func decodeAs[T Output](raw string) (Output, error) {
	out, err := formatting.Parse[T](raw)
	if err != nil {
		return nil, err
	}

	fields, err := formatting.Parse[map[string]json.RawMessage](raw)
	if err != nil {
		return nil, err
	}
	if err := CheckRequired(out.Schema(), fields); err != nil {
		return nil, err
	}

	return out, nil
}
