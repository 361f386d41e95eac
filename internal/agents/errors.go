package agents

import (
	"errors"
	"fmt"
)

// Sentinel errors for agent operations.
var (
	ErrInvalidConfig = errors.New("invalid agent configuration")
	ErrUnknownSchema = errors.New("unknown output schema")
	ErrProcessing    = errors.New("failed to process model response")
	ErrMissingField  = errors.New("required field missing")
)

// ProcessingError reports a failed model invocation or an undecodable
// response. Raw holds the model's response text, if any was received.
type ProcessingError struct {
	Schema Schema
	Raw    string
	Err    error
}

func (e *ProcessingError) Error() string {
	if e.Raw == "" {
		return fmt.Sprintf("%s: %s: %v", ErrProcessing, e.Schema, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v (raw response: %q)", ErrProcessing, e.Schema, e.Err, e.Raw)
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}

// Is matches ErrProcessing so callers can test with errors.Is.
func (e *ProcessingError) Is(target error) bool {
	return target == ErrProcessing
}
