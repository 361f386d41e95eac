// Package workflow implements the curator workflow as an explicit state
// machine: analyze_patterns → classify_type? → generate_summary.
package workflow

import "errors"

// Sentinel errors for workflow operations.
var (
	ErrInvalidRuntime   = errors.New("invalid workflow runtime")
	ErrValidationFailed = errors.New("agent output failed validation")
	ErrAnalyzeFailed    = errors.New("pattern analysis failed")
	ErrClassifyFailed   = errors.New("fraud type classification failed")
	ErrSummarizeFailed  = errors.New("summary generation failed")
	ErrStepRevisited    = errors.New("workflow step revisited")
	ErrUnknownStep      = errors.New("unknown workflow step")
)
