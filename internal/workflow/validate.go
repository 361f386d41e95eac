package workflow

import (
	"errors"
	"fmt"

	"github.com/JaimeStill/curator/internal/agents"
)

// validated asserts that out has the concrete type T and satisfies the
// invariants of its schema.
func validated[T agents.Output](out agents.Output) (T, error) {
	var zero T

	typed, ok := out.(T)
	if !ok {
		return zero, fmt.Errorf(
			"%w: expected %s output, got %T",
			ErrValidationFailed, zero.Schema(), out,
		)
	}

	if err := agents.Validate(typed); err != nil {
		return zero, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	return typed, nil
}

// stepFailed wraps an agent invocation error with the step sentinel. A
// response rejected for a missing required field also matches
// ErrValidationFailed.
func stepFailed(sentinel, err error) error {
	if errors.Is(err, agents.ErrMissingField) {
		return fmt.Errorf("%w: %w: %w", sentinel, ErrValidationFailed, err)
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}
