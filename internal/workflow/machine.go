package workflow

import (
	"context"
	"fmt"
)

// StepName identifies a workflow step.
type StepName string

// Terminal ends execution when returned by a Transition.
const Terminal StepName = ""

// Step is a named unit of work that receives the current state and returns
// the updated state.
type Step struct {
	Name StepName
	Run  func(ctx context.Context, s CuratorState) (CuratorState, error)
}

// Transition selects the step that follows step given the state it
// produced. It must be pure.
type Transition func(step StepName, s CuratorState) StepName

// Machine executes steps from an entry point, following a Transition until
// it reaches Terminal. A step runs at most once per execution.
type Machine struct {
	entry StepName
	order []StepName
	steps map[StepName]Step
	next  Transition
}

// NewMachine builds a Machine. The entry must name one of steps, and step
// names must be unique and non-empty.
func NewMachine(entry StepName, next Transition, steps ...Step) (*Machine, error) {
	if next == nil {
		return nil, fmt.Errorf("%w: transition required", ErrInvalidRuntime)
	}

	m := &Machine{
		entry: entry,
		order: make([]StepName, 0, len(steps)),
		steps: make(map[StepName]Step, len(steps)),
		next:  next,
	}

	for _, step := range steps {
		if step.Name == Terminal {
			return nil, fmt.Errorf("%w: step name required", ErrInvalidRuntime)
		}
		if step.Run == nil {
			return nil, fmt.Errorf("%w: step %s has no run function", ErrInvalidRuntime, step.Name)
		}
		if _, exists := m.steps[step.Name]; exists {
			return nil, fmt.Errorf("%w: duplicate step %s", ErrInvalidRuntime, step.Name)
		}
		m.order = append(m.order, step.Name)
		m.steps[step.Name] = step
	}

	if _, ok := m.steps[entry]; !ok {
		return nil, fmt.Errorf("%w: entry %q", ErrUnknownStep, entry)
	}

	return m, nil
}

// Steps returns the registered step names in registration order.
func (m *Machine) Steps() []StepName {
	return append([]StepName(nil), m.order...)
}

// Execute runs the machine from its entry step to Terminal and returns the
// final state. Any step error aborts execution.
func (m *Machine) Execute(ctx context.Context, s CuratorState) (CuratorState, error) {
	visited := make(map[StepName]bool, len(m.steps))

	for current := m.entry; current != Terminal; current = m.next(current, s) {
		if err := ctx.Err(); err != nil {
			return s, err
		}

		step, ok := m.steps[current]
		if !ok {
			return s, fmt.Errorf("%w: %s", ErrUnknownStep, current)
		}

		if visited[current] {
			return s, fmt.Errorf("%w: %s", ErrStepRevisited, current)
		}
		visited[current] = true

		next, err := step.Run(ctx, s)
		if err != nil {
			return s, fmt.Errorf("%s: %w", current, err)
		}
		s = next
	}

	return s, nil
}
