package workflow_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/JaimeStill/curator/internal/workflow"
)

func recordStep(name workflow.StepName, trace *[]workflow.StepName) workflow.Step {
	return workflow.Step{
		Name: name,
		Run: func(_ context.Context, s workflow.CuratorState) (workflow.CuratorState, error) {
			*trace = append(*trace, name)
			return s, nil
		},
	}
}

func TestNewMachineErrors(t *testing.T) {
	var trace []workflow.StepName
	next := func(workflow.StepName, workflow.CuratorState) workflow.StepName { return workflow.Terminal }

	tests := []struct {
		name    string
		entry   workflow.StepName
		next    workflow.Transition
		steps   []workflow.Step
		wantErr error
	}{
		{"missing transition", "a", nil, []workflow.Step{recordStep("a", &trace)}, workflow.ErrInvalidRuntime},
		{"unknown entry", "b", next, []workflow.Step{recordStep("a", &trace)}, workflow.ErrUnknownStep},
		{"duplicate step", "a", next, []workflow.Step{recordStep("a", &trace), recordStep("a", &trace)}, workflow.ErrInvalidRuntime},
		{"unnamed step", "a", next, []workflow.Step{recordStep("", &trace)}, workflow.ErrInvalidRuntime},
		{"missing run", "a", next, []workflow.Step{{Name: "a"}}, workflow.ErrInvalidRuntime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := workflow.NewMachine(tt.entry, tt.next, tt.steps...); !errors.Is(err, tt.wantErr) {
				t.Errorf("NewMachine error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMachineExecuteOrder(t *testing.T) {
	var trace []workflow.StepName
	next := func(step workflow.StepName, _ workflow.CuratorState) workflow.StepName {
		switch step {
		case "a":
			return "c"
		case "c":
			return "b"
		default:
			return workflow.Terminal
		}
	}

	m, err := workflow.NewMachine("a", next,
		recordStep("a", &trace),
		recordStep("b", &trace),
		recordStep("c", &trace),
	)
	if err != nil {
		t.Fatalf("NewMachine: %v", err)
	}

	if _, err := m.Execute(context.Background(), workflow.CuratorState{}); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if diff := cmp.Diff([]workflow.StepName{"a", "c", "b"}, trace); diff != "" {
		t.Errorf("trace mismatch (-want +got):\n%s", diff)
	}
}

func TestMachineRejectsRevisit(t *testing.T) {
	var trace []workflow.StepName
	loop := func(step workflow.StepName, _ workflow.CuratorState) workflow.StepName {
		if step == "a" {
			return "b"
		}
		return "a"
	}

	m, err := workflow.NewMachine("a", loop, recordStep("a", &trace), recordStep("b", &trace))
	if err != nil {
		t.Fatalf("NewMachine: %v", err)
	}

	_, err = m.Execute(context.Background(), workflow.CuratorState{})
	if !errors.Is(err, workflow.ErrStepRevisited) {
		t.Fatalf("Execute error = %v, want ErrStepRevisited", err)
	}

	if diff := cmp.Diff([]workflow.StepName{"a", "b"}, trace); diff != "" {
		t.Errorf("trace mismatch (-want +got):\n%s", diff)
	}
}

func TestMachineRejectsUnknownTransition(t *testing.T) {
	var trace []workflow.StepName
	next := func(workflow.StepName, workflow.CuratorState) workflow.StepName { return "missing" }

	m, err := workflow.NewMachine("a", next, recordStep("a", &trace))
	if err != nil {
		t.Fatalf("NewMachine: %v", err)
	}

	if _, err := m.Execute(context.Background(), workflow.CuratorState{}); !errors.Is(err, workflow.ErrUnknownStep) {
		t.Errorf("Execute error = %v, want ErrUnknownStep", err)
	}
}

func TestMachineStepErrorAborts(t *testing.T) {
	boom := errors.New("boom")
	var trace []workflow.StepName

	failing := workflow.Step{
		Name: "a",
		Run: func(_ context.Context, s workflow.CuratorState) (workflow.CuratorState, error) {
			return s, boom
		},
	}
	next := func(workflow.StepName, workflow.CuratorState) workflow.StepName { return "b" }

	m, err := workflow.NewMachine("a", next, failing, recordStep("b", &trace))
	if err != nil {
		t.Fatalf("NewMachine: %v", err)
	}

	if _, err := m.Execute(context.Background(), workflow.CuratorState{}); !errors.Is(err, boom) {
		t.Errorf("Execute error = %v, want boom", err)
	}
	if len(trace) != 0 {
		t.Errorf("steps ran after failure: %v", trace)
	}
}

func TestMachineCanceledContext(t *testing.T) {
	var trace []workflow.StepName
	next := func(workflow.StepName, workflow.CuratorState) workflow.StepName { return workflow.Terminal }

	m, err := workflow.NewMachine("a", next, recordStep("a", &trace))
	if err != nil {
		t.Fatalf("NewMachine: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := m.Execute(ctx, workflow.CuratorState{}); !errors.Is(err, context.Canceled) {
		t.Errorf("Execute error = %v, want context.Canceled", err)
	}
	if len(trace) != 0 {
		t.Errorf("steps ran with canceled context: %v", trace)
	}
}
