package workflow

import "log/slog"

// New builds the curator machine:
//
//	analyze_patterns → classify_type (fraud) → generate_summary → terminal
//	analyze_patterns → terminal (no fraud)
func New(rt *Runtime) (*Machine, error) {
	if err := rt.validate(); err != nil {
		return nil, err
	}

	step := *rt
	if step.Logger == nil {
		step.Logger = slog.New(slog.DiscardHandler)
	}
	step.Logger = step.Logger.With("workflow", "curator")

	return NewMachine(
		StepAnalyzePatterns,
		Route,
		analyzeStep(&step),
		classifyStep(&step),
		summarizeStep(&step),
	)
}

// Route is the curator transition function.
func Route(step StepName, s CuratorState) StepName {
	switch step {
	case StepAnalyzePatterns:
		if s.IsFraud {
			return StepClassifyType
		}
		return Terminal
	case StepClassifyType:
		return StepGenerateSummary
	default:
		return Terminal
	}
}
