package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/curator/internal/agents"
)

// StepGenerateSummary produces the reader-facing summary of a fraud case.
const StepGenerateSummary StepName = "generate_summary"

func summarizeStep(rt *Runtime) Step {
	return Step{
		Name: StepGenerateSummary,
		Run: func(ctx context.Context, s CuratorState) (CuratorState, error) {
			if s.PatternAnalysis == nil || s.FraudType == nil {
				return s, fmt.Errorf("%w: missing analysis in state", ErrSummarizeFailed)
			}

			out, err := rt.Summarizer.Summarize(ctx, agents.SummaryInput{
				PatternAnalysis: s.PatternAnalysis,
				FraudType:       s.FraudType,
			})
			if err != nil {
				return s, stepFailed(ErrSummarizeFailed, err)
			}

			summary, err := validated[agents.FraudSummaryOutput](out)
			if err != nil {
				return s, err
			}

			s.Summary = &summary

			rt.Logger.InfoContext(
				ctx, "generate_summary step complete",
				"warning_signs", len(summary.WarningSigns),
				"precautions", len(summary.Precautions),
			)

			return s, nil
		},
	}
}
