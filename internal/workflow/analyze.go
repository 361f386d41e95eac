package workflow

import (
	"context"

	"github.com/JaimeStill/curator/internal/agents"
)

// StepAnalyzePatterns is the entry step. It is the only step that sets
// the fraud flag.
const StepAnalyzePatterns StepName = "analyze_patterns"

func analyzeStep(rt *Runtime) Step {
	return Step{
		Name: StepAnalyzePatterns,
		Run: func(ctx context.Context, s CuratorState) (CuratorState, error) {
			out, err := rt.Analyzer.Analyze(ctx, s.Text)
			if err != nil {
				return s, stepFailed(ErrAnalyzeFailed, err)
			}

			analysis, err := validated[agents.PatternAnalysisOutput](out)
			if err != nil {
				return s, err
			}

			s.PatternAnalysis = &analysis
			s.IsFraud = analysis.IsFraud

			rt.Logger.InfoContext(
				ctx, "analyze_patterns step complete",
				"is_fraud", analysis.IsFraud,
				"pattern_count", len(analysis.Patterns),
			)

			return s, nil
		},
	}
}
