package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/JaimeStill/curator/internal/agents"
)

// StepClassifyType assigns the case a fraud category. It runs only when
// the pattern analysis reported fraud.
const StepClassifyType StepName = "classify_type"

func classifyStep(rt *Runtime) Step {
	return Step{
		Name: StepClassifyType,
		Run: func(ctx context.Context, s CuratorState) (CuratorState, error) {
			if s.PatternAnalysis == nil {
				return s, fmt.Errorf("%w: missing pattern analysis in state", ErrClassifyFailed)
			}

			out, err := rt.Classifier.Classify(ctx, *s.PatternAnalysis, s.SimilarCases)
			if err != nil {
				return s, stepFailed(ErrClassifyFailed, err)
			}

			fraudType, err := validated[agents.FraudTypeOutput](out)
			if err != nil {
				return s, err
			}

			if fraudType.IsNew() {
				fraudType.NewTypeName = normalizeTypeName(fraudType.NewTypeName)
				s.NewTypeName = fraudType.NewTypeName
			} else {
				fraudType.NewTypeName = ""
				s.NewTypeName = ""
			}

			s.FraudType = &fraudType

			rt.Logger.InfoContext(
				ctx, "classify_type step complete",
				"fraud_type", fraudType.FraudType,
				"new_type_name", fraudType.NewTypeName,
			)

			return s, nil
		},
	}
}

// normalizeTypeName upper-cases name and collapses interior whitespace.
func normalizeTypeName(name string) string {
	return strings.ToUpper(strings.Join(strings.Fields(name), " "))
}
