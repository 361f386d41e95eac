package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/curator/internal/agents"
)

// PatternAnalyzer produces a pattern analysis for case text.
type PatternAnalyzer interface {
	Analyze(ctx context.Context, text string) (agents.Output, error)
}

// TypeClassifier classifies a pattern analysis into a fraud category.
type TypeClassifier interface {
	Classify(ctx context.Context, analysis agents.PatternAnalysisOutput, similarCases []string) (agents.Output, error)
}

// Summarizer generates the reader-facing summary of an analysis.
type Summarizer interface {
	Summarize(ctx context.Context, input agents.SummaryInput) (agents.Output, error)
}

// Runtime bundles the dependencies that workflow steps require.
type Runtime struct {
	Analyzer   PatternAnalyzer
	Classifier TypeClassifier
	Summarizer Summarizer
	Logger     *slog.Logger
}

func (rt *Runtime) validate() error {
	switch {
	case rt == nil:
		return fmt.Errorf("%w: runtime required", ErrInvalidRuntime)
	case rt.Analyzer == nil:
		return fmt.Errorf("%w: pattern analyzer required", ErrInvalidRuntime)
	case rt.Classifier == nil:
		return fmt.Errorf("%w: type classifier required", ErrInvalidRuntime)
	case rt.Summarizer == nil:
		return fmt.Errorf("%w: summarizer required", ErrInvalidRuntime)
	}
	return nil
}
