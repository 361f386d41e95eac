// Package curator exposes the single case analysis entry point. A Curator
// owns the model and fraud type registry, builds the agents and workflow
// once, and maps each terminal workflow state into a FraudAnalysis.
package curator

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/JaimeStill/curator/internal/agents"
	"github.com/JaimeStill/curator/internal/workflow"
)

// Config is the model configuration handed to New.
type Config struct {
	Agent       gaconfig.AgentConfig
	Temperature float64
}

// Curator analyzes fraud cases.
type Curator struct {
	machine *workflow.Machine
	logger  *slog.Logger
	now     func() time.Time
}

// New creates a Curator backed by a go-agents model built from cfg.
func New(cfg Config, registry agents.Registry, logger *slog.Logger) (*Curator, error) {
	model, err := agents.NewModel(&cfg.Agent, cfg.Temperature)
	if err != nil {
		return nil, err
	}
	return NewWithModel(model, registry, logger)
}

// NewWithModel creates a Curator that sends every prompt to model.
func NewWithModel(model agents.Model, registry agents.Registry, logger *slog.Logger) (*Curator, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	pattern, err := agents.NewPatternAgent(model)
	if err != nil {
		return nil, fmt.Errorf("pattern agent: %w", err)
	}

	fraudType, err := agents.NewFraudTypeAgent(model, registry)
	if err != nil {
		return nil, fmt.Errorf("fraud type agent: %w", err)
	}

	summary, err := agents.NewSummaryAgent(model)
	if err != nil {
		return nil, fmt.Errorf("summary agent: %w", err)
	}

	machine, err := workflow.New(&workflow.Runtime{
		Analyzer:   pattern,
		Classifier: fraudType,
		Summarizer: summary,
		Logger:     logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build workflow: %w", err)
	}

	return &Curator{
		machine: machine,
		logger:  logger.With("system", "curator"),
		now:     time.Now,
	}, nil
}

// AnalyzeCase runs the workflow over input and returns the finalized
// result. similarCases are case descriptions already retrieved by the
// caller; they are echoed unchanged on the result.
func (c *Curator) AnalyzeCase(ctx context.Context, input TextInput, similarCases []string) (*FraudAnalysis, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, ErrEmptyText
	}

	final, err := c.machine.Execute(ctx, workflow.NewState(input.Text, similarCases))
	if err != nil {
		return nil, fmt.Errorf("analyze case: %w", err)
	}

	result := finalize(final, similarCases, c.now())

	c.logger.InfoContext(
		ctx, "case analyzed",
		"is_fraud", result.IsFraud,
		"fraud_type", result.FraudType,
		"similar_cases", len(result.SimilarCases),
	)

	return result, nil
}

func finalize(s workflow.CuratorState, similarCases []string, now time.Time) *FraudAnalysis {
	result := &FraudAnalysis{
		IsFraud:      s.IsFraud,
		SimilarCases: slices.Clone(similarCases),
		Timestamp:    now,
	}

	var reasoning string
	if s.PatternAnalysis != nil {
		reasoning = s.PatternAnalysis.Reasoning
	}

	if !s.IsFraud {
		result.FraudType = CategoryNoFraud
		result.Explanation = reasoning
		return result
	}

	if s.FraudType != nil {
		result.FraudType = s.FraudType.FraudType
		if s.FraudType.IsNew() {
			result.NewTypeName = s.NewTypeName
		}
	}

	result.Explanation = reasoning
	if summary := s.FinalSummary(); summary != "" {
		result.Explanation = summary
	}

	if s.Summary != nil {
		result.WarningSigns = slices.Clone(s.Summary.WarningSigns)
		result.Precautions = slices.Clone(s.Summary.Precautions)
	}

	return result
}
