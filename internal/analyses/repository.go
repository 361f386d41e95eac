package analyses

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JaimeStill/curator/internal/agents"
	"github.com/JaimeStill/curator/internal/curator"
	"github.com/JaimeStill/curator/internal/fraudtypes"
	"github.com/JaimeStill/curator/pkg/pagination"
	"github.com/JaimeStill/curator/pkg/repository"
)

type repo struct {
	db         *sql.DB
	analyzer   Analyzer
	registrar  Registrar
	opts       Options
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates an analysis repository implementing the System interface.
// registrar may be nil when opts.AutoRegister is false.
func New(
	db *sql.DB,
	analyzer Analyzer,
	registrar Registrar,
	opts Options,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		analyzer:   analyzer,
		registrar:  registrar,
		opts:       opts,
		logger:     logger.With("system", "analyses"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Analysis], error) {
	page.Normalize(r.pagination)

	where, args := filters.where(page.Search)

	total, err := repository.Count(ctx, r.db, "SELECT COUNT(*) FROM analyses"+where, args...)
	if err != nil {
		return nil, fmt.Errorf("count analyses: %w", err)
	}

	pageSQL := fmt.Sprintf(
		"SELECT %s FROM analyses%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		columns, where, len(args)+1, len(args)+2,
	)
	pageArgs := append(args, page.PageSize, page.Offset())

	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanAnalysis)
	if err != nil {
		return nil, fmt.Errorf("query analyses: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Analysis, error) {
	q := "SELECT " + columns + " FROM analyses WHERE id = $1"

	a, err := repository.QueryOne(ctx, r.db, q, []any{id}, scanAnalysis)
	if err != nil {
		return nil, dbErrors.Map(err)
	}
	return &a, nil
}

func (r *repo) Analyze(ctx context.Context, cmd AnalyzeCommand) (*Analysis, error) {
	result, err := r.analyzer.AnalyzeCase(ctx, curator.TextInput{Text: cmd.Text}, cmd.SimilarCases)
	if err != nil {
		return nil, err
	}

	similar, err := marshalList(result.SimilarCases)
	if err != nil {
		return nil, err
	}
	warnings, err := marshalList(result.WarningSigns)
	if err != nil {
		return nil, err
	}
	precautions, err := marshalList(result.Precautions)
	if err != nil {
		return nil, err
	}

	q := `
		INSERT INTO analyses(text, is_fraud, fraud_type, explanation, similar_cases,
			new_type_name, warning_signs, precautions, model, provider, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + columns

	args := []any{
		cmd.Text, result.IsFraud, result.FraudType, result.Explanation, similar,
		result.NewTypeName, warnings, precautions, r.opts.Model, r.opts.Provider, result.Timestamp,
	}

	a, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Analysis, error) {
		return repository.QueryOne(ctx, tx, q, args, scanAnalysis)
	})
	if err != nil {
		return nil, dbErrors.Map(err)
	}

	r.logger.Info(
		"analysis stored",
		"id", a.ID,
		"is_fraud", a.IsFraud,
		"fraud_type", a.FraudType,
	)

	r.registerNewType(ctx, result)
	return &a, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM analyses WHERE id = $1",
			id,
		)
	})
	if err != nil {
		return dbErrors.Map(err)
	}

	r.logger.Info("analysis deleted", "id", id)
	return nil
}

// registerNewType records a NEW category proposed by the classifier. A
// failure is logged and does not fail the stored analysis.
func (r *repo) registerNewType(ctx context.Context, result *curator.FraudAnalysis) {
	registered, err := RegisterNewType(ctx, r.registrar, r.opts, result)
	switch {
	case errors.Is(err, fraudtypes.ErrDuplicate):
		r.logger.Info("proposed fraud type already registered", "name", result.NewTypeName)
	case err != nil:
		r.logger.Error("register proposed fraud type failed", "name", result.NewTypeName, "error", err)
	case registered != nil:
		r.logger.Info("proposed fraud type registered", "id", registered.ID, "name", registered.Name)
	}
}

// RegisterNewType registers result's proposed category when opts enables
// auto registration and the classifier returned NEW. It returns nil with
// no error when there is nothing to register.
func RegisterNewType(
	ctx context.Context,
	registrar Registrar,
	opts Options,
	result *curator.FraudAnalysis,
) (*fraudtypes.FraudType, error) {
	if !opts.AutoRegister || registrar == nil || result == nil {
		return nil, nil
	}
	if result.FraudType != agents.CategoryNew || result.NewTypeName == "" {
		return nil, nil
	}

	return registrar.Register(ctx, fraudtypes.RegisterCommand{
		Name:        result.NewTypeName,
		Description: result.Explanation,
	})
}
