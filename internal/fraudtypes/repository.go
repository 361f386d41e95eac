package fraudtypes

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JaimeStill/curator/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a PostgreSQL-backed fraud type registry.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "fraudtypes"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) List(ctx context.Context) ([]FraudType, error) {
	q := "SELECT " + columns + " FROM fraud_types ORDER BY name"

	types, err := repository.QueryMany(ctx, r.db, q, nil, scanFraudType)
	if err != nil {
		return nil, fmt.Errorf("query fraud types: %w", err)
	}
	return types, nil
}

func (r *repo) Names(ctx context.Context) ([]string, error) {
	names, err := repository.QueryMany(
		ctx, r.db,
		"SELECT name FROM fraud_types ORDER BY name",
		nil,
		func(s repository.Scanner) (string, error) {
			var name string
			err := s.Scan(&name)
			return name, err
		},
	)
	if err != nil {
		return nil, fmt.Errorf("query fraud type names: %w", err)
	}
	return names, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*FraudType, error) {
	q := "SELECT " + columns + " FROM fraud_types WHERE id = $1"

	ft, err := repository.QueryOne(ctx, r.db, q, []any{id}, scanFraudType)
	if err != nil {
		return nil, dbErrors.Map(err)
	}
	return &ft, nil
}

func (r *repo) FindByName(ctx context.Context, name string) (*FraudType, error) {
	q := "SELECT " + columns + " FROM fraud_types WHERE name = $1"

	ft, err := repository.QueryOne(ctx, r.db, q, []any{NormalizeName(name)}, scanFraudType)
	if err != nil {
		return nil, dbErrors.Map(err)
	}
	return &ft, nil
}

func (r *repo) Register(ctx context.Context, cmd RegisterCommand) (*FraudType, error) {
	cmd, err := cmd.normalize()
	if err != nil {
		return nil, err
	}

	q := `
		INSERT INTO fraud_types(name, description)
		VALUES ($1, $2)
		RETURNING ` + columns

	ft, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (FraudType, error) {
		return repository.QueryOne(ctx, tx, q, []any{cmd.Name, cmd.Description}, scanFraudType)
	})
	if err != nil {
		return nil, dbErrors.Map(err)
	}

	r.logger.Info("fraud type registered", "id", ft.ID, "name", ft.Name)
	return &ft, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM fraud_types WHERE id = $1",
			id,
		)
	})
	if err != nil {
		return dbErrors.Map(err)
	}

	r.logger.Info("fraud type deleted", "id", id)
	return nil
}

func (r *repo) Seed(ctx context.Context, cmds []RegisterCommand) (int, error) {
	q := `
		INSERT INTO fraud_types(name, description)
		VALUES ($1, $2)
		ON CONFLICT (name) DO NOTHING`

	added, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (int, error) {
		var added int
		for _, cmd := range cmds {
			cmd, err := cmd.normalize()
			if err != nil {
				return 0, fmt.Errorf("%w: %w", ErrInvalidSeed, err)
			}

			n, err := repository.ExecCount(ctx, tx, q, cmd.Name, cmd.Description)
			if err != nil {
				return 0, fmt.Errorf("seed %s: %w", cmd.Name, err)
			}
			added += n
		}
		return added, nil
	})
	if err != nil {
		return 0, err
	}

	r.logger.Info("fraud types seeded", "added", added, "total", len(cmds))
	return added, nil
}
