package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes translated by Errors.
const (
	pgUniqueViolation  = "23505"
	pgCheckViolation   = "23514"
	pgNotNullViolation = "23502"
)

// Errors names the domain errors a repository reports for common database
// failures. A nil field leaves the matching database error unchanged.
type Errors struct {
	// NotFound replaces sql.ErrNoRows.
	NotFound error
	// Duplicate replaces unique constraint violations.
	Duplicate error
	// Invalid wraps check and not-null constraint violations.
	Invalid error
}

// Map translates err to the configured domain error.
// Other errors are returned unchanged.
func (e Errors) Map(err error) error {
	if err == nil {
		return nil
	}

	if e.NotFound != nil && errors.Is(err, sql.ErrNoRows) {
		return e.NotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch {
	case pgErr.Code == pgUniqueViolation && e.Duplicate != nil:
		return e.Duplicate
	case (pgErr.Code == pgCheckViolation || pgErr.Code == pgNotNullViolation) && e.Invalid != nil:
		return fmt.Errorf("%w: %s", e.Invalid, pgErr.Message)
	}
	return err
}

// MapError maps sql.ErrNoRows to notFoundErr and unique violations to
// duplicateErr.
func MapError(err error, notFoundErr, duplicateErr error) error {
	return Errors{NotFound: notFoundErr, Duplicate: duplicateErr}.Map(err)
}
