package database

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
)

// NewMigrator creates a golang-migrate runner over the SQL files in dir
// of source, targeting the database described by cfg.
func NewMigrator(cfg *Config, source fs.FS, dir string) (*migrate.Migrate, error) {
	src, err := iofs.New(source, dir)
	if err != nil {
		return nil, fmt.Errorf("%w: create source: %w", ErrMigration, err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, cfg.URL())
	if err != nil {
		return nil, fmt.Errorf("%w: create migrator: %w", ErrMigration, err)
	}
	return m, nil
}

// Migrate applies every pending up migration.
func Migrate(cfg *Config, source fs.FS, dir string, logger *slog.Logger) error {
	m, err := NewMigrator(cfg, source, dir)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%w: apply: %w", ErrMigration, err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("%w: read version: %w", ErrMigration, err)
	}

	logger.Info("database migrated", "version", version, "dirty", dirty)
	return nil
}
