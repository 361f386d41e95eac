package database

import "errors"

var (
	// ErrNotReady indicates the database connection has not been established.
	ErrNotReady = errors.New("database not ready")
	// ErrMigration wraps failures applying or inspecting schema migrations.
	ErrMigration = errors.New("database migration failed")
)
