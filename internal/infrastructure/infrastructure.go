// Package infrastructure provides core service initialization for application startup.
// It assembles the common dependencies (lifecycle, logging, database) that
// domain systems require.
package infrastructure

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/JaimeStill/curator/internal/config"
	"github.com/JaimeStill/curator/internal/migrations"
	"github.com/JaimeStill/curator/pkg/database"
	"github.com/JaimeStill/curator/pkg/lifecycle"
)

// Infrastructure holds the core systems required by all domain modules.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
}

// NewLogger creates the process logger. Logs are written as text to stderr
// so stdout stays free for command output.
func NewLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := NewLogger()

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(&cfg.Database, migrations.FS, ".", logger); err != nil {
			return nil, fmt.Errorf("database migrate failed: %w", err)
		}
	}

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Database:  db,
	}, nil
}

// Scoped returns a copy whose logger carries the given attribute. The
// lifecycle and database are shared with i.
func (i *Infrastructure) Scoped(key, value string) *Infrastructure {
	return &Infrastructure{
		Lifecycle: i.Lifecycle,
		Logger:    i.Logger.With(key, value),
		Database:  i.Database,
	}
}

// Start registers all infrastructure systems with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	return nil
}
