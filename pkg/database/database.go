// Package database provides PostgreSQL connection management with lifecycle coordination.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/JaimeStill/curator/pkg/lifecycle"
)

// startupAttempts bounds how many times the startup hook pings before
// giving up and leaving readiness to the probe.
const (
	startupAttempts = 5
	startupBackoff  = time.Second
)

// System manages database connections and lifecycle coordination.
type System interface {
	// Connection returns the underlying database connection pool.
	Connection() *sql.DB
	// Ping verifies the connection, returning ErrNotReady on failure.
	Ping(ctx context.Context) error
	// Start registers startup, readiness, and shutdown hooks with the
	// lifecycle coordinator.
	Start(lc *lifecycle.Coordinator) error
}

type database struct {
	conn        *sql.DB
	logger      *slog.Logger
	connTimeout time.Duration
}

// New opens a pgx-backed pool and applies the pool limits from cfg.
// No connection is made until the first query or Ping.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	db, err := sql.Open("pgx", cfg.Dsn())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())

	return &database{
		conn:        db,
		logger:      logger.With("system", "database", "host", cfg.Host, "name", cfg.Name),
		connTimeout: cfg.ConnTimeoutDuration(),
	}, nil
}

func (d *database) Connection() *sql.DB {
	return d.conn
}

func (d *database) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, d.connTimeout)
	defer cancel()

	if err := d.conn.PingContext(pingCtx); err != nil {
		return fmt.Errorf("%w: %w", ErrNotReady, err)
	}
	return nil
}

func (d *database) Start(lc *lifecycle.Coordinator) error {
	d.logger.Info("starting database connection")

	lc.OnStartup(func() {
		d.connect(lc.Context())
	})

	lc.OnReady("database", d.Ping)

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		stats := d.conn.Stats()
		d.logger.Info("closing database connection", "open", stats.OpenConnections, "in_use", stats.InUse)

		if err := d.conn.Close(); err != nil {
			d.logger.Error("database close failed", "error", err)
			return
		}
		d.logger.Info("database connection closed")
	})

	return nil
}

// connect pings until the database answers, the attempts run out, or ctx
// is canceled.
func (d *database) connect(ctx context.Context) {
	for attempt := 1; ; attempt++ {
		err := d.Ping(ctx)
		if err == nil {
			d.logger.Info("database connection established", "attempt", attempt)
			return
		}

		if attempt == startupAttempts {
			d.logger.Error("database ping failed", "attempts", attempt, "error", err)
			return
		}
		d.logger.Warn("database ping failed, retrying", "attempt", attempt, "error", err)

		select {
		case <-ctx.Done():
			return
		case <-time.After(startupBackoff):
		}
	}
}
