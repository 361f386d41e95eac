package api

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/JaimeStill/curator/internal/analyses"
	"github.com/JaimeStill/curator/internal/curator"
	"github.com/JaimeStill/curator/internal/fraudtypes"
	"github.com/JaimeStill/curator/pkg/lifecycle"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	FraudTypes fraudtypes.System
	Analyses   analyses.System
}

// NewDomain creates all domain systems from the API runtime. Seeding the
// fraud type registry is registered as a lifecycle startup hook, and a
// failed seed keeps the service out of readiness.
func NewDomain(runtime *Runtime) (*Domain, error) {
	cfg := runtime.Config

	typesSystem := fraudtypes.New(runtime.Database.Connection(), runtime.Logger)

	seedOnStartup(runtime.Lifecycle, typesSystem, cfg.Curator.SeedFile, runtime.Logger)

	c, err := curator.New(cfg.CuratorConfig(), typesSystem, runtime.Logger)
	if err != nil {
		return nil, fmt.Errorf("create curator: %w", err)
	}

	analysesSystem := analyses.New(
		runtime.Database.Connection(),
		c,
		typesSystem,
		analyses.Options{
			Model:        cfg.ModelName(),
			Provider:     cfg.ProviderName(),
			AutoRegister: cfg.Curator.AutoRegister,
		},
		runtime.Logger,
		runtime.Pagination(),
	)

	return &Domain{
		FraudTypes: typesSystem,
		Analyses:   analysesSystem,
	}, nil
}

// seedOnStartup seeds sys from path during startup and registers a
// "fraud_types" readiness probe that reports the seed error, if any.
func seedOnStartup(lc *lifecycle.Coordinator, sys fraudtypes.System, path string, logger *slog.Logger) {
	var seedErr atomic.Pointer[error]

	lc.OnStartup(func() {
		n, err := fraudtypes.SeedFrom(lc.Context(), sys, path)
		if err != nil {
			err = fmt.Errorf("seed fraud types: %w", err)
			seedErr.Store(&err)
			logger.Error("fraud type seed failed", "error", err)
			return
		}
		logger.Info("fraud types seeded", "count", n)
	})

	lc.OnReady("fraud_types", func(context.Context) error {
		if err := seedErr.Load(); err != nil {
			return *err
		}
		return nil
	})
}
