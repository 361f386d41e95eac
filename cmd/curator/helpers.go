package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/curator/internal/config"
	"github.com/JaimeStill/curator/internal/curator"
	"github.com/JaimeStill/curator/internal/fraudtypes"
	"github.com/JaimeStill/curator/internal/infrastructure"
)

var rootFlags struct {
	seed        string
	provider    string
	model       string
	baseURL     string
	temperature float64
}

// loadRegistry builds an in-memory fraud type registry seeded from the
// --seed file or the configured seed.
func loadRegistry(ctx context.Context, seed string, logger *slog.Logger) (fraudtypes.System, error) {
	registry := fraudtypes.NewMemory(logger)
	n, err := fraudtypes.SeedFrom(ctx, registry, seed)
	if err != nil {
		return nil, err
	}
	logger.Debug("fraud types seeded", "count", n)
	return registry, nil
}

// loadConfig reads the agent and curator configuration and applies any
// command-line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadAgent()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if rootFlags.provider != "" {
		cfg.Agent.Provider.Name = rootFlags.provider
	}
	if rootFlags.baseURL != "" {
		cfg.Agent.Provider.BaseURL = rootFlags.baseURL
	}
	if rootFlags.model != "" {
		cfg.Agent.Model.Name = rootFlags.model
	}
	if cmd.Flags().Changed("temperature") {
		cfg.Curator.SetTemperature(rootFlags.temperature)
	}
	if rootFlags.seed != "" {
		cfg.Curator.SeedFile = rootFlags.seed
	}

	return cfg, nil
}

// setup assembles the curator and its registry for a single command run.
func setup(cmd *cobra.Command) (*curator.Curator, fraudtypes.System, *slog.Logger, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}

	logger := infrastructure.NewLogger()

	registry, err := loadRegistry(cmd.Context(), cfg.Curator.SeedFile, logger)
	if err != nil {
		return nil, nil, nil, err
	}

	c, err := curator.New(cfg.CuratorConfig(), registry, logger)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("create curator: %w", err)
	}

	return c, registry, logger, nil
}
