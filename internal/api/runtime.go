package api

import (
	"github.com/JaimeStill/curator/internal/config"
	"github.com/JaimeStill/curator/internal/infrastructure"
	"github.com/JaimeStill/curator/pkg/pagination"
)

// Runtime is the infrastructure handed to domain constructors, scoped to
// the API module logger and carrying the loaded configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Config *config.Config
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: infra.Scoped("module", "api"),
		Config:         cfg,
	}
}

// Pagination returns the API pagination limits.
func (r *Runtime) Pagination() pagination.Config {
	return r.Config.API.Pagination
}
