package config

import (
	"fmt"

	"github.com/JaimeStill/curator/pkg/envvar"
	"github.com/JaimeStill/curator/pkg/pagination"
)

const EnvAPIBasePath = "CURATOR_API_BASE_PATH"

var paginationEnv = &pagination.ConfigEnv{
	DefaultPageSize: "CURATOR_PAGINATION_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "CURATOR_PAGINATION_MAX_PAGE_SIZE",
}

// APIConfig holds API routing and pagination settings.
type APIConfig struct {
	BasePath   string            `toml:"base_path"`
	Pagination pagination.Config `toml:"pagination"`
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested pagination config.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.Pagination.Finalize(paginationEnv); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	c.Pagination.Merge(&overlay.Pagination)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
}

func (c *APIConfig) loadEnv() {
	envvar.String(&c.BasePath, EnvAPIBasePath)
}
