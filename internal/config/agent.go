package config

import (
	"fmt"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/JaimeStill/curator/pkg/envvar"
)

const (
	EnvAgentName         = "CURATOR_AGENT_NAME"
	EnvAgentProviderName = "CURATOR_AGENT_PROVIDER_NAME"
	EnvAgentBaseURL      = "CURATOR_AGENT_BASE_URL"
	EnvAgentToken        = "CURATOR_AGENT_TOKEN"
	EnvAgentDeployment   = "CURATOR_AGENT_DEPLOYMENT"
	EnvAgentAPIVersion   = "CURATOR_AGENT_API_VERSION"
	EnvAgentAuthType     = "CURATOR_AGENT_AUTH_TYPE"
	EnvAgentModelName    = "CURATOR_AGENT_MODEL_NAME"
)

// FinalizeAgent fills a go-agents AgentConfig from DefaultAgentConfig,
// applies environment overrides, and validates the result.
func FinalizeAgent(c *gaconfig.AgentConfig) error {
	loadAgentDefaults(c)
	loadAgentEnv(c)
	return validateAgent(c)
}

func loadAgentDefaults(c *gaconfig.AgentConfig) {
	defaults := gaconfig.DefaultAgentConfig()
	defaults.Merge(c)
	*c = defaults
}

// providerOptionEnv maps provider option keys to their environment variables.
var providerOptionEnv = []struct {
	key string
	env string
}{
	{"token", EnvAgentToken},
	{"deployment", EnvAgentDeployment},
	{"api_version", EnvAgentAPIVersion},
	{"auth_type", EnvAgentAuthType},
}

func loadAgentEnv(c *gaconfig.AgentConfig) {
	if c.Provider == nil {
		c.Provider = &gaconfig.ProviderConfig{}
	}
	if c.Provider.Options == nil {
		c.Provider.Options = make(map[string]any)
	}
	if c.Model == nil {
		c.Model = &gaconfig.ModelConfig{}
	}

	envvar.String(&c.Name, EnvAgentName)
	envvar.String(&c.Provider.Name, EnvAgentProviderName)
	envvar.String(&c.Provider.BaseURL, EnvAgentBaseURL)
	envvar.String(&c.Model.Name, EnvAgentModelName)

	for _, opt := range providerOptionEnv {
		var v string
		envvar.String(&v, opt.env)
		if v != "" {
			c.Provider.Options[opt.key] = v
		}
	}
}

func validateAgent(c *gaconfig.AgentConfig) error {
	if c.Name == "" {
		return fmt.Errorf("name required")
	}
	if c.Provider == nil {
		return fmt.Errorf("provider required")
	}
	if c.Provider.Name == "" {
		return fmt.Errorf("provider name required")
	}
	if c.Model == nil {
		return fmt.Errorf("model required")
	}
	return nil
}
