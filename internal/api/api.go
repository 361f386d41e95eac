// Package api assembles the API module with all domain systems and route registration.
package api

import (
	"net/http"

	"github.com/JaimeStill/curator/internal/config"
	"github.com/JaimeStill/curator/internal/infrastructure"
	"github.com/JaimeStill/curator/pkg/middleware"
	"github.com/JaimeStill/curator/pkg/routes"
)

// Module is the API handler mounted under its base path.
type Module struct {
	BasePath string
	Domain   *Domain
	handler  http.Handler
}

// NewModule creates the API module with all domain handlers and middleware.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*Module, error) {
	runtime := NewRuntime(cfg, infra)

	domain, err := NewDomain(runtime)
	if err != nil {
		return nil, err
	}

	return newModule(cfg.API.BasePath, domain, runtime), nil
}

func newModule(basePath string, domain *Domain, runtime *Runtime) *Module {
	mux := http.NewServeMux()
	routes.Register(
		mux,
		basePath,
		domain.FraudTypes.Handler().Routes(),
		domain.Analyses.Handler().Routes(),
	)

	var stack middleware.Stack
	stack.Use(middleware.Logger(runtime.Logger))

	return &Module{
		BasePath: basePath,
		Domain:   domain,
		handler:  stack.Apply(mux),
	}
}

// Mount registers the module on mux under its base path.
func (m *Module) Mount(mux *http.ServeMux) {
	mux.Handle(m.BasePath+"/", m.handler)
}

func (m *Module) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
