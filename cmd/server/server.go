package main

import (
	"context"
	"fmt"
	"time"

	"github.com/JaimeStill/curator/internal/api"
	"github.com/JaimeStill/curator/internal/config"
	"github.com/JaimeStill/curator/internal/infrastructure"
)

// Server ties the infrastructure, the API module, and the HTTP listener to
// one lifecycle.
type Server struct {
	infra *infrastructure.Infrastructure
	http  *httpServer
}

func NewServer(cfg *config.Config) (*Server, error) {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, err
	}

	apiModule, err := api.NewModule(cfg, infra)
	if err != nil {
		return nil, err
	}

	router := buildRouter(infra.Lifecycle)
	apiModule.Mount(router)

	infra.Logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"api", apiModule.BasePath,
		"version", cfg.Version,
		"env", cfg.Env(),
		"provider", cfg.ProviderName(),
		"model", cfg.ModelName(),
	)

	return &Server{
		infra: infra,
		http:  newHTTPServer(&cfg.Server, router, infra.Logger),
	}, nil
}

// Run starts every subsystem, blocks until ctx is canceled, then shuts
// down within timeout.
func (s *Server) Run(ctx context.Context, timeout time.Duration) error {
	s.infra.Logger.Info("starting service")

	if err := s.infra.Start(); err != nil {
		return fmt.Errorf("start infrastructure: %w", err)
	}
	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return fmt.Errorf("start http: %w", err)
	}

	go func() {
		s.infra.Lifecycle.WaitForStartup()
		s.infra.Logger.Info("all subsystems ready")
	}()

	<-ctx.Done()

	s.infra.Logger.Info("initiating shutdown")
	if err := s.infra.Lifecycle.Shutdown(timeout); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.infra.Logger.Info("shutdown complete")
	return nil
}
