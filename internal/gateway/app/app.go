package app

import (
	"context"
	"fmt"
	"log"

	"stencil/internal/gateway/config"
	"stencil/internal/gateway/handler"
	"stencil/internal/gateway/repository/exportcopy"
	"stencil/internal/gateway/repository/history"
	"stencil/internal/gateway/repository/project"
	"stencil/internal/gateway/server"
)

type App struct {
	server *server.Server
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Dependencies
	projects := project.NewFromEnv(cfg.ProjectStore.DSN, cfg.ProjectStore.Path)
	hist := newHistoryStore(cfg)
	copies := newExportCopyStore(cfg)

	h := handler.New(projects, hist, copies)

	// Routing & Server
	mux := server.NewMux(h)
	srv := server.New(cfg.Port, mux)

	return &App{
		server: srv,
	}, nil
}

func newHistoryStore(cfg *config.Config) history.Store {
	if cfg.ProjectStore.DSN == "" {
		return history.NewMemory()
	}
	s, err := history.NewPostgres(cfg.ProjectStore.DSN)
	if err != nil {
		log.Printf("history store: postgres unavailable (%v), using memory store", err)
		return history.NewMemory()
	}
	return s
}

func newExportCopyStore(cfg *config.Config) *exportcopy.S3Store {
	if !cfg.Export.Enabled || !cfg.Export.CanUseS3() {
		return nil
	}
	s, err := exportcopy.NewS3Store(exportcopy.Config{
		Endpoint:  cfg.Export.Endpoint,
		Region:    cfg.Export.Region,
		AccessKey: cfg.Export.AccessKey,
		SecretKey: cfg.Export.SecretKey,
		Bucket:    cfg.Export.Bucket,
		UseSSL:    cfg.Export.UseSSL,
	})
	if err != nil {
		log.Printf("export copy store disabled: %v", err)
		return nil
	}
	return s
}

func (a *App) Start() error {
	return a.server.Start()
}

func (a *App) Shutdown(ctx context.Context) error {
	return a.server.Shutdown(ctx)
}
