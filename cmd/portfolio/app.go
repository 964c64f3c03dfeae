package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"portfoliotracker/internal/config"
	"portfoliotracker/internal/engine"
	"portfoliotracker/internal/logger"
	"portfoliotracker/internal/observability"
	"portfoliotracker/internal/repository"

	"go.uber.org/zap"
)

// app wires configuration, storage and the snapshot service for one command run.
type app struct {
	cfg      *config.Config
	log      *zap.Logger
	metrics  *observability.Metrics
	db       *repository.Database
	engine   *engine.Engine
	service  *engine.Service
	shutdown func(context.Context) error
}

// openApp connects to the database. progress receives the loading bar; nil hides it.
func openApp(ctx context.Context, progress io.Writer) (*app, error) {
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, err
	}
	shutdown, err := logger.InitTracer(cfg.Log, os.Stderr)
	if err != nil {
		return nil, err
	}
	portfolioCfg, err := cfg.Portfolio()
	if err != nil {
		return nil, err
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("no database configured: set database_url or DATABASE_URL")
	}
	db, err := repository.NewDatabase(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	metrics := observability.NewMetrics(cfg.MetricsNamespace)
	eng := engine.NewEngine(portfolioCfg, engine.NewReportingConfig(cfg.Currency, progress), db, log, metrics)
	return &app{
		cfg:      cfg,
		log:      log,
		metrics:  metrics,
		db:       db,
		engine:   eng,
		service:  engine.NewService(eng, log, metrics),
		shutdown: shutdown,
	}, nil
}

func (a *app) Close() {
	a.db.Close()
	_ = a.shutdown(context.Background())
	_ = a.log.Sync()
}

func progressWriter(quiet bool) io.Writer {
	if quiet {
		return nil
	}
	return os.Stderr
}
