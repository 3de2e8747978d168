package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	panelcatalog "crystallab/contexts/lab-reporting/panel-catalog"
	reportgenerator "crystallab/contexts/lab-reporting/report-generator"
	generatormemory "crystallab/contexts/lab-reporting/report-generator/adapters/memory"
	"crystallab/contexts/lab-reporting/report-generator/adapters/pdf"
	generatorpostgres "crystallab/contexts/lab-reporting/report-generator/adapters/postgres"
	generatorworkers "crystallab/contexts/lab-reporting/report-generator/application/workers"
	reportintake "crystallab/contexts/lab-reporting/report-intake"
	intakememory "crystallab/contexts/lab-reporting/report-intake/adapters/memory"
	intakeworkers "crystallab/contexts/lab-reporting/report-intake/application/workers"
	"crystallab/internal/platform/config"
	"crystallab/internal/platform/db"
	"crystallab/internal/platform/httpserver"
	"crystallab/internal/platform/webui"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	expirer  *WorkerApp
	logger   *slog.Logger
}

// sweepRunner is the periodic unit of work a worker loop drives.
type sweepRunner interface {
	RunOnce(ctx context.Context) error
}

type WorkerApp struct {
	sweeper      sweepRunner
	pollInterval time.Duration
	postgres     *db.Postgres
	logger       *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")

	panels := panelcatalog.NewInMemoryModule(logger)

	intakeStore := intakememory.NewStore()
	intake := reportintake.NewModule(reportintake.Dependencies{
		Drafts:   intakeStore,
		Catalog:  intakeCatalogBridge{catalog: panels.Service},
		Clock:    intakeStore,
		IDGen:    intakeStore,
		DraftTTL: cfg.DraftTTL,
		Logger:   logger,
	})
	intake.Store = intakeStore

	generatorDeps := reportgenerator.Dependencies{
		Drafts:         draftSourceBridge{intake: intake.Service},
		Catalog:        generatorCatalogBridge{catalog: panels.Service},
		Renderer:       pdf.Renderer{Logger: logger},
		IdempotencyTTL: cfg.IdempotencyTTL,
		FooterNote:     cfg.FooterNote,
		Logger:         logger,
	}

	// Reports persist to Postgres when a DSN is configured; otherwise the
	// registry lives in memory and dies with the process.
	var pg *db.Postgres
	if strings.TrimSpace(cfg.PostgresDSN) != "" {
		pg, err = db.Connect(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		repo := generatorpostgres.NewRepository(pg.DB, logger)
		if err := repo.Migrate(); err != nil {
			_ = pg.Close()
			return nil, err
		}
		generatorDeps.Registry = repo
		generatorDeps.Idempotency = repo
		generatorDeps.Clock = generatorpostgres.SystemClock{}
		generatorDeps.IDGenerator = generatorpostgres.UUIDGenerator{}
	} else {
		store := generatormemory.NewStore()
		generatorDeps.Registry = store
		generatorDeps.Idempotency = store
		generatorDeps.Clock = store
		generatorDeps.IDGenerator = store
	}
	generator := reportgenerator.NewModule(generatorDeps)

	var ui *webui.UI
	if cfg.EnableWebUI {
		ui, err = webui.New(logger)
		if err != nil {
			if pg != nil {
				_ = pg.Close()
			}
			return nil, err
		}
	}

	server := httpserver.New(panels, intake, generator, ui, cfg.LabName, logger, normalizeAddr(cfg.HTTPPort))
	app := &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}
	if cfg.EnableDraftExpirer {
		app.expirer = BuildWorkerFor(intake.Expirer, cfg.WorkerPollInterval, logger)
	}
	return app, nil
}

// BuildWorker assembles the standalone sweeper over the shared Postgres
// registry: it purges idempotency records past their TTL. Drafts live in
// the API process's memory and are swept there via BuildWorkerFor, so this
// binary requires a DSN and does not touch drafts.
func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")

	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, fmt.Errorf("worker requires POSTGRES_DSN: the report registry is its only shared store")
	}
	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}
	repo := generatorpostgres.NewRepository(pg.DB, logger)
	if err := repo.Migrate(); err != nil {
		_ = pg.Close()
		return nil, err
	}

	return &WorkerApp{
		sweeper: generatorworkers.RecordSweeper{
			Records: repo,
			Clock:   generatorpostgres.SystemClock{},
			Logger:  logger,
		},
		pollInterval: cfg.WorkerPollInterval,
		postgres:     pg,
		logger:       logger,
	}, nil
}

// BuildWorkerFor wraps an already-built intake expirer so the API process
// can run draft expiry on its own store.
func BuildWorkerFor(expirer intakeworkers.DraftExpirer, pollInterval time.Duration, logger *slog.Logger) *WorkerApp {
	if pollInterval <= 0 {
		pollInterval = time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkerApp{
		sweeper:      expirer,
		pollInterval: pollInterval,
		logger:       logger,
	}
}

func (a *APIApp) Run(ctx context.Context) error {
	if a.expirer != nil {
		go func() { _ = a.expirer.Run(ctx) }()
	}
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"poll_interval", w.pollInterval.String(),
	)

	for {
		if err := w.sweeper.RunOnce(ctx); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) Close() error {
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
