package reportintake

import (
	"log/slog"
	"time"

	httpadapter "crystallab/contexts/lab-reporting/report-intake/adapters/http"
	"crystallab/contexts/lab-reporting/report-intake/adapters/memory"
	"crystallab/contexts/lab-reporting/report-intake/application"
	"crystallab/contexts/lab-reporting/report-intake/application/workers"
	"crystallab/contexts/lab-reporting/report-intake/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Expirer workers.DraftExpirer
	Store   *memory.Store
}

type Dependencies struct {
	Drafts   ports.DraftRepository
	Catalog  ports.PanelCatalog
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	DraftTTL time.Duration
	Logger   *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Drafts:   deps.Drafts,
		Catalog:  deps.Catalog,
		Clock:    deps.Clock,
		IDGen:    deps.IDGen,
		DraftTTL: deps.DraftTTL,
		Logger:   deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
		Expirer: workers.DraftExpirer{
			Drafts: deps.Drafts,
			Clock:  deps.Clock,
			Logger: deps.Logger,
		},
	}
}

func NewInMemoryModule(catalog ports.PanelCatalog, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Drafts:   store,
		Catalog:  catalog,
		Clock:    store,
		IDGen:    store,
		DraftTTL: 24 * time.Hour,
		Logger:   logger,
	})
	module.Store = store
	return module
}
