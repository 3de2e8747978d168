package reportgenerator

import (
	"log/slog"
	"time"

	httpadapter "crystallab/contexts/lab-reporting/report-generator/adapters/http"
	"crystallab/contexts/lab-reporting/report-generator/adapters/memory"
	"crystallab/contexts/lab-reporting/report-generator/adapters/pdf"
	"crystallab/contexts/lab-reporting/report-generator/application"
	"crystallab/contexts/lab-reporting/report-generator/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Drafts         ports.DraftSource
	Catalog        ports.PanelCatalog
	Renderer       ports.Renderer
	Registry       ports.Registry
	Idempotency    ports.IdempotencyStore
	Clock          ports.Clock
	IDGenerator    ports.IDGenerator
	IdempotencyTTL time.Duration
	FooterNote     string
	Logger         *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Drafts:         deps.Drafts,
		Catalog:        deps.Catalog,
		Renderer:       deps.Renderer,
		Registry:       deps.Registry,
		Idempotency:    deps.Idempotency,
		Clock:          deps.Clock,
		IDGen:          deps.IDGenerator,
		IdempotencyTTL: deps.IdempotencyTTL,
		FooterNote:     deps.FooterNote,
		Logger:         deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}

// NewInMemoryModule wires the module with the memory registry and the fpdf
// renderer. Drafts and Catalog cross module boundaries, so their bridges are
// supplied by the composition root.
func NewInMemoryModule(drafts ports.DraftSource, catalog ports.PanelCatalog, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Drafts:         drafts,
		Catalog:        catalog,
		Renderer:       pdf.Renderer{Logger: logger},
		Registry:       store,
		Idempotency:    store,
		Clock:          store,
		IDGenerator:    store,
		IdempotencyTTL: 7 * 24 * time.Hour,
		Logger:         logger,
	})
	module.Store = store
	return module
}
