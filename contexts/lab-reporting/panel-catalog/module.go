package panelcatalog

import (
	"log/slog"

	httpadapter "crystallab/contexts/lab-reporting/panel-catalog/adapters/http"
	"crystallab/contexts/lab-reporting/panel-catalog/adapters/memory"
	"crystallab/contexts/lab-reporting/panel-catalog/application"
	"crystallab/contexts/lab-reporting/panel-catalog/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Catalog ports.Catalog
	Logger  *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Catalog: deps.Catalog,
		Logger:  deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Catalog: store,
		Logger:  logger,
	})
	module.Store = store
	return module
}
