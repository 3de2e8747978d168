package ports

import (
	"context"

	"crystallab/contexts/lab-reporting/panel-catalog/domain/entities"
)

type ResultFlag struct {
	Test       string
	Result     string
	Unit       string
	NormalText string
	Flag       entities.ResultFlag
}

type Catalog interface {
	ListPanels(ctx context.Context) ([]entities.Panel, error)
	GetPanel(ctx context.Context, code entities.PanelCode) (entities.Panel, error)
}
