package memory

import (
	"context"

	"crystallab/contexts/lab-reporting/panel-catalog/domain/entities"
	domainerrors "crystallab/contexts/lab-reporting/panel-catalog/domain/errors"
)

// Store holds the built-in panel templates. The catalog never changes after
// construction, so reads need no locking.
type Store struct {
	order  []entities.PanelCode
	panels map[entities.PanelCode]entities.Panel
}

func NewStore() *Store {
	builtin := entities.BuiltinPanels()
	store := &Store{
		order:  make([]entities.PanelCode, 0, len(builtin)),
		panels: make(map[entities.PanelCode]entities.Panel, len(builtin)),
	}
	for _, panel := range builtin {
		store.order = append(store.order, panel.Code)
		store.panels[panel.Code] = panel
	}
	return store
}

func (s *Store) ListPanels(_ context.Context) ([]entities.Panel, error) {
	items := make([]entities.Panel, 0, len(s.order))
	for _, code := range s.order {
		items = append(items, s.panels[code])
	}
	return items, nil
}

func (s *Store) GetPanel(_ context.Context, code entities.PanelCode) (entities.Panel, error) {
	panel, ok := s.panels[code]
	if !ok {
		return entities.Panel{}, domainerrors.ErrPanelNotFound
	}
	return panel, nil
}
