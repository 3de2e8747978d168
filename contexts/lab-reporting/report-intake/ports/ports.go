package ports

import (
	"context"
	"time"

	"crystallab/contexts/lab-reporting/report-intake/domain/entities"
)

type DraftRepository interface {
	CreateDraft(ctx context.Context, draft entities.Draft) error
	GetDraft(ctx context.Context, draftID string) (entities.Draft, error)
	UpdateDraft(ctx context.Context, draft entities.Draft) error
	DeleteDraft(ctx context.Context, draftID string) error
	PurgeExpiredDrafts(ctx context.Context, now time.Time) (int, error)
}

// PanelTemplate is the intake module's view of a catalog panel: just enough
// to validate selections and entered test names.
type PanelTemplate struct {
	Code      string
	Name      string
	TestNames []string
}

func (t PanelTemplate) HasTest(name string) bool {
	for _, candidate := range t.TestNames {
		if candidate == name {
			return true
		}
	}
	return false
}

type PanelCatalog interface {
	GetTemplate(ctx context.Context, code string) (PanelTemplate, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
