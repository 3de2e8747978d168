package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"crystallab/contexts/lab-reporting/report-intake/domain/entities"
	domainerrors "crystallab/contexts/lab-reporting/report-intake/domain/errors"

	"github.com/google/uuid"
)

type Store struct {
	mu     sync.RWMutex
	drafts map[string]entities.Draft
}

func NewStore() *Store {
	return &Store{
		drafts: make(map[string]entities.Draft),
	}
}

func (s *Store) CreateDraft(_ context.Context, draft entities.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := strings.TrimSpace(draft.DraftID)
	if id == "" {
		return domainerrors.ErrInvalidInput
	}
	if _, exists := s.drafts[id]; exists {
		return domainerrors.ErrInvalidInput
	}
	s.drafts[id] = cloneDraft(draft)
	return nil
}

func (s *Store) GetDraft(_ context.Context, draftID string) (entities.Draft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	draft, ok := s.drafts[strings.TrimSpace(draftID)]
	if !ok {
		return entities.Draft{}, domainerrors.ErrDraftNotFound
	}
	return cloneDraft(draft), nil
}

func (s *Store) UpdateDraft(_ context.Context, draft entities.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := strings.TrimSpace(draft.DraftID)
	if _, ok := s.drafts[id]; !ok {
		return domainerrors.ErrDraftNotFound
	}
	s.drafts[id] = cloneDraft(draft)
	return nil
}

func (s *Store) DeleteDraft(_ context.Context, draftID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.drafts, strings.TrimSpace(draftID))
	return nil
}

func (s *Store) PurgeExpiredDrafts(_ context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	purged := 0
	for id, draft := range s.drafts {
		if draft.IsExpired(now) {
			delete(s.drafts, id)
			purged++
		}
	}
	return purged, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

// cloneDraft deep-copies the results maps so callers cannot mutate stored
// state through a returned draft.
func cloneDraft(draft entities.Draft) entities.Draft {
	copied := draft
	copied.PanelCodes = append([]string(nil), draft.PanelCodes...)
	copied.Results = make(map[string]map[string]string, len(draft.Results))
	for code, values := range draft.Results {
		panelResults := make(map[string]string, len(values))
		for name, value := range values {
			panelResults[name] = value
		}
		copied.Results[code] = panelResults
	}
	return copied
}
