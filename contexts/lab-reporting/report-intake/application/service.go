package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"crystallab/contexts/lab-reporting/report-intake/domain/entities"
	domainerrors "crystallab/contexts/lab-reporting/report-intake/domain/errors"
	"crystallab/contexts/lab-reporting/report-intake/ports"
)

type Service struct {
	Drafts   ports.DraftRepository
	Catalog  ports.PanelCatalog
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	DraftTTL time.Duration
	Logger   *slog.Logger
}

func (s Service) CreateDraft(ctx context.Context) (entities.Draft, error) {
	draftID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.Draft{}, err
	}
	now := s.now()
	draft := entities.Draft{
		DraftID:   strings.TrimSpace(draftID),
		Results:   make(map[string]map[string]string),
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(s.draftTTL()),
	}
	if err := s.Drafts.CreateDraft(ctx, draft); err != nil {
		return entities.Draft{}, err
	}

	ResolveLogger(s.Logger).Info("report draft created",
		"event", "report_draft_created",
		"module", "lab-reporting/report-intake",
		"layer", "application",
		"draft_id", draft.DraftID,
		"expires_at", draft.ExpiresAt.UTC().Format(time.RFC3339),
	)
	return draft, nil
}

func (s Service) GetDraft(ctx context.Context, draftID string) (entities.Draft, error) {
	return s.liveDraft(ctx, draftID)
}

func (s Service) SetPatient(ctx context.Context, draftID string, info entities.PatientInfo) (entities.Draft, error) {
	draft, err := s.liveDraft(ctx, draftID)
	if err != nil {
		return entities.Draft{}, err
	}
	patient, err := entities.NewPatientInfo(info)
	if err != nil {
		return entities.Draft{}, err
	}
	draft.Patient = patient
	return s.saveDraft(ctx, draft)
}

// SelectPanels replaces the draft's panel selection. Results already entered
// survive only for panels that remain selected.
func (s Service) SelectPanels(ctx context.Context, draftID string, codes []string) (entities.Draft, error) {
	draft, err := s.liveDraft(ctx, draftID)
	if err != nil {
		return entities.Draft{}, err
	}

	selected := make([]string, 0, len(codes))
	seen := make(map[string]bool, len(codes))
	for _, raw := range codes {
		code := strings.ToLower(strings.TrimSpace(raw))
		if code == "" || seen[code] {
			continue
		}
		if _, err := s.Catalog.GetTemplate(ctx, code); err != nil {
			return entities.Draft{}, domainerrors.ErrUnknownPanel
		}
		seen[code] = true
		selected = append(selected, code)
	}
	if len(selected) == 0 {
		return entities.Draft{}, domainerrors.ErrNoPanelsSelected
	}

	results := make(map[string]map[string]string, len(selected))
	for _, code := range selected {
		if existing, ok := draft.Results[code]; ok {
			results[code] = existing
		}
	}
	draft.PanelCodes = selected
	draft.Results = results
	return s.saveDraft(ctx, draft)
}

// SetResults merges entered values for one selected panel. Every supplied
// test name must exist in the panel template; values are stored trimmed and
// an empty value clears a previously entered one.
func (s Service) SetResults(
	ctx context.Context,
	draftID string,
	code string,
	results map[string]string,
) (entities.Draft, error) {
	draft, err := s.liveDraft(ctx, draftID)
	if err != nil {
		return entities.Draft{}, err
	}

	normalized := strings.ToLower(strings.TrimSpace(code))
	if !draft.PanelSelected(normalized) {
		return entities.Draft{}, domainerrors.ErrPanelNotSelected
	}
	template, err := s.Catalog.GetTemplate(ctx, normalized)
	if err != nil {
		return entities.Draft{}, domainerrors.ErrUnknownPanel
	}

	panelResults := draft.Results[normalized]
	if panelResults == nil {
		panelResults = make(map[string]string, len(results))
	}
	for name, value := range results {
		testName := strings.TrimSpace(name)
		if !template.HasTest(testName) {
			return entities.Draft{}, domainerrors.ErrUnknownTest
		}
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			delete(panelResults, testName)
			continue
		}
		panelResults[testName] = trimmed
	}
	draft.Results[normalized] = panelResults
	return s.saveDraft(ctx, draft)
}

// ResetDraft clears patient data, selections and results while keeping the
// draft id and its expiry window.
func (s Service) ResetDraft(ctx context.Context, draftID string) (entities.Draft, error) {
	draft, err := s.liveDraft(ctx, draftID)
	if err != nil {
		return entities.Draft{}, err
	}
	draft.Patient = entities.PatientInfo{}
	draft.PanelCodes = nil
	draft.Results = make(map[string]map[string]string)
	return s.saveDraft(ctx, draft)
}

func (s Service) DeleteDraft(ctx context.Context, draftID string) error {
	if strings.TrimSpace(draftID) == "" {
		return domainerrors.ErrInvalidInput
	}
	return s.Drafts.DeleteDraft(ctx, strings.TrimSpace(draftID))
}

func (s Service) liveDraft(ctx context.Context, draftID string) (entities.Draft, error) {
	id := strings.TrimSpace(draftID)
	if id == "" {
		return entities.Draft{}, domainerrors.ErrInvalidInput
	}
	draft, err := s.Drafts.GetDraft(ctx, id)
	if err != nil {
		return entities.Draft{}, err
	}
	if draft.IsExpired(s.now()) {
		_ = s.Drafts.DeleteDraft(ctx, id)
		return entities.Draft{}, domainerrors.ErrDraftNotFound
	}
	return draft, nil
}

func (s Service) saveDraft(ctx context.Context, draft entities.Draft) (entities.Draft, error) {
	draft.UpdatedAt = s.now()
	if err := s.Drafts.UpdateDraft(ctx, draft); err != nil {
		if errors.Is(err, domainerrors.ErrDraftNotFound) {
			return entities.Draft{}, domainerrors.ErrDraftNotFound
		}
		return entities.Draft{}, err
	}
	return draft, nil
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}

func (s Service) draftTTL() time.Duration {
	if s.DraftTTL <= 0 {
		return 24 * time.Hour
	}
	return s.DraftTTL
}

func ResolveLogger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}
