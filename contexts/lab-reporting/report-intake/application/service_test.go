package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"crystallab/contexts/lab-reporting/report-intake/adapters/memory"
	"crystallab/contexts/lab-reporting/report-intake/domain/entities"
	domainerrors "crystallab/contexts/lab-reporting/report-intake/domain/errors"
	"crystallab/contexts/lab-reporting/report-intake/ports"
)

type fakeCatalog struct{}

func (fakeCatalog) GetTemplate(_ context.Context, code string) (ports.PanelTemplate, error) {
	switch code {
	case "cbc":
		return ports.PanelTemplate{
			Code:      "cbc",
			Name:      "Complete Blood Count (CBC)",
			TestNames: []string{"Haemoglobin", "PCV", "Total WBC Count"},
		}, nil
	case "kft":
		return ports.PanelTemplate{
			Code:      "kft",
			Name:      "Kidney Function Test (KFT)",
			TestNames: []string{"Blood Urea", "Serum Creatinine"},
		}, nil
	default:
		return ports.PanelTemplate{}, domainerrors.ErrUnknownPanel
	}
}

func newTestService() (Service, *memory.Store) {
	store := memory.NewStore()
	return Service{
		Drafts:   store,
		Catalog:  fakeCatalog{},
		Clock:    store,
		IDGen:    store,
		DraftTTL: 24 * time.Hour,
	}, store
}

func validPatient() entities.PatientInfo {
	return entities.PatientInfo{
		LabNo:       "1042",
		PatientName: "Asha Verma",
		ReferredBy:  "Dr. Mehta",
		CollectedAt: "Main Lab",
		Sex:         entities.SexFemale,
		AgeYears:    34,
	}
}

func TestCreateDraftStartsEmpty(t *testing.T) {
	service, _ := newTestService()

	draft, err := service.CreateDraft(context.Background())
	if err != nil {
		t.Fatalf("create draft failed: %v", err)
	}
	if draft.DraftID == "" {
		t.Fatalf("expected a draft id")
	}
	if len(draft.PanelCodes) != 0 || draft.HasResults() {
		t.Fatalf("expected empty draft, got %+v", draft)
	}
	if !draft.ExpiresAt.After(draft.CreatedAt) {
		t.Fatalf("expected expiry after creation time")
	}
}

func TestSetPatientNormalizesFreeText(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	draft, err := service.CreateDraft(ctx)
	if err != nil {
		t.Fatalf("create draft failed: %v", err)
	}
	updated, err := service.SetPatient(ctx, draft.DraftID, validPatient())
	if err != nil {
		t.Fatalf("set patient failed: %v", err)
	}
	if updated.Patient.PatientName != "ASHA VERMA" {
		t.Fatalf("expected upper-cased name, got %q", updated.Patient.PatientName)
	}
	if updated.Patient.ReferredBy != "DR. MEHTA" {
		t.Fatalf("expected upper-cased referrer, got %q", updated.Patient.ReferredBy)
	}
}

func TestSetPatientRejectsMissingName(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	draft, err := service.CreateDraft(ctx)
	if err != nil {
		t.Fatalf("create draft failed: %v", err)
	}
	patient := validPatient()
	patient.PatientName = "   "
	if _, err := service.SetPatient(ctx, draft.DraftID, patient); !errors.Is(err, domainerrors.ErrInvalidPatient) {
		t.Fatalf("expected ErrInvalidPatient, got %v", err)
	}
}

func TestSetPatientRejectsImplausibleAge(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	draft, err := service.CreateDraft(ctx)
	if err != nil {
		t.Fatalf("create draft failed: %v", err)
	}
	patient := validPatient()
	patient.AgeYears = 147
	if _, err := service.SetPatient(ctx, draft.DraftID, patient); !errors.Is(err, domainerrors.ErrInvalidPatient) {
		t.Fatalf("expected ErrInvalidPatient, got %v", err)
	}
}

func TestSelectPanelsValidatesAndDeduplicates(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	draft, err := service.CreateDraft(ctx)
	if err != nil {
		t.Fatalf("create draft failed: %v", err)
	}

	updated, err := service.SelectPanels(ctx, draft.DraftID, []string{"CBC", "cbc", " kft "})
	if err != nil {
		t.Fatalf("select panels failed: %v", err)
	}
	if len(updated.PanelCodes) != 2 || updated.PanelCodes[0] != "cbc" || updated.PanelCodes[1] != "kft" {
		t.Fatalf("unexpected panel codes: %v", updated.PanelCodes)
	}

	if _, err := service.SelectPanels(ctx, draft.DraftID, []string{"lipid"}); !errors.Is(err, domainerrors.ErrUnknownPanel) {
		t.Fatalf("expected ErrUnknownPanel, got %v", err)
	}
	if _, err := service.SelectPanels(ctx, draft.DraftID, nil); !errors.Is(err, domainerrors.ErrNoPanelsSelected) {
		t.Fatalf("expected ErrNoPanelsSelected, got %v", err)
	}
}

func TestSelectPanelsKeepsResultsOnlyForRemainingPanels(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	draft, err := service.CreateDraft(ctx)
	if err != nil {
		t.Fatalf("create draft failed: %v", err)
	}
	if _, err := service.SelectPanels(ctx, draft.DraftID, []string{"cbc", "kft"}); err != nil {
		t.Fatalf("select panels failed: %v", err)
	}
	if _, err := service.SetResults(ctx, draft.DraftID, "cbc", map[string]string{"Haemoglobin": "13.2"}); err != nil {
		t.Fatalf("set cbc results failed: %v", err)
	}
	if _, err := service.SetResults(ctx, draft.DraftID, "kft", map[string]string{"Blood Urea": "32"}); err != nil {
		t.Fatalf("set kft results failed: %v", err)
	}

	updated, err := service.SelectPanels(ctx, draft.DraftID, []string{"kft"})
	if err != nil {
		t.Fatalf("reselect panels failed: %v", err)
	}
	if _, ok := updated.Results["cbc"]; ok {
		t.Fatalf("expected cbc results to be dropped after deselection")
	}
	if updated.Results["kft"]["Blood Urea"] != "32" {
		t.Fatalf("expected kft results to survive, got %v", updated.Results)
	}
}

func TestSetResultsValidatesMembershipAndClearsBlanks(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	draft, err := service.CreateDraft(ctx)
	if err != nil {
		t.Fatalf("create draft failed: %v", err)
	}
	if _, err := service.SelectPanels(ctx, draft.DraftID, []string{"cbc"}); err != nil {
		t.Fatalf("select panels failed: %v", err)
	}

	if _, err := service.SetResults(ctx, draft.DraftID, "kft", map[string]string{"Blood Urea": "32"}); !errors.Is(err, domainerrors.ErrPanelNotSelected) {
		t.Fatalf("expected ErrPanelNotSelected, got %v", err)
	}
	if _, err := service.SetResults(ctx, draft.DraftID, "cbc", map[string]string{"Cholesterol": "190"}); !errors.Is(err, domainerrors.ErrUnknownTest) {
		t.Fatalf("expected ErrUnknownTest, got %v", err)
	}

	if _, err := service.SetResults(ctx, draft.DraftID, "cbc", map[string]string{"Haemoglobin": " 13.2 ", "PCV": "41"}); err != nil {
		t.Fatalf("set results failed: %v", err)
	}
	updated, err := service.SetResults(ctx, draft.DraftID, "cbc", map[string]string{"PCV": ""})
	if err != nil {
		t.Fatalf("clearing result failed: %v", err)
	}
	if updated.Results["cbc"]["Haemoglobin"] != "13.2" {
		t.Fatalf("expected trimmed stored value, got %q", updated.Results["cbc"]["Haemoglobin"])
	}
	if _, ok := updated.Results["cbc"]["PCV"]; ok {
		t.Fatalf("expected blank value to clear the stored result")
	}
}

func TestResetDraftKeepsIDButClearsState(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	draft, err := service.CreateDraft(ctx)
	if err != nil {
		t.Fatalf("create draft failed: %v", err)
	}
	if _, err := service.SetPatient(ctx, draft.DraftID, validPatient()); err != nil {
		t.Fatalf("set patient failed: %v", err)
	}
	if _, err := service.SelectPanels(ctx, draft.DraftID, []string{"cbc"}); err != nil {
		t.Fatalf("select panels failed: %v", err)
	}

	reset, err := service.ResetDraft(ctx, draft.DraftID)
	if err != nil {
		t.Fatalf("reset draft failed: %v", err)
	}
	if reset.DraftID != draft.DraftID {
		t.Fatalf("expected same draft id after reset")
	}
	if reset.Patient.IsComplete() || len(reset.PanelCodes) != 0 || reset.HasResults() {
		t.Fatalf("expected cleared draft, got %+v", reset)
	}
}

func TestExpiredDraftBehavesAsMissing(t *testing.T) {
	store := memory.NewStore()
	service := Service{
		Drafts:   store,
		Catalog:  fakeCatalog{},
		Clock:    store,
		IDGen:    store,
		DraftTTL: time.Nanosecond,
	}
	ctx := context.Background()

	draft, err := service.CreateDraft(ctx)
	if err != nil {
		t.Fatalf("create draft failed: %v", err)
	}
	time.Sleep(2 * time.Millisecond)

	if _, err := service.GetDraft(ctx, draft.DraftID); !errors.Is(err, domainerrors.ErrDraftNotFound) {
		t.Fatalf("expected ErrDraftNotFound for expired draft, got %v", err)
	}
}

func TestDeleteDraft(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	draft, err := service.CreateDraft(ctx)
	if err != nil {
		t.Fatalf("create draft failed: %v", err)
	}
	if err := service.DeleteDraft(ctx, draft.DraftID); err != nil {
		t.Fatalf("delete draft failed: %v", err)
	}
	if _, err := service.GetDraft(ctx, draft.DraftID); !errors.Is(err, domainerrors.ErrDraftNotFound) {
		t.Fatalf("expected ErrDraftNotFound after delete, got %v", err)
	}
}
