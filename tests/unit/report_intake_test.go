package unit

import (
	"context"
	"errors"
	"testing"

	reportintake "crystallab/contexts/lab-reporting/report-intake"
	domainerrors "crystallab/contexts/lab-reporting/report-intake/domain/errors"
	intakeports "crystallab/contexts/lab-reporting/report-intake/ports"
	httptransport "crystallab/contexts/lab-reporting/report-intake/transport/http"
)

type unitTestCatalog struct{}

func (unitTestCatalog) GetTemplate(_ context.Context, code string) (intakeports.PanelTemplate, error) {
	if code != "lft" {
		return intakeports.PanelTemplate{}, domainerrors.ErrUnknownPanel
	}
	return intakeports.PanelTemplate{
		Code:      "lft",
		Name:      "Liver Function Test (LFT)",
		TestNames: []string{"Bilirubin Total", "Albumin"},
	}, nil
}

func TestReportIntakeDraftLifecycle(t *testing.T) {
	module := reportintake.NewInMemoryModule(unitTestCatalog{}, nil)
	ctx := context.Background()

	created, err := module.Handler.CreateDraftHandler(ctx)
	if err != nil {
		t.Fatalf("create draft failed: %v", err)
	}
	draftID := created.Data.DraftID

	if _, err := module.Handler.SetPatientHandler(ctx, draftID, httptransport.SetPatientRequest{
		Patient: httptransport.PatientInfoDTO{
			LabNo:       "88",
			PatientName: "Ravi Kumar",
			Sex:         "Male",
			AgeYears:    52,
		},
	}); err != nil {
		t.Fatalf("set patient failed: %v", err)
	}

	if _, err := module.Handler.SelectPanelsHandler(ctx, draftID, httptransport.SelectPanelsRequest{
		PanelCodes: []string{"LFT"},
	}); err != nil {
		t.Fatalf("select panels failed: %v", err)
	}

	updated, err := module.Handler.SetResultsHandler(ctx, draftID, "lft", httptransport.SetResultsRequest{
		Results: map[string]string{"Bilirubin Total": "1.9"},
	})
	if err != nil {
		t.Fatalf("set results failed: %v", err)
	}
	if updated.Data.Patient.PatientName != "RAVI KUMAR" {
		t.Fatalf("expected normalized patient name, got %q", updated.Data.Patient.PatientName)
	}
	if updated.Data.Results["lft"]["Bilirubin Total"] != "1.9" {
		t.Fatalf("unexpected results: %v", updated.Data.Results)
	}

	if err := module.Handler.DeleteDraftHandler(ctx, draftID); err != nil {
		t.Fatalf("delete draft failed: %v", err)
	}
	if _, err := module.Handler.GetDraftHandler(ctx, draftID); !errors.Is(err, domainerrors.ErrDraftNotFound) {
		t.Fatalf("expected ErrDraftNotFound after delete, got %v", err)
	}
}

func TestReportIntakeRejectsResultsForUnselectedPanel(t *testing.T) {
	module := reportintake.NewInMemoryModule(unitTestCatalog{}, nil)
	ctx := context.Background()

	created, err := module.Handler.CreateDraftHandler(ctx)
	if err != nil {
		t.Fatalf("create draft failed: %v", err)
	}

	_, err = module.Handler.SetResultsHandler(ctx, created.Data.DraftID, "lft", httptransport.SetResultsRequest{
		Results: map[string]string{"Albumin": "4.4"},
	})
	if !errors.Is(err, domainerrors.ErrPanelNotSelected) {
		t.Fatalf("expected ErrPanelNotSelected, got %v", err)
	}
}
