package unit

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	reportgenerator "crystallab/contexts/lab-reporting/report-generator"
	generatormemory "crystallab/contexts/lab-reporting/report-generator/adapters/memory"
	"crystallab/contexts/lab-reporting/report-generator/adapters/pdf"
	generatorentities "crystallab/contexts/lab-reporting/report-generator/domain/entities"
	domainerrors "crystallab/contexts/lab-reporting/report-generator/domain/errors"
	generatorports "crystallab/contexts/lab-reporting/report-generator/ports"
	httptransport "crystallab/contexts/lab-reporting/report-generator/transport/http"
)

// fakeDraftSource serves drafts from a map, standing in for the intake
// module the way the composition root bridges it.
type fakeDraftSource struct {
	drafts map[string]generatorports.DraftData
}

func (f *fakeDraftSource) GetDraft(_ context.Context, draftID string) (generatorports.DraftData, error) {
	draft, ok := f.drafts[draftID]
	if !ok {
		return generatorports.DraftData{}, domainerrors.ErrDraftNotFound
	}
	return draft, nil
}

type fakePanelCatalog struct{}

func (fakePanelCatalog) GetPanel(_ context.Context, code string) (generatorports.PanelTemplate, error) {
	if code != "kft" {
		return generatorports.PanelTemplate{}, domainerrors.ErrInvalidInput
	}
	return generatorports.PanelTemplate{
		Code: "kft",
		Name: "Kidney Function Test (KFT)",
		Tests: []generatorports.PanelTest{
			{Name: "Blood Urea", Unit: "mg/dl", NormalText: "15 - 45 mg/dl"},
			{Name: "Serum Creatinine", Unit: "mg/dl", NormalText: "0.6 - 1.4 mg/dl"},
			{Name: "Uric Acid", Unit: "mg/dl", NormalText: "2.4 - 7.0 mg/dl"},
		},
	}, nil
}

func (fakePanelCatalog) ClassifyResult(result string, _ string, _ string) generatorentities.ResultFlag {
	if result == "58" {
		return generatorentities.FlagHigh
	}
	return generatorentities.FlagNormal
}

func completeDraft(draftID string) generatorports.DraftData {
	return generatorports.DraftData{
		DraftID: draftID,
		Patient: generatorports.PatientInfo{
			LabNo:       "1042",
			PatientName: "ASHA VERMA",
			ReferredBy:  "DR. MEHTA",
			Sex:         "Female",
			AgeYears:    34,
		},
		PanelCodes: []string{"kft"},
		Results: map[string]map[string]string{
			"kft": {
				"Blood Urea":       "58",
				"Serum Creatinine": "1.1",
			},
		},
	}
}

func newGeneratorModule(drafts *fakeDraftSource) reportgenerator.Module {
	return reportgenerator.NewInMemoryModule(drafts, fakePanelCatalog{}, nil)
}

// stepClock hands out strictly increasing instants so generated reports
// never share a timestamp.
type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.now = c.now.Add(time.Second)
	return c.now
}

// fixedClock pins every call to the same instant.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func newClockedGeneratorModule(drafts *fakeDraftSource, clock generatorports.Clock) reportgenerator.Module {
	store := generatormemory.NewStore()
	return reportgenerator.NewModule(reportgenerator.Dependencies{
		Drafts:         drafts,
		Catalog:        fakePanelCatalog{},
		Renderer:       pdf.Renderer{},
		Registry:       store,
		Idempotency:    store,
		Clock:          clock,
		IDGenerator:    store,
		IdempotencyTTL: time.Hour,
	})
}

func TestGenerateReportProducesPDFMetadata(t *testing.T) {
	drafts := &fakeDraftSource{drafts: map[string]generatorports.DraftData{
		"draft-1": completeDraft("draft-1"),
	}}
	module := newGeneratorModule(drafts)
	ctx := context.Background()

	resp, err := module.Handler.GenerateReportHandler(ctx, "idem-gen-1", "draft-1")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if resp.Replayed {
		t.Fatalf("first generation must not be a replay")
	}
	if resp.Data.Pages != 1 {
		t.Fatalf("expected single page report, got %d", resp.Data.Pages)
	}
	if resp.Data.SizeBytes == 0 {
		t.Fatalf("expected non-empty PDF")
	}
	if !strings.HasPrefix(resp.Data.Filename, "ASHA_VERMA_") || !strings.HasSuffix(resp.Data.Filename, ".pdf") {
		t.Fatalf("unexpected filename %q", resp.Data.Filename)
	}
	if resp.Data.DownloadURL != "/v1/reports/"+resp.Data.ReportID+"/download" {
		t.Fatalf("unexpected download url %q", resp.Data.DownloadURL)
	}

	file, err := module.Handler.DownloadReportHandler(ctx, resp.Data.ReportID)
	if err != nil {
		t.Fatalf("download failed: %v", err)
	}
	if !strings.HasPrefix(string(file.Content[:4]), "%PDF") {
		t.Fatalf("expected PDF magic bytes")
	}
}

func TestGenerateReportIdempotencyReplay(t *testing.T) {
	drafts := &fakeDraftSource{drafts: map[string]generatorports.DraftData{
		"draft-1": completeDraft("draft-1"),
	}}
	module := newGeneratorModule(drafts)
	ctx := context.Background()

	first, err := module.Handler.GenerateReportHandler(ctx, "idem-gen-2", "draft-1")
	if err != nil {
		t.Fatalf("first generate failed: %v", err)
	}
	second, err := module.Handler.GenerateReportHandler(ctx, "idem-gen-2", "draft-1")
	if err != nil {
		t.Fatalf("second generate failed: %v", err)
	}
	if !second.Replayed {
		t.Fatalf("expected replay on duplicate idempotency key")
	}
	if first.Data.ReportID != second.Data.ReportID {
		t.Fatalf("expected same report id, got %s and %s", first.Data.ReportID, second.Data.ReportID)
	}
}

func TestGenerateReportIdempotencyConflictOnChangedDraft(t *testing.T) {
	drafts := &fakeDraftSource{drafts: map[string]generatorports.DraftData{
		"draft-1": completeDraft("draft-1"),
	}}
	module := newGeneratorModule(drafts)
	ctx := context.Background()

	if _, err := module.Handler.GenerateReportHandler(ctx, "idem-gen-3", "draft-1"); err != nil {
		t.Fatalf("first generate failed: %v", err)
	}

	changed := completeDraft("draft-1")
	changed.Results["kft"]["Blood Urea"] = "41"
	drafts.drafts["draft-1"] = changed

	_, err := module.Handler.GenerateReportHandler(ctx, "idem-gen-3", "draft-1")
	if !errors.Is(err, domainerrors.ErrIdempotencyConflict) {
		t.Fatalf("expected ErrIdempotencyConflict, got %v", err)
	}
}

func TestGenerateReportRequiresIdempotencyKey(t *testing.T) {
	module := newGeneratorModule(&fakeDraftSource{drafts: map[string]generatorports.DraftData{}})

	_, err := module.Handler.GenerateReportHandler(context.Background(), "  ", "draft-1")
	if !errors.Is(err, domainerrors.ErrIdempotencyKeyMissing) {
		t.Fatalf("expected ErrIdempotencyKeyMissing, got %v", err)
	}
}

func TestGenerateReportMissingDraft(t *testing.T) {
	module := newGeneratorModule(&fakeDraftSource{drafts: map[string]generatorports.DraftData{}})

	_, err := module.Handler.GenerateReportHandler(context.Background(), "idem-gen-4", "draft-missing")
	if !errors.Is(err, domainerrors.ErrDraftNotFound) {
		t.Fatalf("expected ErrDraftNotFound, got %v", err)
	}
}

func TestGenerateReportIncompleteDraft(t *testing.T) {
	incomplete := completeDraft("draft-1")
	incomplete.Patient.PatientName = ""
	module := newGeneratorModule(&fakeDraftSource{drafts: map[string]generatorports.DraftData{
		"draft-1": incomplete,
	}})

	_, err := module.Handler.GenerateReportHandler(context.Background(), "idem-gen-5", "draft-1")
	if !errors.Is(err, domainerrors.ErrDraftIncomplete) {
		t.Fatalf("expected ErrDraftIncomplete, got %v", err)
	}
}

func TestGenerateReportWithoutAnyResults(t *testing.T) {
	empty := completeDraft("draft-1")
	empty.Results = map[string]map[string]string{"kft": {}}
	module := newGeneratorModule(&fakeDraftSource{drafts: map[string]generatorports.DraftData{
		"draft-1": empty,
	}})

	_, err := module.Handler.GenerateReportHandler(context.Background(), "idem-gen-6", "draft-1")
	if !errors.Is(err, domainerrors.ErrNoResults) {
		t.Fatalf("expected ErrNoResults, got %v", err)
	}
}

func TestListReportsNewestFirst(t *testing.T) {
	drafts := &fakeDraftSource{drafts: map[string]generatorports.DraftData{
		"draft-1": completeDraft("draft-1"),
		"draft-2": completeDraft("draft-2"),
	}}
	module := newClockedGeneratorModule(drafts, &stepClock{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)})
	ctx := context.Background()

	first, err := module.Handler.GenerateReportHandler(ctx, "idem-list-1", "draft-1")
	if err != nil {
		t.Fatalf("first generate failed: %v", err)
	}
	second, err := module.Handler.GenerateReportHandler(ctx, "idem-list-2", "draft-2")
	if err != nil {
		t.Fatalf("second generate failed: %v", err)
	}

	resp, err := module.Handler.ListReportsHandler(ctx, httptransport.ListReportsRequest{})
	if err != nil {
		t.Fatalf("list reports failed: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(resp.Data))
	}
	if resp.Data[0].ReportID != second.Data.ReportID || resp.Data[1].ReportID != first.Data.ReportID {
		t.Fatalf("expected newest report first, got %v then %v", resp.Data[0].ReportID, resp.Data[1].ReportID)
	}
}

func TestListReportsSameInstantIsDeterministic(t *testing.T) {
	drafts := &fakeDraftSource{drafts: map[string]generatorports.DraftData{
		"draft-1": completeDraft("draft-1"),
		"draft-2": completeDraft("draft-2"),
	}}
	module := newClockedGeneratorModule(drafts, fixedClock{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)})
	ctx := context.Background()

	if _, err := module.Handler.GenerateReportHandler(ctx, "idem-tie-1", "draft-1"); err != nil {
		t.Fatalf("first generate failed: %v", err)
	}
	if _, err := module.Handler.GenerateReportHandler(ctx, "idem-tie-2", "draft-2"); err != nil {
		t.Fatalf("second generate failed: %v", err)
	}

	resp, err := module.Handler.ListReportsHandler(ctx, httptransport.ListReportsRequest{})
	if err != nil {
		t.Fatalf("list reports failed: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(resp.Data))
	}
	if resp.Data[0].ReportID >= resp.Data[1].ReportID {
		t.Fatalf("same-instant reports must order by report id, got %v then %v",
			resp.Data[0].ReportID, resp.Data[1].ReportID)
	}

	again, err := module.Handler.ListReportsHandler(ctx, httptransport.ListReportsRequest{})
	if err != nil {
		t.Fatalf("second list failed: %v", err)
	}
	if again.Data[0].ReportID != resp.Data[0].ReportID || again.Data[1].ReportID != resp.Data[1].ReportID {
		t.Fatalf("ordering changed between calls")
	}
}
