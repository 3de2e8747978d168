package application

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"crystallab/contexts/lab-reporting/report-generator/domain/entities"
	domainerrors "crystallab/contexts/lab-reporting/report-generator/domain/errors"
	"crystallab/contexts/lab-reporting/report-generator/ports"
)

const (
	defaultFooterNote = "Bold Indicates Abnormal Values"
	reportTimeLayout  = "02-Jan-2006 03:04 PM"
	filenameLayout    = "20060102_150405"
)

type Service struct {
	Drafts         ports.DraftSource
	Catalog        ports.PanelCatalog
	Renderer       ports.Renderer
	Registry       ports.Registry
	Idempotency    ports.IdempotencyStore
	Clock          ports.Clock
	IDGen          ports.IDGenerator
	IdempotencyTTL time.Duration
	FooterNote     string
	Logger         *slog.Logger
}

// GenerateReport renders the draft into a PDF and records it. Calls are
// idempotent per Idempotency-Key: a replay with the same draft state returns
// the original report, a replay with different state fails with a conflict.
func (s Service) GenerateReport(
	ctx context.Context,
	idempotencyKey string,
	draftID string,
) (entities.Report, bool, error) {
	key := strings.TrimSpace(idempotencyKey)
	if key == "" {
		return entities.Report{}, false, domainerrors.ErrIdempotencyKeyMissing
	}
	if strings.TrimSpace(draftID) == "" {
		return entities.Report{}, false, domainerrors.ErrInvalidInput
	}

	draft, err := s.Drafts.GetDraft(ctx, strings.TrimSpace(draftID))
	if err != nil {
		return entities.Report{}, false, err
	}
	if !patientComplete(draft.Patient) || len(draft.PanelCodes) == 0 {
		return entities.Report{}, false, domainerrors.ErrDraftIncomplete
	}

	now := s.now()
	requestHash := hashPayload(map[string]any{
		"draft_id": draft.DraftID,
		"patient":  draft.Patient,
		"panels":   draft.PanelCodes,
		"results":  draft.Results,
	})

	record, found, err := s.Idempotency.GetRecord(ctx, key, now)
	if err != nil {
		return entities.Report{}, false, err
	}
	if found {
		if record.RequestHash != requestHash {
			return entities.Report{}, false, domainerrors.ErrIdempotencyConflict
		}
		var replayed entities.Report
		if err := json.Unmarshal(record.ResponsePayload, &replayed); err != nil {
			return entities.Report{}, false, err
		}
		return replayed, true, nil
	}

	document, includedCodes, err := s.buildDocument(ctx, draft, now)
	if err != nil {
		return entities.Report{}, false, err
	}

	rendered, err := s.Renderer.RenderReport(document)
	if err != nil {
		return entities.Report{}, false, err
	}

	reportID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.Report{}, false, err
	}

	report := entities.Report{
		ReportID:    strings.TrimSpace(reportID),
		DraftID:     draft.DraftID,
		Filename:    reportFilename(draft.Patient.PatientName, now),
		PatientName: draft.Patient.PatientName,
		PanelCodes:  includedCodes,
		SizeBytes:   int64(len(rendered.Content)),
		Pages:       rendered.Pages,
		GeneratedAt: now,
	}
	if err := s.Registry.SaveReport(ctx, ports.ReportRecord{
		Report:  report,
		Content: rendered.Content,
	}); err != nil {
		return entities.Report{}, false, err
	}

	payload, err := json.Marshal(report)
	if err != nil {
		return entities.Report{}, false, err
	}
	if err := s.Idempotency.PutRecord(ctx, ports.IdempotencyRecord{
		Key:             key,
		RequestHash:     requestHash,
		ResponsePayload: payload,
		ExpiresAt:       now.Add(s.idempotencyTTL()),
	}); err != nil {
		return entities.Report{}, false, err
	}

	ResolveLogger(s.Logger).Info("lab report generated",
		"event", "lab_report_generated",
		"module", "lab-reporting/report-generator",
		"layer", "application",
		"report_id", report.ReportID,
		"draft_id", report.DraftID,
		"panel_codes", strings.Join(report.PanelCodes, ","),
		"pages", report.Pages,
		"size_bytes", report.SizeBytes,
	)
	return report, false, nil
}

func (s Service) GetReport(ctx context.Context, reportID string) (entities.Report, error) {
	if strings.TrimSpace(reportID) == "" {
		return entities.Report{}, domainerrors.ErrInvalidInput
	}
	return s.Registry.GetReport(ctx, strings.TrimSpace(reportID))
}

func (s Service) GetReportFile(ctx context.Context, reportID string) (ports.ReportRecord, error) {
	if strings.TrimSpace(reportID) == "" {
		return ports.ReportRecord{}, domainerrors.ErrInvalidInput
	}
	return s.Registry.GetReportContent(ctx, strings.TrimSpace(reportID))
}

func (s Service) ListReports(ctx context.Context, limit int, offset int) ([]entities.Report, error) {
	return s.Registry.ListReports(ctx, limit, offset)
}

// buildDocument resolves the draft against the panel templates: rows keep
// template order, rows without an entered result are dropped, sections and
// panels that end up empty are omitted entirely.
func (s Service) buildDocument(
	ctx context.Context,
	draft ports.DraftData,
	now time.Time,
) (entities.ReportDocument, []string, error) {
	document := entities.ReportDocument{
		PatientLines: patientLines(draft.Patient, now),
		FooterNote:   s.footerNote(),
	}

	includedCodes := make([]string, 0, len(draft.PanelCodes))
	for _, code := range draft.PanelCodes {
		template, err := s.Catalog.GetPanel(ctx, code)
		if err != nil {
			return entities.ReportDocument{}, nil, err
		}
		panel := buildPanel(template, draft.Results[code], s.Catalog, draft.Patient.Sex)
		if panel.RowCount() == 0 {
			continue
		}
		document.Panels = append(document.Panels, panel)
		includedCodes = append(includedCodes, template.Code)
	}
	if len(document.Panels) == 0 {
		return entities.ReportDocument{}, nil, domainerrors.ErrNoResults
	}
	return document, includedCodes, nil
}

func buildPanel(
	template ports.PanelTemplate,
	results map[string]string,
	catalog ports.PanelCatalog,
	sex string,
) entities.ReportPanel {
	panel := entities.ReportPanel{
		Code:           template.Code,
		Title:          template.Name,
		InstrumentNote: template.InstrumentNote,
	}

	var current *entities.ReportSection
	for _, test := range template.Tests {
		value := strings.TrimSpace(results[test.Name])
		if value == "" {
			continue
		}
		if current == nil || current.Title != test.Section {
			panel.Sections = append(panel.Sections, entities.ReportSection{Title: test.Section})
			current = &panel.Sections[len(panel.Sections)-1]
		}
		current.Rows = append(current.Rows, entities.ReportRow{
			Test:       test.Name,
			Result:     value,
			Unit:       test.Unit,
			NormalText: test.NormalText,
			Flag:       catalog.ClassifyResult(value, test.NormalText, sex),
		})
	}
	return panel
}

func patientLines(patient ports.PatientInfo, now time.Time) []entities.PatientLine {
	return []entities.PatientLine{
		{
			LeftLabel: "LAB NO.", LeftValue: patient.LabNo,
			RightLabel: "REG DATE", RightValue: formatReportTime(patient.RegisteredAt, now),
		},
		{
			LeftLabel: "PATIENT NAME", LeftValue: patient.PatientName,
			RightLabel: "SAMPLE DATE", RightValue: formatReportTime(patient.SampledAt, now),
		},
		{
			LeftLabel: "REF. BY DR.", LeftValue: patient.ReferredBy,
			RightLabel: "REPORT DATE", RightValue: formatReportTime(patient.ReportedAt, now),
		},
		{
			LeftLabel: "SAMPLE COLL. AT", LeftValue: patient.CollectedAt,
			RightLabel: "SEX / AGE", RightValue: sexAge(patient),
		},
	}
}

func sexAge(patient ports.PatientInfo) string {
	return patient.Sex + " / " + strconv.Itoa(patient.AgeYears) + " Years"
}

func formatReportTime(value time.Time, fallback time.Time) string {
	if value.IsZero() {
		value = fallback
	}
	return value.Format(reportTimeLayout)
}

func reportFilename(patientName string, generatedAt time.Time) string {
	return strings.ReplaceAll(patientName, " ", "_") + "_" + generatedAt.Format(filenameLayout) + ".pdf"
}

func patientComplete(patient ports.PatientInfo) bool {
	return strings.TrimSpace(patient.LabNo) != "" &&
		strings.TrimSpace(patient.PatientName) != "" &&
		strings.TrimSpace(patient.Sex) != ""
}

func hashPayload(payload map[string]any) string {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return ""
	}
	digest := sha256.Sum256(encoded)
	return hex.EncodeToString(digest[:])
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}

func (s Service) idempotencyTTL() time.Duration {
	if s.IdempotencyTTL <= 0 {
		return 7 * 24 * time.Hour
	}
	return s.IdempotencyTTL
}

func (s Service) footerNote() string {
	if strings.TrimSpace(s.FooterNote) == "" {
		return defaultFooterNote
	}
	return s.FooterNote
}

func ResolveLogger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}
