package bootstrap

import (
	"context"
	"errors"

	panelapplication "crystallab/contexts/lab-reporting/panel-catalog/application"
	panelentities "crystallab/contexts/lab-reporting/panel-catalog/domain/entities"
	panelerrors "crystallab/contexts/lab-reporting/panel-catalog/domain/errors"
	generatorentities "crystallab/contexts/lab-reporting/report-generator/domain/entities"
	generatorerrors "crystallab/contexts/lab-reporting/report-generator/domain/errors"
	generatorports "crystallab/contexts/lab-reporting/report-generator/ports"
	intakeapplication "crystallab/contexts/lab-reporting/report-intake/application"
	intakeerrors "crystallab/contexts/lab-reporting/report-intake/domain/errors"
	intakeports "crystallab/contexts/lab-reporting/report-intake/ports"
)

// Modules never import each other; these bridges adapt one module's service
// to the port another module consumes, and translate errors at the seam.

// intakeCatalogBridge lets the intake module validate panel selections
// against the panel catalog.
type intakeCatalogBridge struct {
	catalog panelapplication.Service
}

func (b intakeCatalogBridge) GetTemplate(ctx context.Context, code string) (intakeports.PanelTemplate, error) {
	panel, err := b.catalog.GetPanel(ctx, code)
	if err != nil {
		if errors.Is(err, panelerrors.ErrPanelNotFound) {
			return intakeports.PanelTemplate{}, intakeerrors.ErrUnknownPanel
		}
		return intakeports.PanelTemplate{}, err
	}
	template := intakeports.PanelTemplate{
		Code:      string(panel.Code),
		Name:      panel.Name,
		TestNames: make([]string, 0, len(panel.Tests)),
	}
	for _, test := range panel.Tests {
		template.TestNames = append(template.TestNames, test.Name)
	}
	return template, nil
}

// generatorCatalogBridge gives the generator full panel templates plus
// range classification for bolding abnormal values.
type generatorCatalogBridge struct {
	catalog panelapplication.Service
}

func (b generatorCatalogBridge) GetPanel(ctx context.Context, code string) (generatorports.PanelTemplate, error) {
	panel, err := b.catalog.GetPanel(ctx, code)
	if err != nil {
		if errors.Is(err, panelerrors.ErrPanelNotFound) {
			return generatorports.PanelTemplate{}, generatorerrors.ErrInvalidInput
		}
		return generatorports.PanelTemplate{}, err
	}
	template := generatorports.PanelTemplate{
		Code:           string(panel.Code),
		Name:           panel.Name,
		InstrumentNote: panel.InstrumentNote,
		Tests:          make([]generatorports.PanelTest, 0, len(panel.Tests)),
	}
	for _, test := range panel.Tests {
		template.Tests = append(template.Tests, generatorports.PanelTest{
			Name:       test.Name,
			Unit:       test.Unit,
			NormalText: test.NormalText,
			Section:    test.Section,
		})
	}
	return template, nil
}

func (b generatorCatalogBridge) ClassifyResult(result string, normalText string, sex string) generatorentities.ResultFlag {
	flag := panelentities.ClassifyResult(result, normalText, sex)
	return generatorentities.ResultFlag(flag)
}

// draftSourceBridge exposes intake drafts to the generator.
type draftSourceBridge struct {
	intake intakeapplication.Service
}

func (b draftSourceBridge) GetDraft(ctx context.Context, draftID string) (generatorports.DraftData, error) {
	draft, err := b.intake.GetDraft(ctx, draftID)
	if err != nil {
		if errors.Is(err, intakeerrors.ErrDraftNotFound) {
			return generatorports.DraftData{}, generatorerrors.ErrDraftNotFound
		}
		if errors.Is(err, intakeerrors.ErrInvalidInput) {
			return generatorports.DraftData{}, generatorerrors.ErrInvalidInput
		}
		return generatorports.DraftData{}, err
	}

	results := make(map[string]map[string]string, len(draft.Results))
	for code, values := range draft.Results {
		panelResults := make(map[string]string, len(values))
		for name, value := range values {
			panelResults[name] = value
		}
		results[code] = panelResults
	}
	return generatorports.DraftData{
		DraftID: draft.DraftID,
		Patient: generatorports.PatientInfo{
			LabNo:        draft.Patient.LabNo,
			PatientName:  draft.Patient.PatientName,
			ReferredBy:   draft.Patient.ReferredBy,
			CollectedAt:  draft.Patient.CollectedAt,
			Sex:          string(draft.Patient.Sex),
			AgeYears:     draft.Patient.AgeYears,
			RegisteredAt: draft.Patient.RegisteredAt,
			SampledAt:    draft.Patient.SampledAt,
			ReportedAt:   draft.Patient.ReportedAt,
		},
		PanelCodes: append([]string(nil), draft.PanelCodes...),
		Results:    results,
	}, nil
}
