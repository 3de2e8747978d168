package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"crystallab/contexts/lab-reporting/report-intake/application"
	"crystallab/contexts/lab-reporting/report-intake/domain/entities"
	httptransport "crystallab/contexts/lab-reporting/report-intake/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) CreateDraftHandler(ctx context.Context) (httptransport.DraftResponse, error) {
	draft, err := h.Service.CreateDraft(ctx)
	if err != nil {
		return httptransport.DraftResponse{}, err
	}
	return draftResponse(draft), nil
}

func (h Handler) GetDraftHandler(ctx context.Context, draftID string) (httptransport.DraftResponse, error) {
	draft, err := h.Service.GetDraft(ctx, draftID)
	if err != nil {
		return httptransport.DraftResponse{}, err
	}
	return draftResponse(draft), nil
}

func (h Handler) SetPatientHandler(
	ctx context.Context,
	draftID string,
	req httptransport.SetPatientRequest,
) (httptransport.DraftResponse, error) {
	draft, err := h.Service.SetPatient(ctx, draftID, fromPatientDTO(req.Patient))
	if err != nil {
		return httptransport.DraftResponse{}, err
	}
	return draftResponse(draft), nil
}

func (h Handler) SelectPanelsHandler(
	ctx context.Context,
	draftID string,
	req httptransport.SelectPanelsRequest,
) (httptransport.DraftResponse, error) {
	draft, err := h.Service.SelectPanels(ctx, draftID, req.PanelCodes)
	if err != nil {
		return httptransport.DraftResponse{}, err
	}
	return draftResponse(draft), nil
}

func (h Handler) SetResultsHandler(
	ctx context.Context,
	draftID string,
	code string,
	req httptransport.SetResultsRequest,
) (httptransport.DraftResponse, error) {
	draft, err := h.Service.SetResults(ctx, draftID, code, req.Results)
	if err != nil {
		return httptransport.DraftResponse{}, err
	}
	return draftResponse(draft), nil
}

func (h Handler) ResetDraftHandler(ctx context.Context, draftID string) (httptransport.DraftResponse, error) {
	draft, err := h.Service.ResetDraft(ctx, draftID)
	if err != nil {
		return httptransport.DraftResponse{}, err
	}
	return draftResponse(draft), nil
}

func (h Handler) DeleteDraftHandler(ctx context.Context, draftID string) error {
	return h.Service.DeleteDraft(ctx, draftID)
}

func draftResponse(draft entities.Draft) httptransport.DraftResponse {
	return httptransport.DraftResponse{
		Status: "success",
		Data:   toDraftDTO(draft),
	}
}

func toDraftDTO(draft entities.Draft) httptransport.DraftDTO {
	results := make(map[string]map[string]string, len(draft.Results))
	for code, values := range draft.Results {
		panelResults := make(map[string]string, len(values))
		for name, value := range values {
			panelResults[name] = value
		}
		results[code] = panelResults
	}
	return httptransport.DraftDTO{
		DraftID:    draft.DraftID,
		Patient:    toPatientDTO(draft.Patient),
		PanelCodes: append([]string(nil), draft.PanelCodes...),
		Results:    results,
		CreatedAt:  formatTime(draft.CreatedAt),
		UpdatedAt:  formatTime(draft.UpdatedAt),
		ExpiresAt:  formatTime(draft.ExpiresAt),
	}
}

func toPatientDTO(patient entities.PatientInfo) httptransport.PatientInfoDTO {
	return httptransport.PatientInfoDTO{
		LabNo:        patient.LabNo,
		PatientName:  patient.PatientName,
		ReferredBy:   patient.ReferredBy,
		CollectedAt:  patient.CollectedAt,
		Sex:          string(patient.Sex),
		AgeYears:     patient.AgeYears,
		RegisteredAt: formatTime(patient.RegisteredAt),
		SampledAt:    formatTime(patient.SampledAt),
		ReportedAt:   formatTime(patient.ReportedAt),
	}
}

func fromPatientDTO(dto httptransport.PatientInfoDTO) entities.PatientInfo {
	return entities.PatientInfo{
		LabNo:        dto.LabNo,
		PatientName:  dto.PatientName,
		ReferredBy:   dto.ReferredBy,
		CollectedAt:  dto.CollectedAt,
		Sex:          entities.Sex(dto.Sex),
		AgeYears:     dto.AgeYears,
		RegisteredAt: parseTime(dto.RegisteredAt),
		SampledAt:    parseTime(dto.SampledAt),
		ReportedAt:   parseTime(dto.ReportedAt),
	}
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.UTC().Format(time.RFC3339)
}

func parseTime(value string) time.Time {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return parsed
}
