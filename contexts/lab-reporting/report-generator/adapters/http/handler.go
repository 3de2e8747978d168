package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"crystallab/contexts/lab-reporting/report-generator/application"
	"crystallab/contexts/lab-reporting/report-generator/domain/entities"
	httptransport "crystallab/contexts/lab-reporting/report-generator/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) GenerateReportHandler(
	ctx context.Context,
	idempotencyKey string,
	draftID string,
) (httptransport.GenerateReportResponse, error) {
	report, replayed, err := h.Service.GenerateReport(ctx, idempotencyKey, draftID)
	if err != nil {
		return httptransport.GenerateReportResponse{}, err
	}
	return httptransport.GenerateReportResponse{
		Status:   "success",
		Replayed: replayed,
		Data:     toDTO(report),
	}, nil
}

func (h Handler) GetReportHandler(ctx context.Context, reportID string) (httptransport.GetReportResponse, error) {
	report, err := h.Service.GetReport(ctx, reportID)
	if err != nil {
		return httptransport.GetReportResponse{}, err
	}
	return httptransport.GetReportResponse{
		Status: "success",
		Data:   toDTO(report),
	}, nil
}

func (h Handler) DownloadReportHandler(ctx context.Context, reportID string) (httptransport.ReportFile, error) {
	record, err := h.Service.GetReportFile(ctx, reportID)
	if err != nil {
		return httptransport.ReportFile{}, err
	}
	return httptransport.ReportFile{
		Filename: record.Report.Filename,
		Content:  record.Content,
	}, nil
}

func (h Handler) ListReportsHandler(
	ctx context.Context,
	req httptransport.ListReportsRequest,
) (httptransport.ListReportsResponse, error) {
	items, err := h.Service.ListReports(ctx, req.Limit, req.Offset)
	if err != nil {
		return httptransport.ListReportsResponse{}, err
	}
	resp := httptransport.ListReportsResponse{
		Status: "success",
		Data:   make([]httptransport.ReportDTO, 0, len(items)),
	}
	for _, item := range items {
		resp.Data = append(resp.Data, toDTO(item))
	}
	return resp, nil
}

func toDTO(report entities.Report) httptransport.ReportDTO {
	return httptransport.ReportDTO{
		ReportID:    report.ReportID,
		DraftID:     report.DraftID,
		Filename:    report.Filename,
		PatientName: report.PatientName,
		PanelCodes:  append([]string(nil), report.PanelCodes...),
		SizeBytes:   report.SizeBytes,
		Pages:       report.Pages,
		GeneratedAt: report.GeneratedAt.UTC().Format(time.RFC3339),
		DownloadURL: "/v1/reports/" + report.ReportID + "/download",
	}
}
