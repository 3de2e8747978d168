package httpadapter

import (
	"context"
	"log/slog"

	"crystallab/contexts/lab-reporting/panel-catalog/application"
	"crystallab/contexts/lab-reporting/panel-catalog/domain/entities"
	"crystallab/contexts/lab-reporting/panel-catalog/ports"
	httptransport "crystallab/contexts/lab-reporting/panel-catalog/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) ListPanelsHandler(ctx context.Context) (httptransport.ListPanelsResponse, error) {
	panels, err := h.Service.ListPanels(ctx)
	if err != nil {
		return httptransport.ListPanelsResponse{}, err
	}
	resp := httptransport.ListPanelsResponse{
		Status: "success",
		Data:   make([]httptransport.PanelDTO, 0, len(panels)),
	}
	for _, panel := range panels {
		resp.Data = append(resp.Data, toPanelDTO(panel))
	}
	return resp, nil
}

func (h Handler) GetPanelHandler(ctx context.Context, code string) (httptransport.GetPanelResponse, error) {
	panel, err := h.Service.GetPanel(ctx, code)
	if err != nil {
		return httptransport.GetPanelResponse{}, err
	}
	return httptransport.GetPanelResponse{
		Status: "success",
		Data:   toPanelDTO(panel),
	}, nil
}

func (h Handler) ClassifyResultsHandler(
	ctx context.Context,
	code string,
	req httptransport.ClassifyResultsRequest,
) (httptransport.ClassifyResultsResponse, error) {
	flags, err := h.Service.ClassifyResults(ctx, code, req.Sex, req.Results)
	if err != nil {
		return httptransport.ClassifyResultsResponse{}, err
	}
	resp := httptransport.ClassifyResultsResponse{
		Status: "success",
		Data:   make([]httptransport.ResultFlagDTO, 0, len(flags)),
	}
	for _, flag := range flags {
		resp.Data = append(resp.Data, toFlagDTO(flag))
	}
	return resp, nil
}

func toPanelDTO(panel entities.Panel) httptransport.PanelDTO {
	dto := httptransport.PanelDTO{
		Code:           string(panel.Code),
		Name:           panel.Name,
		Tests:          make([]httptransport.TestDefinitionDTO, 0, len(panel.Tests)),
		InstrumentNote: panel.InstrumentNote,
	}
	for _, test := range panel.Tests {
		dto.Tests = append(dto.Tests, httptransport.TestDefinitionDTO{
			Name:       test.Name,
			Unit:       test.Unit,
			NormalText: test.NormalText,
			Section:    test.Section,
		})
	}
	return dto
}

func toFlagDTO(flag ports.ResultFlag) httptransport.ResultFlagDTO {
	return httptransport.ResultFlagDTO{
		Test:       flag.Test,
		Result:     flag.Result,
		Unit:       flag.Unit,
		NormalText: flag.NormalText,
		Flag:       string(flag.Flag),
	}
}
