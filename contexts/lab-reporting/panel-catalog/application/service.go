package application

import (
	"context"
	"log/slog"
	"strings"

	"crystallab/contexts/lab-reporting/panel-catalog/domain/entities"
	domainerrors "crystallab/contexts/lab-reporting/panel-catalog/domain/errors"
	"crystallab/contexts/lab-reporting/panel-catalog/ports"
)

type Service struct {
	Catalog ports.Catalog
	Logger  *slog.Logger
}

func (s Service) ListPanels(ctx context.Context) ([]entities.Panel, error) {
	return s.Catalog.ListPanels(ctx)
}

func (s Service) GetPanel(ctx context.Context, code string) (entities.Panel, error) {
	normalized := entities.NormalizeCode(code)
	if normalized == "" {
		return entities.Panel{}, domainerrors.ErrInvalidInput
	}
	return s.Catalog.GetPanel(ctx, normalized)
}

// ClassifyResults range-checks a set of entered results against one panel
// template. Every test name must belong to the panel; results are returned
// in template order, skipping tests that were not supplied.
func (s Service) ClassifyResults(
	ctx context.Context,
	code string,
	sex string,
	results map[string]string,
) ([]ports.ResultFlag, error) {
	panel, err := s.GetPanel(ctx, code)
	if err != nil {
		return nil, err
	}

	for name := range results {
		if _, ok := panel.FindTest(name); !ok {
			return nil, domainerrors.ErrUnknownTest
		}
	}

	flags := make([]ports.ResultFlag, 0, len(results))
	for _, test := range panel.Tests {
		raw, ok := results[test.Name]
		if !ok {
			continue
		}
		result := strings.TrimSpace(raw)
		flags = append(flags, ports.ResultFlag{
			Test:       test.Name,
			Result:     result,
			Unit:       test.Unit,
			NormalText: test.NormalText,
			Flag:       entities.ClassifyResult(result, test.NormalText, sex),
		})
	}

	resolveLogger(s.Logger).Debug("panel results classified",
		"event", "panel_results_classified",
		"module", "lab-reporting/panel-catalog",
		"layer", "application",
		"panel_code", string(panel.Code),
		"result_count", len(flags),
	)
	return flags, nil
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}
