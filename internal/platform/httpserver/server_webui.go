package httpserver

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	panelerrors "crystallab/contexts/lab-reporting/panel-catalog/domain/errors"
	paneltransport "crystallab/contexts/lab-reporting/panel-catalog/transport/http"
	generatorerrors "crystallab/contexts/lab-reporting/report-generator/domain/errors"
	intakeerrors "crystallab/contexts/lab-reporting/report-intake/domain/errors"
	intakehttp "crystallab/contexts/lab-reporting/report-intake/transport/http"
	"crystallab/internal/platform/webui"

	"github.com/google/uuid"
)

// datetime-local inputs submit without a zone; values are taken as local time.
const formTimeLayout = "2006-01-02T15:04"

func (s *Server) handleEntryForm(w http.ResponseWriter, r *http.Request) {
	s.renderEntryForm(w, r, http.StatusOK, "")
}

// handleFormGenerate drives the whole draft lifecycle for a single form
// submission and streams the finished PDF back to the browser.
func (s *Server) handleFormGenerate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.renderEntryForm(w, r, http.StatusBadRequest, "The submitted form could not be read.")
		return
	}

	selected := r.PostForm["panels"]
	if len(selected) == 0 {
		s.renderEntryForm(w, r, http.StatusBadRequest, "Select at least one panel before generating a report.")
		return
	}

	ctx := r.Context()
	draft, err := s.intake.Handler.CreateDraftHandler(ctx)
	if err != nil {
		s.renderEntryForm(w, r, http.StatusInternalServerError, "Could not start a new report. Please try again.")
		return
	}
	draftID := draft.Data.DraftID
	defer func() {
		_ = s.intake.Handler.DeleteDraftHandler(ctx, draftID)
	}()

	if _, err := s.intake.Handler.SetPatientHandler(ctx, draftID, intakehttp.SetPatientRequest{
		Patient: s.patientFromForm(r),
	}); err != nil {
		s.renderEntryForm(w, r, formErrorStatus(err), formErrorMessage(err))
		return
	}

	if _, err := s.intake.Handler.SelectPanelsHandler(ctx, draftID, intakehttp.SelectPanelsRequest{
		PanelCodes: selected,
	}); err != nil {
		s.renderEntryForm(w, r, formErrorStatus(err), formErrorMessage(err))
		return
	}

	results := webui.ParseResults(r.PostForm)
	for _, code := range selected {
		panelResults, ok := results[code]
		if !ok {
			continue
		}
		if _, err := s.intake.Handler.SetResultsHandler(ctx, draftID, code, intakehttp.SetResultsRequest{
			Results: panelResults,
		}); err != nil {
			s.renderEntryForm(w, r, formErrorStatus(err), formErrorMessage(err))
			return
		}
	}

	generated, err := s.generator.Handler.GenerateReportHandler(ctx, uuid.NewString(), draftID)
	if err != nil {
		s.renderEntryForm(w, r, formErrorStatus(err), formErrorMessage(err))
		return
	}

	file, err := s.generator.Handler.DownloadReportHandler(ctx, generated.Data.ReportID)
	if err != nil {
		s.renderEntryForm(w, r, http.StatusInternalServerError, "The report was generated but could not be retrieved.")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `inline; filename="`+file.Filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Content)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(file.Content)
}

// handleFormPreview classifies the entered results without creating a draft
// and returns an HTML fragment so flags can be checked before generating.
func (s *Server) handleFormPreview(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.renderPreview(w, http.StatusBadRequest, webui.PreviewData{
			Error: "The submitted form could not be read.",
		})
		return
	}

	selected := r.PostForm["panels"]
	if len(selected) == 0 {
		s.renderPreview(w, http.StatusBadRequest, webui.PreviewData{
			Error: "Select at least one panel to preview.",
		})
		return
	}

	ctx := r.Context()
	sex := r.PostFormValue("sex")
	results := webui.ParseResults(r.PostForm)
	data := webui.PreviewData{
		PatientName: s.ui.Sanitize(r.PostFormValue("patient_name")),
	}

	for _, code := range selected {
		entered := make(map[string]string)
		for test, value := range results[code] {
			if strings.TrimSpace(value) != "" {
				entered[test] = value
			}
		}

		panel, err := s.panels.Handler.GetPanelHandler(ctx, code)
		if err != nil {
			s.renderPreview(w, previewErrorStatus(err), webui.PreviewData{
				Error: previewErrorMessage(err),
			})
			return
		}
		flags, err := s.panels.Handler.ClassifyResultsHandler(ctx, code, paneltransport.ClassifyResultsRequest{
			Sex:     sex,
			Results: entered,
		})
		if err != nil {
			s.renderPreview(w, previewErrorStatus(err), webui.PreviewData{
				Error: previewErrorMessage(err),
			})
			return
		}

		view := webui.PreviewPanel{
			Code: panel.Data.Code,
			Name: panel.Data.Name,
			Rows: make([]webui.PreviewRow, 0, len(flags.Data)),
		}
		for _, flag := range flags.Data {
			view.Rows = append(view.Rows, webui.PreviewRow{
				Test:       flag.Test,
				Result:     flag.Result,
				Unit:       flag.Unit,
				NormalText: flag.NormalText,
				Flag:       flag.Flag,
				Bold:       flag.Flag == "low" || flag.Flag == "high",
			})
		}
		data.Panels = append(data.Panels, view)
	}

	s.renderPreview(w, http.StatusOK, data)
}

func (s *Server) renderPreview(w http.ResponseWriter, status int, data webui.PreviewData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = s.ui.RenderPreview(w, data)
}

func previewErrorStatus(err error) int {
	switch {
	case errors.Is(err, panelerrors.ErrPanelNotFound):
		return http.StatusNotFound
	case errors.Is(err, panelerrors.ErrUnknownTest):
		return http.StatusUnprocessableEntity
	case errors.Is(err, panelerrors.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func previewErrorMessage(err error) string {
	switch {
	case errors.Is(err, panelerrors.ErrPanelNotFound):
		return "One of the selected panels is not available."
	case errors.Is(err, panelerrors.ErrUnknownTest):
		return "A submitted result does not belong to its panel."
	case errors.Is(err, panelerrors.ErrInvalidInput):
		return "The submitted values could not be processed."
	default:
		return "Something went wrong while building the preview. Please try again."
	}
}

func (s *Server) renderEntryForm(w http.ResponseWriter, r *http.Request, status int, errMsg string) {
	panels, err := s.panels.Handler.ListPanelsHandler(r.Context())
	if err != nil {
		http.Error(w, "panel catalog unavailable", http.StatusInternalServerError)
		return
	}

	data := webui.EntryFormData{
		LabName: s.labName,
		Error:   errMsg,
		Panels:  make([]webui.PanelView, 0, len(panels.Data)),
	}
	for _, panel := range panels.Data {
		view := webui.PanelView{
			Code:           panel.Code,
			Name:           panel.Name,
			InstrumentNote: panel.InstrumentNote,
			Tests:          make([]webui.TestView, 0, len(panel.Tests)),
		}
		for _, test := range panel.Tests {
			view.Tests = append(view.Tests, webui.TestView{
				Name:       test.Name,
				Unit:       test.Unit,
				NormalText: test.NormalText,
				Section:    test.Section,
				Field:      webui.ResultField(panel.Code, test.Name),
			})
		}
		data.Panels = append(data.Panels, view)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = s.ui.RenderEntryForm(w, data)
}

func (s *Server) patientFromForm(r *http.Request) intakehttp.PatientInfoDTO {
	age := 0
	if raw := r.PostFormValue("age_years"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			age = parsed
		}
	}
	return intakehttp.PatientInfoDTO{
		LabNo:        s.ui.Sanitize(r.PostFormValue("lab_no")),
		PatientName:  s.ui.Sanitize(r.PostFormValue("patient_name")),
		ReferredBy:   s.ui.Sanitize(r.PostFormValue("ref_by")),
		CollectedAt:  s.ui.Sanitize(r.PostFormValue("collected_at")),
		Sex:          r.PostFormValue("sex"),
		AgeYears:     age,
		RegisteredAt: formTimeToRFC3339(r.PostFormValue("registered_at")),
		SampledAt:    formTimeToRFC3339(r.PostFormValue("sampled_at")),
	}
}

func formTimeToRFC3339(value string) string {
	if value == "" {
		return ""
	}
	parsed, err := time.ParseInLocation(formTimeLayout, value, time.Local)
	if err != nil {
		return ""
	}
	return parsed.Format(time.RFC3339)
}

func formErrorStatus(err error) int {
	switch {
	case errors.Is(err, intakeerrors.ErrInvalidPatient),
		errors.Is(err, intakeerrors.ErrUnknownPanel),
		errors.Is(err, intakeerrors.ErrNoPanelsSelected),
		errors.Is(err, intakeerrors.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, intakeerrors.ErrPanelNotSelected),
		errors.Is(err, intakeerrors.ErrUnknownTest):
		return http.StatusUnprocessableEntity
	default:
		return generatorFormStatus(err)
	}
}

func formErrorMessage(err error) string {
	switch {
	case errors.Is(err, intakeerrors.ErrInvalidPatient):
		return "Lab number and patient name are required, and age must be between 0 and 120."
	case errors.Is(err, intakeerrors.ErrUnknownPanel):
		return "One of the selected panels is not available."
	case errors.Is(err, intakeerrors.ErrUnknownTest):
		return "A submitted result does not belong to its panel."
	default:
		return generatorFormMessage(err)
	}
}

func generatorFormStatus(err error) int {
	switch {
	case errors.Is(err, generatorerrors.ErrDraftIncomplete),
		errors.Is(err, generatorerrors.ErrNoResults):
		return http.StatusUnprocessableEntity
	case errors.Is(err, generatorerrors.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func generatorFormMessage(err error) string {
	switch {
	case errors.Is(err, generatorerrors.ErrDraftIncomplete):
		return "Fill in the lab number and patient name before generating."
	case errors.Is(err, generatorerrors.ErrNoResults):
		return "Enter at least one test result before generating."
	case errors.Is(err, generatorerrors.ErrInvalidInput):
		return "The submitted values could not be processed."
	default:
		return "Something went wrong while generating the report. Please try again."
	}
}
