package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	intakeerrors "crystallab/contexts/lab-reporting/report-intake/domain/errors"
	intakehttp "crystallab/contexts/lab-reporting/report-intake/transport/http"
)

func (s *Server) handleCreateDraft(w http.ResponseWriter, r *http.Request) {
	resp, err := s.intake.Handler.CreateDraftHandler(r.Context())
	if err != nil {
		writeIntakeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGetDraft(w http.ResponseWriter, r *http.Request) {
	resp, err := s.intake.Handler.GetDraftHandler(r.Context(), r.PathValue("draft_id"))
	if err != nil {
		writeIntakeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSetPatient(w http.ResponseWriter, r *http.Request) {
	var req intakehttp.SetPatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeIntakeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.intake.Handler.SetPatientHandler(r.Context(), r.PathValue("draft_id"), req)
	if err != nil {
		writeIntakeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSelectPanels(w http.ResponseWriter, r *http.Request) {
	var req intakehttp.SelectPanelsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeIntakeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.intake.Handler.SelectPanelsHandler(r.Context(), r.PathValue("draft_id"), req)
	if err != nil {
		writeIntakeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSetResults(w http.ResponseWriter, r *http.Request) {
	var req intakehttp.SetResultsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeIntakeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.intake.Handler.SetResultsHandler(
		r.Context(),
		r.PathValue("draft_id"),
		r.PathValue("panel_code"),
		req,
	)
	if err != nil {
		writeIntakeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleResetDraft(w http.ResponseWriter, r *http.Request) {
	resp, err := s.intake.Handler.ResetDraftHandler(r.Context(), r.PathValue("draft_id"))
	if err != nil {
		writeIntakeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteDraft(w http.ResponseWriter, r *http.Request) {
	if err := s.intake.Handler.DeleteDraftHandler(r.Context(), r.PathValue("draft_id")); err != nil {
		writeIntakeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeIntakeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, intakeerrors.ErrDraftNotFound):
		writeIntakeError(w, http.StatusNotFound, "draft_not_found", err.Error())
	case errors.Is(err, intakeerrors.ErrInvalidPatient):
		writeIntakeError(w, http.StatusBadRequest, "invalid_patient", err.Error())
	case errors.Is(err, intakeerrors.ErrUnknownPanel):
		writeIntakeError(w, http.StatusBadRequest, "unknown_panel", err.Error())
	case errors.Is(err, intakeerrors.ErrNoPanelsSelected):
		writeIntakeError(w, http.StatusBadRequest, "no_panels_selected", err.Error())
	case errors.Is(err, intakeerrors.ErrPanelNotSelected):
		writeIntakeError(w, http.StatusUnprocessableEntity, "panel_not_selected", err.Error())
	case errors.Is(err, intakeerrors.ErrUnknownTest):
		writeIntakeError(w, http.StatusUnprocessableEntity, "unknown_test", err.Error())
	case errors.Is(err, intakeerrors.ErrInvalidInput):
		writeIntakeError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeIntakeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeIntakeError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, intakehttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
