package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	panelerrors "crystallab/contexts/lab-reporting/panel-catalog/domain/errors"
	panelhttp "crystallab/contexts/lab-reporting/panel-catalog/transport/http"
)

func (s *Server) handleListPanels(w http.ResponseWriter, r *http.Request) {
	resp, err := s.panels.Handler.ListPanelsHandler(r.Context())
	if err != nil {
		writePanelDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetPanel(w http.ResponseWriter, r *http.Request) {
	resp, err := s.panels.Handler.GetPanelHandler(r.Context(), r.PathValue("panel_code"))
	if err != nil {
		writePanelDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleClassifyResults(w http.ResponseWriter, r *http.Request) {
	var req panelhttp.ClassifyResultsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writePanelError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.panels.Handler.ClassifyResultsHandler(r.Context(), r.PathValue("panel_code"), req)
	if err != nil {
		writePanelDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writePanelDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, panelerrors.ErrPanelNotFound):
		writePanelError(w, http.StatusNotFound, "panel_not_found", err.Error())
	case errors.Is(err, panelerrors.ErrUnknownTest):
		writePanelError(w, http.StatusUnprocessableEntity, "unknown_test", err.Error())
	case errors.Is(err, panelerrors.ErrInvalidInput):
		writePanelError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writePanelError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writePanelError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, panelhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
