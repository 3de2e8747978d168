package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	generatorerrors "crystallab/contexts/lab-reporting/report-generator/domain/errors"
	generatorhttp "crystallab/contexts/lab-reporting/report-generator/transport/http"
)

func (s *Server) handleGenerateReport(w http.ResponseWriter, r *http.Request) {
	resp, err := s.generator.Handler.GenerateReportHandler(
		r.Context(),
		r.Header.Get("Idempotency-Key"),
		r.PathValue("draft_id"),
	)
	if err != nil {
		writeGeneratorDomainError(w, err)
		return
	}
	status := http.StatusCreated
	if resp.Replayed {
		status = http.StatusOK
	}
	writeJSON(w, status, resp)
}

func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := generatorhttp.ListReportsRequest{}
	if limitRaw := query.Get("limit"); limitRaw != "" {
		limit, err := strconv.Atoi(limitRaw)
		if err != nil {
			writeGeneratorError(w, http.StatusBadRequest, "invalid_limit", "limit must be an integer")
			return
		}
		req.Limit = limit
	}
	if offsetRaw := query.Get("offset"); offsetRaw != "" {
		offset, err := strconv.Atoi(offsetRaw)
		if err != nil {
			writeGeneratorError(w, http.StatusBadRequest, "invalid_offset", "offset must be an integer")
			return
		}
		req.Offset = offset
	}

	resp, err := s.generator.Handler.ListReportsHandler(r.Context(), req)
	if err != nil {
		writeGeneratorDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	resp, err := s.generator.Handler.GetReportHandler(r.Context(), r.PathValue("report_id"))
	if err != nil {
		writeGeneratorDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDownloadReport(w http.ResponseWriter, r *http.Request) {
	file, err := s.generator.Handler.DownloadReportHandler(r.Context(), r.PathValue("report_id"))
	if err != nil {
		writeGeneratorDomainError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Content)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(file.Content)
}

func writeGeneratorDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, generatorerrors.ErrIdempotencyKeyMissing):
		writeGeneratorError(w, http.StatusBadRequest, "idempotency_key_required", err.Error())
	case errors.Is(err, generatorerrors.ErrIdempotencyConflict):
		writeGeneratorError(w, http.StatusConflict, "idempotency_conflict", err.Error())
	case errors.Is(err, generatorerrors.ErrDraftNotFound):
		writeGeneratorError(w, http.StatusNotFound, "draft_not_found", err.Error())
	case errors.Is(err, generatorerrors.ErrReportNotFound):
		writeGeneratorError(w, http.StatusNotFound, "report_not_found", err.Error())
	case errors.Is(err, generatorerrors.ErrDraftIncomplete):
		writeGeneratorError(w, http.StatusUnprocessableEntity, "draft_incomplete", err.Error())
	case errors.Is(err, generatorerrors.ErrNoResults):
		writeGeneratorError(w, http.StatusUnprocessableEntity, "no_results", err.Error())
	case errors.Is(err, generatorerrors.ErrInvalidInput):
		writeGeneratorError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeGeneratorError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeGeneratorError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, generatorhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
