package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	panelcatalog "crystallab/contexts/lab-reporting/panel-catalog"
	reportgenerator "crystallab/contexts/lab-reporting/report-generator"
	reportintake "crystallab/contexts/lab-reporting/report-intake"
	"crystallab/internal/platform/webui"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "crystallab/internal/platform/httpserver/docs"
)

type Server struct {
	mux       *http.ServeMux
	logger    *slog.Logger
	addr      string
	panels    panelcatalog.Module
	intake    reportintake.Module
	generator reportgenerator.Module
	ui        *webui.UI
	labName   string
}

func New(
	panels panelcatalog.Module,
	intake reportintake.Module,
	generator reportgenerator.Module,
	ui *webui.UI,
	labName string,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:       http.NewServeMux(),
		logger:    logger,
		addr:      addr,
		panels:    panels,
		intake:    intake,
		generator: generator,
		ui:        ui,
		labName:   labName,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the mux for httptest-driven tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("GET /v1/panels", s.handleListPanels)
	s.mux.HandleFunc("GET /v1/panels/{panel_code}", s.handleGetPanel)
	s.mux.HandleFunc("POST /v1/panels/{panel_code}/classify", s.handleClassifyResults)

	s.mux.HandleFunc("POST /v1/drafts", s.handleCreateDraft)
	s.mux.HandleFunc("GET /v1/drafts/{draft_id}", s.handleGetDraft)
	s.mux.HandleFunc("PUT /v1/drafts/{draft_id}/patient", s.handleSetPatient)
	s.mux.HandleFunc("PUT /v1/drafts/{draft_id}/panels", s.handleSelectPanels)
	s.mux.HandleFunc("PUT /v1/drafts/{draft_id}/results/{panel_code}", s.handleSetResults)
	s.mux.HandleFunc("POST /v1/drafts/{draft_id}/reset", s.handleResetDraft)
	s.mux.HandleFunc("DELETE /v1/drafts/{draft_id}", s.handleDeleteDraft)

	s.mux.HandleFunc("POST /v1/drafts/{draft_id}/generate", s.handleGenerateReport)
	s.mux.HandleFunc("GET /v1/reports", s.handleListReports)
	s.mux.HandleFunc("GET /v1/reports/{report_id}", s.handleGetReport)
	s.mux.HandleFunc("GET /v1/reports/{report_id}/download", s.handleDownloadReport)

	if s.ui != nil {
		s.mux.HandleFunc("GET /{$}", s.handleEntryForm)
		s.mux.HandleFunc("POST /preview", s.handleFormPreview)
		s.mux.HandleFunc("POST /generate", s.handleFormGenerate)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
