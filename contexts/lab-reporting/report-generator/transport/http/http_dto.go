package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ReportDTO struct {
	ReportID    string   `json:"report_id"`
	DraftID     string   `json:"draft_id"`
	Filename    string   `json:"filename"`
	PatientName string   `json:"patient_name"`
	PanelCodes  []string `json:"panel_codes"`
	SizeBytes   int64    `json:"size_bytes"`
	Pages       int      `json:"pages"`
	GeneratedAt string   `json:"generated_at"`
	DownloadURL string   `json:"download_url"`
}

type GenerateReportResponse struct {
	Status   string    `json:"status"`
	Replayed bool      `json:"replayed,omitempty"`
	Data     ReportDTO `json:"data"`
}

type GetReportResponse struct {
	Status string    `json:"status"`
	Data   ReportDTO `json:"data"`
}

type ListReportsRequest struct {
	Limit  int
	Offset int
}

type ListReportsResponse struct {
	Status string      `json:"status"`
	Data   []ReportDTO `json:"data"`
}

type ReportFile struct {
	Filename string
	Content  []byte
}
