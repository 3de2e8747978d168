package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type PatientInfoDTO struct {
	LabNo        string `json:"lab_no"`
	PatientName  string `json:"patient_name"`
	ReferredBy   string `json:"referred_by,omitempty"`
	CollectedAt  string `json:"sample_collected_at,omitempty"`
	Sex          string `json:"sex"`
	AgeYears     int    `json:"age_years"`
	RegisteredAt string `json:"registered_at,omitempty"`
	SampledAt    string `json:"sampled_at,omitempty"`
	ReportedAt   string `json:"reported_at,omitempty"`
}

type DraftDTO struct {
	DraftID    string                       `json:"draft_id"`
	Patient    PatientInfoDTO               `json:"patient"`
	PanelCodes []string                     `json:"panel_codes"`
	Results    map[string]map[string]string `json:"results"`
	CreatedAt  string                       `json:"created_at"`
	UpdatedAt  string                       `json:"updated_at"`
	ExpiresAt  string                       `json:"expires_at"`
}

type DraftResponse struct {
	Status string   `json:"status"`
	Data   DraftDTO `json:"data"`
}

type SetPatientRequest struct {
	Patient PatientInfoDTO `json:"patient"`
}

type SelectPanelsRequest struct {
	PanelCodes []string `json:"panel_codes"`
}

type SetResultsRequest struct {
	Results map[string]string `json:"results"`
}
