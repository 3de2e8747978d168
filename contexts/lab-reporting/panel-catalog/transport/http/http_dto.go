package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type TestDefinitionDTO struct {
	Name       string `json:"name"`
	Unit       string `json:"unit,omitempty"`
	NormalText string `json:"normal_values"`
	Section    string `json:"section,omitempty"`
}

type PanelDTO struct {
	Code           string              `json:"code"`
	Name           string              `json:"name"`
	Tests          []TestDefinitionDTO `json:"tests"`
	InstrumentNote string              `json:"instrument_note,omitempty"`
}

type ListPanelsResponse struct {
	Status string     `json:"status"`
	Data   []PanelDTO `json:"data"`
}

type GetPanelResponse struct {
	Status string   `json:"status"`
	Data   PanelDTO `json:"data"`
}

type ClassifyResultsRequest struct {
	Sex     string            `json:"sex,omitempty"`
	Results map[string]string `json:"results"`
}

type ResultFlagDTO struct {
	Test       string `json:"test"`
	Result     string `json:"result"`
	Unit       string `json:"unit,omitempty"`
	NormalText string `json:"normal_values"`
	Flag       string `json:"flag"`
}

type ClassifyResultsResponse struct {
	Status string          `json:"status"`
	Data   []ResultFlagDTO `json:"data"`
}
