package pdf

import (
	"bytes"
	"testing"

	"crystallab/contexts/lab-reporting/report-generator/domain/entities"
)

func sampleDocument() entities.ReportDocument {
	return entities.ReportDocument{
		PatientLines: []entities.PatientLine{
			{LeftLabel: "LAB NO.", LeftValue: "1042", RightLabel: "REG DATE", RightValue: "14-Mar-2026 09:30 AM"},
			{LeftLabel: "PATIENT NAME", LeftValue: "ASHA VERMA", RightLabel: "SAMPLE DATE", RightValue: "14-Mar-2026 09:45 AM"},
			{LeftLabel: "REF. BY DR.", LeftValue: "DR. MEHTA", RightLabel: "REPORT DATE", RightValue: "14-Mar-2026 02:10 PM"},
			{LeftLabel: "SAMPLE COLL. AT", LeftValue: "MAIN LAB", RightLabel: "SEX / AGE", RightValue: "Female / 34 Years"},
		},
		Panels: []entities.ReportPanel{
			{
				Code:  "cbc",
				Title: "Complete Blood Count (CBC)",
				Sections: []entities.ReportSection{
					{
						Rows: []entities.ReportRow{
							{Test: "Haemoglobin", Result: "11.2", Unit: "g%", NormalText: "Male: 14 - 16 g%, Female: 12 - 14 g%", Flag: entities.FlagLow},
							{Test: "PCV", Result: "41", Unit: "%", NormalText: "35 - 60 %", Flag: entities.FlagNormal},
						},
					},
					{
						Title: "TOTAL WBC COUNT",
						Rows: []entities.ReportRow{
							{Test: "Total WBC Count", Result: "11,500", Unit: "/cu.mm", NormalText: "4000 - 10,000 /cu.mm", Flag: entities.FlagHigh},
						},
					},
				},
				InstrumentNote: "Test done on Nihon Kohden MEK- 6420K fully automated cell counter.",
			},
			{
				Code:  "tft",
				Title: "Thyroid Function Test (TFT)",
				Sections: []entities.ReportSection{
					{
						Rows: []entities.ReportRow{
							{Test: "TSH", Result: "3.1", Unit: "µIU/ml", NormalText: "0.27 - 4.2 µIU/ml", Flag: entities.FlagNormal},
						},
					},
				},
			},
		},
		FooterNote: "Bold Indicates Abnormal Values",
	}
}

func TestRenderReportProducesPDF(t *testing.T) {
	rendered, err := Renderer{}.RenderReport(sampleDocument())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !bytes.HasPrefix(rendered.Content, []byte("%PDF")) {
		t.Fatalf("expected PDF magic bytes, got %q", rendered.Content[:min(8, len(rendered.Content))])
	}
	if len(rendered.Content) == 0 {
		t.Fatalf("expected non-empty document")
	}
}

func TestRenderReportOnePagePerPanel(t *testing.T) {
	rendered, err := Renderer{}.RenderReport(sampleDocument())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if rendered.Pages != 2 {
		t.Fatalf("expected 2 pages for 2 panels, got %d", rendered.Pages)
	}
}

func TestRenderReportSinglePanel(t *testing.T) {
	doc := sampleDocument()
	doc.Panels = doc.Panels[:1]

	rendered, err := Renderer{}.RenderReport(doc)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if rendered.Pages != 1 {
		t.Fatalf("expected 1 page, got %d", rendered.Pages)
	}
}
