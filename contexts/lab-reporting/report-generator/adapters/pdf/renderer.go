package pdf

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"crystallab/contexts/lab-reporting/report-generator/domain/entities"
	"crystallab/contexts/lab-reporting/report-generator/ports"

	"github.com/go-pdf/fpdf"
)

// Page geometry in millimetres, A4 portrait. The large bottom margin keeps
// table rows clear of the footer block.
const (
	ruleLeftX         = 10.0
	ruleRightX        = 200.0
	pageBreakMargin   = 60.0
	footerOffsetY     = -40.0
	colTestWidth      = 60.0
	colResultWidth    = 30.0
	colUnitsWidth     = 25.0
	colNormalWidth    = 75.0
	rowHeight         = 5.0
	titleUnderlinePad = 6.0
)

// Renderer draws a ReportDocument with the fpdf core fonts. It implements
// the report-generator Renderer port.
type Renderer struct {
	Logger *slog.Logger
}

func (r Renderer) RenderReport(doc entities.ReportDocument) (ports.RenderedReport, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	translate := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetAutoPageBreak(true, pageBreakMargin)
	pdf.SetHeaderFunc(func() {
		pdf.Ln(25)
		pdf.Line(ruleLeftX, pdf.GetY(), ruleRightX, pdf.GetY())
		pdf.Ln(5)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(footerOffsetY)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 4, translate(doc.FooterNote), "", 1, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})

	// Every panel starts its own page with the demographics block repeated,
	// so multi-panel reports paginate cleanly.
	for _, panel := range doc.Panels {
		pdf.AddPage()
		r.patientBlock(pdf, translate, doc.PatientLines)
		r.panel(pdf, translate, panel)
	}

	if err := pdf.Error(); err != nil {
		return ports.RenderedReport{}, fmt.Errorf("render lab report: %w", err)
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return ports.RenderedReport{}, fmt.Errorf("encode lab report pdf: %w", err)
	}
	return ports.RenderedReport{
		Content: buf.Bytes(),
		Pages:   pdf.PageCount(),
	}, nil
}

func (r Renderer) patientBlock(pdf *fpdf.Fpdf, translate func(string) string, lines []entities.PatientLine) {
	pdf.SetFont("Arial", "B", 9)
	for _, line := range lines {
		pdf.Cell(30, rowHeight, translate(line.LeftLabel))
		pdf.Cell(5, rowHeight, ":")
		pdf.Cell(50, rowHeight, translate(line.LeftValue))
		pdf.Cell(30, rowHeight, translate(line.RightLabel))
		pdf.Cell(5, rowHeight, ":")
		pdf.CellFormat(50, rowHeight, translate(line.RightValue), "", 1, "L", false, 0, "")
	}
	pdf.Ln(5)
	pdf.SetDrawColor(0, 0, 0)
	pdf.Line(ruleLeftX, pdf.GetY(), ruleRightX, pdf.GetY())
	pdf.Ln(5)
}

func (r Renderer) panel(pdf *fpdf.Fpdf, translate func(string) string, panel entities.ReportPanel) {
	r.panelTitle(pdf, translate, panel.Title)
	for _, section := range panel.Sections {
		r.section(pdf, translate, section)
	}
	if panel.InstrumentNote != "" {
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, rowHeight, translate(panel.InstrumentNote), "", 1, "L", false, 0, "")
		pdf.Ln(5)
	}
}

// panelTitle prints the centred upper-case panel name with an underline
// sized to the text, then the grey column header row.
func (r Renderer) panelTitle(pdf *fpdf.Fpdf, translate func(string) string, title string) {
	upper := translate(strings.ToUpper(title))

	pdf.SetFont("Arial", "B", 14)
	underlineWidth := pdf.GetStringWidth(upper) + titleUnderlinePad
	pdf.CellFormat(0, 10, upper, "", 1, "C", false, 0, "")

	pageWidth, _ := pdf.GetPageSize()
	underlineX := (pageWidth - underlineWidth) / 2
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(underlineX, pdf.GetY(), underlineX+underlineWidth, pdf.GetY())
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(colTestWidth, 8, "TEST", "", 0, "L", true, 0, "")
	pdf.CellFormat(colResultWidth, 8, "RESULT", "", 0, "C", true, 0, "")
	pdf.CellFormat(colUnitsWidth, 8, "UNITS", "", 0, "C", true, 0, "")
	pdf.CellFormat(colNormalWidth, 8, "NORMAL VALUES", "", 1, "C", true, 0, "")
	pdf.Ln(2)
}

func (r Renderer) section(pdf *fpdf.Fpdf, translate func(string) string, section entities.ReportSection) {
	if section.Title != "" {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(0, 6, translate(strings.ToUpper(section.Title)), "", 1, "L", false, 0, "")
		pdf.Ln(2)
	}

	pdf.SetFont("Arial", "", 9)
	for _, row := range section.Rows {
		pdf.CellFormat(colTestWidth, rowHeight, translate(row.Test), "", 0, "L", false, 0, "")
		if row.Bold() {
			pdf.SetFont("Arial", "B", 9)
			pdf.CellFormat(colResultWidth, rowHeight, translate(row.Result), "", 0, "C", false, 0, "")
			pdf.SetFont("Arial", "", 9)
		} else {
			pdf.CellFormat(colResultWidth, rowHeight, translate(row.Result), "", 0, "C", false, 0, "")
		}
		pdf.CellFormat(colUnitsWidth, rowHeight, translate(row.Unit), "", 0, "C", false, 0, "")
		pdf.CellFormat(colNormalWidth, rowHeight, translate(row.NormalText), "", 1, "C", false, 0, "")
	}
	pdf.Ln(5)
}
