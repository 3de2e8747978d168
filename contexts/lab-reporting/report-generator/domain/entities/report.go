package entities

import "time"

type ResultFlag string

const (
	FlagNormal ResultFlag = "normal"
	FlagLow    ResultFlag = "low"
	FlagHigh   ResultFlag = "high"
	FlagNone   ResultFlag = "unflagged"
)

// ReportRow is one printed table line. The result cell renders in bold when
// the value fell outside its normal range.
type ReportRow struct {
	Test       string
	Result     string
	Unit       string
	NormalText string
	Flag       ResultFlag
}

func (r ReportRow) Bold() bool {
	return r.Flag == FlagLow || r.Flag == FlagHigh
}

type ReportSection struct {
	Title string
	Rows  []ReportRow
}

type ReportPanel struct {
	Code           string
	Title          string
	Sections       []ReportSection
	InstrumentNote string
}

func (p ReportPanel) RowCount() int {
	count := 0
	for _, section := range p.Sections {
		count += len(section.Rows)
	}
	return count
}

// PatientLine is one row of the two-column demographics block: left and
// right label/value pairs.
type PatientLine struct {
	LeftLabel  string
	LeftValue  string
	RightLabel string
	RightValue string
}

// ReportDocument is the fully resolved content handed to the renderer. The
// patient block repeats on every page; each panel starts its own page.
type ReportDocument struct {
	PatientLines []PatientLine
	Panels       []ReportPanel
	FooterNote   string
}

// Report is the registry metadata for one generated PDF.
type Report struct {
	ReportID    string
	DraftID     string
	Filename    string
	PatientName string
	PanelCodes  []string
	SizeBytes   int64
	Pages       int
	GeneratedAt time.Time
}
