package ports

import (
	"context"
	"time"

	"crystallab/contexts/lab-reporting/report-generator/domain/entities"
)

type PatientInfo struct {
	LabNo        string
	PatientName  string
	ReferredBy   string
	CollectedAt  string
	Sex          string
	AgeYears     int
	RegisteredAt time.Time
	SampledAt    time.Time
	ReportedAt   time.Time
}

// DraftData is the generator's view of an intake draft.
type DraftData struct {
	DraftID    string
	Patient    PatientInfo
	PanelCodes []string
	Results    map[string]map[string]string
}

type DraftSource interface {
	GetDraft(ctx context.Context, draftID string) (DraftData, error)
}

type PanelTest struct {
	Name       string
	Unit       string
	NormalText string
	Section    string
}

type PanelTemplate struct {
	Code           string
	Name           string
	InstrumentNote string
	Tests          []PanelTest
}

type PanelCatalog interface {
	GetPanel(ctx context.Context, code string) (PanelTemplate, error)
	ClassifyResult(result string, normalText string, sex string) entities.ResultFlag
}

type RenderedReport struct {
	Content []byte
	Pages   int
}

type Renderer interface {
	RenderReport(doc entities.ReportDocument) (RenderedReport, error)
}

// ReportRecord couples registry metadata with the PDF bytes.
type ReportRecord struct {
	Report  entities.Report
	Content []byte
}

type Registry interface {
	SaveReport(ctx context.Context, record ReportRecord) error
	GetReport(ctx context.Context, reportID string) (entities.Report, error)
	GetReportContent(ctx context.Context, reportID string) (ReportRecord, error)
	ListReports(ctx context.Context, limit int, offset int) ([]entities.Report, error)
}

type IdempotencyRecord struct {
	Key             string
	RequestHash     string
	ResponsePayload []byte
	ExpiresAt       time.Time
}

type IdempotencyStore interface {
	GetRecord(ctx context.Context, key string, now time.Time) (IdempotencyRecord, bool, error)
	PutRecord(ctx context.Context, record IdempotencyRecord) error
}

// IdempotencySweeper removes idempotency records past their expiry. The
// standalone worker runs it against the shared registry.
type IdempotencySweeper interface {
	PurgeExpiredRecords(ctx context.Context, now time.Time) (int, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
