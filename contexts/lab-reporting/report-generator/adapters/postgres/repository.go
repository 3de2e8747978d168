package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"crystallab/contexts/lab-reporting/report-generator/domain/entities"
	domainerrors "crystallab/contexts/lab-reporting/report-generator/domain/errors"
	"crystallab/contexts/lab-reporting/report-generator/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository is the Postgres-backed report registry and idempotency store.
// It is selected at bootstrap only when a DSN is configured; the memory
// store is the default.
type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Migrate creates the registry tables. Called once at bootstrap.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(&reportModel{}, &idempotencyModel{})
}

func (r *Repository) SaveReport(ctx context.Context, record ports.ReportRecord) error {
	id := strings.TrimSpace(record.Report.ReportID)
	if id == "" || len(record.Content) == 0 {
		return domainerrors.ErrInvalidInput
	}

	row := reportModelFromRecord(record)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrIdempotencyConflict
		}
		return err
	}
	return nil
}

func (r *Repository) GetReport(ctx context.Context, reportID string) (entities.Report, error) {
	var row reportModel
	err := r.db.WithContext(ctx).
		Where("report_id = ?", strings.TrimSpace(reportID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Report{}, domainerrors.ErrReportNotFound
		}
		return entities.Report{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetReportContent(ctx context.Context, reportID string) (ports.ReportRecord, error) {
	var row reportModel
	err := r.db.WithContext(ctx).
		Where("report_id = ?", strings.TrimSpace(reportID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.ReportRecord{}, domainerrors.ErrReportNotFound
		}
		return ports.ReportRecord{}, err
	}
	return ports.ReportRecord{
		Report:  row.toEntity(),
		Content: row.Content,
	}, nil
}

func (r *Repository) ListReports(ctx context.Context, limit int, offset int) ([]entities.Report, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var rows []reportModel
	if err := r.db.WithContext(ctx).
		Select("report_id", "draft_id", "filename", "patient_name", "panel_codes", "size_bytes", "pages", "generated_at").
		Order("generated_at DESC, report_id").
		Offset(offset).
		Limit(limit).
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	items := make([]entities.Report, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) GetRecord(ctx context.Context, key string, now time.Time) (ports.IdempotencyRecord, bool, error) {
	var row idempotencyModel
	err := r.db.WithContext(ctx).
		Where("key = ?", strings.TrimSpace(key)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.IdempotencyRecord{}, false, nil
		}
		return ports.IdempotencyRecord{}, false, err
	}

	if !row.ExpiresAt.After(now.UTC()) {
		if err := r.db.WithContext(ctx).
			Where("key = ?", row.Key).
			Delete(&idempotencyModel{}).
			Error; err != nil {
			return ports.IdempotencyRecord{}, false, err
		}
		return ports.IdempotencyRecord{}, false, nil
	}
	return row.toPort(), true, nil
}

func (r *Repository) PutRecord(ctx context.Context, record ports.IdempotencyRecord) error {
	row := idempotencyModelFromPort(record)
	createResult := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoNothing: true,
		}).
		Create(&row)
	if createResult.Error != nil {
		return createResult.Error
	}
	if createResult.RowsAffected > 0 {
		return nil
	}

	var existing idempotencyModel
	if err := r.db.WithContext(ctx).
		Where("key = ?", record.Key).
		First(&existing).
		Error; err != nil {
		return err
	}
	if existing.RequestHash != record.RequestHash {
		return domainerrors.ErrIdempotencyConflict
	}
	return nil
}

func (r *Repository) PurgeExpiredRecords(ctx context.Context, now time.Time) (int, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at <= ?", now.UTC()).
		Delete(&idempotencyModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return int(result.RowsAffected), nil
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

type reportModel struct {
	ReportID    string    `gorm:"column:report_id;primaryKey"`
	DraftID     string    `gorm:"column:draft_id"`
	Filename    string    `gorm:"column:filename"`
	PatientName string    `gorm:"column:patient_name"`
	PanelCodes  string    `gorm:"column:panel_codes"`
	SizeBytes   int64     `gorm:"column:size_bytes"`
	Pages       int       `gorm:"column:pages"`
	GeneratedAt time.Time `gorm:"column:generated_at"`
	Content     []byte    `gorm:"column:content"`
}

func (reportModel) TableName() string {
	return "report_records"
}

func (m reportModel) toEntity() entities.Report {
	var codes []string
	if m.PanelCodes != "" {
		codes = strings.Split(m.PanelCodes, ",")
	}
	return entities.Report{
		ReportID:    m.ReportID,
		DraftID:     m.DraftID,
		Filename:    m.Filename,
		PatientName: m.PatientName,
		PanelCodes:  codes,
		SizeBytes:   m.SizeBytes,
		Pages:       m.Pages,
		GeneratedAt: m.GeneratedAt,
	}
}

func reportModelFromRecord(record ports.ReportRecord) reportModel {
	return reportModel{
		ReportID:    strings.TrimSpace(record.Report.ReportID),
		DraftID:     record.Report.DraftID,
		Filename:    record.Report.Filename,
		PatientName: record.Report.PatientName,
		PanelCodes:  strings.Join(record.Report.PanelCodes, ","),
		SizeBytes:   record.Report.SizeBytes,
		Pages:       record.Report.Pages,
		GeneratedAt: record.Report.GeneratedAt.UTC(),
		Content:     record.Content,
	}
}

type idempotencyModel struct {
	Key             string    `gorm:"column:key;primaryKey"`
	RequestHash     string    `gorm:"column:request_hash"`
	ResponsePayload []byte    `gorm:"column:response_payload"`
	ExpiresAt       time.Time `gorm:"column:expires_at"`
}

func (idempotencyModel) TableName() string {
	return "report_idempotency"
}

func (m idempotencyModel) toPort() ports.IdempotencyRecord {
	return ports.IdempotencyRecord{
		Key:             m.Key,
		RequestHash:     m.RequestHash,
		ResponsePayload: m.ResponsePayload,
		ExpiresAt:       m.ExpiresAt,
	}
}

func idempotencyModelFromPort(record ports.IdempotencyRecord) idempotencyModel {
	return idempotencyModel{
		Key:             strings.TrimSpace(record.Key),
		RequestHash:     record.RequestHash,
		ResponsePayload: record.ResponsePayload,
		ExpiresAt:       record.ExpiresAt.UTC(),
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
