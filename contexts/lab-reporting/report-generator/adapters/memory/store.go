package memory

import (
	"bytes"
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"crystallab/contexts/lab-reporting/report-generator/domain/entities"
	domainerrors "crystallab/contexts/lab-reporting/report-generator/domain/errors"
	"crystallab/contexts/lab-reporting/report-generator/ports"

	"github.com/google/uuid"
)

type Store struct {
	mu sync.RWMutex

	reports     map[string]ports.ReportRecord
	idempotency map[string]ports.IdempotencyRecord
}

func NewStore() *Store {
	return &Store{
		reports:     make(map[string]ports.ReportRecord),
		idempotency: make(map[string]ports.IdempotencyRecord),
	}
}

func (s *Store) SaveReport(_ context.Context, record ports.ReportRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := strings.TrimSpace(record.Report.ReportID)
	if id == "" || len(record.Content) == 0 {
		return domainerrors.ErrInvalidInput
	}
	if existing, exists := s.reports[id]; exists {
		if !bytes.Equal(existing.Content, record.Content) {
			return domainerrors.ErrIdempotencyConflict
		}
		return nil
	}
	s.reports[id] = record
	return nil
}

func (s *Store) GetReport(_ context.Context, reportID string) (entities.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.reports[strings.TrimSpace(reportID)]
	if !ok {
		return entities.Report{}, domainerrors.ErrReportNotFound
	}
	return record.Report, nil
}

func (s *Store) GetReportContent(_ context.Context, reportID string) (ports.ReportRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.reports[strings.TrimSpace(reportID)]
	if !ok {
		return ports.ReportRecord{}, domainerrors.ErrReportNotFound
	}
	return ports.ReportRecord{
		Report:  record.Report,
		Content: append([]byte(nil), record.Content...),
	}, nil
}

func (s *Store) ListReports(_ context.Context, limit int, offset int) ([]entities.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	items := make([]entities.Report, 0, len(s.reports))
	for _, record := range s.reports {
		items = append(items, record.Report)
	}
	// Newest first; same-instant reports fall back to report id so the
	// order stays deterministic across calls.
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].GeneratedAt.Equal(items[j].GeneratedAt) {
			return items[i].ReportID < items[j].ReportID
		}
		return items[i].GeneratedAt.After(items[j].GeneratedAt)
	})
	if offset >= len(items) {
		return []entities.Report{}, nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return append([]entities.Report(nil), items[offset:end]...), nil
}

func (s *Store) GetRecord(_ context.Context, key string, now time.Time) (ports.IdempotencyRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.idempotency[strings.TrimSpace(key)]
	if !ok {
		return ports.IdempotencyRecord{}, false, nil
	}
	if !record.ExpiresAt.After(now.UTC()) {
		delete(s.idempotency, strings.TrimSpace(key))
		return ports.IdempotencyRecord{}, false, nil
	}
	return record, true, nil
}

func (s *Store) PutRecord(_ context.Context, record ports.IdempotencyRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.TrimSpace(record.Key)
	if key == "" {
		return domainerrors.ErrInvalidInput
	}
	if existing, ok := s.idempotency[key]; ok {
		if existing.RequestHash != record.RequestHash {
			return domainerrors.ErrIdempotencyConflict
		}
		if !bytes.Equal(existing.ResponsePayload, record.ResponsePayload) {
			return domainerrors.ErrIdempotencyConflict
		}
		return nil
	}
	s.idempotency[key] = record
	return nil
}

func (s *Store) PurgeExpiredRecords(_ context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	purged := 0
	cutoff := now.UTC()
	for key, record := range s.idempotency {
		if !record.ExpiresAt.After(cutoff) {
			delete(s.idempotency, key)
			purged++
		}
	}
	return purged, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
