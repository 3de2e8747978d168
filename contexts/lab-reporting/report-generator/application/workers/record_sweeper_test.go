package workers

import (
	"context"
	"testing"
	"time"

	"crystallab/contexts/lab-reporting/report-generator/adapters/memory"
	"crystallab/contexts/lab-reporting/report-generator/ports"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func TestRecordSweeperPurgesOnlyExpiredRecords(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	if err := store.PutRecord(ctx, ports.IdempotencyRecord{
		Key:         "stale",
		RequestHash: "h1",
		ExpiresAt:   now.Add(-time.Minute),
	}); err != nil {
		t.Fatalf("put stale record: %v", err)
	}
	if err := store.PutRecord(ctx, ports.IdempotencyRecord{
		Key:         "live",
		RequestHash: "h2",
		ExpiresAt:   now.Add(time.Hour),
	}); err != nil {
		t.Fatalf("put live record: %v", err)
	}

	sweeper := RecordSweeper{Records: store, Clock: fixedClock{now: now}}
	if err := sweeper.RunOnce(ctx); err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	if _, found, err := store.GetRecord(ctx, "stale", now); err != nil || found {
		t.Fatalf("expected stale record purged, found=%v err=%v", found, err)
	}
	if _, found, err := store.GetRecord(ctx, "live", now); err != nil || !found {
		t.Fatalf("expected live record kept, found=%v err=%v", found, err)
	}
}

func TestRecordSweeperNoExpiredRecords(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	if err := store.PutRecord(ctx, ports.IdempotencyRecord{
		Key:         "live",
		RequestHash: "h1",
		ExpiresAt:   now.Add(time.Hour),
	}); err != nil {
		t.Fatalf("put record: %v", err)
	}

	sweeper := RecordSweeper{Records: store, Clock: fixedClock{now: now}}
	if err := sweeper.RunOnce(ctx); err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if _, found, err := store.GetRecord(ctx, "live", now); err != nil || !found {
		t.Fatalf("expected record kept, found=%v err=%v", found, err)
	}
}
