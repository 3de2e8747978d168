package workers

import (
	"context"
	"log/slog"
	"time"

	"crystallab/contexts/lab-reporting/report-generator/application"
	"crystallab/contexts/lab-reporting/report-generator/ports"
)

// RecordSweeper removes idempotency records that crossed expires_at.
type RecordSweeper struct {
	Records ports.IdempotencySweeper
	Clock   ports.Clock
	Logger  *slog.Logger
}

func (s RecordSweeper) RunOnce(ctx context.Context) error {
	logger := application.ResolveLogger(s.Logger)
	now := time.Now().UTC()
	if s.Clock != nil {
		now = s.Clock.Now().UTC()
	}

	purged, err := s.Records.PurgeExpiredRecords(ctx, now)
	if err != nil {
		logger.Error("idempotency record sweep failed",
			"event", "report_idempotency_sweep_failed",
			"module", "lab-reporting/report-generator",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}
	if purged > 0 {
		logger.Info("idempotency record sweep completed",
			"event", "report_idempotency_sweep_completed",
			"module", "lab-reporting/report-generator",
			"layer", "worker",
			"purged_count", purged,
		)
	}
	return nil
}
