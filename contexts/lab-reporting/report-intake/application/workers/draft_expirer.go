package workers

import (
	"context"
	"log/slog"
	"time"

	"crystallab/contexts/lab-reporting/report-intake/application"
	"crystallab/contexts/lab-reporting/report-intake/ports"
)

// DraftExpirer sweeps drafts that crossed expires_at.
type DraftExpirer struct {
	Drafts ports.DraftRepository
	Clock  ports.Clock
	Logger *slog.Logger
}

func (e DraftExpirer) RunOnce(ctx context.Context) error {
	logger := application.ResolveLogger(e.Logger)
	now := time.Now().UTC()
	if e.Clock != nil {
		now = e.Clock.Now().UTC()
	}

	purged, err := e.Drafts.PurgeExpiredDrafts(ctx, now)
	if err != nil {
		logger.Error("draft expiry sweep failed",
			"event", "report_draft_expiry_failed",
			"module", "lab-reporting/report-intake",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}
	if purged > 0 {
		logger.Info("draft expiry sweep completed",
			"event", "report_draft_expiry_completed",
			"module", "lab-reporting/report-intake",
			"layer", "worker",
			"purged_count", purged,
		)
	}
	return nil
}
