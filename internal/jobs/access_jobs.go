package jobs

import (
	"context"
	"time"

	"thesishub-backend/internal/logger"
)

// SweepExpirations expires approved access requests whose window has elapsed
func (jr *JobRunner) SweepExpirations() {
	jr.runWithRecovery("SweepExpirations", func() {
		ctx := context.Background()
		cfg := jr.config.Access

		count, err := jr.access.SweepExpirations(ctx, cfg.ExpirationDays, time.Now())
		if err != nil {
			logger.Error("Failed to sweep expirations", "error", err)
			return
		}
		logger.Info("Swept expired access requests", "count", count, "window_days", cfg.ExpirationDays)
	})
}

// SweepExpiringSoon warns admins about approved requests nearing expiry
func (jr *JobRunner) SweepExpiringSoon() {
	jr.runWithRecovery("SweepExpiringSoon", func() {
		ctx := context.Background()
		cfg := jr.config.Access

		count, err := jr.access.SweepExpiringSoon(ctx, cfg.WarnWindowDays, cfg.ExpirationDays, time.Now())
		if err != nil {
			logger.Error("Failed to sweep expiring-soon requests", "error", err)
			return
		}
		logger.Info("Warned about expiring access requests", "count", count, "warn_window_days", cfg.WarnWindowDays)
	})
}
