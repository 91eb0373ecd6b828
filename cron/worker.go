package cron

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// VisitReaper ends tutorial visits that went quiet.
type VisitReaper interface {
	ReapIdle(maxIdle time.Duration) []string
}

// RunVisitReaper sweeps reaper once.
func RunVisitReaper(reaper VisitReaper, maxIdle time.Duration, logger *zap.Logger) int {
	reaped := reaper.ReapIdle(maxIdle)
	if len(reaped) > 0 {
		logger.Info("[VisitReaper] ended idle tutorial visits",
			zap.Int("count", len(reaped)),
			zap.Strings("installations", reaped),
		)
	}
	return len(reaped)
}

// StartVisitReaper sweeps every interval until ctx is done.
func StartVisitReaper(ctx context.Context, reaper VisitReaper, every, maxIdle time.Duration, logger *zap.Logger) {
	if logger == nil {
		logger = zap.L()
	}
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		logger.Info("[VisitReaper] started", zap.Duration("every", every), zap.Duration("maxIdle", maxIdle))

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				RunVisitReaper(reaper, maxIdle, logger)
			}
		}
	}()
}
