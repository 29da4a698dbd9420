package service

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// SessionSweeper periodically deletes sessions whose token has expired
type SessionSweeper struct {
	sessions SessionStore
	interval time.Duration
	logger   *zap.Logger
}

func NewSessionSweeper(sessions SessionStore, interval time.Duration, logger *zap.Logger) *SessionSweeper {
	return &SessionSweeper{
		sessions: sessions,
		interval: interval,
		logger:   logger,
	}
}

// Start runs the sweeper until ctx is cancelled
func (w *SessionSweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info("session sweeper started", zap.Duration("interval", w.interval))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("session sweeper stopped")
			return
		case <-ticker.C:
			w.Sweep(ctx)
		}
	}
}

// Sweep deletes expired sessions once and returns how many were removed
func (w *SessionSweeper) Sweep(ctx context.Context) int64 {
	removed, err := w.sessions.DeleteExpiredSessions(ctx, time.Now().UTC())
	if err != nil {
		w.logger.Error("failed to delete expired sessions", zap.Error(err))
		return 0
	}
	if removed > 0 {
		w.logger.Debug("expired sessions deleted", zap.Int64("count", removed))
	}
	return removed
}
