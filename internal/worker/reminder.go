package worker

import (
	"context"
	"log/slog"
	"time"

	"table-booking/internal/usecase/commands"
)

// ReminderScheduler runs the reminder sweep once at start and then on every tick.
type ReminderScheduler struct {
	commands commands.ReminderCommands
	interval time.Duration
	logger   *slog.Logger
}

func NewReminderScheduler(cmds commands.ReminderCommands, interval time.Duration) *ReminderScheduler {
	if interval <= 0 {
		interval = time.Hour
	}
	return &ReminderScheduler{
		commands: cmds,
		interval: interval,
		logger:   slog.With("component", "reminder"),
	}
}

func (s *ReminderScheduler) Run(ctx context.Context) error {
	s.logger.Info("reminder scheduler started", "interval", s.interval.String())

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("reminder scheduler stopped")
			return nil
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *ReminderScheduler) sweep(ctx context.Context) {
	if _, err := s.commands.SendReminders(ctx); err != nil && ctx.Err() == nil {
		s.logger.Warn("reminder sweep failed", "error", err.Error())
	}
}
