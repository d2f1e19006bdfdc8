package commands

import (
	"context"
	"log/slog"
	"time"

	"table-booking/internal/domain/booking"
	"table-booking/internal/pkg/clock"
	"table-booking/internal/usecase/shared"
)

type ReminderSweepResult struct {
	Date     string `json:"date"`
	Scanned  int    `json:"scanned"`
	Enqueued int    `json:"enqueued"`
}

type ReminderCommands interface {
	SendReminders(ctx context.Context) (*ReminderSweepResult, error)
}

type reminderUseCaseImpl struct {
	uow      shared.UnitOfWork
	notifier shared.Notifier
	clock    clock.Clock
	location *time.Location
}

func NewReminderUseCase(uow shared.UnitOfWork, notifier shared.Notifier, clk clock.Clock, loc *time.Location) ReminderCommands {
	if notifier == nil {
		notifier = shared.NopNotifier{}
	}
	if loc == nil {
		loc = time.UTC
	}
	return &reminderUseCaseImpl{uow: uow, notifier: notifier, clock: clk, location: loc}
}

// SendReminders queues one reminder per confirmed booking dated tomorrow.
// The (booking, today) marker makes repeated sweeps on one day a no-op.
func (uc *reminderUseCaseImpl) SendReminders(ctx context.Context) (*ReminderSweepResult, error) {
	now := uc.clock.Now()
	today := booking.Today(now, uc.location)
	tomorrow := today.AddDays(1)

	result := &ReminderSweepResult{Date: tomorrow.String()}
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result.Scanned, result.Enqueued = 0, 0

		candidates, err := tx.Reminders().ConfirmedOn(ctx, tx.DB(), tomorrow)
		if err != nil {
			return err
		}
		result.Scanned = len(candidates)

		for _, c := range candidates {
			marked, err := tx.Reminders().Mark(ctx, tx.DB(), c.BookingID, today)
			if err != nil {
				return err
			}
			if !marked {
				continue
			}

			event := BookingEvent{
				BookingID:      c.BookingID,
				UserID:         c.UserID,
				RestaurantID:   c.RestaurantID,
				RestaurantName: c.RestaurantName,
				UserName:       c.UserName,
				UserEmail:      c.UserEmail,
				Date:           c.Date,
				Time:           c.Time,
				PartySize:      c.PartySize,
				Status:         booking.StatusConfirmed.String(),
			}
			if err := enqueueBookingEvent(ctx, tx, shared.TopicBookingReminder, event, now); err != nil {
				return err
			}
			result.Enqueued++
		}
		return nil
	})
	if err != nil {
		return nil, classifyTxErr(err)
	}

	if result.Enqueued > 0 {
		uc.notifier.Wake()
	}
	slog.Info("reminder sweep finished",
		"date", result.Date,
		"scanned", result.Scanned,
		"enqueued", result.Enqueued)
	return result, nil
}
