package repository

import (
	"context"

	"table-booking/internal/domain/booking"
	"table-booking/internal/infra"
	"table-booking/internal/infra/repository/converter"
	sqlc "table-booking/internal/infra/sqlc/generated"
	"table-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReminderWriteQueries interface {
	ListConfirmedBookingsOnDate(ctx context.Context, db sqlc.DBTX, bookingDate pgtype.Date) ([]sqlc.ListConfirmedBookingsOnDateRow, error)
	InsertBookingReminder(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertBookingReminderParams) (int64, error)
}

type ReminderRepository struct {
	queries ReminderWriteQueries
}

func NewReminderRepository(queries ReminderWriteQueries) *ReminderRepository {
	return &ReminderRepository{
		queries: queries,
	}
}

func (r *ReminderRepository) ConfirmedOn(ctx context.Context, tx sqlc.DBTX, date booking.Date) ([]shared.ReminderCandidate, error) {
	rows, err := r.queries.ListConfirmedBookingsOnDate(ctx, tx, converter.DateToPgtype(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list confirmed bookings", err)
	}

	candidates := make([]shared.ReminderCandidate, len(rows))
	for i, row := range rows {
		candidates[i] = shared.ReminderCandidate{
			BookingID:      row.ID,
			UserID:         row.UserID,
			RestaurantID:   row.RestaurantID,
			RestaurantName: row.RestaurantName,
			UserName:       row.UserName,
			UserEmail:      row.UserEmail,
			Date:           converter.DateFromPgtype(row.BookingDate).String(),
			Time:           row.BookingTime,
			PartySize:      int(row.PartySize),
		}
	}
	return candidates, nil
}

// Mark records the reminder for (booking, day); false means it was already sent that day.
func (r *ReminderRepository) Mark(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID, day booking.Date) (bool, error) {
	params := sqlc.InsertBookingReminderParams{
		BookingID:   bookingID,
		ReminderDay: converter.DateToPgtype(day),
	}

	inserted, err := r.queries.InsertBookingReminder(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to record booking reminder", err)
	}
	return inserted == 1, nil
}
