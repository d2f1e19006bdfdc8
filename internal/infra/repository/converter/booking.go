package converter

import (
	"table-booking/internal/domain/booking"
	sqlc "table-booking/internal/infra/sqlc/generated"
	"table-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ID:              b.ID(),
		UserID:          b.UserID(),
		RestaurantID:    b.RestaurantID(),
		BookingDate:     DateToPgtype(b.Date()),
		BookingTime:     b.Slot().String(),
		PartySize:       pgconv.IntToInt32(b.PartySize().Value()),
		Status:          b.Status().String(),
		SpecialRequests: b.SpecialRequests().String(),
		CreatedAt:       pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

// BookingFromInfra rebuilds the aggregate from a stored row. Rows are
// guarded by CHECK constraints, so parse failures mean a corrupt row.
func BookingFromInfra(row sqlc.Bookings) (*booking.Booking, error) {
	slot, err := booking.ParseSlot(row.BookingTime)
	if err != nil {
		return nil, err
	}
	partySize, err := booking.NewPartySize(int(row.PartySize))
	if err != nil {
		return nil, err
	}
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	requests, err := booking.NewSpecialRequests(row.SpecialRequests)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(
		row.ID,
		row.UserID,
		row.RestaurantID,
		DateFromPgtype(row.BookingDate),
		slot,
		partySize,
		status,
		requests,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func DateToPgtype(d booking.Date) pgtype.Date {
	return pgconv.DateToPgtype(d.Time())
}

func DateFromPgtype(pd pgtype.Date) booking.Date {
	if !pd.Valid {
		return booking.Date{}
	}
	return booking.DateOf(pd.Time)
}
