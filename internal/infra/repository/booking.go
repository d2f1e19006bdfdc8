package repository

import (
	"context"
	"fmt"

	"table-booking/internal/domain/booking"
	"table-booking/internal/infra"
	"table-booking/internal/infra/repository/converter"
	sqlc "table-booking/internal/infra/sqlc/generated"
	"table-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	LockBookingSlot(ctx context.Context, db sqlc.DBTX, slotKey string) error
	GetSlotOccupancy(ctx context.Context, db sqlc.DBTX, arg sqlc.GetSlotOccupancyParams) (int64, error)
	GetDayOccupancy(ctx context.Context, db sqlc.DBTX, arg sqlc.GetDayOccupancyParams) ([]sqlc.GetDayOccupancyRow, error)
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (uuid.UUID, error)
	GetBookingForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
}

func NewBookingRepository(queries BookingWriteQueries) *BookingRepository {
	return &BookingRepository{
		queries: queries,
	}
}

// SlotKey identifies one bookable slot for advisory locking.
func SlotKey(restaurantID uuid.UUID, date booking.Date, slot booking.Slot) string {
	return fmt.Sprintf("booking-slot:%s:%s:%s", restaurantID, date, slot)
}

func (r *BookingRepository) LockSlot(ctx context.Context, tx sqlc.DBTX, restaurantID uuid.UUID, date booking.Date, slot booking.Slot) error {
	if err := r.queries.LockBookingSlot(ctx, tx, SlotKey(restaurantID, date, slot)); err != nil {
		return infra.WrapRepoErr("failed to lock booking slot", err)
	}
	return nil
}

func (r *BookingRepository) SlotOccupancy(ctx context.Context, tx sqlc.DBTX, restaurantID uuid.UUID, date booking.Date, slot booking.Slot) (int, error) {
	params := sqlc.GetSlotOccupancyParams{
		RestaurantID: restaurantID,
		BookingDate:  converter.DateToPgtype(date),
		BookingTime:  slot.String(),
	}

	booked, err := r.queries.GetSlotOccupancy(ctx, tx, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to read slot occupancy", err)
	}
	return int(booked), nil
}

func (r *BookingRepository) DayOccupancy(ctx context.Context, tx sqlc.DBTX, restaurantID uuid.UUID, date booking.Date) (booking.Occupancy, error) {
	params := sqlc.GetDayOccupancyParams{
		RestaurantID: restaurantID,
		BookingDate:  converter.DateToPgtype(date),
	}

	rows, err := r.queries.GetDayOccupancy(ctx, tx, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read day occupancy", err)
	}

	occ := make(booking.Occupancy, len(rows))
	for _, row := range rows {
		occ[row.BookingTime] = int(row.Booked)
	}
	return occ, nil
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (uuid.UUID, error) {
	id, err := r.queries.CreateBooking(ctx, tx, converter.BookingToCreateParams(b))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load booking for update", err)
	}

	b, err := converter.BookingFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking is malformed", err, infra.KindDBFailure)
	}
	return b, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	params := sqlc.UpdateBookingStatusParams{
		ID:        b.ID(),
		Status:    b.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(b.UpdatedAt()),
	}

	affected, err := r.queries.UpdateBookingStatus(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
