package queries

import (
	"context"
	"time"

	"table-booking/internal/pkg/errs"
	"table-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*BookingView, error)
	ListMine(ctx context.Context, actor shared.Actor, after *Cursor, limit int) ([]*BookingListItem, *Cursor, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*BookingListItem, error)
	FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, mapReadErr(err, "booking not found")
	}
	if !shared.CanActOnBooking(actor, view.UserID, view.RestaurantAdminID) {
		return nil, errs.Mark(errs.New("not allowed to view booking"), errs.ErrForbidden)
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListMine(ctx context.Context, actor shared.Actor, after *Cursor, limit int) ([]*BookingListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	fetch := int32(limit + 1) // #nosec G115 -- bounded by MaxListLimit

	var (
		items []*BookingListItem
		err   error
	)
	if after == nil || after.After == "" {
		items, err = q.store.FindByUserFirstPage(ctx, actor.ID, fetch)
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(after.After)
		if derr != nil {
			return nil, nil, errs.Mark(derr, errs.ErrInvalidRequest)
		}
		items, err = q.store.FindByUserKeyset(ctx, actor.ID, lastCreatedAt, lastID, fetch)
	}
	if err != nil {
		return nil, nil, mapReadErr(err, "booking not found")
	}

	items, next := trimPage(items, limit, func(v *BookingListItem) (time.Time, uuid.UUID) {
		return v.CreatedAt, v.ID
	})
	return items, next, nil
}
