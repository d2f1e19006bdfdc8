package queries

import (
	"context"
	"time"

	"table-booking/internal/domain/booking"
	"table-booking/internal/infra"
	"table-booking/internal/pkg/errs"
	"table-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type RestaurantQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*RestaurantView, error)
	List(ctx context.Context, filter RestaurantFilter, after *Cursor, limit int) ([]*RestaurantView, *Cursor, error)
	Availability(ctx context.Context, id uuid.UUID, date string, partySize int) (*AvailabilityView, error)
	Bookings(ctx context.Context, actor shared.Actor, id uuid.UUID, date *string) ([]*RestaurantBookingItem, error)
}

type RestaurantReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RestaurantView, error)
	ListFirstPage(ctx context.Context, filter RestaurantFilter, limit int32) ([]*RestaurantView, error)
	ListKeyset(ctx context.Context, filter RestaurantFilter, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*RestaurantView, error)
	DayOccupancy(ctx context.Context, id uuid.UUID, date booking.Date) (booking.Occupancy, error)
	Bookings(ctx context.Context, id uuid.UUID, date *booking.Date) ([]*RestaurantBookingItem, error)
}

type restaurantQueriesImpl struct {
	store RestaurantReadStore
}

func NewRestaurantQueries(store RestaurantReadStore) RestaurantQueries {
	return &restaurantQueriesImpl{store: store}
}

func (q *restaurantQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*RestaurantView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, mapReadErr(err, "restaurant not found")
	}
	return view, nil
}

func (q *restaurantQueriesImpl) List(ctx context.Context, filter RestaurantFilter, after *Cursor, limit int) ([]*RestaurantView, *Cursor, error) {
	limit = ValidateLimit(limit)
	// fetch one extra row to detect the next page
	fetch := int32(limit + 1) // #nosec G115 -- bounded by MaxListLimit

	var (
		items []*RestaurantView
		err   error
	)
	if after == nil || after.After == "" {
		items, err = q.store.ListFirstPage(ctx, filter, fetch)
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(after.After)
		if derr != nil {
			return nil, nil, errs.Mark(derr, errs.ErrInvalidRequest)
		}
		items, err = q.store.ListKeyset(ctx, filter, lastCreatedAt, lastID, fetch)
	}
	if err != nil {
		return nil, nil, mapReadErr(err, "restaurant not found")
	}

	items, next := trimPage(items, limit, func(v *RestaurantView) (time.Time, uuid.UUID) {
		return v.CreatedAt, v.ID
	})
	return items, next, nil
}

// Availability reports per-slot remaining covers for a day. Party size
// defaults to 1 when not given.
func (q *restaurantQueriesImpl) Availability(ctx context.Context, id uuid.UUID, date string, partySize int) (*AvailabilityView, error) {
	day, err := booking.ParseDate(date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidRequest)
	}
	if partySize == 0 {
		partySize = booking.MinPartySize
	}
	size, err := booking.NewPartySize(partySize)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidRequest)
	}

	rest, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, mapReadErr(err, "restaurant not found")
	}

	occ, err := q.store.DayOccupancy(ctx, id, day)
	if err != nil {
		return nil, mapReadErr(err, "restaurant not found")
	}

	available := booking.AvailableTimes(rest.Capacity, occ, size.Value())

	slots := booking.DayAvailability(rest.Capacity, occ)
	slotViews := make([]SlotAvailabilityView, len(slots))
	for i, s := range slots {
		slotViews[i] = SlotAvailabilityView{
			Time:      s.Slot.String(),
			Booked:    s.Booked,
			Remaining: s.Remaining,
		}
	}

	return &AvailabilityView{
		RestaurantID:    rest.ID,
		Date:            day.String(),
		PartySize:       size.Value(),
		TotalCapacity:   rest.Capacity,
		CurrentBookings: occ.Total(),
		AvailableTimes:  available,
		Slots:           slotViews,
	}, nil
}

func (q *restaurantQueriesImpl) Bookings(ctx context.Context, actor shared.Actor, id uuid.UUID, date *string) ([]*RestaurantBookingItem, error) {
	rest, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, mapReadErr(err, "restaurant not found")
	}
	if !shared.CanActOnRestaurant(actor, rest.AdminID) {
		return nil, errs.Mark(errs.New("not allowed to view restaurant bookings"), errs.ErrForbidden)
	}

	var day *booking.Date
	if date != nil && *date != "" {
		d, derr := booking.ParseDate(*date)
		if derr != nil {
			return nil, errs.Mark(derr, errs.ErrInvalidRequest)
		}
		day = &d
	}

	items, err := q.store.Bookings(ctx, id, day)
	if err != nil {
		return nil, mapReadErr(err, "restaurant not found")
	}
	return items, nil
}

// mapReadErr turns repository kinds into the shared outcome taxonomy.
func mapReadErr(err error, notFoundMsg string) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(errs.Wrap(err, notFoundMsg), errs.ErrNotFound)
	case infra.IsKind(err, infra.KindUnavailable):
		return errs.Mark(err, errs.ErrUnavailable)
	default:
		return err
	}
}
