package booking

import (
	"time"

	"table-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

// Factory builds new bookings against the service calendar.
type Factory struct {
	Clock       clock.Clock
	Location    *time.Location
	AutoConfirm bool
}

func NewFactory(clock clock.Clock, loc *time.Location, autoConfirm bool) *Factory {
	if loc == nil {
		loc = time.UTC
	}
	return &Factory{
		Clock:       clock,
		Location:    loc,
		AutoConfirm: autoConfirm,
	}
}

func (f *Factory) Today() Date {
	return Today(f.Clock.Now(), f.Location)
}

// ValidateDate rejects days before today. Today itself is bookable.
func (f *Factory) ValidateDate(d Date) error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	if d.Before(f.Today()) {
		return ErrDateInPast
	}
	return nil
}

func (f *Factory) InitialStatus() Status {
	if f.AutoConfirm {
		return StatusConfirmed
	}
	return StatusPending
}

func (f *Factory) CreateBooking(
	userID, restaurantID uuid.UUID,
	date Date,
	slot Slot,
	partySize PartySize,
	requests SpecialRequests,
) (*Booking, error) {
	if err := f.ValidateDate(date); err != nil {
		return nil, err
	}
	if !slot.IsService() {
		return nil, ErrInvalidSlot
	}
	return NewBooking(userID, restaurantID, date, slot, partySize, requests, f.InitialStatus(), f.Clock.Now()), nil
}
