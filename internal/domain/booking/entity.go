package booking

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	id              uuid.UUID
	userID          uuid.UUID
	restaurantID    uuid.UUID
	date            Date
	slot            Slot
	partySize       PartySize
	status          Status
	specialRequests SpecialRequests
	createdAt       time.Time
	updatedAt       time.Time
}

func NewBooking(
	userID, restaurantID uuid.UUID,
	date Date,
	slot Slot,
	partySize PartySize,
	requests SpecialRequests,
	status Status,
	now time.Time,
) *Booking {
	return &Booking{
		id:              uuid.New(),
		userID:          userID,
		restaurantID:    restaurantID,
		date:            date,
		slot:            slot,
		partySize:       partySize,
		status:          status,
		specialRequests: requests,
		createdAt:       now,
		updatedAt:       now,
	}
}

func ReconstructBooking(
	id, userID, restaurantID uuid.UUID,
	date Date,
	slot Slot,
	partySize PartySize,
	status Status,
	requests SpecialRequests,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		userID:          userID,
		restaurantID:    restaurantID,
		date:            date,
		slot:            slot,
		partySize:       partySize,
		status:          status,
		specialRequests: requests,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// TransitionResult describes what a status change did.
type TransitionResult struct {
	From    Status
	To      Status
	Changed bool
}

// EnteredConfirmed is true only for the first move into confirmed.
func (r TransitionResult) EnteredConfirmed() bool {
	return r.Changed && r.To == StatusConfirmed
}

// Transition applies the booking lifecycle:
//
//	pending   -> confirmed | cancelled
//	confirmed -> cancelled
//	confirmed -> confirmed is a no-op
//	cancelled is terminal
func (b *Booking) Transition(to Status, now time.Time) (TransitionResult, error) {
	if !to.IsValid() {
		return TransitionResult{}, ErrInvalidStatus
	}

	from := b.status
	switch {
	case from == StatusCancelled, to == StatusPending:
		return TransitionResult{}, ErrIllegalTransition
	case from == StatusConfirmed && to == StatusConfirmed:
		return TransitionResult{From: from, To: to}, nil
	}

	b.status = to
	b.updatedAt = now
	return TransitionResult{From: from, To: to, Changed: true}, nil
}

func (b *Booking) IsActive() bool { return b.status.Holds() }

func (b *Booking) ID() uuid.UUID                    { return b.id }
func (b *Booking) UserID() uuid.UUID                { return b.userID }
func (b *Booking) RestaurantID() uuid.UUID          { return b.restaurantID }
func (b *Booking) Date() Date                       { return b.date }
func (b *Booking) Slot() Slot                       { return b.slot }
func (b *Booking) PartySize() PartySize             { return b.partySize }
func (b *Booking) Status() Status                   { return b.status }
func (b *Booking) SpecialRequests() SpecialRequests { return b.specialRequests }
func (b *Booking) CreatedAt() time.Time             { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time             { return b.updatedAt }
