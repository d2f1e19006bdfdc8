package reward

import (
	"time"

	"github.com/google/uuid"
)

const (
	// ConfirmationPoints is credited once per booking on its first confirmation.
	ConfirmationPoints = 10

	ReasonBookingConfirmed = "booking confirmed"
)

// Entry is one append-only row of the points ledger.
type Entry struct {
	id           uuid.UUID
	userID       uuid.UUID
	bookingID    *uuid.UUID
	pointsChange int
	reason       string
	createdAt    time.Time
}

// NewConfirmationEntry is the ledger row for a confirmed booking.
func NewConfirmationEntry(userID, bookingID uuid.UUID, now time.Time) *Entry {
	return &Entry{
		id:           uuid.New(),
		userID:       userID,
		bookingID:    &bookingID,
		pointsChange: ConfirmationPoints,
		reason:       ReasonBookingConfirmed,
		createdAt:    now,
	}
}

func ReconstructEntry(id, userID uuid.UUID, bookingID *uuid.UUID, pointsChange int, reason string, createdAt time.Time) *Entry {
	return &Entry{
		id:           id,
		userID:       userID,
		bookingID:    bookingID,
		pointsChange: pointsChange,
		reason:       reason,
		createdAt:    createdAt,
	}
}

func (e *Entry) ID() uuid.UUID         { return e.id }
func (e *Entry) UserID() uuid.UUID     { return e.userID }
func (e *Entry) BookingID() *uuid.UUID { return e.bookingID }
func (e *Entry) PointsChange() int     { return e.pointsChange }
func (e *Entry) Reason() string        { return e.reason }
func (e *Entry) CreatedAt() time.Time  { return e.createdAt }
