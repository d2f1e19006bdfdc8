package commands

import (
	"context"
	"encoding/json"
	"time"

	"table-booking/internal/domain/booking"
	"table-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// BookingEvent is the payload of every booking notification job.
type BookingEvent struct {
	BookingID      uuid.UUID `json:"booking_id"`
	UserID         uuid.UUID `json:"user_id"`
	RestaurantID   uuid.UUID `json:"restaurant_id"`
	RestaurantName string    `json:"restaurant_name,omitempty"`
	UserName       string    `json:"user_name,omitempty"`
	UserEmail      string    `json:"user_email,omitempty"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	PartySize      int       `json:"party_size"`
	Status         string    `json:"status,omitempty"`
}

func bookingEventOf(b *booking.Booking, restaurantName string) BookingEvent {
	return BookingEvent{
		BookingID:      b.ID(),
		UserID:         b.UserID(),
		RestaurantID:   b.RestaurantID(),
		RestaurantName: restaurantName,
		Date:           b.Date().String(),
		Time:           b.Slot().String(),
		PartySize:      b.PartySize().Value(),
		Status:         b.Status().String(),
	}
}

func enqueueBookingEvent(ctx context.Context, tx shared.Tx, topic string, event BookingEvent, runAt time.Time) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), shared.NotificationKindEmail, topic, payload, runAt)
}

func topicFor(status booking.Status) (string, bool) {
	switch status {
	case booking.StatusConfirmed:
		return shared.TopicBookingConfirmed, true
	case booking.StatusCancelled:
		return shared.TopicBookingCancelled, true
	default:
		return "", false
	}
}
