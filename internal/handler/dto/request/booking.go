package request

import (
	"table-booking/internal/pkg/ptr"
	"table-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

// CreateBookingRequest leaves range checks to the booking engine so every
// violation is reported with the same error shape.
type CreateBookingRequest struct {
	RestaurantID    uuid.UUID `json:"restaurant_id" binding:"required"`
	Date            string    `json:"date" binding:"required"`
	Time            string    `json:"time" binding:"required"`
	PartySize       int       `json:"party_size"`
	SpecialRequests *string   `json:"special_requests,omitempty"`
}

func (r *CreateBookingRequest) ToCommand(idempotencyKey *uuid.UUID) commands.RequestBookingRequest {
	return commands.RequestBookingRequest{
		RestaurantID:    r.RestaurantID,
		Date:            r.Date,
		Time:            r.Time,
		PartySize:       r.PartySize,
		SpecialRequests: ptr.Deref(r.SpecialRequests),
		IdempotencyKey:  idempotencyKey,
	}
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
