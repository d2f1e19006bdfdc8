package shared

import (
	"table-booking/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the authenticated caller, resolved once per request.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role.IsAdmin()
}

func (a Actor) Is(id uuid.UUID) bool {
	return a.ID != uuid.Nil && a.ID == id
}

// CanActOnBooking: owner, the restaurant's admin, or a system admin.
func CanActOnBooking(actor Actor, ownerID uuid.UUID, restaurantAdminID *uuid.UUID) bool {
	if actor.IsAdmin() || actor.Is(ownerID) {
		return true
	}
	return restaurantAdminID != nil && actor.Is(*restaurantAdminID)
}

// CanActOnRestaurant: the restaurant's admin or a system admin.
func CanActOnRestaurant(actor Actor, restaurantAdminID *uuid.UUID) bool {
	if actor.IsAdmin() {
		return true
	}
	return restaurantAdminID != nil && actor.Is(*restaurantAdminID)
}

// Notifier is poked after commit so queued jobs are picked up without waiting for the next poll.
type Notifier interface {
	Wake()
}

type NopNotifier struct{}

func (NopNotifier) Wake() {}
