package queries

import (
	"time"

	"github.com/google/uuid"
)

// RestaurantView represents read-optimized restaurant data
type RestaurantView struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Cuisine     string     `json:"cuisine"`
	Location    string     `json:"location"`
	Description string     `json:"description"`
	ImageURL    string     `json:"image_url"`
	Capacity    int        `json:"capacity"`
	AdminID     *uuid.UUID `json:"admin_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type RestaurantFilter struct {
	Search   string
	Cuisine  string
	Location string
}

type SlotAvailabilityView struct {
	Time      string `json:"time"`
	Booked    int    `json:"booked"`
	Remaining int    `json:"remaining"`
}

type AvailabilityView struct {
	RestaurantID    uuid.UUID              `json:"restaurant_id"`
	Date            string                 `json:"date"`
	PartySize       int                    `json:"party_size"`
	TotalCapacity   int                    `json:"total_capacity"`
	CurrentBookings int                    `json:"current_bookings"`
	AvailableTimes  []string               `json:"available_times"`
	Slots           []SlotAvailabilityView `json:"slots"`
}

// BookingView is a booking with its restaurant and guest resolved.
type BookingView struct {
	ID                uuid.UUID  `json:"id"`
	UserID            uuid.UUID  `json:"user_id"`
	UserName          string     `json:"user_name"`
	UserEmail         string     `json:"user_email"`
	RestaurantID      uuid.UUID  `json:"restaurant_id"`
	RestaurantName    string     `json:"restaurant_name"`
	RestaurantAdminID *uuid.UUID `json:"-"`
	Date              string     `json:"date"`
	Time              string     `json:"time"`
	PartySize         int        `json:"party_size"`
	Status            string     `json:"status"`
	SpecialRequests   string     `json:"special_requests"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type BookingListItem struct {
	ID              uuid.UUID `json:"id"`
	RestaurantID    uuid.UUID `json:"restaurant_id"`
	RestaurantName  string    `json:"restaurant_name"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	PartySize       int       `json:"party_size"`
	Status          string    `json:"status"`
	SpecialRequests string    `json:"special_requests"`
	CreatedAt       time.Time `json:"created_at"`
}

type RestaurantBookingItem struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	UserName        string    `json:"user_name"`
	UserEmail       string    `json:"user_email"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	PartySize       int       `json:"party_size"`
	Status          string    `json:"status"`
	SpecialRequests string    `json:"special_requests"`
	CreatedAt       time.Time `json:"created_at"`
}

type RewardView struct {
	ID             uuid.UUID  `json:"id"`
	BookingID      *uuid.UUID `json:"booking_id,omitempty"`
	RestaurantName *string    `json:"restaurant_name,omitempty"`
	PointsChange   int        `json:"points_change"`
	Reason         string     `json:"reason"`
	CreatedAt      time.Time  `json:"created_at"`
}

type RewardsSummaryView struct {
	TotalPoints   int           `json:"total_points"`
	MonthlyPoints int           `json:"monthly_points"`
	TotalRewards  int           `json:"total_rewards"`
	RecentRewards []*RewardView `json:"recent_rewards"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Role      string     `json:"role"`
	Points    int        `json:"points"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
