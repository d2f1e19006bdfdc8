package response

import (
	"time"

	"table-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RestaurantResponse struct {
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

func FromRestaurantView(v *queries.RestaurantView) *RestaurantResponse {
	var res RestaurantResponse
	_ = copier.Copy(&res, v)
	return &res
}

func FromRestaurantViews(vs []*queries.RestaurantView) []*RestaurantResponse {
	res := make([]*RestaurantResponse, len(vs))
	for i, v := range vs {
		res[i] = FromRestaurantView(v)
	}
	return res
}

type RestaurantListResponse struct {
	Restaurants []*RestaurantResponse `json:"restaurants"`
	NextCursor  string                `json:"next_cursor,omitempty"`
}

type SlotAvailabilityResponse struct {
	Time      string `json:"time"`
	Booked    int    `json:"booked"`
	Remaining int    `json:"remaining"`
}

type AvailabilityResponse struct {
	RestaurantID    uuid.UUID                  `json:"restaurant_id"`
	Date            string                     `json:"date"`
	PartySize       int                        `json:"party_size"`
	TotalCapacity   int                        `json:"total_capacity"`
	CurrentBookings int                        `json:"current_bookings"`
	AvailableTimes  []string                   `json:"available_times"`
	Slots           []SlotAvailabilityResponse `json:"slots"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	res := AvailabilityResponse{
		AvailableTimes: []string{},
		Slots:          []SlotAvailabilityResponse{},
	}
	_ = copier.Copy(&res, v)
	if res.AvailableTimes == nil {
		res.AvailableTimes = []string{}
	}
	return &res
}
