//go:build unit || e2e

package builder

import (
	"time"

	"table-booking/internal/domain/booking"
	reqdto "table-booking/internal/handler/dto/request"
	"table-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	RestaurantID      uuid.UUID
	RestaurantName    string
	RestaurantAdminID *uuid.UUID
	Date              string
	Time              string
	PartySize         int
	Status            string
	SpecialRequests   string
	CreatedAt         time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		RestaurantID:   uuid.New(),
		RestaurantName: "Test Bistro",
		Date:           time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		Time:           "19:00",
		PartySize:      2,
		Status:         booking.StatusPending.String(),
		CreatedAt:      time.Now(),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() *booking.Booking {
	date, err := booking.ParseDate(b.Date)
	if err != nil {
		panic(err)
	}
	size, err := booking.NewPartySize(b.PartySize)
	if err != nil {
		panic(err)
	}
	requests, err := booking.NewSpecialRequests(b.SpecialRequests)
	if err != nil {
		panic(err)
	}
	return booking.ReconstructBooking(
		b.ID, b.UserID, b.RestaurantID,
		date,
		booking.MustParseSlot(b.Time),
		size,
		booking.Status(b.Status),
		requests,
		b.CreatedAt, b.CreatedAt,
	)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:                b.ID,
		UserID:            b.UserID,
		UserName:          "Test User",
		UserEmail:         "test@example.com",
		RestaurantID:      b.RestaurantID,
		RestaurantName:    b.RestaurantName,
		RestaurantAdminID: b.RestaurantAdminID,
		Date:              b.Date,
		Time:              b.Time,
		PartySize:         b.PartySize,
		Status:            b.Status,
		SpecialRequests:   b.SpecialRequests,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildDTO() reqdto.CreateBookingRequest {
	req := reqdto.CreateBookingRequest{
		RestaurantID: b.RestaurantID,
		Date:         b.Date,
		Time:         b.Time,
		PartySize:    b.PartySize,
	}
	if b.SpecialRequests != "" {
		s := b.SpecialRequests
		req.SpecialRequests = &s
	}
	return req
}

// Fluent builder methods
func (b *BookingBuilder) WithUser(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithRestaurant(restaurantID uuid.UUID) *BookingBuilder {
	b.RestaurantID = restaurantID
	return b
}

func (b *BookingBuilder) WithRestaurantAdmin(adminID uuid.UUID) *BookingBuilder {
	b.RestaurantAdminID = &adminID
	return b
}

func (b *BookingBuilder) WithDate(date string) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) WithTime(t string) *BookingBuilder {
	b.Time = t
	return b
}

func (b *BookingBuilder) WithPartySize(n int) *BookingBuilder {
	b.PartySize = n
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status.String()
	return b
}
