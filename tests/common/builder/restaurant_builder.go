//go:build unit || e2e

package builder

import (
	"time"

	"table-booking/internal/domain/restaurant"
	"table-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type RestaurantBuilder struct {
	ID          uuid.UUID
	Name        string
	Cuisine     string
	Location    string
	Description string
	ImageURL    string
	Capacity    int
	AdminID     *uuid.UUID
	CreatedAt   time.Time
}

func NewRestaurantBuilder() *RestaurantBuilder {
	return &RestaurantBuilder{
		ID:          uuid.New(),
		Name:        "Test Bistro",
		Cuisine:     "French",
		Location:    "Shibuya",
		Description: "Seasonal tasting menu",
		Capacity:    40,
		CreatedAt:   time.Now(),
	}
}

func (r *RestaurantBuilder) With(mutate func(*RestaurantBuilder)) *RestaurantBuilder {
	mutate(r)
	return r
}

func (r *RestaurantBuilder) attributes() restaurant.Attributes {
	return restaurant.Attributes{
		Name:        r.Name,
		Cuisine:     r.Cuisine,
		Location:    r.Location,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Capacity:    r.Capacity,
		AdminID:     r.AdminID,
	}
}

// Build methods
func (r *RestaurantBuilder) BuildDomain() *restaurant.Restaurant {
	return restaurant.ReconstructRestaurant(r.ID, r.attributes(), r.CreatedAt, r.CreatedAt)
}

func (r *RestaurantBuilder) BuildView() *queries.RestaurantView {
	return &queries.RestaurantView{
		ID:          r.ID,
		Name:        r.Name,
		Cuisine:     r.Cuisine,
		Location:    r.Location,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Capacity:    r.Capacity,
		AdminID:     r.AdminID,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.CreatedAt,
	}
}

// Fluent builder methods
func (r *RestaurantBuilder) WithCapacity(capacity int) *RestaurantBuilder {
	r.Capacity = capacity
	return r
}

func (r *RestaurantBuilder) WithAdmin(adminID uuid.UUID) *RestaurantBuilder {
	r.AdminID = &adminID
	return r
}

func (r *RestaurantBuilder) WithName(name string) *RestaurantBuilder {
	r.Name = name
	return r
}
