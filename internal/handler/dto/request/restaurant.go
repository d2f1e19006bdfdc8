package request

import (
	"table-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateRestaurantRequest struct {
	Name        string     `json:"name" binding:"required"`
	Cuisine     string     `json:"cuisine"`
	Location    string     `json:"location"`
	Description string     `json:"description"`
	ImageURL    string     `json:"image_url"`
	Capacity    int        `json:"capacity" binding:"required"`
	AdminID     *uuid.UUID `json:"admin_id,omitempty"`
}

func (r *CreateRestaurantRequest) ToCommand() commands.RestaurantInput {
	return commands.RestaurantInput{
		Name:        r.Name,
		Cuisine:     r.Cuisine,
		Location:    r.Location,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Capacity:    r.Capacity,
		AdminID:     r.AdminID,
	}
}

// UpdateRestaurantRequest: omitted fields keep their current value.
type UpdateRestaurantRequest struct {
	Name        *string    `json:"name"`
	Cuisine     *string    `json:"cuisine"`
	Location    *string    `json:"location"`
	Description *string    `json:"description"`
	ImageURL    *string    `json:"image_url"`
	Capacity    *int       `json:"capacity"`
	AdminID     *uuid.UUID `json:"admin_id"`
}

func (r *UpdateRestaurantRequest) ToCommand() commands.RestaurantPatch {
	return commands.RestaurantPatch{
		Name:        r.Name,
		Cuisine:     r.Cuisine,
		Location:    r.Location,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Capacity:    r.Capacity,
		AdminID:     r.AdminID,
	}
}
