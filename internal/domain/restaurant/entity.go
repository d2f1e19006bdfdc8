package restaurant

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrEmptyName          = errors.New("restaurant name cannot be empty")
	ErrNameTooLong        = errors.New("restaurant name is too long (max 100 characters)")
	ErrCuisineTooLong     = errors.New("cuisine is too long (max 50 characters)")
	ErrLocationTooLong    = errors.New("location is too long (max 200 characters)")
	ErrDescriptionTooLong = errors.New("description is too long (max 1000 characters)")
	ErrInvalidCapacity    = errors.New("capacity must be between 1 and 1000")
)

const (
	MaxNameLength        = 100
	MaxCuisineLength     = 50
	MaxLocationLength    = 200
	MaxDescriptionLength = 1000
	MinCapacity          = 1
	MaxCapacity          = 1000
)

type Restaurant struct {
	id          uuid.UUID
	name        string
	cuisine     string
	location    string
	description string
	imageURL    string
	capacity    int
	adminID     *uuid.UUID
	createdAt   time.Time
	updatedAt   time.Time
}

type Attributes struct {
	Name        string
	Cuisine     string
	Location    string
	Description string
	ImageURL    string
	Capacity    int
	AdminID     *uuid.UUID
}

func NewRestaurant(attrs Attributes, now time.Time) (*Restaurant, error) {
	r := &Restaurant{
		id:        uuid.New(),
		createdAt: now,
		updatedAt: now,
	}
	if err := r.apply(attrs); err != nil {
		return nil, err
	}
	return r, nil
}

func ReconstructRestaurant(id uuid.UUID, attrs Attributes, createdAt, updatedAt time.Time) *Restaurant {
	return &Restaurant{
		id:          id,
		name:        attrs.Name,
		cuisine:     attrs.Cuisine,
		location:    attrs.Location,
		description: attrs.Description,
		imageURL:    attrs.ImageURL,
		capacity:    attrs.Capacity,
		adminID:     attrs.AdminID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Update replaces the editable attributes. Existing bookings are not
// re-validated against a lowered capacity.
func (r *Restaurant) Update(attrs Attributes, now time.Time) error {
	if err := r.apply(attrs); err != nil {
		return err
	}
	r.updatedAt = now
	return nil
}

func (r *Restaurant) Attributes() Attributes {
	return Attributes{
		Name:        r.name,
		Cuisine:     r.cuisine,
		Location:    r.location,
		Description: r.description,
		ImageURL:    r.imageURL,
		Capacity:    r.capacity,
		AdminID:     r.adminID,
	}
}

// IsAdministeredBy reports whether userID manages this restaurant.
func (r *Restaurant) IsAdministeredBy(userID uuid.UUID) bool {
	return r.adminID != nil && *r.adminID == userID
}

func (r *Restaurant) apply(attrs Attributes) error {
	name := strings.TrimSpace(attrs.Name)
	switch {
	case name == "":
		return ErrEmptyName
	case utf8.RuneCountInString(name) > MaxNameLength:
		return ErrNameTooLong
	case utf8.RuneCountInString(attrs.Cuisine) > MaxCuisineLength:
		return ErrCuisineTooLong
	case utf8.RuneCountInString(attrs.Location) > MaxLocationLength:
		return ErrLocationTooLong
	case utf8.RuneCountInString(attrs.Description) > MaxDescriptionLength:
		return ErrDescriptionTooLong
	case attrs.Capacity < MinCapacity || attrs.Capacity > MaxCapacity:
		return ErrInvalidCapacity
	}

	r.name = name
	r.cuisine = strings.TrimSpace(attrs.Cuisine)
	r.location = strings.TrimSpace(attrs.Location)
	r.description = strings.TrimSpace(attrs.Description)
	r.imageURL = strings.TrimSpace(attrs.ImageURL)
	r.capacity = attrs.Capacity
	r.adminID = attrs.AdminID
	return nil
}

func (r *Restaurant) ID() uuid.UUID        { return r.id }
func (r *Restaurant) Name() string         { return r.name }
func (r *Restaurant) Cuisine() string      { return r.cuisine }
func (r *Restaurant) Location() string     { return r.location }
func (r *Restaurant) Description() string  { return r.description }
func (r *Restaurant) ImageURL() string     { return r.imageURL }
func (r *Restaurant) Capacity() int        { return r.capacity }
func (r *Restaurant) AdminID() *uuid.UUID  { return r.adminID }
func (r *Restaurant) CreatedAt() time.Time { return r.createdAt }
func (r *Restaurant) UpdatedAt() time.Time { return r.updatedAt }
