//go:build unit

package restaurant_test

import (
	"strings"
	"testing"
	"time"

	"table-booking/internal/domain/restaurant"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAttributes() restaurant.Attributes {
	return restaurant.Attributes{
		Name:        "Test Bistro",
		Cuisine:     "French",
		Location:    "Shibuya",
		Description: "Seasonal tasting menu",
		Capacity:    40,
	}
}

func TestNewRestaurant(t *testing.T) {
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("basic success case", func(t *testing.T) {
		attrs := validAttributes()
		attrs.Name = "  Test Bistro  "
		r, err := restaurant.NewRestaurant(attrs, now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, r.ID())
		assert.Equal(t, "Test Bistro", r.Name())
		assert.Equal(t, 40, r.Capacity())
		assert.Nil(t, r.AdminID())
		assert.Equal(t, now, r.CreatedAt())
		assert.Equal(t, now, r.UpdatedAt())
	})

	cases := []struct {
		name   string
		mutate func(*restaurant.Attributes)
		errIs  error
	}{
		{name: "empty name", mutate: func(a *restaurant.Attributes) { a.Name = " " }, errIs: restaurant.ErrEmptyName},
		{name: "name 100 chars OK", mutate: func(a *restaurant.Attributes) { a.Name = strings.Repeat("n", 100) }},
		{name: "name 101 chars", mutate: func(a *restaurant.Attributes) { a.Name = strings.Repeat("n", 101) }, errIs: restaurant.ErrNameTooLong},
		{name: "cuisine too long", mutate: func(a *restaurant.Attributes) { a.Cuisine = strings.Repeat("c", 51) }, errIs: restaurant.ErrCuisineTooLong},
		{name: "location too long", mutate: func(a *restaurant.Attributes) { a.Location = strings.Repeat("l", 201) }, errIs: restaurant.ErrLocationTooLong},
		{name: "description too long", mutate: func(a *restaurant.Attributes) { a.Description = strings.Repeat("d", 1001) }, errIs: restaurant.ErrDescriptionTooLong},
		{name: "capacity 1 OK", mutate: func(a *restaurant.Attributes) { a.Capacity = 1 }},
		{name: "capacity 0", mutate: func(a *restaurant.Attributes) { a.Capacity = 0 }, errIs: restaurant.ErrInvalidCapacity},
		{name: "capacity 1001", mutate: func(a *restaurant.Attributes) { a.Capacity = 1001 }, errIs: restaurant.ErrInvalidCapacity},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			attrs := validAttributes()
			c.mutate(&attrs)
			r, err := restaurant.NewRestaurant(attrs, now)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				require.Nil(t, r)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, r)
		})
	}
}

func TestRestaurantUpdate(t *testing.T) {
	created := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	adminID := uuid.New()
	attrs := validAttributes()
	attrs.AdminID = &adminID
	r := restaurant.ReconstructRestaurant(uuid.New(), attrs, created, created)

	assert.True(t, r.IsAdministeredBy(adminID))
	assert.False(t, r.IsAdministeredBy(uuid.New()))

	t.Run("invalid update leaves state untouched", func(t *testing.T) {
		bad := r.Attributes()
		bad.Capacity = 0
		require.ErrorIs(t, r.Update(bad, created.Add(time.Hour)), restaurant.ErrInvalidCapacity)
		assert.Equal(t, 40, r.Capacity())
		assert.Equal(t, created, r.UpdatedAt())
	})

	t.Run("valid update", func(t *testing.T) {
		next := r.Attributes()
		next.Capacity = 12
		next.Cuisine = "Italian"
		later := created.Add(2 * time.Hour)
		require.NoError(t, r.Update(next, later))
		assert.Equal(t, 12, r.Capacity())
		assert.Equal(t, "Italian", r.Cuisine())
		assert.Equal(t, later, r.UpdatedAt())
		assert.Equal(t, created, r.CreatedAt())
	})
}
