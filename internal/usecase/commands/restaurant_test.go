//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"table-booking/internal/domain/user"
	"table-booking/internal/pkg/clock"
	"table-booking/internal/pkg/errs"
	"table-booking/internal/usecase/commands"
	"table-booking/internal/usecase/shared"
	uowmock "table-booking/tests/mock/uow"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestRestaurantCommands(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))
	mem := uowmock.NewMemory(clk.Now)
	cmds := restaurantCommands(mem, clk)

	adminRow := mem.AddUser(uowmock.UserRow{Email: "admin@example.com", Name: "Admin", Role: "admin", IsActive: true})
	managerRow := mem.AddUser(uowmock.UserRow{Email: "m@example.com", Name: "M", Role: "restaurant_manager", IsActive: true})
	otherRow := mem.AddUser(uowmock.UserRow{Email: "m2@example.com", Name: "M2", Role: "restaurant_manager", IsActive: true})
	guestRow := mem.AddUser(uowmock.UserRow{Email: "g@example.com", Name: "G", IsActive: true})

	admin := shared.Actor{ID: adminRow.ID, Role: user.RoleAdmin}
	manager := shared.Actor{ID: managerRow.ID, Role: user.RoleRestaurantManager}
	other := shared.Actor{ID: otherRow.ID, Role: user.RoleRestaurantManager}

	var restaurantID uuid.UUID

	t.Run("admin creates a restaurant", func(t *testing.T) {
		view, err := cmds.Create(ctx, admin, commands.RestaurantInput{
			Name:     "Sushi Ko",
			Cuisine:  "Japanese",
			Capacity: 12,
			AdminID:  &managerRow.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, "Sushi Ko", view.Name)
		assert.Equal(t, 12, view.Capacity)
		require.NotNil(t, view.AdminID)
		assert.Equal(t, managerRow.ID, *view.AdminID)
		restaurantID = view.ID
	})

	t.Run("only admins create", func(t *testing.T) {
		_, err := cmds.Create(ctx, manager, commands.RestaurantInput{Name: "X", Capacity: 1})
		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})

	t.Run("invalid attributes", func(t *testing.T) {
		_, err := cmds.Create(ctx, admin, commands.RestaurantInput{Name: "X", Capacity: 0})
		assert.True(t, errs.Is(err, errs.ErrInvalidRequest))
	})

	t.Run("customer cannot be restaurant admin", func(t *testing.T) {
		_, err := cmds.Create(ctx, admin, commands.RestaurantInput{Name: "X", Capacity: 4, AdminID: &guestRow.ID})
		assert.True(t, errs.Is(err, commands.ErrInvalidRestaurantAdmin))
		assert.True(t, errs.Is(err, errs.ErrInvalidRequest))
	})

	t.Run("manager patches their restaurant", func(t *testing.T) {
		clk.Add(time.Hour)
		view, err := cmds.Update(ctx, manager, restaurantID, commands.RestaurantPatch{
			Description: strPtr("Omakase only"),
			AdminID:     &otherRow.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, "Omakase only", view.Description)
		assert.Equal(t, "Sushi Ko", view.Name)
		assert.Equal(t, 12, view.Capacity)
		// managers cannot hand the restaurant over
		assert.Equal(t, managerRow.ID, *view.AdminID)
		assert.Equal(t, clk.Now(), view.UpdatedAt)
	})

	t.Run("other managers are forbidden", func(t *testing.T) {
		_, err := cmds.Update(ctx, other, restaurantID, commands.RestaurantPatch{Name: strPtr("Mine")})
		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})

	t.Run("admin reassigns the manager", func(t *testing.T) {
		view, err := cmds.Update(ctx, admin, restaurantID, commands.RestaurantPatch{AdminID: &otherRow.ID})
		require.NoError(t, err)
		assert.Equal(t, otherRow.ID, *view.AdminID)
	})

	t.Run("missing restaurant", func(t *testing.T) {
		_, err := cmds.Update(ctx, admin, uuid.New(), commands.RestaurantPatch{Name: strPtr("x")})
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}
