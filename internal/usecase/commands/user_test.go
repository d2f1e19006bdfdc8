//go:build unit

package commands_test

import (
	"context"
	"testing"

	"table-booking/internal/domain/user"
	"table-booking/internal/pkg/errs"
	"table-booking/internal/usecase/commands"
	"table-booking/internal/usecase/shared"
	uowmock "table-booking/tests/mock/uow"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeRole(t *testing.T) {
	ctx := context.Background()
	mem := uowmock.NewMemory(nil)
	cmds := commands.NewUserCommands(mem, mem.UserReadStore())

	admin := mem.AddUser(uowmock.UserRow{Email: "admin@example.com", Name: "Admin", Role: "admin", IsActive: true})
	guest := mem.AddUser(uowmock.UserRow{Email: "guest@example.com", Name: "Guest", IsActive: true})
	adminActor := shared.Actor{ID: admin.ID, Role: user.RoleAdmin}

	t.Run("admin promotes a customer", func(t *testing.T) {
		view, err := cmds.ChangeRole(ctx, adminActor, guest.ID, "restaurant_manager")
		require.NoError(t, err)
		assert.Equal(t, "restaurant_manager", view.Role)
	})

	t.Run("non-admin is forbidden", func(t *testing.T) {
		_, err := cmds.ChangeRole(ctx, shared.Actor{ID: guest.ID, Role: user.RoleRestaurantManager}, guest.ID, "admin")
		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})

	t.Run("unknown role is invalid", func(t *testing.T) {
		_, err := cmds.ChangeRole(ctx, adminActor, guest.ID, "owner")
		assert.True(t, errs.Is(err, errs.ErrInvalidRequest))
	})

	t.Run("admin cannot demote themselves", func(t *testing.T) {
		_, err := cmds.ChangeRole(ctx, adminActor, admin.ID, "customer")
		assert.True(t, errs.Is(err, errs.ErrInvalidRequest))

		row, _ := mem.User(admin.ID)
		assert.Equal(t, "admin", row.Role)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := cmds.ChangeRole(ctx, adminActor, uuid.New(), "customer")
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}
