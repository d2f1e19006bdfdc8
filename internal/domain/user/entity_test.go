//go:build unit

package user_test

import (
	"strings"
	"testing"
	"time"

	"table-booking/internal/domain/user"
	"table-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {

		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("test@example.com")
		name, _ := user.NewName("Test User")
		expected := user.NewUser(email, name, "hashed_password", user.RoleCustomer)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.Nil(t, actual.LastLogin())
		assert.Equal(t, 0, actual.Points())
		assert.Equal(t, user.RoleCustomer, actual.Role())
	})

	t.Run("メールアドレス検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "有効なメールアドレスOK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "空のメールアドレスNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "無効な形式NG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "@なしNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("名前検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "100文字OK",
				mutate: func(b *builder.UserBuilder) { b.WithName(strings.Repeat("a", 100)) },
			},
			{
				name:   "101文字NG",
				mutate: func(b *builder.UserBuilder) { b.WithName(strings.Repeat("a", 101)) },
				errIs:  user.ErrNameTooLong,
			},
			{
				name:   "空白のみNG",
				mutate: func(b *builder.UserBuilder) { b.WithName("   ") },
				errIs:  user.ErrEmptyName,
			},
		})
	})

	t.Run("ロール検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "customer ロールOK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("customer") },
			},
			{
				name:   "restaurant_manager ロールOK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("restaurant_manager") },
			},
			{
				name:   "admin ロールOK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("admin") },
			},
			{
				name:   "無効なロールNG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("operator") },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "空のロールNG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})

	t.Run("ロール変更", func(t *testing.T) {
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
		require.NoError(t, u.ChangeRole(user.RoleRestaurantManager, now))
		assert.Equal(t, user.RoleRestaurantManager, u.Role())
		assert.Equal(t, now, u.UpdatedAt())

		err = u.ChangeRole(user.Role("owner"), now)
		require.ErrorIs(t, err, user.ErrInvalidRole)
		assert.Equal(t, user.RoleRestaurantManager, u.Role())
	})

	t.Run("メールアドレスは小文字に正規化", func(t *testing.T) {
		email, err := user.NewEmail("  Guest@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, "guest@example.com", email.Value())
	})

	t.Run("パスワード長", func(t *testing.T) {
		_, err := user.NewPassword(strings.Repeat("a", user.MinPasswordLength-1))
		require.ErrorIs(t, err, user.ErrPasswordTooWeak)

		_, err = user.NewPassword(strings.Repeat("a", user.MinPasswordLength))
		require.NoError(t, err)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {

			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
