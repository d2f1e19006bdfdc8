//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"table-booking/internal/domain/user"
	"table-booking/internal/pkg/errs"
	"table-booking/internal/usecase/commands"
	commandsmock "table-booking/tests/mock/commands"
	uowmock "table-booking/tests/mock/uow"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockTokens *commandsmock.MockTokenIssuer
	mem        *uowmock.Memory
	cmds       commands.AuthCommands
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockTokens = commandsmock.NewMockTokenIssuer(s.mockCtrl)
	s.mem = uowmock.NewMemory(func() time.Time { return time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC) })
	s.cmds = commands.NewAuthCommands(s.mem, s.mem.UserReadStore(), s.mockTokens)
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *AuthCommandsTestSuite) register(email string) {
	_, err := s.cmds.Register(context.Background(), commands.RegisterRequest{Email: email, Password: "password123", Name: "Guest"})
	s.Require().NoError(err)
}

func (s *AuthCommandsTestSuite) TestRegister() {
	ctx := context.Background()

	s.Run("success: creates an active customer with zero points", func() {
		view, err := s.cmds.Register(ctx, commands.RegisterRequest{Email: "  Guest@Example.com ", Password: "password123", Name: " Guest "})
		s.Require().NoError(err)

		s.Equal("guest@example.com", view.Email)
		s.Equal("Guest", view.Name)
		s.Equal(user.RoleCustomer.String(), view.Role)
		s.Equal(0, view.Points)
		s.True(view.IsActive)

		row, ok := s.mem.User(view.ID)
		s.Require().True(ok)
		s.NotEqual("password123", row.PasswordHash)
	})

	s.Run("error: duplicate email conflicts", func() {
		_, err := s.cmds.Register(ctx, commands.RegisterRequest{Email: "guest@example.com", Password: "password123", Name: "Again"})
		s.True(errs.Is(err, errs.ErrConflict))
		s.True(errs.Is(err, commands.ErrEmailTaken))
	})

	s.Run("error: validation", func() {
		cases := []struct {
			name string
			req  commands.RegisterRequest
			is   error
		}{
			{name: "bad email", req: commands.RegisterRequest{Email: "nope", Password: "password123", Name: "A"}, is: user.ErrInvalidEmail},
			{name: "short password", req: commands.RegisterRequest{Email: "a@example.com", Password: "123", Name: "A"}, is: user.ErrPasswordTooWeak},
			{name: "empty name", req: commands.RegisterRequest{Email: "a@example.com", Password: "password123", Name: " "}, is: user.ErrEmptyName},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				_, err := s.cmds.Register(ctx, tc.req)
				s.True(errs.Is(err, errs.ErrInvalidRequest))
				s.True(errs.Is(err, tc.is))
			})
		}
	})
}

func (s *AuthCommandsTestSuite) TestLogin() {
	ctx := context.Background()
	s.register("guest@example.com")

	s.Run("success: issues a token and records last login", func() {
		s.mockTokens.EXPECT().GenerateToken(gomock.Any(), user.RoleCustomer).Return("signed", nil).Times(1)

		res, err := s.cmds.Login(ctx, commands.LoginRequest{Email: "GUEST@example.com", Password: "password123"})
		s.Require().NoError(err)
		s.Equal("signed", res.AccessToken)
		s.Equal("guest@example.com", res.User.Email)

		row, _ := s.mem.User(res.User.ID)
		s.NotNil(row.LastLogin)
	})

	s.Run("success: last login failure does not fail the login", func() {
		s.mockTokens.EXPECT().GenerateToken(gomock.Any(), gomock.Any()).Return("signed", nil).Times(1)
		s.mem.FailNext("Users.UpdateLastLogin", errors.New("db down"))

		_, err := s.cmds.Login(ctx, commands.LoginRequest{Email: "guest@example.com", Password: "password123"})
		s.NoError(err)
	})

	s.Run("error: wrong password and unknown email look the same", func() {
		_, err := s.cmds.Login(ctx, commands.LoginRequest{Email: "guest@example.com", Password: "wrong-password"})
		s.True(errs.Is(err, commands.ErrAuthenticationFailed))

		_, err = s.cmds.Login(ctx, commands.LoginRequest{Email: "nobody@example.com", Password: "password123"})
		s.True(errs.Is(err, commands.ErrAuthenticationFailed))

		_, err = s.cmds.Login(ctx, commands.LoginRequest{Email: "not-an-email", Password: "password123"})
		s.True(errs.Is(err, commands.ErrAuthenticationFailed))
	})

	s.Run("error: inactive user is forbidden", func() {
		s.register("gone@example.com")
		view, _, err := s.mem.UserReadStore().FindByEmail(ctx, "gone@example.com")
		s.Require().NoError(err)
		row, _ := s.mem.User(view.ID)
		row.IsActive = false
		s.mem.AddUser(row)

		_, err = s.cmds.Login(ctx, commands.LoginRequest{Email: "gone@example.com", Password: "password123"})
		s.True(errs.Is(err, errs.ErrForbidden))
		s.False(errs.Is(err, commands.ErrAuthenticationFailed))
	})

	s.Run("error: token signing failure", func() {
		s.mockTokens.EXPECT().GenerateToken(gomock.Any(), gomock.Any()).Return("", errors.New("no key")).Times(1)

		_, err := s.cmds.Login(ctx, commands.LoginRequest{Email: "guest@example.com", Password: "password123"})
		s.True(errs.Is(err, commands.ErrTokenGeneration))
	})
}
