package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"table-booking/internal/domain/auth"
	"table-booking/internal/domain/user"
	"table-booking/internal/infra"
	"table-booking/internal/pkg/errs"
	"table-booking/internal/pkg/password"
	"table-booking/internal/usecase/queries"
	"table-booking/internal/usecase/shared"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrEmailTaken           = errs.New("email already registered")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

// TokenIssuer signs access tokens. *jwt.Service satisfies it.
type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, role user.Role) (string, error)
}

type RegisterRequest struct {
	Email    string
	Password string
	Name     string
}

type LoginRequest struct {
	Email    string
	Password string
}

type LoginResult struct {
	User        *queries.AuthorizedUserView
	AccessToken string
}

type AuthCommands interface {
	Register(ctx context.Context, req RegisterRequest) (*queries.AuthorizedUserView, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow       shared.UnitOfWork
	readStore queries.UserReadStore
	tokens    TokenIssuer
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, tokens TokenIssuer) AuthCommands {
	return &authCommandsImpl{
		uow:       uow,
		readStore: readStore,
		tokens:    tokens,
	}
}

// Register creates a customer account. Elevated roles are granted later by an admin.
func (a *authCommandsImpl) Register(ctx context.Context, req RegisterRequest) (*queries.AuthorizedUserView, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, invalid(err)
	}
	pw, err := user.NewPassword(req.Password)
	if err != nil {
		return nil, invalid(err)
	}
	name, err := user.NewName(req.Name)
	if err != nil {
		return nil, invalid(err)
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	u := user.NewUser(email, name, hash, user.RoleCustomer)

	var userID uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, cerr := tx.Users().Create(ctx, tx.DB(), u)
		if cerr != nil {
			if infra.IsKind(cerr, infra.KindDuplicateKey) {
				return errs.Mark(ErrEmailTaken, errs.ErrConflict)
			}
			return cerr
		}
		userID = id
		return nil
	})
	if err != nil {
		return nil, classifyTxErr(err)
	}

	slog.Info("user registered", "user_id", userID)

	view, err := a.readStore.FindByID(ctx, userID)
	if err != nil {
		return nil, classifyTxErr(err)
	}
	return view, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	credentials, err := auth.NewCredentials(req.Email, req.Password)
	if err != nil {
		// malformed input is reported like a wrong password
		return nil, errs.Mark(ErrInvalidCredentials, ErrAuthenticationFailed)
	}

	view, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	token, err := a.tokens.GenerateToken(view.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), view.ID)
	})
	if err != nil {
		// login already succeeded; last_login is informational
		slog.Warn("failed to update last login", "user_id", view.ID, "error", err.Error())
	}

	return &LoginResult{
		User:        view,
		AccessToken: token,
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials auth.Credentials) (*queries.AuthorizedUserView, error) {
	view, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// same answer as a password mismatch so emails cannot be probed
			return nil, errs.Mark(ErrInvalidCredentials, ErrAuthenticationFailed)
		}
		return nil, classifyTxErr(err)
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, errs.Mark(ErrInvalidCredentials, ErrAuthenticationFailed)
	}

	if !view.IsActive {
		return nil, errs.Mark(ErrUserInactive, errs.ErrForbidden)
	}

	return view, nil
}
