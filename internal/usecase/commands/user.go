package commands

import (
	"context"
	"log/slog"

	"table-booking/internal/domain/user"
	"table-booking/internal/infra"
	"table-booking/internal/pkg/errs"
	"table-booking/internal/usecase/queries"
	"table-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound     = errs.New("user not found")
	ErrRoleChangeDenied = errs.New("only admins can change roles")
	ErrCannotDemoteSelf = errs.New("admins cannot change their own role")
)

type UserCommands interface {
	ChangeRole(ctx context.Context, actor shared.Actor, userID uuid.UUID, role string) (*queries.AuthorizedUserView, error)
}

type userCommandsImpl struct {
	uow       shared.UnitOfWork
	readStore queries.UserReadStore
}

func NewUserCommands(uow shared.UnitOfWork, readStore queries.UserReadStore) UserCommands {
	return &userCommandsImpl{
		uow:       uow,
		readStore: readStore,
	}
}

func (c *userCommandsImpl) ChangeRole(ctx context.Context, actor shared.Actor, userID uuid.UUID, role string) (*queries.AuthorizedUserView, error) {
	if !actor.IsAdmin() {
		return nil, errs.Mark(ErrRoleChangeDenied, errs.ErrForbidden)
	}
	newRole, err := user.NewRole(role)
	if err != nil {
		return nil, invalid(err)
	}
	if actor.Is(userID) && newRole != user.RoleAdmin {
		return nil, invalid(ErrCannotDemoteSelf)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		uerr := tx.Users().UpdateRole(ctx, tx.DB(), userID, newRole)
		if infra.IsKind(uerr, infra.KindNotFound) {
			return errs.Mark(ErrUserNotFound, errs.ErrNotFound)
		}
		return uerr
	})
	if err != nil {
		return nil, classifyTxErr(err)
	}

	slog.Info("user role changed", "user_id", userID, "role", newRole.String(), "actor_id", actor.ID)

	view, err := c.readStore.FindByID(ctx, userID)
	if err != nil {
		return nil, classifyTxErr(err)
	}
	return view, nil
}
