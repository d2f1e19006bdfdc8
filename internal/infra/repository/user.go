package repository

import (
	"context"

	"table-booking/internal/domain/user"
	"table-booking/internal/infra"
	sqlc "table-booking/internal/infra/sqlc/generated"
	"table-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (uuid.UUID, error)
	AddUserPoints(ctx context.Context, db sqlc.DBTX, arg sqlc.AddUserPointsParams) (int64, error)
	UpdateUserRole(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserRoleParams) (int64, error)
	UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{
		queries: queries,
	}
}

func (r *UserRepository) Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (uuid.UUID, error) {
	params := sqlc.CreateUserParams{
		Email:        u.Email().Value(),
		Name:         u.Name().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
	}

	id, err := r.queries.CreateUser(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

// AddPoints moves the denormalised total; callers pair it with a ledger insert.
func (r *UserRepository) AddPoints(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, points int) error {
	params := sqlc.AddUserPointsParams{
		Points: pgconv.IntToInt32(points),
		ID:     userID,
	}

	affected, err := r.queries.AddUserPoints(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to add user points", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) UpdateRole(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, role user.Role) error {
	params := sqlc.UpdateUserRoleParams{
		ID:   userID,
		Role: role.String(),
	}

	affected, err := r.queries.UpdateUserRole(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update user role", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error {
	err := r.queries.UpdateUserLastLogin(ctx, tx, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}
