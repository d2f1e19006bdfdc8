package repository

import (
	"context"

	"table-booking/internal/domain/restaurant"
	"table-booking/internal/infra"
	"table-booking/internal/infra/repository/converter"
	sqlc "table-booking/internal/infra/sqlc/generated"
	"table-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RestaurantWriteQueries interface {
	CreateRestaurant(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRestaurantParams) (uuid.UUID, error)
	UpdateRestaurant(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRestaurantParams) (int64, error)
	GetRestaurantByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Restaurants, error)
}

type RestaurantRepository struct {
	queries RestaurantWriteQueries
}

func NewRestaurantRepository(queries RestaurantWriteQueries) *RestaurantRepository {
	return &RestaurantRepository{
		queries: queries,
	}
}

func (r *RestaurantRepository) Create(ctx context.Context, tx sqlc.DBTX, rest *restaurant.Restaurant) (uuid.UUID, error) {
	id, err := r.queries.CreateRestaurant(ctx, tx, converter.RestaurantToCreateParams(rest))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create restaurant", err)
	}
	return id, nil
}

func (r *RestaurantRepository) Update(ctx context.Context, tx sqlc.DBTX, rest *restaurant.Restaurant) error {
	affected, err := r.queries.UpdateRestaurant(ctx, tx, converter.RestaurantToUpdateParams(rest))
	if err != nil {
		return infra.WrapRepoErr("failed to update restaurant", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("restaurant not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RestaurantRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*restaurant.Restaurant, error) {
	row, err := r.queries.GetRestaurantByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("restaurant not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find restaurant", err)
	}
	return converter.RestaurantFromInfra(row), nil
}
