package repository

import (
	"context"

	"table-booking/internal/domain/reward"
	"table-booking/internal/infra"
	"table-booking/internal/infra/repository/converter"
	sqlc "table-booking/internal/infra/sqlc/generated"
)

type RewardWriteQueries interface {
	InsertReward(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertRewardParams) (int64, error)
}

type RewardRepository struct {
	queries RewardWriteQueries
}

func NewRewardRepository(queries RewardWriteQueries) *RewardRepository {
	return &RewardRepository{
		queries: queries,
	}
}

// Issue appends the entry unless (booking_id, reason) is already present.
func (r *RewardRepository) Issue(ctx context.Context, tx sqlc.DBTX, entry *reward.Entry) (bool, error) {
	inserted, err := r.queries.InsertReward(ctx, tx, converter.RewardToInsertParams(entry))
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert reward", err)
	}
	return inserted == 1, nil
}
