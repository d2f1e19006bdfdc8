package readstore

import (
	"context"
	"time"

	"table-booking/internal/infra"
	sqlc "table-booking/internal/infra/sqlc/generated"
	"table-booking/internal/pkg/pgconv"
	"table-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type RewardViewQueries interface {
	ListRewardsByUserFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRewardsByUserFirstPageParams) ([]sqlc.ListRewardsByUserFirstPageRow, error)
	ListRewardsByUserKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRewardsByUserKeysetParams) ([]sqlc.ListRewardsByUserKeysetRow, error)
	GetRewardsSummary(ctx context.Context, db sqlc.DBTX, arg sqlc.GetRewardsSummaryParams) (sqlc.GetRewardsSummaryRow, error)
}

type RewardReadStore struct {
	queries RewardViewQueries
	db      sqlc.DBTX
}

func NewRewardReadStore(queries RewardViewQueries, db sqlc.DBTX) *RewardReadStore {
	return &RewardReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RewardReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.RewardView, error) {
	params := sqlc.ListRewardsByUserFirstPageParams{
		UserID: userID,
		Limit:  limit,
	}

	rows, err := r.queries.ListRewardsByUserFirstPage(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rewards first page", err)
	}

	result := make([]*queries.RewardView, len(rows))
	for i, row := range rows {
		result[i] = toRewardView(sqlc.ListRewardsByUserKeysetRow(row))
	}
	return result, nil
}

func (r *RewardReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.RewardView, error) {
	params := sqlc.ListRewardsByUserKeysetParams{
		UserID:    userID,
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		RowLimit:  limit,
	}

	rows, err := r.queries.ListRewardsByUserKeyset(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rewards keyset", err)
	}

	result := make([]*queries.RewardView, len(rows))
	for i, row := range rows {
		result[i] = toRewardView(row)
	}
	return result, nil
}

func (r *RewardReadStore) Totals(ctx context.Context, userID uuid.UUID, monthStart time.Time) (*queries.RewardTotals, error) {
	params := sqlc.GetRewardsSummaryParams{
		MonthStart: pgconv.TimeToPgtype(monthStart),
		UserID:     userID,
	}

	row, err := r.queries.GetRewardsSummary(ctx, r.db, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read rewards summary", err)
	}

	return &queries.RewardTotals{
		TotalPoints:   int(row.TotalPoints),
		MonthlyPoints: int(row.MonthlyPoints),
		TotalRewards:  int(row.TotalRewards),
	}, nil
}

func toRewardView(row sqlc.ListRewardsByUserKeysetRow) *queries.RewardView {
	return &queries.RewardView{
		ID:             row.ID,
		BookingID:      pgconv.UUIDPtrFromPgtype(row.BookingID),
		RestaurantName: pgconv.StringPtrFromPgtype(row.RestaurantName),
		PointsChange:   int(row.PointsChange),
		Reason:         row.Reason,
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
