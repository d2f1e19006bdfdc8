package converter

import (
	"table-booking/internal/domain/reward"
	sqlc "table-booking/internal/infra/sqlc/generated"
	"table-booking/internal/pkg/pgconv"
)

func RewardToInsertParams(e *reward.Entry) sqlc.InsertRewardParams {
	return sqlc.InsertRewardParams{
		ID:           e.ID(),
		UserID:       e.UserID(),
		BookingID:    pgconv.UUIDPtrToPgtype(e.BookingID()),
		PointsChange: pgconv.IntToInt32(e.PointsChange()),
		Reason:       e.Reason(),
		CreatedAt:    pgconv.TimeToPgtype(e.CreatedAt()),
	}
}
