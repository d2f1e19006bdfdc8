package queries

import (
	"context"
	"time"

	"table-booking/internal/pkg/clock"
	"table-booking/internal/pkg/errs"
	"table-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const recentRewardsLimit = 5

type RewardQueries interface {
	List(ctx context.Context, actor shared.Actor, after *Cursor, limit int) ([]*RewardView, *Cursor, error)
	Summary(ctx context.Context, actor shared.Actor) (*RewardsSummaryView, error)
}

type RewardTotals struct {
	TotalPoints   int
	MonthlyPoints int
	TotalRewards  int
}

type RewardReadStore interface {
	FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*RewardView, error)
	FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*RewardView, error)
	Totals(ctx context.Context, userID uuid.UUID, monthStart time.Time) (*RewardTotals, error)
}

type rewardQueriesImpl struct {
	store    RewardReadStore
	clock    clock.Clock
	location *time.Location
}

func NewRewardQueries(store RewardReadStore, clk clock.Clock, loc *time.Location) RewardQueries {
	if loc == nil {
		loc = time.UTC
	}
	return &rewardQueriesImpl{store: store, clock: clk, location: loc}
}

func (q *rewardQueriesImpl) List(ctx context.Context, actor shared.Actor, after *Cursor, limit int) ([]*RewardView, *Cursor, error) {
	limit = ValidateLimit(limit)
	fetch := int32(limit + 1) // #nosec G115 -- bounded by MaxListLimit

	var (
		items []*RewardView
		err   error
	)
	if after == nil || after.After == "" {
		items, err = q.store.FindByUserFirstPage(ctx, actor.ID, fetch)
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(after.After)
		if derr != nil {
			return nil, nil, errs.Mark(derr, errs.ErrInvalidRequest)
		}
		items, err = q.store.FindByUserKeyset(ctx, actor.ID, lastCreatedAt, lastID, fetch)
	}
	if err != nil {
		return nil, nil, mapReadErr(err, "reward not found")
	}

	items, next := trimPage(items, limit, func(v *RewardView) (time.Time, uuid.UUID) {
		return v.CreatedAt, v.ID
	})
	return items, next, nil
}

func (q *rewardQueriesImpl) Summary(ctx context.Context, actor shared.Actor) (*RewardsSummaryView, error) {
	totals, err := q.store.Totals(ctx, actor.ID, MonthStart(q.clock.Now(), q.location))
	if err != nil {
		return nil, mapReadErr(err, "user not found")
	}

	recent, err := q.store.FindByUserFirstPage(ctx, actor.ID, recentRewardsLimit)
	if err != nil {
		return nil, mapReadErr(err, "reward not found")
	}

	return &RewardsSummaryView{
		TotalPoints:   totals.TotalPoints,
		MonthlyPoints: totals.MonthlyPoints,
		TotalRewards:  totals.TotalRewards,
		RecentRewards: recent,
	}, nil
}

// MonthStart is the first instant of now's calendar month in loc.
func MonthStart(now time.Time, loc *time.Location) time.Time {
	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
}
