package response

import (
	"time"

	"table-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type RewardResponse struct {
	ID             uuid.UUID  `json:"id"`
	BookingID      *uuid.UUID `json:"booking_id,omitempty"`
	RestaurantName *string    `json:"restaurant_name,omitempty"`
	PointsChange   int        `json:"points_change"`
	Reason         string     `json:"reason"`
	CreatedAt      time.Time  `json:"created_at"`
}

func FromRewardViews(items []*queries.RewardView) []*RewardResponse {
	res := make([]*RewardResponse, len(items))
	for i, it := range items {
		res[i] = &RewardResponse{
			ID:             it.ID,
			BookingID:      it.BookingID,
			RestaurantName: it.RestaurantName,
			PointsChange:   it.PointsChange,
			Reason:         it.Reason,
			CreatedAt:      it.CreatedAt,
		}
	}
	return res
}

type RewardListResponse struct {
	Rewards    []*RewardResponse `json:"rewards"`
	NextCursor string            `json:"next_cursor,omitempty"`
}

type RewardsSummaryResponse struct {
	TotalPoints   int               `json:"total_points"`
	MonthlyPoints int               `json:"monthly_points"`
	TotalRewards  int               `json:"total_rewards"`
	RecentRewards []*RewardResponse `json:"recent_rewards"`
}

func FromRewardsSummary(v *queries.RewardsSummaryView) *RewardsSummaryResponse {
	return &RewardsSummaryResponse{
		TotalPoints:   v.TotalPoints,
		MonthlyPoints: v.MonthlyPoints,
		TotalRewards:  v.TotalRewards,
		RecentRewards: FromRewardViews(v.RecentRewards),
	}
}

type ReminderSweepResponse struct {
	Date     string `json:"date"`
	Scanned  int    `json:"scanned"`
	Enqueued int    `json:"enqueued"`
}
