package api

import (
	"net/http"

	resdto "table-booking/internal/handler/dto/response"
	"table-booking/internal/handler/httperr"
	"table-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RewardHandler struct {
	q queries.RewardQueries
}

func NewRewardHandler(q queries.RewardQueries) *RewardHandler {
	return &RewardHandler{q: q}
}

// @Summary List rewards
// @Description The caller's ledger, newest first
// @Tags rewards
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.RewardListResponse
// @Failure 400 {object} httperr.Response
// @Router /rewards [get]
func (h *RewardHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	cursor, limit := pageParams(c)

	items, next, err := h.q.List(c.Request.Context(), actor, cursor, limit)
	if err != nil {
		httperr.Abort(c, err, "Failed to list rewards")
		return
	}
	c.JSON(http.StatusOK, resdto.RewardListResponse{
		Rewards:    resdto.FromRewardViews(items),
		NextCursor: nextCursor(next),
	})
}

// @Summary Rewards summary
// @Description Totals, points earned this month and the five latest entries
// @Tags rewards
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.RewardsSummaryResponse
// @Router /rewards/summary [get]
func (h *RewardHandler) Summary(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	summary, err := h.q.Summary(c.Request.Context(), actor)
	if err != nil {
		httperr.Abort(c, err, "Failed to load rewards summary")
		return
	}
	c.JSON(http.StatusOK, resdto.FromRewardsSummary(summary))
}
