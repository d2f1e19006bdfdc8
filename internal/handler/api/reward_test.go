//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"table-booking/internal/domain/user"
	"table-booking/internal/handler/api"
	resdto "table-booking/internal/handler/dto/response"
	"table-booking/internal/pkg/errs"
	"table-booking/internal/usecase/queries"
	"table-booking/internal/usecase/shared"
	httptestutil "table-booking/tests/common/httptest"
	commandsmock "table-booking/tests/mock/commands"
	queriesmock "table-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func actorRouter(actor *shared.Actor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if actor != nil {
			c.Set("user_id", actor.ID)
			c.Set("user_role", actor.Role)
		}
		c.Next()
	})
	return r
}

func TestRewardHandler(t *testing.T) {
	actor := shared.Actor{ID: uuid.New(), Role: user.RoleCustomer}

	t.Run("summary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := queriesmock.NewMockRewardQueries(ctrl)
		r := actorRouter(&actor)
		r.GET("/rewards/summary", api.NewRewardHandler(q).Summary)

		q.EXPECT().Summary(gomock.Any(), actor).Return(&queries.RewardsSummaryView{
			TotalPoints:   30,
			MonthlyPoints: 10,
			TotalRewards:  3,
			RecentRewards: []*queries.RewardView{{ID: uuid.New(), PointsChange: 10, Reason: "booking confirmed"}},
		}, nil)

		w := httptestutil.PerformRequest(t, r, http.MethodGet, "/rewards/summary", nil, "")

		var res resdto.RewardsSummaryResponse
		httptestutil.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.Equal(t, 30, res.TotalPoints)
		assert.Equal(t, 10, res.MonthlyPoints)
		require.Len(t, res.RecentRewards, 1)
		assert.Equal(t, "booking confirmed", res.RecentRewards[0].Reason)
	})

	t.Run("list pages with cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := queriesmock.NewMockRewardQueries(ctrl)
		r := actorRouter(&actor)
		r.GET("/rewards", api.NewRewardHandler(q).List)

		q.EXPECT().List(gomock.Any(), actor, (*queries.Cursor)(nil), queries.DefaultListLimit).
			Return([]*queries.RewardView{{ID: uuid.New(), PointsChange: 10}}, &queries.Cursor{After: "c2"}, nil)

		w := httptestutil.PerformRequest(t, r, http.MethodGet, "/rewards", nil, "")

		var res resdto.RewardListResponse
		httptestutil.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.Len(t, res.Rewards, 1)
		assert.Equal(t, "c2", res.NextCursor)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := actorRouter(nil)
		r.GET("/rewards/summary", api.NewRewardHandler(queriesmock.NewMockRewardQueries(ctrl)).Summary)

		w := httptestutil.PerformRequest(t, r, http.MethodGet, "/rewards/summary", nil, "")
		httptestutil.AssertErrorResponse(t, w, http.StatusUnauthorized, "Unauthorized")
	})
}

func TestUserHandlerChangeRole(t *testing.T) {
	admin := shared.Actor{ID: uuid.New(), Role: user.RoleAdmin}
	target := uuid.New()

	cases := []struct {
		name       string
		path       string
		body       any
		setup      func(m *commandsmock.MockUserCommands)
		wantStatus int
		wantMsg    string
	}{
		{
			name: "success",
			path: "/users/" + target.String() + "/role",
			body: map[string]string{"role": "restaurant_manager"},
			setup: func(m *commandsmock.MockUserCommands) {
				m.EXPECT().ChangeRole(gomock.Any(), admin, target, "restaurant_manager").
					Return(&queries.AuthorizedUserView{ID: target, Role: "restaurant_manager", IsActive: true}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown role",
			path:       "/users/" + target.String() + "/role",
			body:       map[string]string{"role": "owner"},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid request format",
		},
		{
			name:       "invalid id",
			path:       "/users/nope/role",
			body:       map[string]string{"role": "admin"},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid user id",
		},
		{
			name: "missing user",
			path: "/users/" + target.String() + "/role",
			body: map[string]string{"role": "admin"},
			setup: func(m *commandsmock.MockUserCommands) {
				m.EXPECT().ChangeRole(gomock.Any(), admin, target, "admin").
					Return(nil, errs.Mark(errs.New("user not found"), errs.ErrNotFound))
			},
			wantStatus: http.StatusNotFound,
			wantMsg:    "Not found",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := commandsmock.NewMockUserCommands(ctrl)
			if tc.setup != nil {
				tc.setup(m)
			}
			r := actorRouter(&admin)
			r.PATCH("/users/:id/role", api.NewUserHandler(m).ChangeRole)

			w := httptestutil.PerformRequest(t, r, http.MethodPatch, tc.path, tc.body, "")
			if tc.wantMsg != "" {
				httptestutil.AssertErrorResponse(t, w, tc.wantStatus, tc.wantMsg)
				return
			}
			var res resdto.UserResponse
			httptestutil.AssertSuccessResponse(t, w, tc.wantStatus, &res)
			assert.Equal(t, "restaurant_manager", res.Role)
		})
	}
}
