//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"table-booking/internal/domain/user"
	"table-booking/internal/handler/api"
	resdto "table-booking/internal/handler/dto/response"
	"table-booking/internal/pkg/errs"
	"table-booking/internal/usecase/commands"
	"table-booking/internal/usecase/queries"
	"table-booking/internal/usecase/shared"
	"table-booking/tests/common/builder"
	httptestutil "table-booking/tests/common/httptest"
	commandsmock "table-booking/tests/mock/commands"
	queriesmock "table-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RestaurantHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRestaurantCommands
	mockQueries  *queriesmock.MockRestaurantQueries
	actor        shared.Actor
}

func TestRestaurantHandlerSuite(t *testing.T) {
	suite.Run(t, new(RestaurantHandlerTestSuite))
}

func (s *RestaurantHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRestaurantCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRestaurantQueries(s.mockCtrl)
	s.actor = shared.Actor{ID: uuid.New(), Role: user.RoleAdmin}

	h := api.NewRestaurantHandler(s.mockCommands, s.mockQueries)

	auth := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.actor.ID)
			c.Set("user_role", s.actor.Role)
		}
		c.Next()
	}
	g := s.router.Group("/restaurants", auth)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.GET("/:id/availability", h.Availability)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.GET("/:id/bookings", h.Bookings)
}

func (s *RestaurantHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *RestaurantHandlerTestSuite) TestList() {
	s.Run("success: filters and cursor are passed through", func() {
		view := builder.NewRestaurantBuilder().BuildView()
		filter := queries.RestaurantFilter{Search: "bistro", Cuisine: "French", Location: "Shibuya"}
		s.mockQueries.EXPECT().
			List(gomock.Any(), filter, &queries.Cursor{After: "abc"}, 5).
			Return([]*queries.RestaurantView{view}, &queries.Cursor{After: "next"}, nil)

		w := httptestutil.PerformRequest(s.T(), s.router, http.MethodGet,
			"/restaurants?search=bistro&cuisine=French&location=Shibuya&limit=5&after=abc", nil, "")

		var res resdto.RestaurantListResponse
		httptestutil.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Require().Len(res.Restaurants, 1)
		s.Equal(view.ID, res.Restaurants[0].ID)
		s.Equal("next", res.NextCursor)
	})
}

func (s *RestaurantHandlerTestSuite) TestGet() {
	s.Run("error: invalid id", func() {
		w := httptestutil.PerformRequest(s.T(), s.router, http.MethodGet, "/restaurants/not-a-uuid", nil, "")
		httptestutil.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid restaurant id")
	})

	s.Run("error: not found", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().Get(gomock.Any(), id).Return(nil, errs.Mark(errs.New("restaurant not found"), errs.ErrNotFound))

		w := httptestutil.PerformRequest(s.T(), s.router, http.MethodGet, "/restaurants/"+id.String(), nil, "")
		httptestutil.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Not found")
	})
}

func (s *RestaurantHandlerTestSuite) TestAvailability() {
	id := uuid.New()
	base := "/restaurants/" + id.String() + "/availability"

	s.Run("success", func() {
		view := &queries.AvailabilityView{
			RestaurantID:   id,
			Date:           "2030-01-11",
			PartySize:      4,
			TotalCapacity:  10,
			AvailableTimes: []string{"11:00", "11:30"},
		}
		s.mockQueries.EXPECT().Availability(gomock.Any(), id, "2030-01-11", 4).Return(view, nil)

		w := httptestutil.PerformRequest(s.T(), s.router, http.MethodGet, base+"?date=2030-01-11&party_size=4", nil, "")

		var res resdto.AvailabilityResponse
		httptestutil.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal([]string{"11:00", "11:30"}, res.AvailableTimes)
		s.Equal(10, res.TotalCapacity)
	})

	s.Run("success: party size is optional", func() {
		s.mockQueries.EXPECT().Availability(gomock.Any(), id, "2030-01-11", 0).Return(&queries.AvailabilityView{}, nil)

		w := httptestutil.PerformRequest(s.T(), s.router, http.MethodGet, base+"?date=2030-01-11", nil, "")
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("error: missing date", func() {
		w := httptestutil.PerformRequest(s.T(), s.router, http.MethodGet, base, nil, "")
		httptestutil.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "date is required")
	})

	s.Run("error: non-numeric party size", func() {
		w := httptestutil.PerformRequest(s.T(), s.router, http.MethodGet, base+"?date=2030-01-11&party_size=many", nil, "")
		httptestutil.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid party_size")
	})

	s.Run("error: rejected by query", func() {
		s.mockQueries.EXPECT().Availability(gomock.Any(), id, "tomorrow", 2).
			Return(nil, errs.Mark(errs.New("invalid date format"), errs.ErrInvalidRequest))

		w := httptestutil.PerformRequest(s.T(), s.router, http.MethodGet, base+"?date=tomorrow&party_size=2", nil, "")
		httptestutil.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "invalid date format")
	})
}

func (s *RestaurantHandlerTestSuite) TestCreate() {
	body := map[string]any{"name": "Osteria", "cuisine": "Italian", "capacity": 30}

	s.Run("success", func() {
		view := builder.NewRestaurantBuilder().WithName("Osteria").WithCapacity(30).BuildView()
		s.mockCommands.EXPECT().
			Create(gomock.Any(), s.actor, commands.RestaurantInput{Name: "Osteria", Cuisine: "Italian", Capacity: 30}).
			Return(view, nil)

		w := httptestutil.PerformRequest(s.T(), s.router, http.MethodPost, "/restaurants", body, "token")

		var res resdto.RestaurantResponse
		httptestutil.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
		s.Equal("Osteria", res.Name)
		s.Equal(30, res.Capacity)
	})

	s.Run("error: missing name", func() {
		w := httptestutil.PerformRequest(s.T(), s.router, http.MethodPost, "/restaurants", map[string]any{"capacity": 30}, "token")
		httptestutil.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: unauthenticated", func() {
		w := httptestutil.PerformRequest(s.T(), s.router, http.MethodPost, "/restaurants", body, "")
		httptestutil.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *RestaurantHandlerTestSuite) TestUpdate() {
	id := uuid.New()
	capacity := 12

	s.Run("success: only given fields are patched", func() {
		view := builder.NewRestaurantBuilder().WithCapacity(capacity).BuildView()
		s.mockCommands.EXPECT().
			Update(gomock.Any(), s.actor, id, commands.RestaurantPatch{Capacity: &capacity}).
			Return(view, nil)

		w := httptestutil.PerformRequest(s.T(), s.router, http.MethodPut, "/restaurants/"+id.String(), map[string]any{"capacity": capacity}, "token")
		s.Equal(http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("error: forbidden", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), s.actor, id, gomock.Any()).
			Return(nil, errs.Mark(errs.New("not the restaurant admin"), errs.ErrForbidden))

		w := httptestutil.PerformRequest(s.T(), s.router, http.MethodPut, "/restaurants/"+id.String(), map[string]any{"name": "x"}, "token")
		httptestutil.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Forbidden")
	})

	s.Run("error: unexpected failure", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), s.actor, id, gomock.Any()).Return(nil, errors.New("boom"))

		w := httptestutil.PerformRequest(s.T(), s.router, http.MethodPut, "/restaurants/"+id.String(), map[string]any{"name": "x"}, "token")
		httptestutil.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, "Update restaurant failed")
	})
}

func (s *RestaurantHandlerTestSuite) TestBookings() {
	id := uuid.New()

	s.Run("success: date filter", func() {
		date := "2030-01-11"
		items := []*queries.RestaurantBookingItem{{ID: uuid.New(), Date: date, Time: "19:00", PartySize: 2, Status: "pending"}}
		s.mockQueries.EXPECT().Bookings(gomock.Any(), s.actor, id, &date).Return(items, nil)

		w := httptestutil.PerformRequest(s.T(), s.router, http.MethodGet, "/restaurants/"+id.String()+"/bookings?date="+date, nil, "token")

		var res struct {
			Bookings []resdto.RestaurantBookingResponse `json:"bookings"`
		}
		httptestutil.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Require().Len(res.Bookings, 1)
		s.Equal("19:00", res.Bookings[0].Time)
	})

	s.Run("error: not the restaurant admin", func() {
		s.mockQueries.EXPECT().Bookings(gomock.Any(), s.actor, id, (*string)(nil)).
			Return(nil, errs.Mark(errs.New("not allowed"), errs.ErrForbidden))

		w := httptestutil.PerformRequest(s.T(), s.router, http.MethodGet, "/restaurants/"+id.String()+"/bookings", nil, "token")
		httptestutil.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Forbidden")
	})
}
