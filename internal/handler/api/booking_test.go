//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"table-booking/internal/domain/booking"
	"table-booking/internal/domain/user"
	"table-booking/internal/handler/api"
	resdto "table-booking/internal/handler/dto/response"
	"table-booking/internal/pkg/errs"
	"table-booking/internal/usecase/commands"
	"table-booking/internal/usecase/queries"
	"table-booking/internal/usecase/shared"
	"table-booking/tests/common/builder"
	httptestutil "table-booking/tests/common/httptest"
	"table-booking/tests/common/testutil"
	commandsmock "table-booking/tests/mock/commands"
	queriesmock "table-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	actor        shared.Actor
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.actor = shared.Actor{ID: uuid.New(), Role: user.RoleCustomer}

	h := api.NewBookingHandler(s.mockCommands, s.mockQueries)

	// stands in for RequireAuth
	auth := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.actor.ID)
			c.Set("user_role", s.actor.Role)
		}
		c.Next()
	}
	g := s.router.Group("/bookings", auth)
	g.POST("", h.Create)
	g.GET("", h.ListMine)
	g.GET("/:id", h.Get)
	g.PATCH("/:id/status", h.UpdateStatus)
	g.POST("/:id/confirm", h.Confirm)
	g.POST("/:id/cancel", h.Cancel)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) postWithKey(body any, key string) *httptest.ResponseRecorder {
	raw, err := json.Marshal(body)
	s.Require().NoError(err)
	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("Idempotency-Key", key)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *BookingHandlerTestSuite) TestCreate() {
	b := builder.NewBookingBuilder().WithUser(uuid.New())
	reqBody := b.BuildDTO()
	view := b.BuildView()

	s.Run("success: returns 201 Created with a pending booking", func() {
		s.mockCommands.EXPECT().RequestBooking(gomock.Any(), s.actor, reqBody.ToCommand(nil)).
			Return(&commands.BookingResult{Booking: view, Changed: true}, nil).Times(1)

		rec := httptestutil.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", reqBody, "token")

		var response resdto.BookingResponse
		httptestutil.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal("pending", response.Status)
		s.Equal(b.Time, response.Time)
	})

	s.Run("success: replay with the same Idempotency-Key returns 200 OK", func() {
		key := uuid.New()
		s.mockCommands.EXPECT().RequestBooking(gomock.Any(), s.actor, reqBody.ToCommand(&key)).
			Return(&commands.BookingResult{Booking: view, IsReplayed: true}, nil).Times(1)

		rec := s.postWithKey(reqBody, key.String())

		var response resdto.BookingResponse
		httptestutil.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
	})

	s.Run("error: 400 Bad Request on malformed Idempotency-Key", func() {
		rec := s.postWithKey(reqBody, "not-a-uuid")
		httptestutil.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid Idempotency-Key format")
	})

	s.Run("error: 401 Unauthorized without an actor", func() {
		rec := httptestutil.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", reqBody, "")
		httptestutil.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 400 Bad Request on missing fields", func() {
		for _, field := range []string{"restaurant_id", "date", "time"} {
			s.Run(field, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil))
				rec := httptestutil.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", requestMap, "token")
				httptestutil.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 409 Conflict carries available times", func() {
		s.mockCommands.EXPECT().RequestBooking(gomock.Any(), s.actor, gomock.Any()).
			Return(nil, errs.NewSlotUnavailable([]string{"18:30", "20:00"})).Times(1)

		rec := httptestutil.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", reqBody, "token")
		httptestutil.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not available")

		var body struct {
			Detail struct {
				Code           string   `json:"code"`
				AvailableTimes []string `json:"available_times"`
			} `json:"detail"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal("SLOT_UNAVAILABLE", body.Detail.Code)
		s.Equal([]string{"18:30", "20:00"}, body.Detail.AvailableTimes)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "party size out of range",
				commandsError:  errs.Mark(booking.ErrInvalidPartySize, errs.ErrInvalidRequest),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    booking.ErrInvalidPartySize.Error(),
			},
			{
				name:           "restaurant not found",
				commandsError:  errs.Mark(errors.New("restaurant not found"), errs.ErrNotFound),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Not found",
			},
			{
				name:           "idempotency key reused with another body",
				commandsError:  errs.Mark(errors.New("idempotency key reused"), errs.ErrConflict),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Conflict",
			},
			{
				name:           "storage busy",
				commandsError:  errs.Mark(errors.New("serialization failure"), errs.ErrUnavailable),
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "temporarily unavailable",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Booking failed",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().RequestBooking(gomock.Any(), s.actor, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptestutil.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", reqBody, "token")
				httptestutil.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	view := builder.NewBookingBuilder().WithUser(uuid.New()).BuildView()
	url := "/bookings/" + view.ID.String()

	s.Run("success: returns the booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, view.ID).Return(view, nil).Times(1)

		rec := httptestutil.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var response resdto.BookingResponse
		httptestutil.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.RestaurantName, response.RestaurantName)
	})

	s.Run("error: 400 Bad Request on malformed id", func() {
		rec := httptestutil.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/abc", nil, "token")
		httptestutil.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking id")
	})

	s.Run("error: 403 Forbidden for another guest's booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, view.ID).
			Return(nil, errs.Mark(errors.New("not your booking"), errs.ErrForbidden)).Times(1)

		rec := httptestutil.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		httptestutil.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
	})
}

func (s *BookingHandlerTestSuite) TestListMine() {
	items := []*queries.BookingListItem{
		{ID: uuid.New(), RestaurantName: "A", Date: "2030-01-01", Time: "19:00", PartySize: 2, Status: "pending"},
		{ID: uuid.New(), RestaurantName: "B", Date: "2030-01-02", Time: "12:00", PartySize: 4, Status: "confirmed"},
	}

	s.Run("success: returns the page and next cursor", func() {
		s.mockQueries.EXPECT().ListMine(gomock.Any(), s.actor, (*queries.Cursor)(nil), 2).
			Return(items, &queries.Cursor{After: "next"}, nil).Times(1)

		rec := httptestutil.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?limit=2", nil, "token")

		var response resdto.BookingListResponse
		httptestutil.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Bookings, 2)
		s.Equal("next", response.NextCursor)
	})

	s.Run("success: passes the cursor through", func() {
		s.mockQueries.EXPECT().ListMine(gomock.Any(), s.actor, &queries.Cursor{After: "abc"}, queries.DefaultListLimit).
			Return([]*queries.BookingListItem{}, nil, nil).Times(1)

		rec := httptestutil.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?after=abc", nil, "token")

		var response resdto.BookingListResponse
		httptestutil.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response.Bookings)
		s.Empty(response.NextCursor)
	})
}

func (s *BookingHandlerTestSuite) TestTransitions() {
	view := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).BuildView()
	base := "/bookings/" + view.ID.String()

	s.Run("success: confirm", func() {
		s.mockCommands.EXPECT().TransitionBooking(gomock.Any(), s.actor, view.ID, "confirmed").
			Return(&commands.BookingResult{Booking: view, Changed: true}, nil).Times(1)

		rec := httptestutil.PerformRequest(s.T(), s.router, http.MethodPost, base+"/confirm", nil, "token")

		var response resdto.BookingResponse
		httptestutil.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("confirmed", response.Status)
	})

	s.Run("success: cancel", func() {
		cancelled := *view
		cancelled.Status = booking.StatusCancelled.String()
		s.mockCommands.EXPECT().TransitionBooking(gomock.Any(), s.actor, view.ID, "cancelled").
			Return(&commands.BookingResult{Booking: &cancelled, Changed: true}, nil).Times(1)

		rec := httptestutil.PerformRequest(s.T(), s.router, http.MethodPost, base+"/cancel", nil, "token")

		var response resdto.BookingResponse
		httptestutil.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("cancelled", response.Status)
	})

	s.Run("success: status patch passes the target through", func() {
		s.mockCommands.EXPECT().TransitionBooking(gomock.Any(), s.actor, view.ID, "confirmed").
			Return(&commands.BookingResult{Booking: view}, nil).Times(1)

		rec := httptestutil.PerformRequest(s.T(), s.router, http.MethodPatch, base+"/status", map[string]any{"status": "confirmed"}, "token")
		httptestutil.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on missing status", func() {
		rec := httptestutil.PerformRequest(s.T(), s.router, http.MethodPatch, base+"/status", map[string]any{}, "token")
		httptestutil.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 422 on a transition out of a terminal state", func() {
		s.mockCommands.EXPECT().TransitionBooking(gomock.Any(), s.actor, view.ID, "confirmed").
			Return(nil, errs.Mark(errors.New("cannot transition from cancelled to confirmed"), errs.ErrInvalidTransition)).Times(1)

		rec := httptestutil.PerformRequest(s.T(), s.router, http.MethodPost, base+"/confirm", nil, "token")
		httptestutil.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "cannot transition from cancelled to confirmed")
	})

	s.Run("error: 403 Forbidden for a guest confirming", func() {
		s.mockCommands.EXPECT().TransitionBooking(gomock.Any(), s.actor, view.ID, "confirmed").
			Return(nil, errs.Mark(errors.New("guests may only cancel"), errs.ErrForbidden)).Times(1)

		rec := httptestutil.PerformRequest(s.T(), s.router, http.MethodPost, base+"/confirm", nil, "token")
		httptestutil.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
	})
}
