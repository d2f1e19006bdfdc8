package api

import (
	"net/http"
	"strconv"

	reqdto "table-booking/internal/handler/dto/request"
	resdto "table-booking/internal/handler/dto/response"
	"table-booking/internal/handler/httperr"
	"table-booking/internal/usecase/commands"
	"table-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RestaurantHandler struct {
	cmds commands.RestaurantCommands
	q    queries.RestaurantQueries
}

func NewRestaurantHandler(cmds commands.RestaurantCommands, q queries.RestaurantQueries) *RestaurantHandler {
	return &RestaurantHandler{cmds: cmds, q: q}
}

// @Summary List restaurants
// @Description Newest first, with optional filters and keyset pagination
// @Tags restaurants
// @Produce json
// @Param search query string false "Matches name or description"
// @Param cuisine query string false "Cuisine"
// @Param location query string false "Location"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.RestaurantListResponse
// @Failure 400 {object} httperr.Response
// @Router /restaurants [get]
func (h *RestaurantHandler) List(c *gin.Context) {
	cursor, limit := pageParams(c)
	filter := queries.RestaurantFilter{
		Search:   c.Query("search"),
		Cuisine:  c.Query("cuisine"),
		Location: c.Query("location"),
	}

	items, next, err := h.q.List(c.Request.Context(), filter, cursor, limit)
	if err != nil {
		httperr.Abort(c, err, "Failed to list restaurants")
		return
	}
	c.JSON(http.StatusOK, resdto.RestaurantListResponse{
		Restaurants: resdto.FromRestaurantViews(items),
		NextCursor:  nextCursor(next),
	})
}

// @Summary Get restaurant
// @Tags restaurants
// @Produce json
// @Param id path string true "Restaurant ID"
// @Success 200 {object} resdto.RestaurantResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /restaurants/{id} [get]
func (h *RestaurantHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id", "Invalid restaurant id")
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Failed to load restaurant")
		return
	}
	c.JSON(http.StatusOK, resdto.FromRestaurantView(view))
}

// @Summary Create restaurant
// @Description Admin only
// @Tags restaurants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRestaurantRequest true "Restaurant"
// @Success 201 {object} resdto.RestaurantResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /restaurants [post]
func (h *RestaurantHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), actor, req.ToCommand())
	if err != nil {
		httperr.Abort(c, err, "Create restaurant failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRestaurantView(view))
}

// @Summary Update restaurant
// @Description Admin or the restaurant's own manager. Omitted fields are kept.
// @Tags restaurants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Restaurant ID"
// @Param request body reqdto.UpdateRestaurantRequest true "Fields to change"
// @Success 200 {object} resdto.RestaurantResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /restaurants/{id} [put]
func (h *RestaurantHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "Invalid restaurant id")
	if !ok {
		return
	}
	var req reqdto.UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}

	view, err := h.cmds.Update(c.Request.Context(), actor, id, req.ToCommand())
	if err != nil {
		httperr.Abort(c, err, "Update restaurant failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromRestaurantView(view))
}

// @Summary Restaurant availability
// @Description Remaining covers per slot and the times that fit the party
// @Tags restaurants
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param date query string true "YYYY-MM-DD"
// @Param party_size query int false "Party size (default 1)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /restaurants/{id}/availability [get]
func (h *RestaurantHandler) Availability(c *gin.Context) {
	id, ok := pathID(c, "id", "Invalid restaurant id")
	if !ok {
		return
	}
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, nil, "date is required")
		return
	}
	partySize := 0
	if v := c.Query("party_size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			httperr.BadRequest(c, err, "Invalid party_size")
			return
		}
		partySize = n
	}

	view, err := h.q.Availability(c.Request.Context(), id, date, partySize)
	if err != nil {
		httperr.Abort(c, err, "Failed to load availability")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Restaurant bookings
// @Description Restaurant admin or system admin only
// @Tags restaurants
// @Produce json
// @Security BearerAuth
// @Param id path string true "Restaurant ID"
// @Param date query string false "YYYY-MM-DD"
// @Success 200 {array} resdto.RestaurantBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /restaurants/{id}/bookings [get]
func (h *RestaurantHandler) Bookings(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "Invalid restaurant id")
	if !ok {
		return
	}
	var date *string
	if v := c.Query("date"); v != "" {
		date = &v
	}

	items, err := h.q.Bookings(c.Request.Context(), actor, id, date)
	if err != nil {
		httperr.Abort(c, err, "Failed to list bookings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": resdto.FromRestaurantBookings(items)})
}
