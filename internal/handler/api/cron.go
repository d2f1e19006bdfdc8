package api

import (
	"net/http"

	resdto "table-booking/internal/handler/dto/response"
	"table-booking/internal/handler/httperr"
	"table-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CronHandler struct {
	reminders commands.ReminderCommands
}

func NewCronHandler(reminders commands.ReminderCommands) *CronHandler {
	return &CronHandler{reminders: reminders}
}

// @Summary Send booking reminders
// @Description Queue reminders for tomorrow's confirmed bookings. Repeating the call on the same day queues nothing new.
// @Tags cron
// @Produce json
// @Param Authorization header string false "Bearer CRON_SECRET"
// @Success 200 {object} resdto.ReminderSweepResponse
// @Failure 401 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /cron/reminders [post]
func (h *CronHandler) SendReminders(c *gin.Context) {
	result, err := h.reminders.SendReminders(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err, "Reminder sweep failed")
		return
	}
	c.JSON(http.StatusOK, resdto.ReminderSweepResponse{
		Date:     result.Date,
		Scanned:  result.Scanned,
		Enqueued: result.Enqueued,
	})
}
