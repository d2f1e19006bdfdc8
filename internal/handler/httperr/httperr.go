package httperr

import (
	"net/http"

	"table-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const (
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeNotFound          = "NOT_FOUND"
	CodeSlotUnavailable   = "SLOT_UNAVAILABLE"
	CodeForbidden         = "FORBIDDEN"
	CodeInvalidTransition = "INVALID_TRANSITION"
	CodeConflict          = "CONFLICT"
	CodeUnavailable       = "UNAVAILABLE"
	CodeRateLimited       = "RATE_LIMITED"
	CodeInternal          = "INTERNAL"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

type Detail struct {
	Code           string   `json:"code"`
	AvailableTimes []string `json:"available_times,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort renders err according to the outcome it carries. Validation and
// transition messages come from the domain and are shown as is. Errors
// without an outcome are reported as 500 with fallbackMsg.
func Abort(c *gin.Context, err error, fallbackMsg string) {
	switch {
	case errs.Is(err, errs.ErrInvalidRequest):
		AbortWithError(c, http.StatusBadRequest, err, err.Error(), Detail{Code: CodeInvalidRequest})
	case errs.Is(err, errs.ErrSlotUnavailable):
		times, _ := errs.AvailableTimesOf(err)
		if times == nil {
			times = []string{}
		}
		AbortWithError(c, http.StatusConflict, err, "Requested time slot is not available", slotDetail{Code: CodeSlotUnavailable, AvailableTimes: times})
	case errs.Is(err, errs.ErrNotFound):
		AbortWithError(c, http.StatusNotFound, err, "Not found", Detail{Code: CodeNotFound})
	case errs.Is(err, errs.ErrForbidden):
		AbortWithError(c, http.StatusForbidden, err, "Forbidden", Detail{Code: CodeForbidden})
	case errs.Is(err, errs.ErrInvalidTransition):
		AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error(), Detail{Code: CodeInvalidTransition})
	case errs.Is(err, errs.ErrConflict):
		AbortWithError(c, http.StatusConflict, err, "Conflict", Detail{Code: CodeConflict})
	case errs.Is(err, errs.ErrUnavailable):
		c.Header("Retry-After", "1")
		AbortWithError(c, http.StatusServiceUnavailable, err, "Service temporarily unavailable", Detail{Code: CodeUnavailable})
	default:
		AbortWithError(c, http.StatusInternalServerError, err, fallbackMsg, Detail{Code: CodeInternal})
	}
}

func BadRequest(c *gin.Context, err error, msg string) {
	AbortWithError(c, http.StatusBadRequest, err, msg, Detail{Code: CodeInvalidRequest})
}

func Unauthorized(c *gin.Context, msg string) {
	AbortWithError(c, http.StatusUnauthorized, nil, msg, Detail{Code: CodeUnauthorized})
}

// slot hints are always present, even when empty
type slotDetail struct {
	Code           string   `json:"code"`
	AvailableTimes []string `json:"available_times"`
}
