package errs

import (
	"errors"
	"strings"
)

// Outcome taxonomy shared by the booking commands, queries and handlers
var (
	ErrInvalidRequest    = errors.New("invalid request")
	ErrNotFound          = errors.New("not found")
	ErrSlotUnavailable   = errors.New("slot unavailable")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrConflict          = errors.New("conflict")
	ErrUnavailable       = errors.New("service unavailable")
)

// SlotUnavailableError carries the alternative times for the requested day.
type SlotUnavailableError struct {
	AvailableTimes []string
}

func (e *SlotUnavailableError) Error() string {
	if len(e.AvailableTimes) == 0 {
		return "slot unavailable: no other times available"
	}
	return "slot unavailable: available times " + strings.Join(e.AvailableTimes, ", ")
}

func (e *SlotUnavailableError) Is(target error) bool {
	return target == ErrSlotUnavailable
}

func NewSlotUnavailable(times []string) error {
	if times == nil {
		times = []string{}
	}
	return &SlotUnavailableError{AvailableTimes: times}
}

// AvailableTimesOf returns the hint carried by a SlotUnavailable error.
func AvailableTimesOf(err error) ([]string, bool) {
	var slotErr *SlotUnavailableError
	if As(err, &slotErr) {
		return slotErr.AvailableTimes, true
	}
	return nil, false
}
