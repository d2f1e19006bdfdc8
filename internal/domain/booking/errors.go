package booking

import "errors"

var (
	ErrInvalidPartySize       = errors.New("party size must be between 1 and 20")
	ErrSpecialRequestsTooLong = errors.New("special requests exceed maximum length")
	ErrInvalidSlot            = errors.New("time is not a bookable service slot")
	ErrInvalidDate            = errors.New("invalid booking date")
	ErrDateInPast             = errors.New("booking date cannot be in the past")
	ErrInvalidStatus          = errors.New("invalid booking status")
	ErrIllegalTransition      = errors.New("illegal booking status transition")
)
