package booking

import (
	"fmt"
	"strings"
	"time"
)

const (
	serviceOpen    = 11 * 60
	serviceClose   = 22 * 60
	slotStepMinute = 30
)

// Slot is a half-hour service time such as 19:00 or 19:30.
type Slot struct {
	minutes int
}

var serviceSlots = buildServiceSlots()

func buildServiceSlots() []Slot {
	slots := make([]Slot, 0, (serviceClose-serviceOpen)/slotStepMinute+1)
	for m := serviceOpen; m <= serviceClose; m += slotStepMinute {
		slots = append(slots, Slot{minutes: m})
	}
	return slots
}

// ServiceSlots returns every bookable slot of a day in chronological order.
func ServiceSlots() []Slot {
	out := make([]Slot, len(serviceSlots))
	copy(out, serviceSlots)
	return out
}

// ParseSlot accepts "HH:MM" or "HH:MM:SS" and rejects anything outside
// the service slot set.
func ParseSlot(s string) (Slot, error) {
	s = strings.TrimSpace(s)
	var t time.Time
	var err error
	switch len(s) {
	case len("15:04"):
		t, err = time.Parse("15:04", s)
	case len("15:04:05"):
		t, err = time.Parse("15:04:05", s)
	default:
		return Slot{}, ErrInvalidSlot
	}
	if err != nil || t.Second() != 0 {
		return Slot{}, ErrInvalidSlot
	}

	candidate := Slot{minutes: t.Hour()*60 + t.Minute()}
	if !candidate.IsService() {
		return Slot{}, ErrInvalidSlot
	}
	return candidate, nil
}

func MustParseSlot(s string) Slot {
	slot, err := ParseSlot(s)
	if err != nil {
		panic(err)
	}
	return slot
}

func (s Slot) IsService() bool {
	if s.minutes < serviceOpen || s.minutes > serviceClose {
		return false
	}
	return (s.minutes-serviceOpen)%slotStepMinute == 0
}

func (s Slot) Hour() int   { return s.minutes / 60 }
func (s Slot) Minute() int { return s.minutes % 60 }

func (s Slot) String() string {
	return fmt.Sprintf("%02d:%02d", s.Hour(), s.Minute())
}

// At places the slot on the given calendar day in loc.
func (s Slot) At(d Date, loc *time.Location) time.Time {
	t := d.Time()
	return time.Date(t.Year(), t.Month(), t.Day(), s.Hour(), s.Minute(), 0, 0, loc)
}
