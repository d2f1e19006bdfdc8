package booking

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MinPartySize             = 1
	MaxPartySize             = 20
	MaxSpecialRequestsLength = 500
	dateLayout               = "2006-01-02"
)

type PartySize struct {
	value int
}

func NewPartySize(v int) (PartySize, error) {
	if v < MinPartySize || v > MaxPartySize {
		return PartySize{}, ErrInvalidPartySize
	}
	return PartySize{value: v}, nil
}

func (p PartySize) Value() int { return p.value }

type SpecialRequests struct {
	text string
}

// NewSpecialRequests trims input and rejects, never truncates, overlong text.
func NewSpecialRequests(s string) (SpecialRequests, error) {
	t := strings.TrimSpace(s)
	if utf8.RuneCountInString(t) > MaxSpecialRequestsLength {
		return SpecialRequests{}, ErrSpecialRequestsTooLong
	}
	return SpecialRequests{text: t}, nil
}

func (r SpecialRequests) String() string { return r.text }
func (r SpecialRequests) IsEmpty() bool  { return r.text == "" }

// Date is a calendar day with no time-of-day or zone.
type Date struct {
	year  int
	month time.Month
	day   int
}

func NewDate(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date{year: t.Year(), month: t.Month(), day: t.Day()}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return DateOf(t), nil
}

// DateOf takes the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	return Date{year: t.Year(), month: t.Month(), day: t.Day()}
}

// Today is the current calendar day in loc.
func Today(now time.Time, loc *time.Location) Date {
	return DateOf(now.In(loc))
}

func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

func (d Date) Equal(other Date) bool {
	return d == other
}

func (d Date) IsZero() bool {
	return d.year == 0 && d.month == 0 && d.day == 0
}

func (d Date) String() string {
	return d.Time().Format(dateLayout)
}
