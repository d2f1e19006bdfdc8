//go:build unit

package booking_test

import (
	"testing"
	"time"

	"table-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSlot(t *testing.T) {
	cases := []struct {
		in    string
		want  string
		valid bool
	}{
		{in: "11:00", want: "11:00", valid: true},
		{in: "19:30", want: "19:30", valid: true},
		{in: "22:00", want: "22:00", valid: true},
		{in: "19:00:00", want: "19:00", valid: true},
		{in: " 12:30 ", want: "12:30", valid: true},
		{in: "10:30"},
		{in: "22:30"},
		{in: "19:15"},
		{in: "19:00:30"},
		{in: "7pm"},
		{in: ""},
		{in: "25:00"},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			slot, err := booking.ParseSlot(c.in)
			if !c.valid {
				require.ErrorIs(t, err, booking.ErrInvalidSlot)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, slot.String())
			assert.True(t, slot.IsService())
		})
	}
}

func TestServiceSlots(t *testing.T) {
	slots := booking.ServiceSlots()
	require.Len(t, slots, 23)
	assert.Equal(t, "11:00", slots[0].String())
	assert.Equal(t, "22:00", slots[len(slots)-1].String())

	for i := 1; i < len(slots); i++ {
		prev := slots[i-1].Hour()*60 + slots[i-1].Minute()
		cur := slots[i].Hour()*60 + slots[i].Minute()
		assert.Equal(t, 30, cur-prev)
	}

	// callers get a copy
	slots[0] = booking.MustParseSlot("15:00")
	assert.Equal(t, "11:00", booking.ServiceSlots()[0].String())
}

func TestSlotAt(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	d := booking.NewDate(2030, time.March, 5)
	at := booking.MustParseSlot("19:30").At(d, tokyo)

	assert.Equal(t, time.Date(2030, time.March, 5, 19, 30, 0, 0, tokyo), at)
}

func TestDate(t *testing.T) {
	t.Run("parse", func(t *testing.T) {
		d, err := booking.ParseDate("2030-02-28")
		require.NoError(t, err)
		assert.Equal(t, "2030-02-28", d.String())
		assert.Equal(t, "2030-03-01", d.AddDays(1).String())

		_, err = booking.ParseDate("2030-02-30")
		require.ErrorIs(t, err, booking.ErrInvalidDate)
		_, err = booking.ParseDate("28/02/2030")
		require.ErrorIs(t, err, booking.ErrInvalidDate)
	})

	t.Run("today follows the service location", func(t *testing.T) {
		tokyo := time.FixedZone("JST", 9*60*60)
		now := time.Date(2030, 1, 1, 20, 0, 0, 0, time.UTC)

		assert.Equal(t, "2030-01-01", booking.Today(now, time.UTC).String())
		assert.Equal(t, "2030-01-02", booking.Today(now, tokyo).String())
	})

	t.Run("ordering", func(t *testing.T) {
		a := booking.NewDate(2030, 1, 1)
		b := booking.NewDate(2030, 1, 2)
		assert.True(t, a.Before(b))
		assert.False(t, b.Before(a))
		assert.True(t, a.Equal(booking.NewDate(2030, 1, 1)))
		assert.True(t, booking.Date{}.IsZero())
	})
}
