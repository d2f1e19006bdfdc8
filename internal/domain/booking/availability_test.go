//go:build unit

package booking_test

import (
	"testing"

	"table-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFits(t *testing.T) {
	slot := booking.MustParseSlot("19:00")
	occ := booking.Occupancy{"19:00": 8}

	assert.True(t, booking.Fits(10, occ, slot, 2))
	assert.False(t, booking.Fits(10, occ, slot, 3))
	assert.True(t, booking.Fits(10, booking.Occupancy{}, slot, 10))
	assert.False(t, booking.Fits(10, booking.Occupancy{}, slot, 11))
}

func TestAvailableTimes(t *testing.T) {
	t.Run("full slots are skipped in slot order", func(t *testing.T) {
		occ := booking.Occupancy{"11:00": 10, "11:30": 9, "19:00": 10}
		times := booking.AvailableTimes(10, occ, 2)

		require.Len(t, times, 20)
		assert.Equal(t, "12:00", times[0])
		assert.NotContains(t, times, "19:00")
		assert.NotContains(t, times, "11:30")
		assert.Contains(t, times, "19:30")
	})

	t.Run("nothing fits", func(t *testing.T) {
		times := booking.AvailableTimes(4, booking.Occupancy{}, 5)
		assert.NotNil(t, times)
		assert.Empty(t, times)
	})
}

func TestDayAvailability(t *testing.T) {
	occ := booking.Occupancy{"12:00": 6, "20:00": 15}
	day := booking.DayAvailability(10, occ)

	require.Len(t, day, 23)
	byTime := map[string]booking.SlotAvailability{}
	for _, s := range day {
		byTime[s.Slot.String()] = s
	}
	assert.Equal(t, 4, byTime["12:00"].Remaining)
	assert.Equal(t, 6, byTime["12:00"].Booked)
	assert.Equal(t, 0, byTime["20:00"].Remaining)
	assert.Equal(t, 10, byTime["11:00"].Remaining)
	assert.Equal(t, 21, occ.Total())
}
