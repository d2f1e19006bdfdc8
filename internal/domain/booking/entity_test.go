//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"table-booking/internal/domain/booking"
	"table-booking/internal/pkg/clock"
	"table-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartySize(t *testing.T) {
	cases := []struct {
		name  string
		value int
		errIs error
	}{
		{name: "minimum 1 OK", value: 1},
		{name: "maximum 20 OK", value: 20},
		{name: "zero NG", value: 0, errIs: booking.ErrInvalidPartySize},
		{name: "21 NG", value: 21, errIs: booking.ErrInvalidPartySize},
		{name: "negative NG", value: -3, errIs: booking.ErrInvalidPartySize},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			size, err := booking.NewPartySize(c.value)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.value, size.Value())
		})
	}
}

func TestSpecialRequests(t *testing.T) {
	t.Run("500 characters OK", func(t *testing.T) {
		r, err := booking.NewSpecialRequests(strings.Repeat("あ", 500))
		require.NoError(t, err)
		assert.False(t, r.IsEmpty())
	})

	t.Run("501 characters rejected, not truncated", func(t *testing.T) {
		_, err := booking.NewSpecialRequests(strings.Repeat("a", 501))
		require.ErrorIs(t, err, booking.ErrSpecialRequestsTooLong)
	})

	t.Run("whitespace is trimmed", func(t *testing.T) {
		r, err := booking.NewSpecialRequests("  window seat  ")
		require.NoError(t, err)
		assert.Equal(t, "window seat", r.String())

		empty, err := booking.NewSpecialRequests("   ")
		require.NoError(t, err)
		assert.True(t, empty.IsEmpty())
	})
}

func TestTransition(t *testing.T) {
	now := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name             string
		from             booking.Status
		to               booking.Status
		changed          bool
		enteredConfirmed bool
		errIs            error
	}{
		{name: "pending -> confirmed", from: booking.StatusPending, to: booking.StatusConfirmed, changed: true, enteredConfirmed: true},
		{name: "pending -> cancelled", from: booking.StatusPending, to: booking.StatusCancelled, changed: true},
		{name: "confirmed -> cancelled", from: booking.StatusConfirmed, to: booking.StatusCancelled, changed: true},
		{name: "confirmed -> confirmed is a no-op", from: booking.StatusConfirmed, to: booking.StatusConfirmed},
		{name: "cancelled -> confirmed", from: booking.StatusCancelled, to: booking.StatusConfirmed, errIs: booking.ErrIllegalTransition},
		{name: "cancelled -> cancelled", from: booking.StatusCancelled, to: booking.StatusCancelled, errIs: booking.ErrIllegalTransition},
		{name: "confirmed -> pending", from: booking.StatusConfirmed, to: booking.StatusPending, errIs: booking.ErrIllegalTransition},
		{name: "pending -> pending", from: booking.StatusPending, to: booking.StatusPending, errIs: booking.ErrIllegalTransition},
		{name: "unknown target", from: booking.StatusPending, to: booking.Status("seated"), errIs: booking.ErrInvalidStatus},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := builder.NewBookingBuilder().WithStatus(c.from).BuildDomain()
			before := b.UpdatedAt()

			res, err := b.Transition(c.to, now)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				assert.Equal(t, c.from, b.Status())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.changed, res.Changed)
			assert.Equal(t, c.enteredConfirmed, res.EnteredConfirmed())
			assert.Equal(t, c.to, b.Status())
			if c.changed {
				assert.Equal(t, now, b.UpdatedAt())
			} else {
				assert.Equal(t, before, b.UpdatedAt())
			}
		})
	}
}

func TestStatusHolds(t *testing.T) {
	assert.True(t, booking.StatusPending.Holds())
	assert.True(t, booking.StatusConfirmed.Holds())
	assert.False(t, booking.StatusCancelled.Holds())

	_, err := booking.ParseStatus("done")
	require.ErrorIs(t, err, booking.ErrInvalidStatus)
}

func TestFactory(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	// 2030-01-01 23:30 in Tokyo
	clk := clock.NewMockClock(time.Date(2030, 1, 1, 14, 30, 0, 0, time.UTC))
	f := booking.NewFactory(clk, tokyo, false)

	size, _ := booking.NewPartySize(4)
	slot := booking.MustParseSlot("19:00")
	userID, restaurantID := uuid.New(), uuid.New()

	t.Run("today is bookable", func(t *testing.T) {
		b, err := f.CreateBooking(userID, restaurantID, booking.NewDate(2030, 1, 1), slot, size, booking.SpecialRequests{})
		require.NoError(t, err)
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Equal(t, userID, b.UserID())
		assert.Equal(t, restaurantID, b.RestaurantID())
		assert.Equal(t, clk.Now(), b.CreatedAt())
		assert.NotEqual(t, uuid.Nil, b.ID())
	})

	t.Run("yesterday is rejected", func(t *testing.T) {
		_, err := f.CreateBooking(userID, restaurantID, booking.NewDate(2029, 12, 31), slot, size, booking.SpecialRequests{})
		require.ErrorIs(t, err, booking.ErrDateInPast)
	})

	t.Run("zero date is rejected", func(t *testing.T) {
		_, err := f.CreateBooking(userID, restaurantID, booking.Date{}, slot, size, booking.SpecialRequests{})
		require.ErrorIs(t, err, booking.ErrInvalidDate)
	})

	t.Run("non-service slot is rejected", func(t *testing.T) {
		_, err := f.CreateBooking(userID, restaurantID, booking.NewDate(2030, 1, 2), booking.Slot{}, size, booking.SpecialRequests{})
		require.ErrorIs(t, err, booking.ErrInvalidSlot)
	})

	t.Run("auto confirm", func(t *testing.T) {
		auto := booking.NewFactory(clk, nil, true)
		b, err := auto.CreateBooking(userID, restaurantID, booking.NewDate(2030, 1, 2), slot, size, booking.SpecialRequests{})
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Equal(t, time.UTC, auto.Location)
	})
}
