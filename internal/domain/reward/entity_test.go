//go:build unit

package reward_test

import (
	"testing"
	"time"

	"table-booking/internal/domain/reward"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfirmationEntry(t *testing.T) {
	now := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	userID, bookingID := uuid.New(), uuid.New()

	e := reward.NewConfirmationEntry(userID, bookingID, now)

	assert.NotEqual(t, uuid.Nil, e.ID())
	assert.Equal(t, userID, e.UserID())
	require.NotNil(t, e.BookingID())
	assert.Equal(t, bookingID, *e.BookingID())
	assert.Equal(t, 10, e.PointsChange())
	assert.Equal(t, "booking confirmed", e.Reason())
	assert.Equal(t, now, e.CreatedAt())
}
