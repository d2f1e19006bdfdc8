package shared

import (
	"context"
	"time"

	"table-booking/internal/domain/booking"
	"table-booking/internal/domain/restaurant"
	"table-booking/internal/domain/reward"
	"table-booking/internal/domain/user"
	sqlc "table-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

const DefaultMaxRetries = 3

type TxOptions struct {
	MaxRetries int
}

type TxOption func(*TxOptions)

// WithMaxRetries bounds how often a serialization failure or deadlock is retried.
func WithMaxRetries(n int) TxOption {
	return func(o *TxOptions) {
		if n >= 0 {
			o.MaxRetries = n
		}
	}
}

func ApplyTxOptions(opts ...TxOption) TxOptions {
	o := TxOptions{MaxRetries: DefaultMaxRetries}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error, opts ...TxOption) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Rewards() RewardRepository
	Restaurants() RestaurantRepository
	Users() UserRepository
	Reminders() ReminderRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	RestaurantByID(ctx context.Context, id uuid.UUID) (*RestaurantSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
}

type BookingRepository interface {
	// LockSlot serializes admissions for one (restaurant, date, time) until the transaction ends.
	LockSlot(ctx context.Context, tx sqlc.DBTX, restaurantID uuid.UUID, date booking.Date, slot booking.Slot) error
	SlotOccupancy(ctx context.Context, tx sqlc.DBTX, restaurantID uuid.UUID, date booking.Date, slot booking.Slot) (int, error)
	DayOccupancy(ctx context.Context, tx sqlc.DBTX, restaurantID uuid.UUID, date booking.Date) (booking.Occupancy, error)
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (uuid.UUID, error)
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
}

type RewardRepository interface {
	// Issue reports false when the entry already exists for the booking and reason.
	Issue(ctx context.Context, tx sqlc.DBTX, entry *reward.Entry) (bool, error)
}

type RestaurantRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, r *restaurant.Restaurant) (uuid.UUID, error)
	Update(ctx context.Context, tx sqlc.DBTX, r *restaurant.Restaurant) error
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*restaurant.Restaurant, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (uuid.UUID, error)
	AddPoints(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, points int) error
	UpdateRole(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, role user.Role) error
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
}

type ReminderRepository interface {
	ConfirmedOn(ctx context.Context, tx sqlc.DBTX, date booking.Date) ([]ReminderCandidate, error)
	// Mark reports false when a reminder for the booking was already recorded on day.
	Mark(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID, day booking.Date) (bool, error)
}

type IdempotencyRepository interface {
	// TryInsert reports false when the key already exists for the user.
	TryInsert(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	UpdateStatusCompleted(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, bookingID uuid.UUID) error
	ClaimExpired(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	LeaseDue(ctx context.Context, tx sqlc.DBTX, limit int, leaseUntil time.Time) ([]NotificationJob, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	Reschedule(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, lastError string, runAt time.Time) error
	MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, lastError string) error
}
