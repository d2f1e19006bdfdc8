package shared

import (
	"time"

	"github.com/google/uuid"
)

type RestaurantSnapshot struct {
	ID       uuid.UUID
	Name     string
	Capacity int
	AdminID  *uuid.UUID
}

type UserSnapshot struct {
	ID       uuid.UUID
	Email    string
	Name     string
	Role     string
	Points   int
	IsActive bool
}

type IdempotencyRecord struct {
	Key             uuid.UUID
	UserID          uuid.UUID
	Endpoint        string
	Status          string
	RequestHash     string
	ResultBookingID *uuid.UUID
	ExpiresAt       time.Time
}

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)

// ReminderCandidate is a confirmed booking due for a reminder.
type ReminderCandidate struct {
	BookingID      uuid.UUID
	UserID         uuid.UUID
	RestaurantID   uuid.UUID
	RestaurantName string
	UserName       string
	UserEmail      string
	Date           string
	Time           string
	PartySize      int
}

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int
	RunAt    time.Time
}

const (
	NotificationKindEmail = "email"

	TopicBookingConfirmed = "booking_confirmed"
	TopicBookingCancelled = "booking_cancelled"
	TopicBookingReminder  = "booking_reminder"
)
