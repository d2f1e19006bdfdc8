//go:build unit

// Package uowmock is an in-memory shared.UnitOfWork for use case tests.
// Transactions run one at a time and roll back on error.
package uowmock

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"table-booking/internal/domain/booking"
	"table-booking/internal/domain/restaurant"
	"table-booking/internal/domain/reward"
	"table-booking/internal/domain/user"
	"table-booking/internal/infra"
	sqlc "table-booking/internal/infra/sqlc/generated"
	"table-booking/internal/usecase/queries"
	"table-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var errNoRows = errors.New("no rows in result set")

type UserRow struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         string
	Points       int
	IsActive     bool
	LastLogin    *time.Time
	CreatedAt    time.Time
}

type RestaurantRow struct {
	ID        uuid.UUID
	Attrs     restaurant.Attributes
	CreatedAt time.Time
	UpdatedAt time.Time
}

type BookingRow struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	RestaurantID    uuid.UUID
	Date            booking.Date
	Slot            booking.Slot
	PartySize       booking.PartySize
	Status          booking.Status
	SpecialRequests booking.SpecialRequests
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type RewardRow struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	BookingID    *uuid.UUID
	PointsChange int
	Reason       string
	CreatedAt    time.Time
}

type JobRow struct {
	shared.NotificationJob
	Status    string
	LastError string
}

const (
	JobPending = "pending"
	JobSending = "sending"
	JobSent    = "sent"
	JobFailed  = "failed"
)

type reminderKey struct {
	bookingID uuid.UUID
	day       string
}

type idemKey struct {
	key    uuid.UUID
	userID uuid.UUID
}

type state struct {
	users       map[uuid.UUID]UserRow
	restaurants map[uuid.UUID]RestaurantRow
	bookings    map[uuid.UUID]BookingRow
	rewards     []RewardRow
	reminders   map[reminderKey]bool
	idempotency map[idemKey]shared.IdempotencyRecord
	jobs        []JobRow
}

func newState() *state {
	return &state{
		users:       map[uuid.UUID]UserRow{},
		restaurants: map[uuid.UUID]RestaurantRow{},
		bookings:    map[uuid.UUID]BookingRow{},
		reminders:   map[reminderKey]bool{},
		idempotency: map[idemKey]shared.IdempotencyRecord{},
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.restaurants {
		c.restaurants[k] = v
	}
	for k, v := range s.bookings {
		c.bookings[k] = v
	}
	for k, v := range s.reminders {
		c.reminders[k] = v
	}
	for k, v := range s.idempotency {
		c.idempotency[k] = v
	}
	c.rewards = append([]RewardRow(nil), s.rewards...)
	c.jobs = append([]JobRow(nil), s.jobs...)
	return c
}

// Memory implements shared.UnitOfWork over maps.
type Memory struct {
	mu       sync.Mutex
	st       *state
	now      func() time.Time
	failures map[string]error

	Commits   int
	Rollbacks int
}

func NewMemory(now func() time.Time) *Memory {
	if now == nil {
		now = time.Now
	}
	return &Memory{st: newState(), now: now, failures: map[string]error{}}
}

// FailNext makes the next call of op (e.g. "Rewards.Issue") return err.
func (m *Memory) FailNext(op string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[op] = err
}

func (m *Memory) fail(op string) error {
	if err, ok := m.failures[op]; ok {
		delete(m.failures, op)
		return err
	}
	return nil
}

func (m *Memory) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error, _ ...shared.TxOption) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	snapshot := m.st.clone()
	if err := fn(ctx, &memTx{m: m}); err != nil {
		m.st = snapshot
		m.Rollbacks++
		return err
	}
	m.Commits++
	return nil
}

func (m *Memory) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx, nil)
}

func (m *Memory) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx, nil)
}

func (m *Memory) CommandReads() shared.CommandReads {
	return lockedReads{m: m}
}

// seeding

func (m *Memory) AddUser(row UserRow) UserRow {
	m.mu.Lock()
	defer m.mu.Unlock()
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	if row.Role == "" {
		row.Role = user.RoleCustomer.String()
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = m.now()
	}
	m.st.users[row.ID] = row
	return row
}

func (m *Memory) AddRestaurant(attrs restaurant.Attributes) RestaurantRow {
	m.mu.Lock()
	defer m.mu.Unlock()
	row := RestaurantRow{ID: uuid.New(), Attrs: attrs, CreatedAt: m.now(), UpdatedAt: m.now()}
	m.st.restaurants[row.ID] = row
	return row
}

func (m *Memory) AddBooking(b *booking.Booking) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.st.bookings[b.ID()] = rowOf(b)
}

func (m *Memory) AddIdempotency(rec shared.IdempotencyRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.st.idempotency[idemKey{rec.Key, rec.UserID}] = rec
}

// inspection

func (m *Memory) User(id uuid.UUID) (UserRow, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.st.users[id]
	return u, ok
}

func (m *Memory) Restaurant(id uuid.UUID) (RestaurantRow, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.st.restaurants[id]
	return r, ok
}

func (m *Memory) Booking(id uuid.UUID) (BookingRow, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.st.bookings[id]
	return b, ok
}

func (m *Memory) Bookings() []BookingRow {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]BookingRow, 0, len(m.st.bookings))
	for _, b := range m.st.bookings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (m *Memory) Rewards() []RewardRow {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]RewardRow(nil), m.st.rewards...)
}

func (m *Memory) Jobs() []JobRow {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]JobRow(nil), m.st.jobs...)
}

func (m *Memory) Idempotency(key, userID uuid.UUID) (shared.IdempotencyRecord, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.st.idempotency[idemKey{key, userID}]
	return rec, ok
}

// EnqueueJob adds a pending job directly to the outbox.
func (m *Memory) EnqueueJob(topic string, payload []byte, runAt time.Time) uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := uuid.New()
	m.st.jobs = append(m.st.jobs, JobRow{
		NotificationJob: shared.NotificationJob{ID: id, Kind: shared.NotificationKindEmail, Topic: topic, Payload: payload, RunAt: runAt},
		Status:          JobPending,
	})
	return id
}

func (m *Memory) SeatsHeld(restaurantID uuid.UUID, date booking.Date, slot booking.Slot) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.st.slotOccupancy(restaurantID, date, slot)
}

func rowOf(b *booking.Booking) BookingRow {
	return BookingRow{
		ID:              b.ID(),
		UserID:          b.UserID(),
		RestaurantID:    b.RestaurantID(),
		Date:            b.Date(),
		Slot:            b.Slot(),
		PartySize:       b.PartySize(),
		Status:          b.Status(),
		SpecialRequests: b.SpecialRequests(),
		CreatedAt:       b.CreatedAt(),
		UpdatedAt:       b.UpdatedAt(),
	}
}

func (r BookingRow) domain() *booking.Booking {
	return booking.ReconstructBooking(r.ID, r.UserID, r.RestaurantID, r.Date, r.Slot, r.PartySize, r.Status, r.SpecialRequests, r.CreatedAt, r.UpdatedAt)
}

func (s *state) slotOccupancy(restaurantID uuid.UUID, date booking.Date, slot booking.Slot) int {
	total := 0
	for _, b := range s.bookings {
		if b.RestaurantID == restaurantID && b.Date == date && b.Slot == slot && b.Status.Holds() {
			total += b.PartySize.Value()
		}
	}
	return total
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, errNoRows, infra.KindNotFound)
}

// transaction

type memTx struct {
	m *Memory
}

func (t *memTx) Bookings() shared.BookingRepository           { return bookingRepo{t.m} }
func (t *memTx) Rewards() shared.RewardRepository             { return rewardRepo{t.m} }
func (t *memTx) Restaurants() shared.RestaurantRepository     { return restaurantRepo{t.m} }
func (t *memTx) Users() shared.UserRepository                 { return userRepo{t.m} }
func (t *memTx) Reminders() shared.ReminderRepository         { return reminderRepo{t.m} }
func (t *memTx) Idempotency() shared.IdempotencyRepository    { return idempotencyRepo{t.m} }
func (t *memTx) Notifications() shared.NotificationRepository { return notificationRepo{t.m} }
func (t *memTx) Reads() shared.CommandReads                   { return reads{t.m} }
func (t *memTx) DB() sqlc.DBTX                                { return nil }

type reads struct{ m *Memory }

func (r reads) RestaurantByID(_ context.Context, id uuid.UUID) (*shared.RestaurantSnapshot, error) {
	if err := r.m.fail("Reads.RestaurantByID"); err != nil {
		return nil, err
	}
	row, ok := r.m.st.restaurants[id]
	if !ok {
		return nil, notFound("restaurant not found")
	}
	return &shared.RestaurantSnapshot{ID: row.ID, Name: row.Attrs.Name, Capacity: row.Attrs.Capacity, AdminID: row.Attrs.AdminID}, nil
}

func (r reads) UserByID(_ context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	row, ok := r.m.st.users[id]
	if !ok {
		return nil, notFound("user not found")
	}
	return &shared.UserSnapshot{ID: row.ID, Email: row.Email, Name: row.Name, Role: row.Role, Points: row.Points, IsActive: row.IsActive}, nil
}

func (r reads) IdempotencyByKey(_ context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	rec, ok := r.m.st.idempotency[idemKey{key, userID}]
	if !ok {
		return nil, notFound("idempotency key not found")
	}
	return &rec, nil
}

type lockedReads struct{ m *Memory }

func (r lockedReads) RestaurantByID(ctx context.Context, id uuid.UUID) (*shared.RestaurantSnapshot, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	return reads(r).RestaurantByID(ctx, id)
}

func (r lockedReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	return reads(r).UserByID(ctx, id)
}

func (r lockedReads) IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	return reads(r).IdempotencyByKey(ctx, key, userID)
}

type bookingRepo struct{ m *Memory }

func (r bookingRepo) LockSlot(context.Context, sqlc.DBTX, uuid.UUID, booking.Date, booking.Slot) error {
	return r.m.fail("Bookings.LockSlot")
}

func (r bookingRepo) SlotOccupancy(_ context.Context, _ sqlc.DBTX, restaurantID uuid.UUID, date booking.Date, slot booking.Slot) (int, error) {
	return r.m.st.slotOccupancy(restaurantID, date, slot), nil
}

func (r bookingRepo) DayOccupancy(_ context.Context, _ sqlc.DBTX, restaurantID uuid.UUID, date booking.Date) (booking.Occupancy, error) {
	occ := booking.Occupancy{}
	for _, b := range r.m.st.bookings {
		if b.RestaurantID == restaurantID && b.Date == date && b.Status.Holds() {
			occ[b.Slot.String()] += b.PartySize.Value()
		}
	}
	return occ, nil
}

func (r bookingRepo) Create(_ context.Context, _ sqlc.DBTX, b *booking.Booking) (uuid.UUID, error) {
	if err := r.m.fail("Bookings.Create"); err != nil {
		return uuid.Nil, err
	}
	if _, ok := r.m.st.restaurants[b.RestaurantID()]; !ok {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", errors.New("fk restaurant"), infra.KindForeignKeyViolated)
	}
	r.m.st.bookings[b.ID()] = rowOf(b)
	return b.ID(), nil
}

func (r bookingRepo) FindForUpdate(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row, ok := r.m.st.bookings[id]
	if !ok {
		return nil, notFound("booking not found")
	}
	return row.domain(), nil
}

func (r bookingRepo) UpdateStatus(_ context.Context, _ sqlc.DBTX, b *booking.Booking) error {
	row, ok := r.m.st.bookings[b.ID()]
	if !ok {
		return notFound("booking not found")
	}
	row.Status = b.Status()
	row.UpdatedAt = b.UpdatedAt()
	r.m.st.bookings[b.ID()] = row
	return nil
}

type rewardRepo struct{ m *Memory }

func (r rewardRepo) Issue(_ context.Context, _ sqlc.DBTX, e *reward.Entry) (bool, error) {
	if err := r.m.fail("Rewards.Issue"); err != nil {
		return false, err
	}
	for _, existing := range r.m.st.rewards {
		if existing.BookingID != nil && e.BookingID() != nil && *existing.BookingID == *e.BookingID() && existing.Reason == e.Reason() {
			return false, nil
		}
	}
	r.m.st.rewards = append(r.m.st.rewards, RewardRow{
		ID:           e.ID(),
		UserID:       e.UserID(),
		BookingID:    e.BookingID(),
		PointsChange: e.PointsChange(),
		Reason:       e.Reason(),
		CreatedAt:    e.CreatedAt(),
	})
	return true, nil
}

type restaurantRepo struct{ m *Memory }

func (r restaurantRepo) Create(_ context.Context, _ sqlc.DBTX, rest *restaurant.Restaurant) (uuid.UUID, error) {
	r.m.st.restaurants[rest.ID()] = RestaurantRow{ID: rest.ID(), Attrs: rest.Attributes(), CreatedAt: rest.CreatedAt(), UpdatedAt: rest.UpdatedAt()}
	return rest.ID(), nil
}

func (r restaurantRepo) Update(_ context.Context, _ sqlc.DBTX, rest *restaurant.Restaurant) error {
	row, ok := r.m.st.restaurants[rest.ID()]
	if !ok {
		return notFound("restaurant not found")
	}
	row.Attrs = rest.Attributes()
	row.UpdatedAt = rest.UpdatedAt()
	r.m.st.restaurants[rest.ID()] = row
	return nil
}

func (r restaurantRepo) FindByID(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*restaurant.Restaurant, error) {
	row, ok := r.m.st.restaurants[id]
	if !ok {
		return nil, notFound("restaurant not found")
	}
	return restaurant.ReconstructRestaurant(row.ID, row.Attrs, row.CreatedAt, row.UpdatedAt), nil
}

type userRepo struct{ m *Memory }

func (r userRepo) Create(_ context.Context, _ sqlc.DBTX, u *user.User) (uuid.UUID, error) {
	for _, existing := range r.m.st.users {
		if existing.Email == u.Email().Value() {
			return uuid.Nil, infra.WrapRepoErr("failed to create user", errors.New("duplicate email"), infra.KindDuplicateKey)
		}
	}
	r.m.st.users[u.ID()] = UserRow{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		Name:         u.Name().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
		CreatedAt:    r.m.now(),
	}
	return u.ID(), nil
}

func (r userRepo) AddPoints(_ context.Context, _ sqlc.DBTX, userID uuid.UUID, points int) error {
	if err := r.m.fail("Users.AddPoints"); err != nil {
		return err
	}
	row, ok := r.m.st.users[userID]
	if !ok {
		return notFound("user not found")
	}
	row.Points += points
	r.m.st.users[userID] = row
	return nil
}

func (r userRepo) UpdateRole(_ context.Context, _ sqlc.DBTX, userID uuid.UUID, role user.Role) error {
	row, ok := r.m.st.users[userID]
	if !ok {
		return notFound("user not found")
	}
	row.Role = role.String()
	r.m.st.users[userID] = row
	return nil
}

func (r userRepo) UpdateLastLogin(_ context.Context, _ sqlc.DBTX, userID uuid.UUID) error {
	if err := r.m.fail("Users.UpdateLastLogin"); err != nil {
		return err
	}
	row, ok := r.m.st.users[userID]
	if !ok {
		return notFound("user not found")
	}
	now := r.m.now()
	row.LastLogin = &now
	r.m.st.users[userID] = row
	return nil
}

type reminderRepo struct{ m *Memory }

func (r reminderRepo) ConfirmedOn(_ context.Context, _ sqlc.DBTX, date booking.Date) ([]shared.ReminderCandidate, error) {
	var out []shared.ReminderCandidate
	for _, b := range r.m.st.bookings {
		if b.Date != date || b.Status != booking.StatusConfirmed {
			continue
		}
		u := r.m.st.users[b.UserID]
		rest := r.m.st.restaurants[b.RestaurantID]
		out = append(out, shared.ReminderCandidate{
			BookingID:      b.ID,
			UserID:         b.UserID,
			RestaurantID:   b.RestaurantID,
			RestaurantName: rest.Attrs.Name,
			UserName:       u.Name,
			UserEmail:      u.Email,
			Date:           b.Date.String(),
			Time:           b.Slot.String(),
			PartySize:      b.PartySize.Value(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out, nil
}

func (r reminderRepo) Mark(_ context.Context, _ sqlc.DBTX, bookingID uuid.UUID, day booking.Date) (bool, error) {
	k := reminderKey{bookingID, day.String()}
	if r.m.st.reminders[k] {
		return false, nil
	}
	r.m.st.reminders[k] = true
	return true, nil
}

type idempotencyRepo struct{ m *Memory }

func (r idempotencyRepo) TryInsert(_ context.Context, _ sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	k := idemKey{key, userID}
	if _, ok := r.m.st.idempotency[k]; ok {
		return false, nil
	}
	r.m.st.idempotency[k] = shared.IdempotencyRecord{
		Key:         key,
		UserID:      userID,
		Endpoint:    endpoint,
		Status:      shared.IdempotencyStatusProcessing,
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	return true, nil
}

func (r idempotencyRepo) UpdateStatusCompleted(_ context.Context, _ sqlc.DBTX, key, userID uuid.UUID, bookingID uuid.UUID) error {
	k := idemKey{key, userID}
	rec, ok := r.m.st.idempotency[k]
	if !ok {
		return notFound("idempotency key not found")
	}
	rec.Status = shared.IdempotencyStatusCompleted
	rec.ResultBookingID = &bookingID
	r.m.st.idempotency[k] = rec
	return nil
}

func (r idempotencyRepo) ClaimExpired(_ context.Context, _ sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	k := idemKey{key, userID}
	rec, ok := r.m.st.idempotency[k]
	if !ok || rec.ExpiresAt.After(r.m.now()) {
		return false, nil
	}
	r.m.st.idempotency[k] = shared.IdempotencyRecord{
		Key:         key,
		UserID:      userID,
		Endpoint:    endpoint,
		Status:      shared.IdempotencyStatusProcessing,
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	return true, nil
}

type notificationRepo struct{ m *Memory }

func (r notificationRepo) CreateJob(_ context.Context, _ sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	r.m.st.jobs = append(r.m.st.jobs, JobRow{
		NotificationJob: shared.NotificationJob{ID: uuid.New(), Kind: kind, Topic: topic, Payload: payload, RunAt: runAt},
		Status:          JobPending,
	})
	return nil
}

func (r notificationRepo) LeaseDue(_ context.Context, _ sqlc.DBTX, limit int, leaseUntil time.Time) ([]shared.NotificationJob, error) {
	if err := r.m.fail("Notifications.LeaseDue"); err != nil {
		return nil, err
	}
	now := r.m.now()
	var out []shared.NotificationJob
	for i := range r.m.st.jobs {
		if len(out) >= limit {
			break
		}
		j := &r.m.st.jobs[i]
		if (j.Status == JobPending || j.Status == JobSending) && !j.RunAt.After(now) {
			j.Status = JobSending
			j.RunAt = leaseUntil
			out = append(out, j.NotificationJob)
		}
	}
	return out, nil
}

func (r notificationRepo) update(id uuid.UUID, fn func(*JobRow)) error {
	for i := range r.m.st.jobs {
		if r.m.st.jobs[i].ID == id {
			fn(&r.m.st.jobs[i])
			return nil
		}
	}
	return notFound("notification job not found")
}

func (r notificationRepo) MarkSent(_ context.Context, _ sqlc.DBTX, id uuid.UUID) error {
	if err := r.m.fail("Notifications.MarkSent"); err != nil {
		return err
	}
	return r.update(id, func(j *JobRow) { j.Status = JobSent })
}

func (r notificationRepo) Reschedule(_ context.Context, _ sqlc.DBTX, id uuid.UUID, lastError string, runAt time.Time) error {
	return r.update(id, func(j *JobRow) {
		j.Status = JobPending
		j.Attempts++
		j.LastError = lastError
		j.RunAt = runAt
	})
}

func (r notificationRepo) MarkFailed(_ context.Context, _ sqlc.DBTX, id uuid.UUID, lastError string) error {
	return r.update(id, func(j *JobRow) {
		j.Attempts++
		j.LastError = lastError
		j.Status = JobFailed
	})
}

// read side

// BookingViewer resolves bookings the way the read store does.
func (m *Memory) BookingViewer() BookingViewer { return BookingViewer{m} }

type BookingViewer struct{ m *Memory }

func (v BookingViewer) FindByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	v.m.mu.Lock()
	defer v.m.mu.Unlock()
	b, ok := v.m.st.bookings[id]
	if !ok {
		return nil, notFound("booking not found")
	}
	u := v.m.st.users[b.UserID]
	rest := v.m.st.restaurants[b.RestaurantID]
	return &queries.BookingView{
		ID:                b.ID,
		UserID:            b.UserID,
		UserName:          u.Name,
		UserEmail:         u.Email,
		RestaurantID:      b.RestaurantID,
		RestaurantName:    rest.Attrs.Name,
		RestaurantAdminID: rest.Attrs.AdminID,
		Date:              b.Date.String(),
		Time:              b.Slot.String(),
		PartySize:         b.PartySize.Value(),
		Status:            b.Status.String(),
		SpecialRequests:   b.SpecialRequests.String(),
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}, nil
}

func (m *Memory) RestaurantViewer() RestaurantViewer { return RestaurantViewer{m} }

type RestaurantViewer struct{ m *Memory }

func (v RestaurantViewer) FindByID(_ context.Context, id uuid.UUID) (*queries.RestaurantView, error) {
	v.m.mu.Lock()
	defer v.m.mu.Unlock()
	r, ok := v.m.st.restaurants[id]
	if !ok {
		return nil, notFound("restaurant not found")
	}
	return &queries.RestaurantView{
		ID:          r.ID,
		Name:        r.Attrs.Name,
		Cuisine:     r.Attrs.Cuisine,
		Location:    r.Attrs.Location,
		Description: r.Attrs.Description,
		ImageURL:    r.Attrs.ImageURL,
		Capacity:    r.Attrs.Capacity,
		AdminID:     r.Attrs.AdminID,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}, nil
}

func (m *Memory) UserReadStore() UserReadStore { return UserReadStore{m} }

type UserReadStore struct{ m *Memory }

func (s UserReadStore) view(row UserRow) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:        row.ID,
		Email:     row.Email,
		Name:      row.Name,
		Role:      row.Role,
		Points:    row.Points,
		IsActive:  row.IsActive,
		LastLogin: row.LastLogin,
		CreatedAt: row.CreatedAt,
	}
}

func (s UserReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	row, ok := s.m.st.users[id]
	if !ok {
		return nil, notFound("user not found")
	}
	return s.view(row), nil
}

func (s UserReadStore) FindByEmail(_ context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, row := range s.m.st.users {
		if row.Email == email {
			return s.view(row), row.PasswordHash, nil
		}
	}
	return nil, "", notFound("user not found")
}
