package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"table-booking/internal/domain/booking"
	"table-booking/internal/domain/reward"
	"table-booking/internal/infra"
	"table-booking/internal/pkg/clock"
	"table-booking/internal/pkg/config"
	"table-booking/internal/pkg/errs"
	"table-booking/internal/usecase/queries"
	"table-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const requestBookingEndpoint = "POST /api/bookings"

type RequestBookingRequest struct {
	RestaurantID    uuid.UUID
	Date            string
	Time            string
	PartySize       int
	SpecialRequests string
	IdempotencyKey  *uuid.UUID
}

type BookingResult struct {
	Booking    *queries.BookingView
	IsReplayed bool
	Changed    bool
}

// BookingViewer reloads a booking for the response after commit.
type BookingViewer interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error)
}

type BookingCommands interface {
	RequestBooking(ctx context.Context, actor shared.Actor, req RequestBookingRequest) (*BookingResult, error)
	TransitionBooking(ctx context.Context, actor shared.Actor, bookingID uuid.UUID, newStatus string) (*BookingResult, error)
}

type bookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	viewer   BookingViewer
	factory  *booking.Factory
	notifier shared.Notifier
	clock    clock.Clock
	cfg      config.BookingConfig
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	viewer BookingViewer,
	factory *booking.Factory,
	notifier shared.Notifier,
	clk clock.Clock,
	cfg config.BookingConfig,
) BookingCommands {
	if notifier == nil {
		notifier = shared.NopNotifier{}
	}
	return &bookingUseCaseImpl{
		uow:      uow,
		viewer:   viewer,
		factory:  factory,
		notifier: notifier,
		clock:    clk,
		cfg:      cfg,
	}
}

// admission is a request that passed field validation.
type admission struct {
	restaurantID uuid.UUID
	date         booking.Date
	slot         booking.Slot
	partySize    booking.PartySize
	requests     booking.SpecialRequests
}

func (uc *bookingUseCaseImpl) RequestBooking(ctx context.Context, actor shared.Actor, req RequestBookingRequest) (*BookingResult, error) {
	adm, err := uc.validateRequest(req)
	if err != nil {
		return nil, err
	}

	if uc.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.cfg.Timeout)
		defer cancel()
	}

	var (
		bookingID uuid.UUID
		replayed  bool
		enqueued  bool
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		bookingID, replayed, enqueued = uuid.Nil, false, false

		if req.IdempotencyKey != nil {
			prior, ierr := uc.claimIdempotencyKey(ctx, tx, *req.IdempotencyKey, actor.ID, requestHash(adm))
			if ierr != nil {
				return ierr
			}
			if prior != nil {
				bookingID, replayed = *prior, true
				return nil
			}
		}

		b, rest, aerr := uc.admit(ctx, tx, actor, adm)
		if aerr != nil {
			return aerr
		}
		bookingID = b.ID()

		if b.Status() == booking.StatusConfirmed {
			if aerr = issueConfirmationReward(ctx, tx, b, uc.clock.Now()); aerr != nil {
				return aerr
			}
			if aerr = enqueueBookingEvent(ctx, tx, shared.TopicBookingConfirmed, bookingEventOf(b, rest.Name), uc.clock.Now()); aerr != nil {
				return aerr
			}
			enqueued = true
		}

		if req.IdempotencyKey != nil {
			return tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), *req.IdempotencyKey, actor.ID, b.ID())
		}
		return nil
	}, shared.WithMaxRetries(1))
	if err != nil {
		return nil, classifyTxErr(err)
	}

	if enqueued {
		uc.notifier.Wake()
	}

	view, err := uc.viewer.FindByID(ctx, bookingID)
	if err != nil {
		return nil, classifyTxErr(err)
	}
	return &BookingResult{Booking: view, IsReplayed: replayed, Changed: !replayed}, nil
}

func (uc *bookingUseCaseImpl) validateRequest(req RequestBookingRequest) (*admission, error) {
	partySize, err := booking.NewPartySize(req.PartySize)
	if err != nil {
		return nil, invalid(err)
	}
	slot, err := booking.ParseSlot(req.Time)
	if err != nil {
		return nil, invalid(err)
	}
	requests, err := booking.NewSpecialRequests(req.SpecialRequests)
	if err != nil {
		return nil, invalid(err)
	}
	date, err := booking.ParseDate(req.Date)
	if err != nil {
		return nil, invalid(err)
	}
	if err := uc.factory.ValidateDate(date); err != nil {
		return nil, invalid(err)
	}
	if req.RestaurantID == uuid.Nil {
		return nil, errs.Mark(ErrRestaurantNotFound, errs.ErrNotFound)
	}

	return &admission{
		restaurantID: req.RestaurantID,
		date:         date,
		slot:         slot,
		partySize:    partySize,
		requests:     requests,
	}, nil
}

// admit runs the capacity check under the slot lock and inserts the booking.
func (uc *bookingUseCaseImpl) admit(ctx context.Context, tx shared.Tx, actor shared.Actor, adm *admission) (*booking.Booking, *shared.RestaurantSnapshot, error) {
	if err := tx.Bookings().LockSlot(ctx, tx.DB(), adm.restaurantID, adm.date, adm.slot); err != nil {
		return nil, nil, err
	}

	// read after the lock so capacity reflects the latest committed edit
	rest, err := tx.Reads().RestaurantByID(ctx, adm.restaurantID)
	if err != nil {
		return nil, nil, restaurantLookupErr(err)
	}

	current, err := tx.Bookings().SlotOccupancy(ctx, tx.DB(), adm.restaurantID, adm.date, adm.slot)
	if err != nil {
		return nil, nil, err
	}

	if rest.Capacity-current < adm.partySize.Value() {
		occ, oerr := tx.Bookings().DayOccupancy(ctx, tx.DB(), adm.restaurantID, adm.date)
		if oerr != nil {
			return nil, nil, oerr
		}
		slog.Info("slot unavailable",
			"restaurant_id", adm.restaurantID,
			"date", adm.date.String(),
			"time", adm.slot.String(),
			"party_size", adm.partySize.Value(),
			"booked", current,
			"capacity", rest.Capacity)
		return nil, nil, errs.NewSlotUnavailable(booking.AvailableTimes(rest.Capacity, occ, adm.partySize.Value()))
	}

	b, err := uc.factory.CreateBooking(actor.ID, adm.restaurantID, adm.date, adm.slot, adm.partySize, adm.requests)
	if err != nil {
		return nil, nil, invalid(err)
	}

	if _, err := tx.Bookings().Create(ctx, tx.DB(), b); err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, nil, errs.Mark(err, errs.ErrNotFound)
		}
		return nil, nil, err
	}
	return b, rest, nil
}

// claimIdempotencyKey returns the booking of a completed earlier request
// with the same key, or nil when this request now owns the key.
func (uc *bookingUseCaseImpl) claimIdempotencyKey(ctx context.Context, tx shared.Tx, key, userID uuid.UUID, hash string) (*uuid.UUID, error) {
	now := uc.clock.Now()
	expiresAt := now.Add(uc.idempotencyTTL())

	inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, userID, requestBookingEndpoint, hash, expiresAt)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheck)
	}
	if inserted {
		return nil, nil
	}

	existing, err := tx.Reads().IdempotencyByKey(ctx, key, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheck)
	}

	if !existing.ExpiresAt.After(now) {
		claimed, cerr := tx.Idempotency().ClaimExpired(ctx, tx.DB(), key, userID, requestBookingEndpoint, hash, expiresAt)
		if cerr != nil {
			return nil, errs.Mark(cerr, ErrIdempotencyCheck)
		}
		if claimed {
			return nil, nil
		}
		return nil, errs.Mark(ErrIdempotencyInProgress, errs.ErrConflict)
	}

	if existing.RequestHash != hash {
		return nil, errs.Mark(ErrIdempotencyMismatch, errs.ErrConflict)
	}

	switch existing.Status {
	case shared.IdempotencyStatusCompleted:
		if existing.ResultBookingID == nil {
			return nil, errs.Mark(errs.New("completed request missing result booking ID"), ErrIdempotencyCheck)
		}
		return existing.ResultBookingID, nil
	case shared.IdempotencyStatusProcessing:
		return nil, errs.Mark(ErrIdempotencyInProgress, errs.ErrConflict)
	default:
		return nil, errs.Newf("invalid idempotency key status %q", existing.Status)
	}
}

func (uc *bookingUseCaseImpl) idempotencyTTL() time.Duration {
	if uc.cfg.IdempotencyTTL > 0 {
		return uc.cfg.IdempotencyTTL
	}
	return 24 * time.Hour
}

// issueConfirmationReward credits the booking owner once. A replayed
// confirmation finds the ledger row already present and leaves points alone.
func issueConfirmationReward(ctx context.Context, tx shared.Tx, b *booking.Booking, now time.Time) error {
	entry := reward.NewConfirmationEntry(b.UserID(), b.ID(), now)

	inserted, err := tx.Rewards().Issue(ctx, tx.DB(), entry)
	if err != nil {
		return err
	}
	if !inserted {
		slog.Info("reward already issued", "booking_id", b.ID())
		return nil
	}
	return tx.Users().AddPoints(ctx, tx.DB(), b.UserID(), entry.PointsChange())
}

func restaurantLookupErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(errs.Wrap(err, ErrRestaurantNotFound.Error()), errs.ErrNotFound)
	}
	return err
}

// requestHash fingerprints the normalised request for idempotency checks.
func requestHash(adm *admission) string {
	data, _ := json.Marshal(struct {
		RestaurantID    uuid.UUID `json:"restaurant_id"`
		Date            string    `json:"date"`
		Time            string    `json:"time"`
		PartySize       int       `json:"party_size"`
		SpecialRequests string    `json:"special_requests"`
	}{
		RestaurantID:    adm.restaurantID,
		Date:            adm.date.String(),
		Time:            adm.slot.String(),
		PartySize:       adm.partySize.Value(),
		SpecialRequests: adm.requests.String(),
	})
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
