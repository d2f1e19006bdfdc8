package commands

import (
	"context"

	"table-booking/internal/domain/booking"
	"table-booking/internal/infra"
	"table-booking/internal/pkg/errs"
	"table-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// TransitionBooking moves a booking along its lifecycle. The first move into
// confirmed credits the owner in the same transaction; re-confirming is a
// no-op without writes.
func (uc *bookingUseCaseImpl) TransitionBooking(ctx context.Context, actor shared.Actor, bookingID uuid.UUID, newStatus string) (*BookingResult, error) {
	target, err := booking.ParseStatus(newStatus)
	if err != nil {
		return nil, invalid(err)
	}
	if target == booking.StatusPending {
		return nil, errs.Mark(booking.ErrIllegalTransition, errs.ErrInvalidTransition)
	}

	if uc.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.cfg.Timeout)
		defer cancel()
	}

	var result booking.TransitionResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = booking.TransitionResult{}

		b, lerr := tx.Bookings().FindForUpdate(ctx, tx.DB(), bookingID)
		if lerr != nil {
			if infra.IsKind(lerr, infra.KindNotFound) {
				return errs.Mark(errs.Wrap(lerr, ErrBookingNotFound.Error()), errs.ErrNotFound)
			}
			return lerr
		}

		rest, lerr := tx.Reads().RestaurantByID(ctx, b.RestaurantID())
		if lerr != nil {
			return restaurantLookupErr(lerr)
		}

		if !shared.CanActOnBooking(actor, b.UserID(), rest.AdminID) {
			return errs.Mark(ErrBookingForbidden, errs.ErrForbidden)
		}

		res, terr := b.Transition(target, uc.clock.Now())
		if terr != nil {
			return errs.Mark(terr, errs.ErrInvalidTransition)
		}
		result = res
		if !res.Changed {
			return nil
		}

		if terr = tx.Bookings().UpdateStatus(ctx, tx.DB(), b); terr != nil {
			return terr
		}

		if res.EnteredConfirmed() {
			if terr = issueConfirmationReward(ctx, tx, b, uc.clock.Now()); terr != nil {
				return terr
			}
		}

		topic, ok := topicFor(res.To)
		if !ok {
			return nil
		}
		return enqueueBookingEvent(ctx, tx, topic, bookingEventOf(b, rest.Name), uc.clock.Now())
	})
	if err != nil {
		return nil, classifyTxErr(err)
	}

	if result.Changed {
		uc.notifier.Wake()
	}

	view, err := uc.viewer.FindByID(ctx, bookingID)
	if err != nil {
		return nil, classifyTxErr(err)
	}
	return &BookingResult{Booking: view, Changed: result.Changed}, nil
}
