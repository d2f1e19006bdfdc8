package commands

import (
	"context"

	"table-booking/internal/infra"
	"table-booking/internal/pkg/errs"
	"table-booking/internal/usecase/shared"
)

var (
	ErrRestaurantNotFound    = errs.New("restaurant not found")
	ErrBookingNotFound       = errs.New("booking not found")
	ErrBookingForbidden      = errs.New("not allowed to act on booking")
	ErrRestaurantForbidden   = errs.New("not allowed to manage restaurant")
	ErrIdempotencyInProgress = errs.New("idempotency in progress")
	ErrIdempotencyMismatch   = errs.New("idempotency key reused with a different request")
	ErrIdempotencyCheck      = errs.New("idempotency check failed")
)

// invalid tags a validation failure as InvalidRequest.
func invalid(err error) error {
	return errs.Mark(err, errs.ErrInvalidRequest)
}

// classifyTxErr folds transaction and storage failures into the shared
// outcome taxonomy. Errors already carrying an outcome pass through.
func classifyTxErr(err error) error {
	if err == nil {
		return nil
	}
	for _, outcome := range []error{
		errs.ErrInvalidRequest,
		errs.ErrNotFound,
		errs.ErrSlotUnavailable,
		errs.ErrForbidden,
		errs.ErrInvalidTransition,
		errs.ErrConflict,
		errs.ErrUnavailable,
	} {
		if errs.Is(err, outcome) {
			return err
		}
	}

	switch {
	case errs.Is(err, context.DeadlineExceeded), errs.Is(err, context.Canceled):
		return errs.Mark(err, errs.ErrUnavailable)
	case errs.Is(err, shared.ErrTransactionBegin):
		return errs.Mark(err, errs.ErrUnavailable)
	case errs.Is(err, shared.ErrMaxRetriesExceeded):
		return errs.Mark(err, errs.ErrConflict)
	case infra.IsKind(err, infra.KindUnavailable):
		return errs.Mark(err, errs.ErrUnavailable)
	case infra.IsKind(err, infra.KindRetryable):
		return errs.Mark(err, errs.ErrConflict)
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Mark(err, errs.ErrConflict)
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrNotFound)
	}
	return err
}
