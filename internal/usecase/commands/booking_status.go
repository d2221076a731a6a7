package commands

import (
	"context"

	"stayhub/internal/domain/booking"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

// ConfirmBooking transitions pending -> confirmed. Dates stay claimed and
// points stay spent; the breakdown is frozen as priced at creation.
func (b *bookingCommandsImpl) ConfirmBooking(ctx context.Context, bookingID, actorID uuid.UUID) error {
	return b.transition(ctx, bookingID, func(entity *booking.Booking) error {
		return entity.Confirm(actorID)
	}, "booking_confirmed")
}

// RejectBooking transitions pending -> rejected, releasing the claimed dates
// and crediting back any points the booking spent.
func (b *bookingCommandsImpl) RejectBooking(ctx context.Context, bookingID, actorID uuid.UUID) error {
	return b.transition(ctx, bookingID, func(entity *booking.Booking) error {
		return entity.Reject(actorID)
	}, "booking_rejected")
}

// CancelBooking transitions pending -> cancelled by the requester, with the
// same compensation as a rejection.
func (b *bookingCommandsImpl) CancelBooking(ctx context.Context, bookingID, actorID uuid.UUID) error {
	return b.transition(ctx, bookingID, func(entity *booking.Booking) error {
		return entity.Cancel(actorID)
	}, "booking_cancelled")
}

func (b *bookingCommandsImpl) transition(
	ctx context.Context,
	bookingID uuid.UUID,
	apply func(entity *booking.Booking) error,
	topic string,
) error {
	return b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingByID(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		entity, err := snap.ToEntity()
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		if err := apply(entity); err != nil {
			return err
		}

		if err := tx.Bookings().UpdateStatus(ctx, bookingID, entity.Status()); err != nil {
			// A zero-row update means a concurrent transition won the race
			// after our read; the booking is no longer pending.
			if infra.IsKind(err, infra.KindConflict) {
				return booking.ErrNotPending
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		// A booking that leaves the calendar gives its dates and points back.
		if entity.Status() == booking.StatusRejected || entity.Status() == booking.StatusCancelled {
			if err := tx.Bookings().ReleaseDates(ctx, bookingID); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			if points := entity.PriceBreakdown().PointsUsed; points > 0 {
				if err := tx.Loyalty().Credit(ctx, entity.RequesterID(), points, bookingID); err != nil {
					return errs.Mark(err, ErrDatabaseOperationFailed)
				}
			}
		}

		return createBookingNotification(ctx, tx, b.clock, bookingID, topic)
	})
}
