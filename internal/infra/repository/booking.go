package repository

import (
	"context"

	"stayhub/internal/domain/booking"
	"stayhub/internal/infra"
	"stayhub/internal/infra/db"
	"stayhub/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

const insertBookingQuery = `
INSERT INTO bookings (
    id, resource_id, requester_id, owner_id,
    start_date, end_date, guest_count,
    base_amount_cents, discount_cents, points_used, service_fee_cents, total_cents,
    coupon_id, status
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
`

const insertBookingDateQuery = `
INSERT INTO booking_dates (booking_id, resource_id, date)
VALUES ($1, $2, $3)
`

// Create writes the booking row and claims one booking_dates row per
// occupied date. The unique index on (resource_id, date) makes the claim the
// arbiter between concurrent requests for the same dates.
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	breakdown := b.PriceBreakdown()

	_, err := r.db.Exec(ctx, insertBookingQuery,
		pgconv.UUIDToPgtype(b.ID()),
		pgconv.UUIDToPgtype(b.ResourceID()),
		pgconv.UUIDToPgtype(b.RequesterID()),
		pgconv.UUIDToPgtype(b.OwnerID()),
		pgconv.DateToPgtype(b.Interval().Start()),
		pgconv.DateToPgtype(b.Interval().End()),
		int32(b.GuestCount()),
		breakdown.BaseAmount,
		breakdown.DiscountAmount,
		breakdown.PointsUsed,
		breakdown.ServiceFee,
		breakdown.GrandTotal,
		pgconv.UUIDPtrToPgtype(b.CouponID()),
		b.Status().String(),
	)
	if err != nil {
		return uuid.Nil, wrapPgErr("failed to insert booking", err)
	}

	for _, date := range b.Interval().Dates() {
		_, err := r.db.Exec(ctx, insertBookingDateQuery,
			pgconv.UUIDToPgtype(b.ID()),
			pgconv.UUIDToPgtype(b.ResourceID()),
			pgconv.DateToPgtype(date),
		)
		if err != nil {
			return uuid.Nil, wrapPgErr("failed to claim booking date", err)
		}
	}

	return b.ID(), nil
}

const updateBookingStatusQuery = `
UPDATE bookings SET status = $2, updated_at = now()
WHERE id = $1 AND status = 'pending'
`

// UpdateStatus is a compare-and-set: only a pending booking moves. Under
// ReadCommitted a concurrent transition can commit between our read and this
// write; the status predicate makes the loser's update touch zero rows
// instead of overwriting a terminal state.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error {
	tag, err := r.db.Exec(ctx, updateBookingStatusQuery, pgconv.UUIDToPgtype(id), status.String())
	if err != nil {
		return wrapPgErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking is not pending", nil, infra.KindConflict)
	}
	return nil
}

const releaseBookingDatesQuery = `
DELETE FROM booking_dates WHERE booking_id = $1
`

func (r *BookingRepository) ReleaseDates(ctx context.Context, bookingID uuid.UUID) error {
	_, err := r.db.Exec(ctx, releaseBookingDatesQuery, pgconv.UUIDToPgtype(bookingID))
	if err != nil {
		return wrapPgErr("failed to release booking dates", err)
	}
	return nil
}
