package booking

import (
	"errors"
	"time"

	"stayhub/internal/domain/shared/daterange"

	"github.com/google/uuid"
)

var (
	ErrNotPending        = errors.New("booking is not pending")
	ErrNotRequester      = errors.New("only the requester may cancel")
	ErrNotOwner          = errors.New("only the resource owner may decide")
	ErrInvalidGuestCount = errors.New("guest count must be at least 1")
)

// Booking is a reservation awaiting owner confirmation. It is created in
// pending state with its full price breakdown; payment capture happens only
// after the owner confirms, outside this engine.
type Booking struct {
	id          uuid.UUID
	resourceID  uuid.UUID
	requesterID uuid.UUID
	ownerID     uuid.UUID
	interval    daterange.DateRange
	guestCount  int
	breakdown   Breakdown
	couponID    *uuid.UUID
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

func NewBooking(
	resourceID, requesterID, ownerID uuid.UUID,
	interval daterange.DateRange,
	guestCount int,
	breakdown Breakdown,
	couponID *uuid.UUID,
) (*Booking, error) {
	if interval.IsZero() {
		return nil, daterange.ErrInvalidInterval
	}
	if guestCount < 1 {
		return nil, ErrInvalidGuestCount
	}

	return &Booking{
		id:          uuid.New(),
		resourceID:  resourceID,
		requesterID: requesterID,
		ownerID:     ownerID,
		interval:    interval,
		guestCount:  guestCount,
		breakdown:   breakdown,
		couponID:    couponID,
		status:      StatusPending,
	}, nil
}

func Reconstruct(
	id, resourceID, requesterID, ownerID uuid.UUID,
	interval daterange.DateRange,
	guestCount int,
	breakdown Breakdown,
	couponID *uuid.UUID,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		resourceID:  resourceID,
		requesterID: requesterID,
		ownerID:     ownerID,
		interval:    interval,
		guestCount:  guestCount,
		breakdown:   breakdown,
		couponID:    couponID,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Confirm transitions pending -> confirmed. Only the resource owner decides.
func (b *Booking) Confirm(actorID uuid.UUID) error {
	if actorID != b.ownerID {
		return ErrNotOwner
	}
	if b.status != StatusPending {
		return ErrNotPending
	}
	b.status = StatusConfirmed
	return nil
}

// Reject transitions pending -> rejected. Only the resource owner decides.
func (b *Booking) Reject(actorID uuid.UUID) error {
	if actorID != b.ownerID {
		return ErrNotOwner
	}
	if b.status != StatusPending {
		return ErrNotPending
	}
	b.status = StatusRejected
	return nil
}

// Cancel transitions pending -> cancelled. Only the requester may cancel,
// and only before the owner has decided.
func (b *Booking) Cancel(actorID uuid.UUID) error {
	if actorID != b.requesterID {
		return ErrNotRequester
	}
	if b.status != StatusPending {
		return ErrNotPending
	}
	b.status = StatusCancelled
	return nil
}

func (b *Booking) IsPending() bool {
	return b.status == StatusPending
}

func (b *Booking) ID() uuid.UUID                 { return b.id }
func (b *Booking) ResourceID() uuid.UUID         { return b.resourceID }
func (b *Booking) RequesterID() uuid.UUID        { return b.requesterID }
func (b *Booking) OwnerID() uuid.UUID            { return b.ownerID }
func (b *Booking) Interval() daterange.DateRange { return b.interval }
func (b *Booking) GuestCount() int               { return b.guestCount }
func (b *Booking) PriceBreakdown() Breakdown     { return b.breakdown }
func (b *Booking) CouponID() *uuid.UUID          { return b.couponID }
func (b *Booking) Status() Status                { return b.status }
func (b *Booking) CreatedAt() time.Time          { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time          { return b.updatedAt }
