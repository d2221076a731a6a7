package shared

import (
	"context"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/user"

	"github.com/google/uuid"
)

// UnitOfWork scopes a set of repository operations to one database
// transaction. Within retries serialization failures with backoff; a losing
// transaction surfaces as a conflict to the caller.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: non-transactional reads used for validation before a
	// transaction is opened.
	CommandReads() CommandReads
}

// Tx exposes the write repositories bound to the open transaction.
type Tx interface {
	Bookings() BookingRepository
	Resources() ResourceRepository
	Loyalty() LoyaltyRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
}

type CommandReads interface {
	ResourceByID(ctx context.Context, id uuid.UUID) (*ResourceSnapshot, error)
	CouponByOwnerAndCode(ctx context.Context, ownerID uuid.UUID, code string) (*CouponSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
}

type BookingRepository interface {
	// Create persists the booking and claims its occupied dates. A unique
	// violation on a claimed date maps to a conflict kind.
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error
	// ReleaseDates frees the date claims of a rejected or cancelled booking.
	ReleaseDates(ctx context.Context, bookingID uuid.UUID) error
}

type ResourceRepository interface {
	// LockForBooking loads the resource row FOR UPDATE together with its
	// currently claimed dates, serializing concurrent booking attempts on
	// the same resource.
	LockForBooking(ctx context.Context, id uuid.UUID) (*ResourceSnapshot, error)
}

type LoyaltyRepository interface {
	// Debit subtracts points guarded by the current balance and appends a
	// ledger entry referencing the booking.
	Debit(ctx context.Context, accountID uuid.UUID, points int64, bookingID uuid.UUID) error
	// Credit compensates a prior debit when a booking is rejected or
	// cancelled.
	Credit(ctx context.Context, accountID uuid.UUID, points int64, bookingID uuid.UUID) error
}

type IdempotencyRepository interface {
	UpdateStatusCompleted(ctx context.Context, key, userID uuid.UUID, responseHash string, resultBookingID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (uuid.UUID, error)
	SetEmailVerified(ctx context.Context, id uuid.UUID) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}
