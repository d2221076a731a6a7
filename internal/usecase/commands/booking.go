package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/coupon"
	"stayhub/internal/domain/resource"
	reqdto "stayhub/internal/handler/dto/request"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/config"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/queries"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrResourceNotFound        = errs.New("resource not found")
	ErrRequesterNotFound       = errs.New("requester not found")
	ErrRequesterInactive       = errs.New("requester inactive")
	ErrNotVerified             = errs.New("account email not verified")
	ErrInvalidCoupon           = errs.New("invalid coupon")
	ErrBookingConflict         = errs.New("booking conflict")
	ErrInsufficientPoints      = errs.New("insufficient loyalty points")
	ErrDuplicateRequest        = errs.New("idempotency key reused with different payload")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrIdempotencyCheckFailed  = errs.New("idempotency check failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

const createBookingEndpoint = "POST /bookings"

type CreateBookingResult struct {
	Booking    *queries.BookingView
	IsReplayed bool
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest, requesterID uuid.UUID, idempotencyKey uuid.UUID) (*CreateBookingResult, error)
	ConfirmBooking(ctx context.Context, bookingID, actorID uuid.UUID) error
	RejectBooking(ctx context.Context, bookingID, actorID uuid.UUID) error
	CancelBooking(ctx context.Context, bookingID, actorID uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow             shared.UnitOfWork
	idempotencyGate IdempotencyGate
	bookingFactory  *booking.Factory
	bookingQueries  queries.BookingQueries
	fees            config.FeeConfig
	clock           clock.Clock
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	idempotencyGate IdempotencyGate,
	bookingFactory *booking.Factory,
	bookingQueries queries.BookingQueries,
	fees config.FeeConfig,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:             uow,
		idempotencyGate: idempotencyGate,
		bookingFactory:  bookingFactory,
		bookingQueries:  bookingQueries,
		fees:            fees,
		clock:           clk,
	}
}

func (b *bookingCommandsImpl) CreateBooking(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
	requesterID uuid.UUID,
	idempotencyKey uuid.UUID,
) (*CreateBookingResult, error) {
	requester, err := b.validateRequester(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	requestHash := calculateRequestHash(req)
	expiresAt := b.clock.Now().Add(24 * time.Hour)

	replayed, err := b.handleIdempotency(ctx, idempotencyKey, requesterID, requestHash, expiresAt)
	if err != nil {
		return nil, err
	}
	if replayed != nil {
		return &CreateBookingResult{Booking: replayed, IsReplayed: true}, nil
	}

	view, err := b.createNewBooking(ctx, req, requester, idempotencyKey)
	if err != nil {
		return nil, err
	}
	return &CreateBookingResult{Booking: view, IsReplayed: false}, nil
}

func (b *bookingCommandsImpl) validateRequester(ctx context.Context, requesterID uuid.UUID) (*shared.UserSnapshot, error) {
	requester, err := b.uow.CommandReads().UserByID(ctx, requesterID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRequesterNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !requester.IsActive {
		return nil, ErrRequesterInactive
	}
	if !requester.EmailVerified {
		return nil, ErrNotVerified
	}
	return requester, nil
}

// handleIdempotency claims the key and decides between replay, reject and
// first execution. A completed record replays the stored booking; the same
// key with a different payload is rejected outright.
func (b *bookingCommandsImpl) handleIdempotency(
	ctx context.Context,
	idempotencyKey, requesterID uuid.UUID,
	requestHash string,
	expiresAt time.Time,
) (*queries.BookingView, error) {
	if err := b.idempotencyGate.TryInsert(ctx, idempotencyKey, requesterID, createBookingEndpoint, requestHash, expiresAt); err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}

	existing, err := b.idempotencyGate.Find(ctx, idempotencyKey, requesterID)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}

	switch existing.Status {
	case shared.IdempotencyCompleted:
		if existing.RequestHash != requestHash {
			return nil, ErrDuplicateRequest
		}
		if existing.ResultBookingID == nil {
			return nil, errs.New("completed request missing result booking ID")
		}
		// System-level read: the replay must return the same body the
		// first execution did.
		return b.bookingQueries.GetByIDSystem(ctx, *existing.ResultBookingID)

	case shared.IdempotencyProcessing:
		if existing.RequestHash != requestHash {
			return nil, ErrDuplicateRequest
		}
		return nil, nil

	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (b *bookingCommandsImpl) createNewBooking(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
	requester *shared.UserSnapshot,
	idempotencyKey uuid.UUID,
) (*queries.BookingView, error) {
	interval, err := req.ToInterval()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var bookingID uuid.UUID
	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		resourceSnap, err := tx.Resources().LockForBooking(ctx, req.ResourceID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrResourceNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		resourceEntity, err := resourceSnap.ToEntity()
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		couponEntity, err := b.resolveCoupon(ctx, tx, resourceEntity, req.GetCouponCode())
		if err != nil {
			return err
		}

		bookingEntity, err := b.bookingFactory.CreateBooking(
			resourceEntity,
			requester.ID,
			interval,
			req.GuestCount,
			couponEntity,
			req.PointsToUse,
			requester.LoyaltyPoints,
			b.fees.PercentFor(resourceEntity.Category().String()),
		)
		if err != nil {
			return err
		}

		bookingID, err = tx.Bookings().Create(ctx, bookingEntity)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) || infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrBookingConflict
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if points := bookingEntity.PriceBreakdown().PointsUsed; points > 0 {
			if err := tx.Loyalty().Debit(ctx, requester.ID, points, bookingID); err != nil {
				if infra.IsKind(err, infra.KindConflict) {
					return ErrInsufficientPoints
				}
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		if err := createBookingNotification(ctx, tx, b.clock, bookingID, "booking_requested"); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		responseHash := calculateIDHash(bookingID)
		if err := tx.Idempotency().UpdateStatusCompleted(ctx, idempotencyKey, requester.ID, responseHash, bookingID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Read-after-write: return the full view from the read side.
	view, err := b.bookingQueries.GetByIDSystem(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// resolveCoupon loads and checks ownership of the requested coupon. Usage
// windows and activity are validated later by the factory so expiry maps to
// its own error.
func (b *bookingCommandsImpl) resolveCoupon(
	ctx context.Context,
	tx shared.Tx,
	res *resource.Resource,
	couponCode *string,
) (*coupon.Coupon, error) {
	if couponCode == nil {
		return nil, nil
	}

	snap, err := tx.Reads().CouponByOwnerAndCode(ctx, res.OwnerID(), *couponCode)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCoupon
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	couponEntity, err := snap.ToEntity()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCoupon)
	}
	return couponEntity, nil
}

func createBookingNotification(ctx context.Context, tx shared.Tx, clk clock.Clock, bookingID uuid.UUID, topic string) error {
	payload, err := json.Marshal(map[string]any{
		"booking_id": bookingID,
		"type":       topic,
	})
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, "email", topic, payload, clk.Now())
}

func calculateRequestHash(req any) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func calculateIDHash(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}
