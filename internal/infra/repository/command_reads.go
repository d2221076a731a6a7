package repository

import (
	"context"
	"strings"

	"stayhub/internal/infra"
	"stayhub/internal/infra/db"
	"stayhub/internal/pkg/pgconv"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// CommandReads serves the write side's validation lookups. Bound to the pool
// for pre-transaction checks and to the open transaction inside one.
type CommandReads struct {
	db db.DBTX
}

func NewCommandReads(dbtx db.DBTX) *CommandReads {
	return &CommandReads{db: dbtx}
}

const getResourceQuery = `
SELECT id, owner_id, name, category, base_price_cents, max_occupancy
FROM resources
WHERE id = $1
`

func (r *CommandReads) ResourceByID(ctx context.Context, id uuid.UUID) (*shared.ResourceSnapshot, error) {
	return scanResourceSnapshot(ctx, r.db, getResourceQuery, id)
}

const getCouponByOwnerAndCodeQuery = `
SELECT id, code, owner_id, discount_type, discount_value, expiry_date, active
FROM coupons
WHERE owner_id = $1 AND code = $2
`

func (r *CommandReads) CouponByOwnerAndCode(ctx context.Context, ownerID uuid.UUID, code string) (*shared.CouponSnapshot, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))

	var (
		snap       shared.CouponSnapshot
		id, owner  pgtype.UUID
		expiryDate pgtype.Date
	)
	err := r.db.QueryRow(ctx, getCouponByOwnerAndCodeQuery, pgconv.UUIDToPgtype(ownerID), normalized).Scan(
		&id, &snap.Code, &owner, &snap.DiscountType, &snap.DiscountValue, &expiryDate, &snap.Active,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, wrapPgErr("failed to get coupon", err)
	}
	snap.ID = uuid.UUID(id.Bytes)
	snap.OwnerID = uuid.UUID(owner.Bytes)
	snap.ExpiryDate = pgconv.DateFromPgtype(expiryDate)
	return &snap, nil
}

const getBookingQuery = `
SELECT id, resource_id, requester_id, owner_id,
       start_date, end_date, guest_count,
       base_amount_cents, discount_cents, points_used, service_fee_cents, total_cents,
       coupon_id, status, created_at, updated_at
FROM bookings
WHERE id = $1
`

func (r *CommandReads) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	var (
		snap                            shared.BookingSnapshot
		bid, resourceID, requester, own pgtype.UUID
		startDate, endDate              pgtype.Date
		guestCount                      int32
		couponID                        pgtype.UUID
		createdAt, updatedAt            pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, getBookingQuery, pgconv.UUIDToPgtype(id)).Scan(
		&bid, &resourceID, &requester, &own,
		&startDate, &endDate, &guestCount,
		&snap.BaseAmount, &snap.DiscountAmount, &snap.PointsUsed, &snap.ServiceFee, &snap.GrandTotal,
		&couponID, &snap.Status, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, wrapPgErr("failed to get booking", err)
	}
	snap.ID = uuid.UUID(bid.Bytes)
	snap.ResourceID = uuid.UUID(resourceID.Bytes)
	snap.RequesterID = uuid.UUID(requester.Bytes)
	snap.OwnerID = uuid.UUID(own.Bytes)
	snap.StartDate = pgconv.DateFromPgtype(startDate)
	snap.EndDate = pgconv.DateFromPgtype(endDate)
	snap.GuestCount = int(guestCount)
	snap.CouponID = pgconv.UUIDPtrFromPgtype(couponID)
	snap.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	snap.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &snap, nil
}

const getUserByIDQuery = `
SELECT id, email, password_hash, role, email_verified, loyalty_points, is_active
FROM users
WHERE id = $1
`

func (r *CommandReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	return r.scanUser(ctx, getUserByIDQuery, pgconv.UUIDToPgtype(id))
}

const getUserByEmailQuery = `
SELECT id, email, password_hash, role, email_verified, loyalty_points, is_active
FROM users
WHERE email = $1
`

func (r *CommandReads) UserByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	return r.scanUser(ctx, getUserByEmailQuery, email)
}

func (r *CommandReads) scanUser(ctx context.Context, query string, arg any) (*shared.UserSnapshot, error) {
	var (
		snap shared.UserSnapshot
		id   pgtype.UUID
	)
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&id, &snap.Email, &snap.PasswordHash, &snap.Role,
		&snap.EmailVerified, &snap.LoyaltyPoints, &snap.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, wrapPgErr("failed to get user", err)
	}
	snap.ID = uuid.UUID(id.Bytes)
	return &snap, nil
}

func (r *CommandReads) IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	return NewIdempotencyRepository(r.db).Find(ctx, key, userID)
}
