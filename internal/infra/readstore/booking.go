package readstore

import (
	"context"

	"stayhub/internal/infra"
	"stayhub/internal/infra/db"
	"stayhub/internal/pkg/pgconv"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// BookingReadStore serves the query side from denormalized joins.
type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const findBookingViewQuery = `
SELECT b.id, b.resource_id, r.name, b.requester_id, u.email, b.owner_id,
       b.start_date, b.end_date, b.guest_count, b.status,
       b.base_amount_cents, b.discount_cents, b.points_used, b.service_fee_cents, b.total_cents,
       b.coupon_id, c.code, b.created_at, b.updated_at
FROM bookings b
JOIN resources r ON r.id = b.resource_id
JOIN users u ON u.id = b.requester_id
LEFT JOIN coupons c ON c.id = b.coupon_id
WHERE b.id = $1
`

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var (
		view                 queries.BookingView
		bid, rid, reqID, oid pgtype.UUID
		startDate, endDate   pgtype.Date
		couponID             pgtype.UUID
		couponCode           pgtype.Text
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx, findBookingViewQuery, pgconv.UUIDToPgtype(id)).Scan(
		&bid, &rid, &view.ResourceName, &reqID, &view.RequesterEmail, &oid,
		&startDate, &endDate, &view.GuestCount, &view.Status,
		&view.BaseAmountCents, &view.DiscountCents, &view.PointsUsed, &view.ServiceFeeCents, &view.TotalCents,
		&couponID, &couponCode, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	view.ID = uuid.UUID(bid.Bytes)
	view.ResourceID = uuid.UUID(rid.Bytes)
	view.RequesterID = uuid.UUID(reqID.Bytes)
	view.OwnerID = uuid.UUID(oid.Bytes)
	view.StartDate = pgconv.DateFromPgtype(startDate)
	view.EndDate = pgconv.DateFromPgtype(endDate)
	view.CouponID = pgconv.UUIDPtrFromPgtype(couponID)
	view.CouponCode = pgconv.StringPtrFromPgtype(couponCode)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}

const listByRequesterQuery = `
SELECT b.id, b.resource_id, r.name, b.start_date, b.end_date, b.status, b.total_cents, b.created_at
FROM bookings b
JOIN resources r ON r.id = b.resource_id
WHERE b.requester_id = $1
  AND ($2::timestamptz IS NULL OR (b.created_at, b.id) < ($2, $3))
ORDER BY b.created_at DESC, b.id DESC
LIMIT $4
`

const listByOwnerQuery = `
SELECT b.id, b.resource_id, r.name, b.start_date, b.end_date, b.status, b.total_cents, b.created_at
FROM bookings b
JOIN resources r ON r.id = b.resource_id
WHERE b.owner_id = $1
  AND ($2::timestamptz IS NULL OR (b.created_at, b.id) < ($2, $3))
ORDER BY b.created_at DESC, b.id DESC
LIMIT $4
`

func (s *BookingReadStore) FindByRequesterPaginated(ctx context.Context, requesterID uuid.UUID, limit int32, afterCursor *string) ([]*queries.BookingListItem, error) {
	return s.list(ctx, listByRequesterQuery, requesterID, limit, afterCursor)
}

func (s *BookingReadStore) FindByOwnerPaginated(ctx context.Context, ownerID uuid.UUID, limit int32, afterCursor *string) ([]*queries.BookingListItem, error) {
	return s.list(ctx, listByOwnerQuery, ownerID, limit, afterCursor)
}

func (s *BookingReadStore) list(ctx context.Context, query string, actorID uuid.UUID, limit int32, afterCursor *string) ([]*queries.BookingListItem, error) {
	afterTime := pgtype.Timestamptz{Valid: false}
	afterID := pgtype.UUID{Valid: false}
	if afterCursor != nil {
		t, id, err := queries.DecodeAfterCursor(*afterCursor)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid pagination cursor", err, infra.KindNotFound)
		}
		afterTime = pgconv.TimeToPgtype(t)
		afterID = pgconv.UUIDToPgtype(id)
	}

	rows, err := s.db.Query(ctx, query, pgconv.UUIDToPgtype(actorID), afterTime, afterID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var items []*queries.BookingListItem
	for rows.Next() {
		var (
			item               queries.BookingListItem
			bid, rid           pgtype.UUID
			startDate, endDate pgtype.Date
			createdAt          pgtype.Timestamptz
		)
		if err := rows.Scan(&bid, &rid, &item.ResourceName, &startDate, &endDate, &item.Status, &item.TotalCents, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		item.ID = uuid.UUID(bid.Bytes)
		item.ResourceID = uuid.UUID(rid.Bytes)
		item.StartDate = pgconv.DateFromPgtype(startDate)
		item.EndDate = pgconv.DateFromPgtype(endDate)
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return items, nil
}
