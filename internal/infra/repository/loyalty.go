package repository

import (
	"context"

	"stayhub/internal/infra"
	"stayhub/internal/infra/db"
	"stayhub/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type LoyaltyRepository struct {
	db db.DBTX
}

func NewLoyaltyRepository(dbtx db.DBTX) *LoyaltyRepository {
	return &LoyaltyRepository{db: dbtx}
}

const debitPointsQuery = `
UPDATE users
SET loyalty_points = loyalty_points - $2, updated_at = now()
WHERE id = $1 AND loyalty_points >= $2
`

const creditPointsQuery = `
UPDATE users
SET loyalty_points = loyalty_points + $2, updated_at = now()
WHERE id = $1
`

const insertLedgerEntryQuery = `
INSERT INTO loyalty_ledger (id, user_id, booking_id, delta, reason)
VALUES ($1, $2, $3, $4, $5)
`

// Debit spends points with the balance guard in the UPDATE itself; a
// concurrent spend that drains the balance first surfaces as a conflict.
func (r *LoyaltyRepository) Debit(ctx context.Context, accountID uuid.UUID, points int64, bookingID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, debitPointsQuery, pgconv.UUIDToPgtype(accountID), points)
	if err != nil {
		return wrapPgErr("failed to debit loyalty points", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("insufficient loyalty balance", nil, infra.KindConflict)
	}
	return r.appendLedger(ctx, accountID, bookingID, -points, "booking_redeem")
}

// Credit returns points after a rejection or cancellation.
func (r *LoyaltyRepository) Credit(ctx context.Context, accountID uuid.UUID, points int64, bookingID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, creditPointsQuery, pgconv.UUIDToPgtype(accountID), points)
	if err != nil {
		return wrapPgErr("failed to credit loyalty points", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("account not found", nil, infra.KindNotFound)
	}
	return r.appendLedger(ctx, accountID, bookingID, points, "booking_refund")
}

func (r *LoyaltyRepository) appendLedger(ctx context.Context, accountID, bookingID uuid.UUID, delta int64, reason string) error {
	_, err := r.db.Exec(ctx, insertLedgerEntryQuery,
		pgconv.UUIDToPgtype(uuid.New()),
		pgconv.UUIDToPgtype(accountID),
		pgconv.UUIDToPgtype(bookingID),
		delta,
		reason,
	)
	if err != nil {
		return wrapPgErr("failed to append loyalty ledger entry", err)
	}
	return nil
}
