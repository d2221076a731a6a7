package repository

import (
	"context"
	"time"

	"stayhub/internal/infra"
	"stayhub/internal/infra/db"
	"stayhub/internal/pkg/pgconv"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type IdempotencyRepository struct {
	db db.DBTX
}

func NewIdempotencyRepository(dbtx db.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{db: dbtx}
}

const tryInsertIdempotencyKeyQuery = `
INSERT INTO idempotency_keys (key, user_id, endpoint, request_hash, status, expires_at)
VALUES ($1, $2, $3, $4, 'processing', $5)
ON CONFLICT (key, user_id) DO UPDATE
SET endpoint = EXCLUDED.endpoint,
    request_hash = EXCLUDED.request_hash,
    status = 'processing',
    response_body_hash = NULL,
    result_booking_id = NULL,
    expires_at = EXCLUDED.expires_at,
    updated_at = now()
WHERE idempotency_keys.expires_at < now()
`

// TryInsert claims the key, reclaiming an expired row in place so a retried
// key runs fresh instead of being stuck behind its dead record.
func (r *IdempotencyRepository) TryInsert(ctx context.Context, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) error {
	_, err := r.db.Exec(ctx, tryInsertIdempotencyKeyQuery,
		pgconv.UUIDToPgtype(key),
		pgconv.UUIDToPgtype(userID),
		endpoint,
		requestHash,
		pgconv.TimeToPgtype(expiresAt),
	)
	if err != nil {
		return wrapPgErr("failed to try insert idempotency key", err)
	}
	return nil
}

const getIdempotencyKeyQuery = `
SELECT key, user_id, endpoint, request_hash, status, result_booking_id, expires_at
FROM idempotency_keys
WHERE key = $1 AND user_id = $2
`

func (r *IdempotencyRepository) Find(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	var (
		rec             shared.IdempotencyRecord
		recKey, recUser pgtype.UUID
		status          string
		resultID        pgtype.UUID
		expiresAt       pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, getIdempotencyKeyQuery, pgconv.UUIDToPgtype(key), pgconv.UUIDToPgtype(userID)).Scan(
		&recKey, &recUser, &rec.Endpoint, &rec.RequestHash, &status, &resultID, &expiresAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, wrapPgErr("failed to get idempotency key", err)
	}

	rec.Key = uuid.UUID(recKey.Bytes)
	rec.UserID = uuid.UUID(recUser.Bytes)
	rec.Status = shared.IdempotencyStatus(status)
	rec.ResultBookingID = pgconv.UUIDPtrFromPgtype(resultID)
	rec.ExpiresAt = pgconv.TimeFromPgtype(expiresAt)

	// An expired key behaves as if it never existed.
	if time.Now().After(rec.ExpiresAt) {
		return nil, infra.WrapRepoErr("idempotency key expired", nil, infra.KindNotFound)
	}
	return &rec, nil
}

const updateIdempotencyKeyCompletedQuery = `
UPDATE idempotency_keys
SET status = 'completed', response_body_hash = $3, result_booking_id = $4, updated_at = now()
WHERE key = $1 AND user_id = $2
`

func (r *IdempotencyRepository) UpdateStatusCompleted(ctx context.Context, key, userID uuid.UUID, responseHash string, resultBookingID uuid.UUID) error {
	_, err := r.db.Exec(ctx, updateIdempotencyKeyCompletedQuery,
		pgconv.UUIDToPgtype(key),
		pgconv.UUIDToPgtype(userID),
		pgconv.StringToPgtype(responseHash),
		pgconv.UUIDToPgtype(resultBookingID),
	)
	if err != nil {
		return wrapPgErr("failed to update idempotency key status", err)
	}
	return nil
}

const deleteExpiredIdempotencyKeysQuery = `
DELETE FROM idempotency_keys WHERE expires_at < now()
`

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, deleteExpiredIdempotencyKeysQuery)
	if err != nil {
		return 0, wrapPgErr("failed to delete expired idempotency keys", err)
	}
	return tag.RowsAffected(), nil
}
