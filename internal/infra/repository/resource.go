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

type ResourceRepository struct {
	db db.DBTX
}

func NewResourceRepository(dbtx db.DBTX) *ResourceRepository {
	return &ResourceRepository{db: dbtx}
}

const lockResourceQuery = `
SELECT id, owner_id, name, category, base_price_cents, max_occupancy
FROM resources
WHERE id = $1
FOR UPDATE
`

// LockForBooking takes the resource row lock before reading ranges and date
// claims, so the availability check and the insert that follows it see the
// same calendar.
func (r *ResourceRepository) LockForBooking(ctx context.Context, id uuid.UUID) (*shared.ResourceSnapshot, error) {
	snap, err := scanResourceSnapshot(ctx, r.db, lockResourceQuery, id)
	if err != nil {
		return nil, err
	}
	return snap, nil
}

func scanResourceSnapshot(ctx context.Context, dbtx db.DBTX, query string, id uuid.UUID) (*shared.ResourceSnapshot, error) {
	var (
		snap    shared.ResourceSnapshot
		rid     pgtype.UUID
		ownerID pgtype.UUID
	)
	err := dbtx.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(
		&rid, &ownerID, &snap.Name, &snap.Category, &snap.BasePriceCents, &snap.MaxOccupancy,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, wrapPgErr("failed to load resource", err)
	}
	snap.ID = uuid.UUID(rid.Bytes)
	snap.OwnerID = uuid.UUID(ownerID.Bytes)

	if snap.AvailableRanges, err = loadAvailableRanges(ctx, dbtx, id); err != nil {
		return nil, err
	}
	if snap.BookedDates, err = loadBookedDates(ctx, dbtx, id); err != nil {
		return nil, err
	}
	return &snap, nil
}

const availableRangesQuery = `
SELECT start_date, end_date
FROM resource_available_ranges
WHERE resource_id = $1
ORDER BY start_date
`

func loadAvailableRanges(ctx context.Context, dbtx db.DBTX, resourceID uuid.UUID) ([]shared.DateRangeSnapshot, error) {
	rows, err := dbtx.Query(ctx, availableRangesQuery, pgconv.UUIDToPgtype(resourceID))
	if err != nil {
		return nil, wrapPgErr("failed to load available ranges", err)
	}
	defer rows.Close()

	var ranges []shared.DateRangeSnapshot
	for rows.Next() {
		var start, end pgtype.Date
		if err := rows.Scan(&start, &end); err != nil {
			return nil, wrapPgErr("failed to scan available range", err)
		}
		ranges = append(ranges, shared.DateRangeSnapshot{
			Start: pgconv.DateFromPgtype(start),
			End:   pgconv.DateFromPgtype(end),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgErr("failed to read available ranges", err)
	}
	return ranges, nil
}

const bookedDatesQuery = `
SELECT date FROM booking_dates WHERE resource_id = $1
`

func loadBookedDates(ctx context.Context, dbtx db.DBTX, resourceID uuid.UUID) ([]time.Time, error) {
	rows, err := dbtx.Query(ctx, bookedDatesQuery, pgconv.UUIDToPgtype(resourceID))
	if err != nil {
		return nil, wrapPgErr("failed to load booked dates", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d pgtype.Date
		if err := rows.Scan(&d); err != nil {
			return nil, wrapPgErr("failed to scan booked date", err)
		}
		dates = append(dates, pgconv.DateFromPgtype(d))
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgErr("failed to read booked dates", err)
	}
	return dates, nil
}
