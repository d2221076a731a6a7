package repository

import (
	"errors"

	"stayhub/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"

	// Unique index guarding one claim per resource and date.
	bookingDateClaimConstraint = "booking_dates_resource_id_date_key"
)

// wrapPgErr classifies constraint violations. A lost race on a date claim
// surfaces as a conflict rather than a generic duplicate key.
func wrapPgErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			if pgErr.ConstraintName == bookingDateClaimConstraint {
				return infra.WrapRepoErr(msg, err, infra.KindConflict)
			}
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		case pgErrCodeForeignKeyViolation:
			return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
		}
	}
	return infra.WrapRepoErr(msg, err)
}
