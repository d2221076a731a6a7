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

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

const findUserByIDQuery = `
SELECT id, email, role, email_verified, loyalty_points, is_active
FROM users
WHERE id = $1
`

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var (
		view queries.AuthorizedUserView
		uid  pgtype.UUID
	)
	err := s.db.QueryRow(ctx, findUserByIDQuery, pgconv.UUIDToPgtype(id)).Scan(
		&uid, &view.Email, &view.Role, &view.EmailVerified, &view.LoyaltyPoints, &view.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	view.ID = uuid.UUID(uid.Bytes)
	return &view, nil
}

const findUserByEmailQuery = `
SELECT id, email, password_hash, role, email_verified, loyalty_points, is_active
FROM users
WHERE email = $1
`

func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var (
		view         queries.AuthorizedUserView
		uid          pgtype.UUID
		passwordHash string
	)
	err := s.db.QueryRow(ctx, findUserByEmailQuery, email).Scan(
		&uid, &view.Email, &passwordHash, &view.Role, &view.EmailVerified, &view.LoyaltyPoints, &view.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user", err)
	}
	view.ID = uuid.UUID(uid.Bytes)
	return &view, passwordHash, nil
}
