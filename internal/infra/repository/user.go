package repository

import (
	"context"

	"stayhub/internal/domain/user"
	"stayhub/internal/infra"
	"stayhub/internal/infra/db"
	"stayhub/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

const insertUserQuery = `
INSERT INTO users (id, email, password_hash, role, email_verified, loyalty_points, is_active)
VALUES ($1, $2, $3, $4, $5, 0, $6)
`

func (r *UserRepository) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	_, err := r.db.Exec(ctx, insertUserQuery,
		pgconv.UUIDToPgtype(u.ID()),
		u.Email().Value(),
		u.PasswordHash(),
		u.Role().String(),
		u.EmailVerified(),
		u.IsActive(),
	)
	if err != nil {
		return uuid.Nil, wrapPgErr("failed to insert user", err)
	}
	return u.ID(), nil
}

const setEmailVerifiedQuery = `
UPDATE users SET email_verified = true, updated_at = now() WHERE id = $1
`

func (r *UserRepository) SetEmailVerified(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, setEmailVerifiedQuery, pgconv.UUIDToPgtype(id))
	if err != nil {
		return wrapPgErr("failed to set email verified", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

const updateLastLoginQuery = `
UPDATE users SET last_login = now(), updated_at = now() WHERE id = $1
`

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, updateLastLoginQuery, pgconv.UUIDToPgtype(id))
	if err != nil {
		return wrapPgErr("failed to update last login", err)
	}
	return nil
}
