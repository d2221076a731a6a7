//go:build unit || e2e

package builder

import (
	"stayhub/internal/domain/user"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID            uuid.UUID
	Email         string
	PasswordHash  string
	Role          string
	EmailVerified bool
	LoyaltyPoints int64
	IsActive      bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:            uuid.New(),
		Email:         "guest@example.com",
		PasswordHash:  "hashed_password",
		Role:          "guest",
		EmailVerified: true,
		LoyaltyPoints: 0,
		IsActive:      true,
	}
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithLoyaltyPoints(points int64) *UserBuilder {
	u.LoyaltyPoints = points
	return u
}

func (u *UserBuilder) AsUnverified() *UserBuilder {
	u.EmailVerified = false
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}
	return user.NewUser(email, u.PasswordHash, role, u.EmailVerified), nil
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:            u.ID,
		Email:         u.Email,
		Role:          u.Role,
		EmailVerified: u.EmailVerified,
		LoyaltyPoints: u.LoyaltyPoints,
		IsActive:      u.IsActive,
	}
}
