package user

import (
	"time"

	"github.com/google/uuid"
)

// User is an account on the platform. Guests book resources; hosts own
// them. emailVerified gates reservation creation: an unverified account may
// browse but never book.
type User struct {
	id            uuid.UUID
	email         Email
	passwordHash  string
	role          Role
	emailVerified bool
	loyaltyPoints int64
	lastLogin     *time.Time
	isActive      bool
	createdAt     time.Time
	updatedAt     time.Time
}

func NewUser(email Email, passwordHash string, role Role, emailVerified bool) *User {
	return &User{
		id:            uuid.New(),
		email:         email,
		passwordHash:  passwordHash,
		role:          role,
		emailVerified: emailVerified,
		isActive:      true,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) EmailVerified() bool  { return u.emailVerified }
func (u *User) LoyaltyPoints() int64 { return u.loyaltyPoints }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
