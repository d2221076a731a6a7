//go:build unit

package user_test

import (
	"testing"

	"stayhub/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name  string
		input string
		errIs error
	}{
		{"valid", "guest@example.com", nil},
		{"valid with plus tag", "guest+tag@example.com", nil},
		{"surrounding spaces are trimmed", "  guest@example.com  ", nil},
		{"missing at sign", "guest.example.com", user.ErrInvalidEmail},
		{"missing tld", "guest@example", user.ErrInvalidEmail},
		{"empty", "", user.ErrInvalidEmail},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			email, err := user.NewEmail(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, email.Value())
			assert.NotContains(t, email.Value(), " ")
		})
	}
}

func TestNewPassword(t *testing.T) {
	_, err := user.NewPassword("short")
	assert.ErrorIs(t, err, user.ErrPasswordTooWeak)

	p, err := user.NewPassword("longenough")
	require.NoError(t, err)
	assert.Equal(t, "longenough", p.Value())
}

func TestNewRole(t *testing.T) {
	for _, valid := range []string{"guest", "host", "admin"} {
		role, err := user.NewRole(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, role.String())
	}

	_, err := user.NewRole("superuser")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestNewUser(t *testing.T) {
	email, err := user.NewEmail("host@example.com")
	require.NoError(t, err)

	u := user.NewUser(email, "hashed", user.RoleHost, false)

	assert.NotEqual(t, uuid.Nil, u.ID())
	assert.Equal(t, "host@example.com", u.Email().Value())
	assert.Equal(t, user.RoleHost, u.Role())
	assert.False(t, u.EmailVerified())
	assert.True(t, u.IsActive())
	assert.Zero(t, u.LoyaltyPoints())
}
