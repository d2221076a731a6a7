//go:build unit

package verification_test

import (
	"testing"
	"time"

	"stayhub/internal/domain/verification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var issuedAt = time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

func liveCode() verification.Code {
	return verification.NewCode(verification.AccountSubject(uuid.New()), "482913", issuedAt, 15*time.Minute)
}

func TestNewCode(t *testing.T) {
	c := liveCode()
	assert.Equal(t, issuedAt, c.IssuedAt)
	assert.Equal(t, issuedAt.Add(15*time.Minute), c.ExpiresAt)
	assert.False(t, c.Consumed)

	t.Run("non-positive ttl falls back to the default", func(t *testing.T) {
		c := verification.NewCode(verification.SignupSubject("tok"), "000000", issuedAt, 0)
		assert.Equal(t, issuedAt.Add(verification.DefaultCodeTTL), c.ExpiresAt)
	})
}

func TestIsLive(t *testing.T) {
	c := liveCode()

	assert.True(t, c.IsLive(issuedAt))
	assert.True(t, c.IsLive(c.ExpiresAt.Add(-time.Second)))
	assert.False(t, c.IsLive(c.ExpiresAt), "the exact expiry instant counts as expired")
	assert.False(t, c.IsLive(c.ExpiresAt.Add(time.Second)))

	consumed := c
	consumed.Consumed = true
	assert.False(t, consumed.IsLive(issuedAt))
}

func TestRemaining(t *testing.T) {
	c := liveCode()

	assert.Equal(t, 15*time.Minute, c.Remaining(issuedAt))
	assert.Equal(t, time.Minute, c.Remaining(c.ExpiresAt.Add(-time.Minute)))
	assert.Equal(t, time.Duration(0), c.Remaining(c.ExpiresAt))
	assert.Equal(t, time.Duration(0), c.Remaining(c.ExpiresAt.Add(time.Hour)))
}

func TestVerify(t *testing.T) {
	c := liveCode()

	t.Run("matching submission", func(t *testing.T) {
		assert.NoError(t, c.Verify(issuedAt.Add(time.Minute), "482913"))
	})

	t.Run("mismatch leaves the code live", func(t *testing.T) {
		now := issuedAt.Add(time.Minute)
		require.ErrorIs(t, c.Verify(now, "000000"), verification.ErrCodeMismatch)
		assert.NoError(t, c.Verify(now, "482913"), "retry after mismatch succeeds")
	})

	t.Run("expired exactly at the boundary", func(t *testing.T) {
		assert.ErrorIs(t, c.Verify(c.ExpiresAt, "482913"), verification.ErrCodeExpired)
	})

	t.Run("expiry wins over mismatch", func(t *testing.T) {
		assert.ErrorIs(t, c.Verify(c.ExpiresAt.Add(time.Minute), "000000"), verification.ErrCodeExpired)
	})

	t.Run("consumed code", func(t *testing.T) {
		consumed := c
		consumed.Consumed = true
		assert.ErrorIs(t, consumed.Verify(issuedAt.Add(time.Minute), "482913"), verification.ErrNoLiveCode)
	})
}

func TestCheckResend(t *testing.T) {
	c := liveCode()
	cooldown := 60 * time.Second

	t.Run("inside the cooldown window", func(t *testing.T) {
		assert.ErrorIs(t, c.CheckResend(issuedAt.Add(30*time.Second), cooldown), verification.ErrResendThrottle)
	})

	t.Run("exactly at the boundary is permitted", func(t *testing.T) {
		assert.NoError(t, c.CheckResend(issuedAt.Add(cooldown), cooldown))
	})

	t.Run("after the window", func(t *testing.T) {
		assert.NoError(t, c.CheckResend(issuedAt.Add(2*time.Minute), cooldown))
	})

	t.Run("non-positive cooldown falls back to the default", func(t *testing.T) {
		assert.ErrorIs(t, c.CheckResend(issuedAt.Add(30*time.Second), 0), verification.ErrResendThrottle)
	})
}

func TestSubjects(t *testing.T) {
	id := uuid.New()
	assert.Equal(t, "account:"+id.String(), verification.AccountSubject(id).String())
	assert.Equal(t, "signup:tok-123", verification.SignupSubject("tok-123").String())
}

func TestGenerateCode(t *testing.T) {
	seen := map[string]bool{}
	for range 32 {
		code, err := verification.GenerateCode()
		require.NoError(t, err)
		require.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9')
		}
		seen[code] = true
	}
	assert.Greater(t, len(seen), 1, "codes should not all collide")
}
