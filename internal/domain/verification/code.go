package verification

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoLiveCode     = errors.New("no live verification code")
	ErrCodeExpired    = errors.New("verification code has expired")
	ErrCodeMismatch   = errors.New("verification code does not match")
	ErrResendThrottle = errors.New("resend requested inside the cooldown window")
)

// DefaultCodeTTL is the absolute lifetime of an issued code.
const DefaultCodeTTL = 15 * time.Minute

// DefaultResendCooldown is the minimum gap between successive issues for
// the same subject.
const DefaultResendCooldown = 60 * time.Second

// Subject identifies who a code was issued for: an existing account or a
// pending signup that has no account yet. Both travel through the same
// state machine.
type Subject string

func AccountSubject(accountID uuid.UUID) Subject {
	return Subject("account:" + accountID.String())
}

func SignupSubject(token string) Subject {
	return Subject("signup:" + token)
}

func (s Subject) String() string { return string(s) }

// Code is the live one-time code for a subject. Exactly one live code exists
// per subject; issuing a new one replaces any prior code.
type Code struct {
	Subject   Subject
	Value     string
	IssuedAt  time.Time
	ExpiresAt time.Time
	Consumed  bool
}

func NewCode(subject Subject, value string, issuedAt time.Time, ttl time.Duration) Code {
	if ttl <= 0 {
		ttl = DefaultCodeTTL
	}
	return Code{
		Subject:   subject,
		Value:     value,
		IssuedAt:  issuedAt,
		ExpiresAt: issuedAt.Add(ttl),
	}
}

// IsLive reports whether the code can still be consumed. A code is dead at
// the exact expiry instant: now == ExpiresAt counts as expired.
func (c Code) IsLive(now time.Time) bool {
	return !c.Consumed && now.Before(c.ExpiresAt)
}

// Remaining is the time left before expiry, recomputed on demand. Display
// countdowns derive from this; only ExpiresAt is authoritative.
func (c Code) Remaining(now time.Time) time.Duration {
	if !now.Before(c.ExpiresAt) {
		return 0
	}
	return c.ExpiresAt.Sub(now)
}

// Verify checks a submitted code against the live one. A mismatch leaves the
// code live: retries are unlimited until expiry.
func (c Code) Verify(now time.Time, submitted string) error {
	if c.Consumed {
		return ErrNoLiveCode
	}
	if !now.Before(c.ExpiresAt) {
		return ErrCodeExpired
	}
	if submitted != c.Value {
		return ErrCodeMismatch
	}
	return nil
}

// CheckResend enforces the cooldown between issues. A reissue exactly at the
// boundary is permitted.
func (c Code) CheckResend(now time.Time, cooldown time.Duration) error {
	if cooldown <= 0 {
		cooldown = DefaultResendCooldown
	}
	if now.Before(c.IssuedAt.Add(cooldown)) {
		return ErrResendThrottle
	}
	return nil
}

func (c Code) String() string {
	return fmt.Sprintf("code for %s (expires %s)", c.Subject, c.ExpiresAt.Format(time.RFC3339))
}
