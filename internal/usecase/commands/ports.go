package commands

import (
	"context"
	"time"

	"stayhub/internal/domain/verification"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
)

// VerificationStore keeps the single live code per subject plus pending
// signup payloads. Records survive past code expiry so an expired submission
// can be told apart from one that never had a code.
type VerificationStore interface {
	LiveCode(ctx context.Context, subject verification.Subject) (*verification.Code, error)
	// SaveCode replaces any prior code for the subject.
	SaveCode(ctx context.Context, code verification.Code) error
	// ConsumeCode removes the live code after a successful verification.
	ConsumeCode(ctx context.Context, subject verification.Subject) error

	SavePendingSignup(ctx context.Context, token string, signup PendingSignup, ttl time.Duration) error
	FindPendingSignup(ctx context.Context, token string) (*PendingSignup, error)
	DeletePendingSignup(ctx context.Context, token string) error
}

// PendingSignup is a registration held back until its email is verified. No
// user row exists yet; the payload lives in the verification store under the
// signup token.
type PendingSignup struct {
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	Role         string `json:"role"`
}

// CodeSender delivers a verification code to the subject's contact address.
type CodeSender interface {
	Send(ctx context.Context, recipient string, code verification.Code) error
}

// IdempotencyGate claims an idempotency key before the booking transaction
// opens, so a replayed request can be answered without touching booking
// state. Completion is recorded inside the transaction via shared.Tx.
type IdempotencyGate interface {
	TryInsert(ctx context.Context, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) error
	Find(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error)
}
