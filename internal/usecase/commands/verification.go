package commands

import (
	"context"
	"sync"
	"time"

	"stayhub/internal/domain/user"
	"stayhub/internal/domain/verification"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/config"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrAlreadyVerified = errs.New("account already verified")
	ErrSignupNotFound  = errs.New("pending signup not found or expired")
	ErrDeliveryFailed  = errs.New("verification code delivery failed")
	ErrStoreFailure    = errs.New("verification store failure")
)

type IssueCodeResult struct {
	ExpiresAt         time.Time
	ResendAvailableAt time.Time
}

type VerificationCommands interface {
	// IssueAccountCode sends a fresh code to an existing unverified account.
	IssueAccountCode(ctx context.Context, userID uuid.UUID) (*IssueCodeResult, error)
	VerifyAccount(ctx context.Context, userID uuid.UUID, submitted string) error
	// IssueSignupCode (re)sends the code for a pending signup token. The
	// initial send after signup goes through here too.
	IssueSignupCode(ctx context.Context, token string) (*IssueCodeResult, error)
	// VerifySignup consumes the code and materializes the pending signup
	// into a verified account, returning its ID.
	VerifySignup(ctx context.Context, token, submitted string) (uuid.UUID, error)
}

// subjectLocks serializes the issue/verify critical section per subject, so
// two concurrent submissions cannot both consume the same code.
type subjectLocks struct {
	locks sync.Map // verification.Subject -> *sync.Mutex
}

func (s *subjectLocks) lock(subject verification.Subject) func() {
	v, _ := s.locks.LoadOrStore(subject, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

type verificationCommandsImpl struct {
	uow      shared.UnitOfWork
	store    VerificationStore
	sender   CodeSender
	cfg      config.VerificationConfig
	clock    clock.Clock
	subjects subjectLocks
}

func NewVerificationCommands(
	uow shared.UnitOfWork,
	store VerificationStore,
	sender CodeSender,
	cfg config.VerificationConfig,
	clk clock.Clock,
) VerificationCommands {
	return &verificationCommandsImpl{
		uow:    uow,
		store:  store,
		sender: sender,
		cfg:    cfg,
		clock:  clk,
	}
}

func (v *verificationCommandsImpl) IssueAccountCode(ctx context.Context, userID uuid.UUID) (*IssueCodeResult, error) {
	account, err := v.uow.CommandReads().UserByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRequesterNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if account.EmailVerified {
		return nil, ErrAlreadyVerified
	}

	return v.issue(ctx, verification.AccountSubject(userID), account.Email)
}

func (v *verificationCommandsImpl) VerifyAccount(ctx context.Context, userID uuid.UUID, submitted string) error {
	subject := verification.AccountSubject(userID)
	unlock := v.subjects.lock(subject)
	defer unlock()

	if err := v.verifyLive(ctx, subject, submitted); err != nil {
		return err
	}

	err := v.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().SetEmailVerified(ctx, userID)
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Consume only after the flag is durably set. A crash in between leaves
	// a live code behind, which a retry then consumes harmlessly.
	if err := v.store.ConsumeCode(ctx, subject); err != nil {
		return errs.Mark(err, ErrStoreFailure)
	}
	return nil
}

func (v *verificationCommandsImpl) IssueSignupCode(ctx context.Context, token string) (*IssueCodeResult, error) {
	pending, err := v.store.FindPendingSignup(ctx, token)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	if pending == nil {
		return nil, ErrSignupNotFound
	}

	return v.issue(ctx, verification.SignupSubject(token), pending.Email)
}

func (v *verificationCommandsImpl) VerifySignup(ctx context.Context, token, submitted string) (uuid.UUID, error) {
	subject := verification.SignupSubject(token)
	unlock := v.subjects.lock(subject)
	defer unlock()

	pending, err := v.store.FindPendingSignup(ctx, token)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrStoreFailure)
	}
	if pending == nil {
		return uuid.Nil, ErrSignupNotFound
	}

	if err := v.verifyLive(ctx, subject, submitted); err != nil {
		return uuid.Nil, err
	}

	email, err := user.NewEmail(pending.Email)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}
	role, err := user.NewRole(pending.Role)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}
	account := user.NewUser(email, pending.PasswordHash, role, true)

	var accountID uuid.UUID
	err = v.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		accountID, err = tx.Users().Create(ctx, account)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrEmailTaken
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := v.store.ConsumeCode(ctx, subject); err != nil {
		return uuid.Nil, errs.Mark(err, ErrStoreFailure)
	}
	if err := v.store.DeletePendingSignup(ctx, token); err != nil {
		return uuid.Nil, errs.Mark(err, ErrStoreFailure)
	}
	return accountID, nil
}

// issue generates, delivers and stores a fresh code under the cooldown rule.
// Delivery failure leaves any prior live code untouched.
func (v *verificationCommandsImpl) issue(ctx context.Context, subject verification.Subject, recipient string) (*IssueCodeResult, error) {
	unlock := v.subjects.lock(subject)
	defer unlock()

	now := v.clock.Now()

	existing, err := v.store.LiveCode(ctx, subject)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	if existing != nil {
		if err := existing.CheckResend(now, v.cfg.ResendCooldown); err != nil {
			return nil, err
		}
	}

	value, err := verification.GenerateCode()
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	code := verification.NewCode(subject, value, now, v.cfg.CodeTTL)

	if err := v.sender.Send(ctx, recipient, code); err != nil {
		return nil, errs.Mark(err, ErrDeliveryFailed)
	}

	if err := v.store.SaveCode(ctx, code); err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	return &IssueCodeResult{
		ExpiresAt:         code.ExpiresAt,
		ResendAvailableAt: code.IssuedAt.Add(v.cfg.ResendCooldown),
	}, nil
}

// verifyLive checks the submitted value against the live code. The caller
// must hold the subject lock.
func (v *verificationCommandsImpl) verifyLive(ctx context.Context, subject verification.Subject, submitted string) error {
	code, err := v.store.LiveCode(ctx, subject)
	if err != nil {
		return errs.Mark(err, ErrStoreFailure)
	}
	if code == nil {
		return verification.ErrNoLiveCode
	}
	return code.Verify(v.clock.Now(), submitted)
}
