package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"stayhub/internal/domain/user"
	reqdto "stayhub/internal/handler/dto/request"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/config"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/pkg/jwt"
	"stayhub/internal/pkg/password"
	"stayhub/internal/usecase/queries"
	"stayhub/internal/usecase/shared"
)

var (
	ErrEmailTaken           = errs.New("email already registered")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type SignupResult struct {
	SignupToken       string
	CodeExpiresAt     time.Time
	ResendAvailableAt time.Time
}

type LoginResult struct {
	UserID      uuid.UUID
	AccessToken string
}

type AuthCommands interface {
	// Signup parks the registration as a pending signup and sends the
	// first verification code. No account exists until VerifySignup.
	Signup(ctx context.Context, req reqdto.SignupRequest) (*SignupResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow          shared.UnitOfWork
	readStore    queries.UserReadStore
	store        VerificationStore
	verification VerificationCommands
	jwtService   *jwt.Service
	cfg          config.VerificationConfig
}

func NewAuthCommands(
	uow shared.UnitOfWork,
	readStore queries.UserReadStore,
	store VerificationStore,
	verificationCommands VerificationCommands,
	jwtService *jwt.Service,
	cfg config.VerificationConfig,
) AuthCommands {
	return &authCommandsImpl{
		uow:          uow,
		readStore:    readStore,
		store:        store,
		verification: verificationCommands,
		jwtService:   jwtService,
		cfg:          cfg,
	}
}

func (a *authCommandsImpl) Signup(ctx context.Context, req reqdto.SignupRequest) (*SignupResult, error) {
	email, pass, role, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if existing, err := a.uow.CommandReads().UserByEmail(ctx, email.Value()); err == nil && existing != nil {
		return nil, ErrEmailTaken
	} else if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	hashed, err := password.HashPassword(pass.Value())
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	token := uuid.NewString()
	pending := PendingSignup{
		Email:        email.Value(),
		PasswordHash: hashed,
		Role:         role.String(),
	}
	if err := a.store.SavePendingSignup(ctx, token, pending, a.cfg.PendingSignupTTL); err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	issued, err := a.verification.IssueSignupCode(ctx, token)
	if err != nil {
		return nil, err
	}

	return &SignupResult{
		SignupToken:       token,
		CodeExpiresAt:     issued.ExpiresAt,
		ResendAvailableAt: issued.ResendAvailableAt,
	}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	view, err := a.validateUser(ctx, req)
	if err != nil {
		return nil, err
	}

	roleValue, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	accessToken, err := a.jwtService.GenerateToken(view.ID, roleValue)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, view.ID)
	})
	if err != nil {
		// Not critical; login already succeeded.
		slog.Warn("failed to update last login", "user_id", view.ID, "error", err.Error())
	}

	return &LoginResult{
		UserID:      view.ID,
		AccessToken: accessToken,
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, req reqdto.LoginRequest) (*queries.AuthorizedUserView, error) {
	view, hashedPassword, err := a.readStore.FindByEmail(ctx, req.Email)
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration.
		return nil, ErrInvalidCredentials
	}
	if view == nil {
		return nil, ErrInvalidCredentials
	}
	if !view.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(hashedPassword, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return view, nil
}
