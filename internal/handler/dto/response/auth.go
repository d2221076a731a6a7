package response

import (
	"time"

	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type SignupResponse struct {
	SignupToken       string    `json:"signupToken"`
	CodeExpiresAt     time.Time `json:"codeExpiresAt"`
	ResendAvailableAt time.Time `json:"resendAvailableAt"`
}

type LoginResponse struct {
	AccessToken string    `json:"accessToken"`
	UserID      uuid.UUID `json:"userId"`
}

type VerifySignupResponse struct {
	UserID uuid.UUID `json:"userId"`
}

type MeResponse struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	EmailVerified bool      `json:"emailVerified"`
	LoyaltyPoints int64     `json:"loyaltyPoints"`
}

func FromAuthorizedUserView(view *queries.AuthorizedUserView) *MeResponse {
	return &MeResponse{
		ID:            view.ID,
		Email:         view.Email,
		Role:          view.Role,
		EmailVerified: view.EmailVerified,
		LoyaltyPoints: view.LoyaltyPoints,
	}
}
