//go:build unit || e2e

package builder

import (
	reqdto "stayhub/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email    string
	Password string
	Role     string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "guest@example.com",
		Password: "password123",
		Role:     "guest",
	}
}

func (a *AuthBuilder) WithEmail(email string) *AuthBuilder {
	a.Email = email
	return a
}

func (a *AuthBuilder) WithRole(role string) *AuthBuilder {
	a.Role = role
	return a
}

func (a *AuthBuilder) BuildLoginDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildSignupDTO() reqdto.SignupRequest {
	return reqdto.SignupRequest{
		Email:    a.Email,
		Password: a.Password,
		Role:     a.Role,
	}
}
