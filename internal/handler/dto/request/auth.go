package request

import (
	"stayhub/internal/domain/user"
)

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role,omitempty" binding:"omitempty,oneof=guest host"`
}

func (r SignupRequest) ToDomain() (user.Email, user.Password, user.Role, error) {
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return user.Email{}, user.Password{}, "", err
	}
	pass, err := user.NewPassword(r.Password)
	if err != nil {
		return user.Email{}, user.Password{}, "", err
	}
	role := user.RoleGuest
	if r.Role != "" {
		role, err = user.NewRole(r.Role)
		if err != nil {
			return user.Email{}, user.Password{}, "", err
		}
	}
	return email, pass, role, nil
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
