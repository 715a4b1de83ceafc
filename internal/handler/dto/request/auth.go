package request

import (
	"parkhub/internal/domain/user"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (user.Credentials, error) {
	return user.NewCredentials(r.Email, r.Password)
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=driver owner"`
}

// Admin accounts are provisioned out of band, never via signup.
func (r *RegisterRequest) ToDomain() (user.Credentials, user.Role, error) {
	credentials, err := user.NewCredentials(r.Email, r.Password)
	if err != nil {
		return user.Credentials{}, "", err
	}
	role, err := user.NewRole(r.Role)
	if err != nil {
		return user.Credentials{}, "", err
	}
	if role == user.RoleAdmin {
		return user.Credentials{}, "", user.ErrInvalidRole
	}
	return credentials, role, nil
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
