//go:build unit || e2e

package builder

import (
	reqdto "parkhub/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email    string
	Password string
	Role     string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "driver@example.com",
		Password: "password123",
		Role:     "driver",
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Email:    a.Email,
		Password: a.Password,
		Role:     a.Role,
	}
}
