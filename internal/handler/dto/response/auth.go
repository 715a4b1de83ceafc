package response

import (
	"parkhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type LoginResponse struct {
	UserID uuid.UUID `json:"user_id"`
}

type RegisterResponse struct {
	ID uuid.UUID `json:"id"`
}

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

func FromAuthorizedUserView(view *queries.AuthorizedUserView) UserResponse {
	return UserResponse{
		ID:       view.ID,
		Email:    view.Email,
		Role:     view.Role,
		IsActive: view.IsActive,
	}
}
