package response

import (
	"github.com/google/uuid"

	"expertbook/internal/usecase/queries"
)

type AuthResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	UserID       uuid.UUID `json:"user_id"`
}

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Phone    string    `json:"phone,omitempty"`
	IsActive bool      `json:"is_active"`
}

func FromUserView(view *queries.AuthorizedUserView) *UserResponse {
	return &UserResponse{
		ID:       view.ID,
		Name:     view.Name,
		Email:    view.Email,
		Role:     view.Role,
		Phone:    view.Phone,
		IsActive: view.IsActive,
	}
}
