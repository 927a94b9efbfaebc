package auth

import (
	"time"

	"github.com/johnquangdev/mom-ai/internal/domain/entities"
)

// UserResponse represents user information in responses
type UserResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// NewUserResponse maps a user entity into its response shape, dropping the
// password hash.
func NewUserResponse(user *entities.User) *UserResponse {
	return &UserResponse{
		ID:          user.ID.String(),
		Email:       user.Email,
		Role:        user.Role,
		CreatedAt:   user.CreatedAt,
		LastLoginAt: user.LastLoginAt,
	}
}

// LoginResponse represents the authentication response with the token
type LoginResponse struct {
	Token     string        `json:"token"`
	ExpiresIn int64         `json:"expires_in"` // seconds
	TokenType string        `json:"token_type"` // "Bearer"
	User      *UserResponse `json:"user"`
}
