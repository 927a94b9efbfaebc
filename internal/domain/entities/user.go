package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// UserRole constants
const (
	UserRoleAdmin  = "admin"
	UserRoleMember = "member"
)

// User is an authenticated account able to manage meetings.
type User struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	Role         string     `json:"role"`
	PasswordHash string     `json:"password_hash"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
}

// NewUser creates a user with a normalized email. The password hash is
// assigned by the auth service.
func NewUser(email, role string) *User {
	if role == "" {
		role = UserRoleMember
	}
	return &User{
		ID:        uuid.New(),
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
}

// IsAdmin reports whether the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}
