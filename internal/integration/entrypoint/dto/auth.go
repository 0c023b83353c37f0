package dto

import (
	"time"

	"github.com/productivity-hub/backend/internal/application/session"
	"github.com/productivity-hub/backend/internal/domain/entity"
)

// LoginRequest represents the request body for login. Empty fields are
// reported by the session gate, not by binding.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest represents the request body for signup.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse represents the session user in API responses.
type UserResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResponse represents the response for login and signup.
type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        UserResponse `json:"user"`
}

// SessionResponse represents the current session state.
type SessionResponse struct {
	State string        `json:"state"`
	User  *UserResponse `json:"user,omitempty"`
}

// ToUserResponse converts a domain User entity to a UserResponse DTO.
func ToUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		Name:  u.Name,
		Email: u.Email,
	}
}

// ToSessionResponse converts a gate snapshot to a SessionResponse DTO.
func ToSessionResponse(s session.Snapshot) SessionResponse {
	response := SessionResponse{State: string(s.State)}
	if s.User != nil {
		user := ToUserResponse(s.User)
		response.User = &user
	}
	return response
}
