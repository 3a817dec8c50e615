package dto

import (
	"time"

	"mediarate/internal/httpapi/models"
)

// UpdateUserRequest: payload for editing the caller's own profile
type UpdateUserRequest struct {
	Username *string `json:"username,omitempty" binding:"omitempty,min=3,max=50"`
	FullName *string `json:"full_name,omitempty" binding:"omitempty,max=100"`
}

// UserResponse for returning user information. The password hash never
// appears here.
type UserResponse struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	FullName    *string    `json:"full_name,omitempty"`
	RatingCount int        `json:"rating_count"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
}

// FromModelToUserResponse converts a User model to UserResponse DTO
func FromModelToUserResponse(u *models.User) *UserResponse {
	return &UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		FullName:    u.FullName,
		RatingCount: u.RatingCount,
		CreatedAt:   u.CreatedAt,
		LastLogin:   u.LastLogin,
	}
}
