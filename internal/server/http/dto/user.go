package dto

import (
	"time"

	"github.com/polkiloo/authgate/internal/domain/model"
)

// UserResponse is the public projection of a user. The password hash has no
// field here and can never leak into a response body.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProfileResponse wraps a user for the profile endpoint.
type ProfileResponse struct {
	User UserResponse `json:"user"`
}

// NewUserResponse maps a domain user onto its public projection.
func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
