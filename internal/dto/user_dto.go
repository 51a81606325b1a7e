package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserResponse struct {
	Id            uuid.UUID          `json:"id"`
	Email         string             `json:"email"`
	Username      string             `json:"username"`
	EmailVerified bool               `json:"emailVerified"`
	LastLoginAt   *time.Time         `json:"lastLoginAt,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
	Interests     []InterestResponse `json:"interests"`
}

type UpdateProfileRequest struct {
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Username *string `json:"username,omitempty"`
}
