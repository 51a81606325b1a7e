package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id            uuid.UUID
	Email         string
	Username      string
	PasswordHash  *string
	EmailVerified bool
	LastLoginAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Interest is owned by exactly one user. Deactivation via Active is soft;
// Delete removes it entirely.
type Interest struct {
	Id               uuid.UUID
	UserId           uuid.UUID
	Name             string
	Description      *string
	Active           bool
	Priority         int
	DiscoveryEnabled bool
	CustomFilters    CustomFilters
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type CustomFilters struct {
	Include []string `json:"include"`
	Exclude []string `json:"exclude"`
}

type UserRefreshToken struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
}
