package dto

import (
	"time"

	"content-discovery-be/internal/entity"

	"github.com/google/uuid"
)

type InterestResponse struct {
	Id               uuid.UUID            `json:"id"`
	UserId           uuid.UUID            `json:"userId"`
	Name             string               `json:"name"`
	Description      *string              `json:"description,omitempty"`
	Active           bool                 `json:"active"`
	Priority         int                  `json:"priority"`
	DiscoveryEnabled bool                 `json:"discoveryEnabled"`
	CustomFilters    entity.CustomFilters `json:"customFilters"`
	CreatedAt        time.Time            `json:"createdAt"`
	UpdatedAt        time.Time            `json:"updatedAt"`
}

type CreateInterestRequest struct {
	Name          string                `json:"name" validate:"required"`
	Description   *string               `json:"description,omitempty"`
	Priority      *int                  `json:"priority,omitempty"`
	CustomFilters *entity.CustomFilters `json:"customFilters,omitempty"`
}

type UpdateInterestRequest struct {
	Id               uuid.UUID             `json:"-"`
	Name             *string               `json:"name,omitempty"`
	Description      *string               `json:"description,omitempty"`
	Priority         *int                  `json:"priority,omitempty"`
	Active           *bool                 `json:"active,omitempty"`
	DiscoveryEnabled *bool                 `json:"discoveryEnabled,omitempty"`
	CustomFilters    *entity.CustomFilters `json:"customFilters,omitempty"`
}
