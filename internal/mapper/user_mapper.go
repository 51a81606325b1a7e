package mapper

import (
	"content-discovery-be/internal/dto"
	"content-discovery-be/internal/entity"
)

func MapInterestToResponse(interest *entity.Interest) dto.InterestResponse {
	return dto.InterestResponse{
		Id:               interest.Id,
		UserId:           interest.UserId,
		Name:             interest.Name,
		Description:      interest.Description,
		Active:           interest.Active,
		Priority:         interest.Priority,
		DiscoveryEnabled: interest.DiscoveryEnabled,
		CustomFilters:    interest.CustomFilters,
		CreatedAt:        interest.CreatedAt,
		UpdatedAt:        interest.UpdatedAt,
	}
}

func MapInterestsToResponse(interests []*entity.Interest) []dto.InterestResponse {
	result := make([]dto.InterestResponse, 0, len(interests))
	for _, interest := range interests {
		result = append(result, MapInterestToResponse(interest))
	}
	return result
}

func MapUserToResponse(user *entity.User, interests []*entity.Interest) *dto.UserResponse {
	return &dto.UserResponse{
		Id:            user.Id,
		Email:         user.Email,
		Username:      user.Username,
		EmailVerified: user.EmailVerified,
		LastLoginAt:   user.LastLoginAt,
		CreatedAt:     user.CreatedAt,
		Interests:     MapInterestsToResponse(interests),
	}
}
