package service

import (
	"context"
	"errors"
	"time"

	"content-discovery-be/internal/dto"
	"content-discovery-be/internal/entity"
	"content-discovery-be/internal/mapper"
	"content-discovery-be/internal/repository/contract"

	"github.com/google/uuid"
)

var ErrInterestNotFound = errors.New("interest not found")

type IInterestService interface {
	GetAll(ctx context.Context, userId uuid.UUID) ([]dto.InterestResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateInterestRequest) (*dto.InterestResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateInterestRequest) (*dto.InterestResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type interestService struct {
	interests contract.IInterestRepository
}

func NewInterestService(interests contract.IInterestRepository) IInterestService {
	return &interestService{interests: interests}
}

func (s *interestService) GetAll(ctx context.Context, userId uuid.UUID) ([]dto.InterestResponse, error) {
	interests, err := s.interests.FindAllByUser(ctx, userId)
	if err != nil {
		return nil, err
	}
	return mapper.MapInterestsToResponse(interests), nil
}

func (s *interestService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateInterestRequest) (*dto.InterestResponse, error) {
	interest := &entity.Interest{
		Id:               uuid.New(),
		UserId:           userId,
		Name:             req.Name,
		Description:      req.Description,
		Active:           true,
		DiscoveryEnabled: true,
		CustomFilters:    entity.CustomFilters{Include: []string{}, Exclude: []string{}},
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
	if req.Priority != nil {
		interest.Priority = *req.Priority
	}
	if req.CustomFilters != nil {
		interest.CustomFilters = *req.CustomFilters
	}

	// No uniqueness constraint on the name; duplicates are allowed.
	if err := s.interests.Create(ctx, interest); err != nil {
		return nil, err
	}

	res := mapper.MapInterestToResponse(interest)
	return &res, nil
}

func (s *interestService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateInterestRequest) (*dto.InterestResponse, error) {
	interest, err := s.interests.FindById(ctx, userId, req.Id)
	if err != nil {
		return nil, err
	}
	if interest == nil {
		return nil, ErrInterestNotFound
	}

	if req.Name != nil {
		interest.Name = *req.Name
	}
	if req.Description != nil {
		interest.Description = req.Description
	}
	if req.Priority != nil {
		interest.Priority = *req.Priority
	}
	if req.Active != nil {
		interest.Active = *req.Active
	}
	if req.DiscoveryEnabled != nil {
		interest.DiscoveryEnabled = *req.DiscoveryEnabled
	}
	if req.CustomFilters != nil {
		interest.CustomFilters = *req.CustomFilters
	}
	interest.UpdatedAt = time.Now()

	if err := s.interests.Update(ctx, interest); err != nil {
		return nil, err
	}

	res := mapper.MapInterestToResponse(interest)
	return &res, nil
}

func (s *interestService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	interest, err := s.interests.FindById(ctx, userId, id)
	if err != nil {
		return err
	}
	if interest == nil {
		return ErrInterestNotFound
	}
	return s.interests.Delete(ctx, userId, id)
}
