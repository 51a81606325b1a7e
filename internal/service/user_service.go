package service

import (
	"context"
	"errors"
	"time"

	"content-discovery-be/internal/dto"
	"content-discovery-be/internal/mapper"
	"content-discovery-be/internal/repository/contract"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

type IUserService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
}

type userService struct {
	users     contract.IUserRepository
	interests contract.IInterestRepository
}

func NewUserService(users contract.IUserRepository, interests contract.IInterestRepository) IUserService {
	return &userService{users: users, interests: interests}
}

func (s *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.users.FindById(ctx, userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	interests, err := s.interests.FindAllByUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	return mapper.MapUserToResponse(user, interests), nil
}

func (s *userService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.users.FindById(ctx, userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	// Shallow merge of the supplied fields.
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Username != nil {
		user.Username = *req.Username
	}
	user.UpdatedAt = time.Now()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	interests, err := s.interests.FindAllByUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	return mapper.MapUserToResponse(user, interests), nil
}
