package service

import (
	"context"
	"testing"
	"time"

	"content-discovery-be/internal/config"
	"content-discovery-be/internal/dto"
	"content-discovery-be/internal/entity"
	"content-discovery-be/internal/pkg/logger"
	"content-discovery-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, users *memory.UserRepository) *entity.User {
	t.Helper()
	user := &entity.User{
		Id:        uuid.New(),
		Email:     "demo@example.com",
		Username:  "demo",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func TestGetProfile(t *testing.T) {
	users := memory.NewUserRepository()
	interests := memory.NewInterestRepository()
	svc := NewUserService(users, interests)
	user := seedUser(t, users)

	profile, err := svc.GetProfile(context.Background(), user.Id)
	require.NoError(t, err)
	assert.Equal(t, user.Email, profile.Email)
	assert.NotNil(t, profile.Interests, "interests marshal as [] not null")

	_, err = svc.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateProfile(t *testing.T) {
	users := memory.NewUserRepository()
	svc := NewUserService(users, memory.NewInterestRepository())
	user := seedUser(t, users)

	username := "renamed"
	updated, err := svc.UpdateProfile(context.Background(), user.Id, &dto.UpdateProfileRequest{
		Username: &username,
	})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Username)
	// Email untouched when not supplied.
	assert.Equal(t, "demo@example.com", updated.Email)

	reloaded, err := svc.GetProfile(context.Background(), user.Id)
	require.NoError(t, err)
	assert.Equal(t, "renamed", reloaded.Username)
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	svc := NewUserService(memory.NewUserRepository(), memory.NewInterestRepository())

	email := "x@y.com"
	_, err := svc.UpdateProfile(context.Background(), uuid.New(), &dto.UpdateProfileRequest{Email: &email})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateProfileEmailFreesOldAddress(t *testing.T) {
	users := memory.NewUserRepository()
	interests := memory.NewInterestRepository()
	svc := NewUserService(users, interests)
	user := seedUser(t, users)

	email := "moved@example.com"
	_, err := svc.UpdateProfile(context.Background(), user.Id, &dto.UpdateProfileRequest{
		Email: &email,
	})
	require.NoError(t, err)

	stale, err := users.FindByEmail(context.Background(), "demo@example.com")
	require.NoError(t, err)
	assert.Nil(t, stale, "old email must no longer resolve")

	// The freed address can be registered by a new account.
	auth := NewAuthService(
		config.AuthConfig{JWTSecret: "test_secret", AccessTokenHours: 24, RefreshTokenDays: 30},
		users,
		interests,
		memory.NewTokenRepository(),
		logger.NewNopLogger(),
	)
	resp, err := auth.Register(context.Background(), &dto.RegisterRequest{
		Email:    "demo@example.com",
		Username: "newcomer",
		Password: "password",
	})
	require.NoError(t, err)
	assert.Equal(t, "newcomer", resp.User.Username)
	assert.NotEqual(t, user.Id, resp.User.Id)
}
