package service

import (
	"context"
	"testing"

	"content-discovery-be/internal/config"
	"content-discovery-be/internal/dto"
	"content-discovery-be/internal/pkg/logger"
	"content-discovery-be/internal/repository/memory"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService() IAuthService {
	cfg := config.AuthConfig{
		JWTSecret:        "test_secret",
		AccessTokenHours: 24,
		RefreshTokenDays: 30,
	}
	return NewAuthService(
		cfg,
		memory.NewUserRepository(),
		memory.NewInterestRepository(),
		memory.NewTokenRepository(),
		logger.NewNopLogger(),
	)
}

func TestCredentialsValid(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		want     bool
	}{
		{"well formed", "a@b.com", "abc", true},
		{"email without at sign", "bad", "password", false},
		{"password too short", "a@b.com", "ab", false},
		{"both invalid", "bad", "x", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, credentialsValid(tc.email, tc.password))
		})
	}
}

func TestLoginMaterializesDemoUser(t *testing.T) {
	svc := newTestAuthService()

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "demo@example.com",
		Password: "password",
	})
	require.NoError(t, err)

	assert.Equal(t, "demo@example.com", resp.User.Email)
	assert.Equal(t, "demo", resp.User.Username)
	assert.NotNil(t, resp.User.LastLoginAt)
	require.Len(t, resp.User.Interests, 3)
	assert.Equal(t, "Programming", resp.User.Interests[0].Name)
	assert.Equal(t, 5, resp.User.Interests[0].Priority)
	assert.NotEmpty(t, resp.Tokens.AccessToken)
	assert.NotEmpty(t, resp.Tokens.RefreshToken)
}

func TestLoginRejectsMalformedCredentials(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "bad", Password: "password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Email: "a@b.com", Password: "ab"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginIsIdempotentPerEmail(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	first, err := svc.Login(ctx, &dto.LoginRequest{Email: "demo@example.com", Password: "password"})
	require.NoError(t, err)
	second, err := svc.Login(ctx, &dto.LoginRequest{Email: "demo@example.com", Password: "password"})
	require.NoError(t, err)

	assert.Equal(t, first.User.Id, second.User.Id)
	assert.Len(t, second.User.Interests, 3)
}

func TestAccessTokenCarriesUserId(t *testing.T) {
	svc := newTestAuthService()

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "demo@example.com", Password: "password"})
	require.NoError(t, err)

	parsed, err := jwt.Parse(resp.Tokens.AccessToken, func(token *jwt.Token) (interface{}, error) {
		return []byte("test_secret"), nil
	})
	require.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, resp.User.Id.String(), claims["user_id"])
}

func TestRegister(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	resp, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "new@example.com",
		Username: "newcomer",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "newcomer", resp.User.Username)
	assert.Empty(t, resp.User.Interests, "registration starts with no interests")

	_, err = svc.Register(ctx, &dto.RegisterRequest{
		Email:    "new@example.com",
		Username: "other",
		Password: "secret",
	})
	assert.EqualError(t, err, "email already registered")
}

func TestRefreshRotatesTokens(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	login, err := svc.Login(ctx, &dto.LoginRequest{Email: "demo@example.com", Password: "password"})
	require.NoError(t, err)

	rotated, err := svc.Refresh(ctx, login.Tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, login.Tokens.RefreshToken, rotated.RefreshToken)

	// The presented token is spent on rotation.
	_, err = svc.Refresh(ctx, login.Tokens.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// The rotated token still works.
	_, err = svc.Refresh(ctx, rotated.RefreshToken)
	assert.NoError(t, err)
}

func TestRefreshRejectsUnknownToken(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.Refresh(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	login, err := svc.Login(ctx, &dto.LoginRequest{Email: "demo@example.com", Password: "password"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, login.Tokens.RefreshToken))
	_, err = svc.Refresh(ctx, login.Tokens.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Logout with nothing to revoke still succeeds.
	assert.NoError(t, svc.Logout(ctx, ""))
	assert.NoError(t, svc.Logout(ctx, "unknown"))
}
