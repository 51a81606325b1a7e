package appstate

import (
	"context"
	"sync"
	"time"

	"content-discovery-be/internal/dto"
	"content-discovery-be/pkg/client"

	"github.com/google/uuid"
)

const (
	accessTokenKey  = "discovery-access-token"
	refreshTokenKey = "discovery-refresh-token"
)

type UserState struct {
	User            *dto.UserResponse
	Tokens          dto.TokenPair
	IsAuthenticated bool
	LastLoginAt     time.Time
}

// UserStore holds the authenticated session and the interest list. Tokens are
// mirrored into the environment so a restarted client can resume.
type UserStore struct {
	mu    sync.Mutex
	api   *client.Client
	env   Environment
	state UserState
}

func NewUserStore(api *client.Client, env Environment) *UserStore {
	return &UserStore{api: api, env: env}
}

func (s *UserStore) State() UserState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *UserStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IsAuthenticated
}

func (s *UserStore) Login(ctx context.Context, email, password string) (*dto.UserResponse, error) {
	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	s.establishSession(resp)
	return resp.User, nil
}

func (s *UserStore) Register(ctx context.Context, email, username, password string) (*dto.UserResponse, error) {
	resp, err := s.api.Register(ctx, email, username, password)
	if err != nil {
		return nil, err
	}
	s.establishSession(resp)
	return resp.User, nil
}

func (s *UserStore) establishSession(resp *dto.AuthResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = UserState{
		User:            resp.User,
		Tokens:          resp.Tokens,
		IsAuthenticated: true,
		LastLoginAt:     time.Now(),
	}
	s.api.SetAccessToken(resp.Tokens.AccessToken)
	if s.env != nil {
		s.env.SetItem(accessTokenKey, resp.Tokens.AccessToken)
		s.env.SetItem(refreshTokenKey, resp.Tokens.RefreshToken)
	}
}

// Logout clears the session even when the revoke call fails; a dead server
// must not keep the client signed in.
func (s *UserStore) Logout(ctx context.Context) {
	s.mu.Lock()
	refreshToken := s.state.Tokens.RefreshToken
	s.mu.Unlock()

	if refreshToken != "" {
		_, _ = s.api.Logout(ctx, refreshToken)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = UserState{}
	s.api.SetAccessToken("")
	if s.env != nil {
		s.env.RemoveItem(accessTokenKey)
		s.env.RemoveItem(refreshTokenKey)
	}
}

// RefreshTokens rotates the stored pair. The old refresh token is revoked
// server-side, so the persisted copies are replaced in the same step.
func (s *UserStore) RefreshTokens(ctx context.Context) error {
	s.mu.Lock()
	refreshToken := s.state.Tokens.RefreshToken
	s.mu.Unlock()

	pair, err := s.api.Refresh(ctx, refreshToken)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Tokens = *pair
	s.api.SetAccessToken(pair.AccessToken)
	if s.env != nil {
		s.env.SetItem(accessTokenKey, pair.AccessToken)
		s.env.SetItem(refreshTokenKey, pair.RefreshToken)
	}
	return nil
}

// InitializeFromStorage resumes a persisted session by reloading the profile
// with the stored access token. Stale tokens clear the persisted keys.
func (s *UserStore) InitializeFromStorage(ctx context.Context) error {
	if s.env == nil {
		return nil
	}
	accessToken, ok := s.env.GetItem(accessTokenKey)
	if !ok || accessToken == "" {
		return nil
	}
	refreshToken, _ := s.env.GetItem(refreshTokenKey)

	s.api.SetAccessToken(accessToken)
	user, err := s.api.GetProfile(ctx)
	if err != nil {
		s.api.SetAccessToken("")
		s.env.RemoveItem(accessTokenKey)
		s.env.RemoveItem(refreshTokenKey)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = UserState{
		User: user,
		Tokens: dto.TokenPair{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		},
		IsAuthenticated: true,
	}
	if user.LastLoginAt != nil {
		s.state.LastLoginAt = *user.LastLoginAt
	}
	return nil
}

func (s *UserStore) UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.api.UpdateProfile(ctx, req)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.User = user
	return user, nil
}

func (s *UserStore) AddInterest(ctx context.Context, req *dto.CreateInterestRequest) (*dto.InterestResponse, error) {
	created, err := s.api.CreateInterest(ctx, req)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.User != nil {
		s.state.User.Interests = append(s.state.User.Interests, *created)
	}
	return created, nil
}

func (s *UserStore) UpdateInterest(ctx context.Context, id uuid.UUID, req *dto.UpdateInterestRequest) (*dto.InterestResponse, error) {
	updated, err := s.api.UpdateInterest(ctx, id.String(), req)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.User != nil {
		for i := range s.state.User.Interests {
			if s.state.User.Interests[i].Id == id {
				s.state.User.Interests[i] = *updated
				break
			}
		}
	}
	return updated, nil
}

func (s *UserStore) RemoveInterest(ctx context.Context, id uuid.UUID) error {
	if _, err := s.api.DeleteInterest(ctx, id.String()); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.User == nil {
		return nil
	}
	kept := s.state.User.Interests[:0]
	for _, interest := range s.state.User.Interests {
		if interest.Id != id {
			kept = append(kept, interest)
		}
	}
	s.state.User.Interests = kept
	return nil
}

// ActiveInterests filters the cached list; it never reaches the server.
func (s *UserStore) ActiveInterests() []dto.InterestResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.User == nil {
		return nil
	}
	var active []dto.InterestResponse
	for _, interest := range s.state.User.Interests {
		if interest.Active {
			active = append(active, interest)
		}
	}
	return active
}

func (s *UserStore) InterestNames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.User == nil {
		return nil
	}
	names := make([]string, 0, len(s.state.User.Interests))
	for _, interest := range s.state.User.Interests {
		names = append(names, interest.Name)
	}
	return names
}
