package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"content-discovery-be/internal/config"
	"content-discovery-be/internal/dto"
	"content-discovery-be/internal/entity"
	"content-discovery-be/internal/mapper"
	"content-discovery-be/internal/pkg/logger"
	"content-discovery-be/internal/repository/contract"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Placeholder credential policy for the mock backend: an email is "valid"
// when it contains '@' and the password has at least 3 characters. This is
// not a security boundary.
const minPasswordLen = 3

var ErrInvalidCredentials = errors.New("invalid credentials")

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
}

type authService struct {
	cfg       config.AuthConfig
	users     contract.IUserRepository
	interests contract.IInterestRepository
	tokens    contract.ITokenRepository
	logger    logger.ILogger
}

func NewAuthService(
	cfg config.AuthConfig,
	users contract.IUserRepository,
	interests contract.IInterestRepository,
	tokens contract.ITokenRepository,
	log logger.ILogger,
) IAuthService {
	return &authService{
		cfg:       cfg,
		users:     users,
		interests: interests,
		tokens:    tokens,
		logger:    log,
	}
}

func credentialsValid(email, password string) bool {
	return strings.Contains(email, "@") && len(password) >= minPasswordLen
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if !credentialsValid(req.Email, req.Password) {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Mock backend: any well-formed credential logs in. Unknown emails
		// materialize the demo user with the seeded interest set.
		user, err = s.materializeDemoUser(ctx, req.Email, req.Password)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	interests, err := s.interests.FindAllByUser(ctx, user.Id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("auth", "user logged in", map[string]interface{}{"user_id": user.Id.String()})

	return &dto.AuthResponse{
		User:   mapper.MapUserToResponse(user, interests),
		Tokens: *tokens,
	}, nil
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if !credentialsValid(req.Email, req.Password) {
		return nil, ErrInvalidCredentials
	}

	existing, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)

	user := &entity.User{
		Id:            uuid.New(),
		Email:         req.Email,
		Username:      req.Username,
		PasswordHash:  &hashStr,
		EmailVerified: false,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("auth", "user registered", map[string]interface{}{"user_id": user.Id.String()})

	return &dto.AuthResponse{
		User:   mapper.MapUserToResponse(user, nil),
		Tokens: *tokens,
	}, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenPair, error) {
	hash := hashToken(refreshToken)
	stored, err := s.tokens.FindByHash(ctx, hash)
	if err != nil {
		return nil, err
	}
	if stored == nil || time.Now().After(stored.ExpiresAt) {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.FindById(ctx, stored.UserId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	// Rotation: the presented token is spent either way.
	if err := s.tokens.Revoke(ctx, hash); err != nil {
		return nil, err
	}
	return s.issueTokens(ctx, user)
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return s.tokens.Revoke(ctx, hashToken(refreshToken))
}

func (s *authService) issueTokens(ctx context.Context, user *entity.User) (*dto.TokenPair, error) {
	accessTokenExpiry := time.Duration(s.cfg.AccessTokenHours) * time.Hour

	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"exp":     time.Now().Add(accessTokenExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, err
	}

	rawRefreshToken := uuid.New().String()
	refreshTokenEntity := &entity.UserRefreshToken{
		Id:        uuid.New(),
		UserId:    user.Id,
		TokenHash: hashToken(rawRefreshToken),
		ExpiresAt: time.Now().Add(time.Duration(s.cfg.RefreshTokenDays) * 24 * time.Hour),
		CreatedAt: time.Now(),
	}
	if err := s.tokens.Save(ctx, refreshTokenEntity); err != nil {
		return nil, err
	}

	return &dto.TokenPair{
		AccessToken:  signedToken,
		RefreshToken: rawRefreshToken,
		ExpiresIn:    int64(accessTokenExpiry.Seconds()),
	}, nil
}

func (s *authService) materializeDemoUser(ctx context.Context, email, password string) (*entity.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)

	username := email
	if at := strings.Index(email, "@"); at > 0 {
		username = email[:at]
	}

	user := &entity.User{
		Id:            uuid.New(),
		Email:         email,
		Username:      username,
		PasswordHash:  &hashStr,
		EmailVerified: true,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	for _, seed := range demoInterestSeeds() {
		interest := seed
		interest.Id = uuid.New()
		interest.UserId = user.Id
		interest.CreatedAt = time.Now()
		interest.UpdatedAt = time.Now()
		if err := s.interests.Create(ctx, &interest); err != nil {
			return nil, err
		}
	}

	return user, nil
}

func demoInterestSeeds() []entity.Interest {
	descriptions := []string{
		"Software development and computer science",
		"Artificial intelligence and ML technologies",
		"Modern web development trends",
	}
	return []entity.Interest{
		{
			Name:             "Programming",
			Description:      &descriptions[0],
			Active:           true,
			Priority:         5,
			DiscoveryEnabled: true,
			CustomFilters: entity.CustomFilters{
				Include: []string{"tutorials", "frameworks"},
				Exclude: []string{"spam"},
			},
		},
		{
			Name:             "AI & Machine Learning",
			Description:      &descriptions[1],
			Active:           true,
			Priority:         4,
			DiscoveryEnabled: true,
			CustomFilters:    entity.CustomFilters{Include: []string{}, Exclude: []string{}},
		},
		{
			Name:             "Web Technologies",
			Description:      &descriptions[2],
			Active:           true,
			Priority:         3,
			DiscoveryEnabled: true,
			CustomFilters: entity.CustomFilters{
				Include: []string{"javascript", "typescript", "vue"},
				Exclude: []string{},
			},
		},
	}
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
