package memory

import (
	"context"
	"time"

	"content-discovery-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

// TokenRepository holds refresh tokens keyed by their sha256 hash. Entries
// expire with the token itself, so revoked-or-expired lookups simply miss.
type TokenRepository struct {
	tokens *cache.Cache
}

func NewTokenRepository() *TokenRepository {
	return &TokenRepository{
		tokens: cache.New(30*24*time.Hour, 1*time.Hour),
	}
}

func (r *TokenRepository) Save(ctx context.Context, token *entity.UserRefreshToken) error {
	ttl := time.Until(token.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	r.tokens.Set(token.TokenHash, token, ttl)
	return nil
}

func (r *TokenRepository) FindByHash(ctx context.Context, hash string) (*entity.UserRefreshToken, error) {
	if x, found := r.tokens.Get(hash); found {
		token := x.(*entity.UserRefreshToken)
		if !token.Revoked {
			return token, nil
		}
	}
	return nil, nil
}

func (r *TokenRepository) Revoke(ctx context.Context, hash string) error {
	r.tokens.Delete(hash)
	return nil
}
