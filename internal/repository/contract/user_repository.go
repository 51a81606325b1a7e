package contract

import (
	"context"

	"content-discovery-be/internal/entity"

	"github.com/google/uuid"
)

// Repositories return (nil, nil) when the record does not exist; errors are
// reserved for storage failures.
type IUserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	FindById(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

type IInterestRepository interface {
	Create(ctx context.Context, interest *entity.Interest) error
	Update(ctx context.Context, interest *entity.Interest) error
	Delete(ctx context.Context, userId, id uuid.UUID) error
	FindById(ctx context.Context, userId, id uuid.UUID) (*entity.Interest, error)
	FindAllByUser(ctx context.Context, userId uuid.UUID) ([]*entity.Interest, error)
}

type ITokenRepository interface {
	Save(ctx context.Context, token *entity.UserRefreshToken) error
	FindByHash(ctx context.Context, hash string) (*entity.UserRefreshToken, error)
	Revoke(ctx context.Context, hash string) error
}
