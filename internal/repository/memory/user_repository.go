package memory

import (
	"context"
	"strings"
	"sync"

	"content-discovery-be/internal/entity"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// UserRepository keeps users in a go-cache instance keyed by id, with a
// secondary email index. Nothing expires; the mock backend lives and dies
// with the process.
//
// Callers mutate the stored record in place before calling Update, so the
// last indexed email is tracked per id rather than read back from the record.
type UserRepository struct {
	mu      sync.Mutex
	byId    *cache.Cache
	byEmail *cache.Cache
	emailOf *cache.Cache
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byId:    cache.New(cache.NoExpiration, 0),
		byEmail: cache.New(cache.NoExpiration, 0),
		emailOf: cache.New(cache.NoExpiration, 0),
	}
}

func (r *UserRepository) store(user *entity.User) {
	id := user.Id.String()
	email := strings.ToLower(user.Email)

	if x, found := r.emailOf.Get(id); found && x.(string) != email {
		r.byEmail.Delete(x.(string))
	}

	r.byId.Set(id, user, cache.NoExpiration)
	r.byEmail.Set(email, id, cache.NoExpiration)
	r.emailOf.Set(id, email, cache.NoExpiration)
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store(user)
	return nil
}

func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store(user)
	return nil
}

func (r *UserRepository) FindById(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if x, found := r.byId.Get(id.String()); found {
		return x.(*entity.User), nil
	}
	return nil, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	x, found := r.byEmail.Get(strings.ToLower(email))
	if !found {
		return nil, nil
	}
	if u, found := r.byId.Get(x.(string)); found {
		return u.(*entity.User), nil
	}
	return nil, nil
}
