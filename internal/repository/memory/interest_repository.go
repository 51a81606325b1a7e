package memory

import (
	"context"
	"sync"

	"content-discovery-be/internal/entity"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// InterestRepository stores each user's interest list as one cache entry.
// The mutex serializes the read-modify-write cycles on a list.
type InterestRepository struct {
	mu    sync.Mutex
	lists *cache.Cache
}

func NewInterestRepository() *InterestRepository {
	return &InterestRepository{
		lists: cache.New(cache.NoExpiration, 0),
	}
}

func (r *InterestRepository) list(userId uuid.UUID) []*entity.Interest {
	if x, found := r.lists.Get(userId.String()); found {
		return x.([]*entity.Interest)
	}
	return nil
}

func (r *InterestRepository) Create(ctx context.Context, interest *entity.Interest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := append(r.list(interest.UserId), interest)
	r.lists.Set(interest.UserId.String(), list, cache.NoExpiration)
	return nil
}

func (r *InterestRepository) Update(ctx context.Context, interest *entity.Interest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.list(interest.UserId)
	for i, existing := range list {
		if existing.Id == interest.Id {
			list[i] = interest
			break
		}
	}
	r.lists.Set(interest.UserId.String(), list, cache.NoExpiration)
	return nil
}

func (r *InterestRepository) Delete(ctx context.Context, userId, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.list(userId)
	filtered := make([]*entity.Interest, 0, len(list))
	for _, existing := range list {
		if existing.Id != id {
			filtered = append(filtered, existing)
		}
	}
	r.lists.Set(userId.String(), filtered, cache.NoExpiration)
	return nil
}

func (r *InterestRepository) FindById(ctx context.Context, userId, id uuid.UUID) (*entity.Interest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.list(userId) {
		if existing.Id == id {
			return existing, nil
		}
	}
	return nil, nil
}

func (r *InterestRepository) FindAllByUser(ctx context.Context, userId uuid.UUID) ([]*entity.Interest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.list(userId)
	out := make([]*entity.Interest, len(list))
	copy(out, list)
	return out, nil
}
