package memory

import (
	"context"
	"fmt"
	"sync"

	"content-discovery-be/internal/dto"

	"github.com/patrickmn/go-cache"
)

// InteractionCounterRepository keeps one int64 cache entry per
// (content id, interaction kind).
type InteractionCounterRepository struct {
	mu       sync.Mutex
	counters *cache.Cache
}

func NewInteractionCounterRepository() *InteractionCounterRepository {
	return &InteractionCounterRepository{
		counters: cache.New(cache.NoExpiration, 0),
	}
}

func counterKey(contentId, kind string) string {
	return fmt.Sprintf("%s:%s", contentId, kind)
}

func (r *InteractionCounterRepository) Increment(ctx context.Context, contentId, kind string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := counterKey(contentId, kind)
	if _, found := r.counters.Get(key); !found {
		r.counters.Set(key, int64(0), cache.NoExpiration)
	}
	_, err := r.counters.IncrementInt64(key, 1)
	return err
}

func (r *InteractionCounterRepository) count(contentId, kind string) int64 {
	if x, found := r.counters.Get(counterKey(contentId, kind)); found {
		return x.(int64)
	}
	return 0
}

func (r *InteractionCounterRepository) Counts(ctx context.Context, contentId string) (dto.InteractionCounts, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return dto.InteractionCounts{
		Views:     r.count(contentId, "view"),
		Saves:     r.count(contentId, "save"),
		Shares:    r.count(contentId, "share"),
		Dismisses: r.count(contentId, "dismiss"),
		Reports:   r.count(contentId, "report"),
		Likes:     r.count(contentId, "like"),
	}, nil
}
