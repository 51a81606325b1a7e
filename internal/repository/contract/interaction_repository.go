package contract

import (
	"context"

	"content-discovery-be/internal/dto"
)

// IInteractionCounterRepository aggregates accepted interaction events per
// content id. Counters for an unknown id are all zero.
type IInteractionCounterRepository interface {
	Increment(ctx context.Context, contentId, kind string) error
	Counts(ctx context.Context, contentId string) (dto.InteractionCounts, error)
}
