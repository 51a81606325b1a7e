package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"content-discovery-be/internal/catalog"
	"content-discovery-be/internal/dto"
	"content-discovery-be/internal/entity"
	"content-discovery-be/internal/repository/contract"
)

const (
	defaultFeedLimit = 20
	maxFeedLimit     = 50

	// Window for the "new content" stat, measured back from request time.
	newContentWindow = 24 * time.Hour
)

var ErrContentNotFound = errors.New("content not found")

type IFeedService interface {
	GetFeed(ctx context.Context, query dto.FeedQuery) (*dto.FeedResponse, error)
	GetContent(ctx context.Context, contentId string) (*dto.ContentDetailResponse, error)
}

type feedService struct {
	generator *catalog.Generator
	clock     catalog.Clock
	counters  contract.IInteractionCounterRepository
}

func NewFeedService(
	generator *catalog.Generator,
	clock catalog.Clock,
	counters contract.IInteractionCounterRepository,
) IFeedService {
	if clock == nil {
		clock = catalog.SystemClock()
	}
	return &feedService{
		generator: generator,
		clock:     clock,
		counters:  counters,
	}
}

func (s *feedService) GetFeed(ctx context.Context, query dto.FeedQuery) (*dto.FeedResponse, error) {
	// Sort once, before filtering, so pages compose deterministically across
	// any filter combination.
	allContent := sortByPublishedDesc(s.generator.Generate())
	filtered := applyFilters(allContent, query)

	limit := query.Limit
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	if limit > maxFeedLimit {
		limit = maxFeedLimit
	}
	offset := query.Offset
	if offset < 0 {
		offset = 0
	}

	page := paginate(filtered, offset, limit)

	return &dto.FeedResponse{
		Feed: page,
		Pagination: dto.PaginationInfo{
			Total:   len(filtered),
			Limit:   limit,
			Offset:  offset,
			HasMore: offset+limit < len(filtered),
		},
		Stats: dto.FeedStats{
			NewContentCount: countNewContent(allContent, s.clock.Now()),
			TotalSources:    len(s.generator.Sources()),
		},
	}, nil
}

func (s *feedService) GetContent(ctx context.Context, contentId string) (*dto.ContentDetailResponse, error) {
	for _, item := range s.generator.Generate() {
		if item.Id == contentId {
			counts, err := s.counters.Counts(ctx, contentId)
			if err != nil {
				return nil, err
			}
			return &dto.ContentDetailResponse{
				Content:      &item,
				Interactions: counts,
			}, nil
		}
	}
	return nil, ErrContentNotFound
}

func sortByPublishedDesc(items []entity.ContentItem) []entity.ContentItem {
	sorted := make([]entity.ContentItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PublishedAt.After(sorted[j].PublishedAt)
	})
	return sorted
}

// applyFilters ANDs every supplied predicate.
func applyFilters(items []entity.ContentItem, query dto.FeedQuery) []entity.ContentItem {
	filtered := make([]entity.ContentItem, 0, len(items))
	for _, item := range items {
		if query.ContentType != "" && string(item.ContentType) != query.ContentType {
			continue
		}
		if len(query.Sources) > 0 && !containsString(query.Sources, item.SourceName) {
			continue
		}
		if query.MinReliability != nil && item.ReliabilityScore < *query.MinReliability {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}

// paginate slices [offset, offset+limit). An out-of-range offset is an empty
// page, never an error.
func paginate(items []entity.ContentItem, offset, limit int) []entity.ContentItem {
	if offset >= len(items) {
		return []entity.ContentItem{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

func countNewContent(items []entity.ContentItem, now time.Time) int {
	count := 0
	for _, item := range items {
		if now.Sub(item.IngestedAt) < newContentWindow {
			count++
		}
	}
	return count
}

func containsString(list []string, value string) bool {
	for _, s := range list {
		if s == value {
			return true
		}
	}
	return false
}
