package service

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"content-discovery-be/internal/catalog"
	"content-discovery-be/internal/dto"
)

const defaultSearchLimit = 10

type ISearchService interface {
	Search(ctx context.Context, query, resultType string, limit int) (*dto.SearchResponse, error)
}

type searchService struct {
	generator *catalog.Generator
	seed      int64
}

func NewSearchService(generator *catalog.Generator, seed int64) ISearchService {
	return &searchService{generator: generator, seed: seed}
}

// Search does a case-insensitive substring match over title and summary of
// the generated catalog. Only "content" results exist in the mock backend;
// resultType values other than that or empty yield no results.
func (s *searchService) Search(ctx context.Context, query, resultType string, limit int) (*dto.SearchResponse, error) {
	start := time.Now()

	if limit <= 0 {
		limit = defaultSearchLimit
	}

	results := make([]dto.SearchResult, 0)
	if resultType == "" || resultType == "content" {
		rng := rand.New(rand.NewSource(s.seed))
		needle := strings.ToLower(query)
		for _, item := range s.generator.Generate() {
			if len(results) >= limit {
				break
			}
			if strings.Contains(strings.ToLower(item.Title), needle) ||
				strings.Contains(strings.ToLower(item.Summary), needle) {
				results = append(results, dto.SearchResult{
					Type:           "content",
					Id:             item.Id,
					Title:          item.Title,
					Highlights:     []string{`"` + query + `"`},
					RelevanceScore: 0.8 + rng.Float64()*0.2,
				})
			}
		}
	}

	return &dto.SearchResponse{
		Results:    results,
		Total:      len(results),
		SearchTime: time.Since(start).Milliseconds(),
	}, nil
}
