package service

import (
	"context"
	"strings"

	"content-discovery-be/internal/dto"
)

type IDiscoveryService interface {
	GetSuggestions(ctx context.Context) (*dto.DiscoveryResponse, error)
	TryNewTopics(ctx context.Context, interests []string) (*dto.DiscoveryResponse, error)
}

type discoveryService struct{}

func NewDiscoveryService() IDiscoveryService {
	return &discoveryService{}
}

func suggestionCatalog() []dto.DiscoverySuggestion {
	return []dto.DiscoverySuggestion{
		{
			SuggestedInterest: dto.SuggestedInterest{
				Name:   "DevOps & Infrastructure",
				Reason: "Based on your interest in Programming and recent articles about scalable systems",
			},
			SampleContent: []dto.ContentSample{
				{Id: "discovery-1", Title: "Kubernetes for Developers", SourceName: "Docker Blog", ReliabilityScore: 0.92, RelevanceScore: 0.85},
				{Id: "discovery-2", Title: "CI/CD Best Practices", SourceName: "GitHub Engineering", ReliabilityScore: 0.89, RelevanceScore: 0.78},
			},
		},
		{
			SuggestedInterest: dto.SuggestedInterest{
				Name:   "Blockchain Technology",
				Reason: "Related to your programming interests and distributed systems",
			},
			SampleContent: []dto.ContentSample{
				{Id: "discovery-3", Title: "Smart Contract Security Patterns", SourceName: "Ethereum Foundation", ReliabilityScore: 0.88, RelevanceScore: 0.78},
				{Id: "discovery-4", Title: "Consensus Mechanisms Explained", SourceName: "Blockchain.com", ReliabilityScore: 0.85, RelevanceScore: 0.72},
			},
		},
		{
			SuggestedInterest: dto.SuggestedInterest{
				Name:   "Quantum Computing",
				Reason: "Aligned with your interest in algorithms and emerging technologies",
			},
			SampleContent: []dto.ContentSample{
				{Id: "discovery-5", Title: "Introduction to Quantum Algorithms", SourceName: "IBM Research", ReliabilityScore: 0.95, RelevanceScore: 0.75},
			},
		},
	}
}

func (s *discoveryService) GetSuggestions(ctx context.Context) (*dto.DiscoveryResponse, error) {
	return &dto.DiscoveryResponse{Suggestions: suggestionCatalog()}, nil
}

// TryNewTopics drops suggestions the caller already follows.
func (s *discoveryService) TryNewTopics(ctx context.Context, interests []string) (*dto.DiscoveryResponse, error) {
	known := make(map[string]bool, len(interests))
	for _, name := range interests {
		known[strings.ToLower(name)] = true
	}

	suggestions := make([]dto.DiscoverySuggestion, 0)
	for _, suggestion := range suggestionCatalog() {
		if !known[strings.ToLower(suggestion.SuggestedInterest.Name)] {
			suggestions = append(suggestions, suggestion)
		}
	}

	return &dto.DiscoveryResponse{Suggestions: suggestions}, nil
}
