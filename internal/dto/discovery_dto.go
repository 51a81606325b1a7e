package dto

type DiscoveryResponse struct {
	Suggestions []DiscoverySuggestion `json:"suggestions"`
}

type DiscoverySuggestion struct {
	SuggestedInterest SuggestedInterest `json:"suggestedInterest"`
	SampleContent     []ContentSample   `json:"sampleContent"`
}

type SuggestedInterest struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

type ContentSample struct {
	Id               string  `json:"id"`
	Title            string  `json:"title"`
	SourceName       string  `json:"sourceName"`
	ReliabilityScore float64 `json:"reliabilityScore"`
	RelevanceScore   float64 `json:"relevanceScore"`
}

type TryNewTopicsRequest struct {
	Interests []string `json:"interests" validate:"required"`
}
