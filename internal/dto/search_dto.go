package dto

type SearchResponse struct {
	Results    []SearchResult `json:"results"`
	Total      int            `json:"total"`
	SearchTime int64          `json:"searchTime"`
}

type SearchResult struct {
	Type           string   `json:"type"`
	Id             string   `json:"id"`
	Title          string   `json:"title,omitempty"`
	Highlights     []string `json:"highlights"`
	RelevanceScore float64  `json:"relevanceScore"`
}
