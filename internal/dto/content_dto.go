package dto

import "content-discovery-be/internal/entity"

// FeedQuery carries the /content/feed parameters. Limit is clamped to 50 and
// defaults to 20; a missing MinReliability means no reliability filter at all,
// so it stays a pointer.
type FeedQuery struct {
	Limit          int
	Offset         int
	ContentType    string
	Sources        []string
	MinReliability *float64
}

type PaginationInfo struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"hasMore"`
}

type FeedStats struct {
	NewContentCount int `json:"newContentCount"`
	TotalSources    int `json:"totalSources"`
}

type FeedResponse struct {
	Feed       []entity.ContentItem `json:"feed"`
	Pagination PaginationInfo       `json:"pagination"`
	Stats      FeedStats            `json:"stats"`
}

type InteractionRequest struct {
	Type     string               `json:"type" validate:"required"`
	Metadata *InteractionMetadata `json:"metadata,omitempty"`
}

type InteractionMetadata struct {
	Duration int    `json:"duration,omitempty"`
	Rating   int    `json:"rating,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// InteractionCounts are the aggregated per-content totals maintained by the
// interaction consumer.
type InteractionCounts struct {
	Views     int64 `json:"views"`
	Saves     int64 `json:"saves"`
	Shares    int64 `json:"shares"`
	Dismisses int64 `json:"dismisses"`
	Reports   int64 `json:"reports"`
	Likes     int64 `json:"likes"`
}

type ContentDetailResponse struct {
	Content      *entity.ContentItem `json:"content"`
	Interactions InteractionCounts   `json:"interactions"`
}

// ContentInteractionEvent is the wire payload published on the interaction
// topic.
type ContentInteractionEvent struct {
	ContentId string               `json:"content_id"`
	UserId    string               `json:"user_id"`
	Type      string               `json:"type"`
	Metadata  *InteractionMetadata `json:"metadata,omitempty"`
}
