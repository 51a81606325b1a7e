package entity

import "time"

type ContentType string

const (
	ContentTypeArticle ContentType = "article"
	ContentTypeVideo   ContentType = "video"
	ContentTypePodcast ContentType = "podcast"
	ContentTypePost    ContentType = "post"
)

func (t ContentType) Valid() bool {
	switch t {
	case ContentTypeArticle, ContentTypeVideo, ContentTypePodcast, ContentTypePost:
		return true
	}
	return false
}

type InteractionType string

const (
	InteractionView    InteractionType = "view"
	InteractionSave    InteractionType = "save"
	InteractionShare   InteractionType = "share"
	InteractionDismiss InteractionType = "dismiss"
	InteractionReport  InteractionType = "report"
	InteractionLike    InteractionType = "like"
)

func (t InteractionType) Valid() bool {
	switch t {
	case InteractionView, InteractionSave, InteractionShare,
		InteractionDismiss, InteractionReport, InteractionLike:
		return true
	}
	return false
}

// Source is a content origin with a trust rating in [0,1].
type Source struct {
	Name        string
	Type        string
	Reliability float64
}

// ContentItem is produced by the catalog generator at request time and never
// persisted. ReliabilityScore, QualityScore and RelevanceScore are all in [0,1].
type ContentItem struct {
	Id               string           `json:"id"`
	SourceType       string           `json:"sourceType"`
	SourceName       string           `json:"sourceName"`
	SourceUrl        string           `json:"sourceUrl"`
	Title            string           `json:"title"`
	ContentText      string           `json:"contentText,omitempty"`
	Summary          string           `json:"summary,omitempty"`
	Author           string           `json:"author,omitempty"`
	PublishedAt      time.Time        `json:"publishedAt"`
	IngestedAt       time.Time        `json:"ingestedAt"`
	ReliabilityScore float64          `json:"reliabilityScore"`
	QualityScore     float64          `json:"qualityScore"`
	Tags             []string         `json:"tags"`
	ContentType      ContentType      `json:"contentType"`
	RelevanceScore   float64          `json:"relevanceScore"`
	MatchedInterests []string         `json:"matchedInterests"`
	Metadata         ContentMetadata  `json:"metadata"`
	UserInteractions UserInteractions `json:"userInteractions"`
}

type ContentMetadata struct {
	WordCount   int      `json:"wordCount,omitempty"`
	ReadingTime int      `json:"readingTime,omitempty"`
	Images      []string `json:"images,omitempty"`
	Categories  []string `json:"categories,omitempty"`
}

type UserInteractions struct {
	Viewed bool `json:"viewed"`
	Saved  bool `json:"saved"`
	Liked  bool `json:"liked"`
}
