package catalog

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"content-discovery-be/internal/entity"
)

var sources = []entity.Source{
	{Name: "Hacker News", Type: "rss", Reliability: 0.85},
	{Name: "TechCrunch", Type: "rss", Reliability: 0.78},
	{Name: "The Verge", Type: "rss", Reliability: 0.82},
	{Name: "Scientific American", Type: "rss", Reliability: 0.90},
	{Name: "Harvard CS", Type: "api", Reliability: 0.95},
	{Name: "MIT Technology Review", Type: "rss", Reliability: 0.88},
}

var titles = []string{
	"The Future of Distributed Computing",
	"Machine Learning Algorithms Demystified",
	"Building Scalable Web Applications",
	"Neural Networks from Scratch",
	"TypeScript Best Practices for Large Apps",
	"Understanding Quantum Algorithms",
	"Cloud Architecture Patterns",
	"Frontend Performance Optimization",
	"Database Design for Modern Apps",
	"The Psychology of Software Development",
	"Advanced React Patterns",
	"Node.js Performance Tuning",
	"Docker Containerization Guide",
	"Microservices Architecture",
	"Kubernetes Deployment Strategies",
	"GraphQL vs REST APIs",
	"WebAssembly: The Future of Web Performance",
	"Cryptography for Developers",
	"Functional Programming in JavaScript",
	"Real-time Communication Protocols",
}

var tagsData = [][]string{
	{"distributed systems", "scalability"},
	{"machine learning", "algorithms"},
	{"web development", "javascript"},
	{"neural networks", "ai"},
	{"typescript", "programming"},
	{"quantum computing", "algorithms"},
	{"cloud", "architecture"},
	{"performance", "optimization"},
	{"databases", "design"},
	{"software development", "programming"},
	{"react", "frontend"},
	{"node.js", "backend"},
	{"docker", "containerization"},
	{"microservices", "architecture"},
	{"kubernetes", "deployment"},
	{"graphql", "apis"},
	{"webassembly", "performance"},
	{"cryptography", "security"},
	{"functional programming", "javascript"},
	{"websocket", "real-time"},
}

var contentTypeRotation = []entity.ContentType{
	entity.ContentTypeArticle, entity.ContentTypeArticle, entity.ContentTypeArticle,
	entity.ContentTypeVideo, entity.ContentTypePodcast, entity.ContentTypeArticle,
	entity.ContentTypePost, entity.ContentTypeArticle,
}

var matchedInterests = []string{"Programming", "AI & Machine Learning", "Web Technologies"}

// Generator produces the mock content catalog. Each Generate call reseeds its
// PRNG, so a given (seed, clock) pair always yields the same catalog.
type Generator struct {
	seed  int64
	clock Clock
}

func NewGenerator(seed int64, clock Clock) *Generator {
	if clock == nil {
		clock = SystemClock()
	}
	return &Generator{seed: seed, clock: clock}
}

func (g *Generator) Sources() []entity.Source {
	return sources
}

func (g *Generator) Generate() []entity.ContentItem {
	rng := rand.New(rand.NewSource(g.seed))
	now := g.clock.Now()

	items := make([]entity.ContentItem, 0, len(titles))
	for index, title := range titles {
		source := sources[index%len(sources)]
		tags := tagsData[index]
		contentType := contentTypeRotation[index%len(contentTypeRotation)]

		publishedAt := now.Add(-time.Duration(rng.Float64() * 72 * float64(time.Hour)))
		ingestedAt := publishedAt.Add(time.Duration(rng.Float64() * float64(time.Hour)))

		summary, wordCount := summarize(title, contentType, rng)

		item := entity.ContentItem{
			Id:               fmt.Sprintf("content-%d", index+1),
			SourceType:       source.Type,
			SourceName:       source.Name,
			SourceUrl:        fmt.Sprintf("https://%s.com/article-%d", strings.ReplaceAll(strings.ToLower(source.Name), " ", ""), index+1),
			Title:            title,
			ContentText:      summary,
			Summary:          summary,
			Author:           fmt.Sprintf("Author %d", index+1),
			PublishedAt:      publishedAt,
			IngestedAt:       ingestedAt,
			ReliabilityScore: source.Reliability,
			QualityScore:     0.7 + rng.Float64()*0.3,
			Tags:             tags,
			ContentType:      contentType,
			RelevanceScore:   0.6 + rng.Float64()*0.4,
			MatchedInterests: matchedInterests,
			Metadata: entity.ContentMetadata{
				WordCount: wordCount,
			},
			UserInteractions: entity.UserInteractions{
				Viewed: rng.Float64() > 0.7,
				Saved:  rng.Float64() > 0.9,
				Liked:  rng.Float64() > 0.8,
			},
		}

		if wordCount > 0 {
			item.Metadata.ReadingTime = int(math.Ceil(float64(wordCount) / 200))
		}
		if contentType == entity.ContentTypeArticle {
			item.Metadata.Images = []string{fmt.Sprintf("image%d.jpg", index+1)}
		}
		if rng.Float64() > 0.3 {
			item.Metadata.Categories = []string{strings.Fields(title)[0]}
		}

		items = append(items, item)
	}

	return items
}

func summarize(title string, contentType entity.ContentType, rng *rand.Rand) (string, int) {
	switch contentType {
	case entity.ContentTypeArticle:
		summary := fmt.Sprintf("%s. This comprehensive guide explores the core concepts, best practices, and emerging trends in the field. Learn from industry experts and gain practical insights that can be applied immediately.", title)
		return summary, 1200 + rng.Intn(1800)
	case entity.ContentTypeVideo:
		return fmt.Sprintf("Visual explanation of %s. Watch as we break down complex concepts into digestible segments with practical demonstrations.", strings.ToLower(title)), 0
	case entity.ContentTypePodcast:
		return fmt.Sprintf("Audio deep-dive on %s. Join the discussion with experts as they share their experiences and future predictions.", strings.ToLower(title)), 0
	case entity.ContentTypePost:
		return fmt.Sprintf("Quick insights on %s. A brief but informative piece sharing practical advice and key takeaways.", strings.ToLower(title)), 200 + rng.Intn(400)
	}
	return "", 0
}
