package appstate

import (
	"context"
	"sync"

	"content-discovery-be/internal/dto"
	"content-discovery-be/internal/entity"
	"content-discovery-be/pkg/client"
)

const feedPageSize = 20

type Pagination struct {
	CurrentPage int
	TotalPages  int
	HasMore     bool
	Total       int
}

type FeedState struct {
	Items           []entity.ContentItem
	IsLoading       bool
	Error           string
	Pagination      Pagination
	NewContentCount int
	TotalSources    int
}

// ContentStore caches the active feed page set and mirrors interaction
// outcomes into the cached items.
type ContentStore struct {
	mu           sync.Mutex
	api          *client.Client
	feed         FeedState
	activeQuery  dto.FeedQuery
	selectedItem *entity.ContentItem
	loadingMore  bool
}

func NewContentStore(api *client.Client) *ContentStore {
	return &ContentStore{api: api}
}

func (s *ContentStore) Feed() FeedState {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.feed
	out.Items = append([]entity.ContentItem(nil), s.feed.Items...)
	return out
}

func (s *ContentStore) SelectedItem() *entity.ContentItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedItem
}

func (s *ContentStore) SetSelectedItem(item *entity.ContentItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedItem = item
}

// FetchFeed replaces the cached window wholesale with the server's page for
// the given query. Pagination is derived from the response totals.
func (s *ContentStore) FetchFeed(ctx context.Context, query dto.FeedQuery) error {
	if query.Limit <= 0 {
		query.Limit = feedPageSize
	}

	s.mu.Lock()
	s.feed.IsLoading = true
	s.feed.Error = ""
	s.activeQuery = query
	s.mu.Unlock()

	resp, err := s.api.GetFeed(ctx, query)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.feed.IsLoading = false
	if err != nil {
		s.feed.Error = err.Error()
		return err
	}

	s.feed.Items = resp.Feed
	s.feed.Pagination = Pagination{
		CurrentPage: resp.Pagination.Offset/resp.Pagination.Limit + 1,
		TotalPages:  totalPages(resp.Pagination.Total, resp.Pagination.Limit),
		HasMore:     resp.Pagination.HasMore,
		Total:       resp.Pagination.Total,
	}
	s.feed.NewContentCount = resp.Stats.NewContentCount
	s.feed.TotalSources = resp.Stats.TotalSources
	return nil
}

func totalPages(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// LoadMore advances the window by one page. At most one load is in flight;
// concurrent calls and calls past the last page return false without touching
// the server.
func (s *ContentStore) LoadMore(ctx context.Context) (bool, error) {
	s.mu.Lock()
	if s.loadingMore || !s.feed.Pagination.HasMore {
		s.mu.Unlock()
		return false, nil
	}
	s.loadingMore = true
	query := s.activeQuery
	query.Offset = len(s.feed.Items)
	query.Limit = feedPageSize
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loadingMore = false
		s.mu.Unlock()
	}()

	if err := s.FetchFeed(ctx, query); err != nil {
		return false, err
	}
	return true, nil
}

// InteractWithContent records the interaction on the server and then mirrors
// it locally: save and like toggle, view latches on. Unknown ids are ignored
// after the server call.
func (s *ContentStore) InteractWithContent(ctx context.Context, contentId string, kind entity.InteractionType, metadata *dto.InteractionMetadata) (bool, error) {
	_, err := s.api.Interact(ctx, contentId, &dto.InteractionRequest{
		Type:     string(kind),
		Metadata: metadata,
	})
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.feed.Items {
		if s.feed.Items[i].Id != contentId {
			continue
		}
		applyInteraction(&s.feed.Items[i].UserInteractions, kind)
		if s.selectedItem != nil && s.selectedItem.Id == contentId {
			applyInteraction(&s.selectedItem.UserInteractions, kind)
		}
		break
	}
	return true, nil
}

func applyInteraction(ui *entity.UserInteractions, kind entity.InteractionType) {
	switch kind {
	case entity.InteractionView:
		ui.Viewed = true
	case entity.InteractionSave:
		ui.Saved = !ui.Saved
	case entity.InteractionLike:
		ui.Liked = !ui.Liked
	}
}

// GetContentByID prefers the cached copy and falls back to the detail
// endpoint for ids outside the current window.
func (s *ContentStore) GetContentByID(ctx context.Context, contentId string) (*entity.ContentItem, error) {
	s.mu.Lock()
	for i := range s.feed.Items {
		if s.feed.Items[i].Id == contentId {
			item := s.feed.Items[i]
			s.mu.Unlock()
			return &item, nil
		}
	}
	s.mu.Unlock()

	detail, err := s.api.GetContent(ctx, contentId)
	if err != nil {
		return nil, err
	}
	return detail.Content, nil
}

func (s *ContentStore) ClearFeed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feed = FeedState{}
	s.activeQuery = dto.FeedQuery{}
	s.selectedItem = nil
}
