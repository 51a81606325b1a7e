package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"content-discovery-be/internal/dto"
	"content-discovery-be/internal/pkg/logger"
)

// APIError carries a non-2xx response: status code, status text and the raw
// error payload. The facade is single-attempt and fail-fast; retrying is the
// caller's decision.
type APIError struct {
	StatusCode int
	Status     string
	Payload    []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: %d %s", e.StatusCode, e.Status)
}

// Client is the typed facade over the mock backend: one method per logical
// operation, no retries, context on every call.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     logger.ILogger

	mu          sync.RWMutex
	accessToken string
}

func New(baseURL string, log logger.ILogger) *Client {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     log,
	}
}

func (c *Client) SetAccessToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = token
}

func (c *Client) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.currentToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusUnauthorized {
			c.logger.Warn("client", "unauthorized", map[string]interface{}{"path": path})
		} else if resp.StatusCode >= 500 {
			c.logger.Error("client", "server error", map[string]interface{}{
				"path":   path,
				"status": resp.StatusCode,
			})
		}
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Payload:    data,
		}
	}

	return data, nil
}

type envelope[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func call[T any](c *Client, ctx context.Context, method, path string, query url.Values, body interface{}) (T, error) {
	var zero T
	data, err := c.do(ctx, method, path, query, body)
	if err != nil {
		return zero, err
	}

	var env envelope[T]
	if err := json.Unmarshal(data, &env); err != nil {
		return zero, err
	}
	if !env.Success {
		message := "request rejected"
		if env.Error != nil {
			message = env.Error.Message
		}
		return zero, fmt.Errorf("api rejected request: %s", message)
	}
	return env.Data, nil
}

// --- Auth ---

func (c *Client) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	return call[*dto.AuthResponse](c, ctx, http.MethodPost, "/api/auth/login", nil,
		dto.LoginRequest{Email: email, Password: password})
}

func (c *Client) Register(ctx context.Context, email, username, password string) (*dto.AuthResponse, error) {
	return call[*dto.AuthResponse](c, ctx, http.MethodPost, "/api/auth/register", nil,
		dto.RegisterRequest{Email: email, Username: username, Password: password})
}

func (c *Client) Logout(ctx context.Context, refreshToken string) (*dto.MessageResponse, error) {
	res, err := call[dto.MessageResponse](c, ctx, http.MethodPost, "/api/auth/logout", nil,
		dto.LogoutRequest{RefreshToken: refreshToken})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) Refresh(ctx context.Context, refreshToken string) (*dto.TokenPair, error) {
	return call[*dto.TokenPair](c, ctx, http.MethodPost, "/api/auth/refresh", nil,
		dto.RefreshRequest{RefreshToken: refreshToken})
}

// --- User ---

func (c *Client) GetProfile(ctx context.Context) (*dto.UserResponse, error) {
	return call[*dto.UserResponse](c, ctx, http.MethodGet, "/api/user/profile", nil, nil)
}

func (c *Client) UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	return call[*dto.UserResponse](c, ctx, http.MethodPatch, "/api/user/profile", nil, req)
}

// --- Interests ---

func (c *Client) GetInterests(ctx context.Context) ([]dto.InterestResponse, error) {
	return call[[]dto.InterestResponse](c, ctx, http.MethodGet, "/api/interests", nil, nil)
}

func (c *Client) CreateInterest(ctx context.Context, req *dto.CreateInterestRequest) (*dto.InterestResponse, error) {
	return call[*dto.InterestResponse](c, ctx, http.MethodPost, "/api/interests", nil, req)
}

func (c *Client) UpdateInterest(ctx context.Context, id string, req *dto.UpdateInterestRequest) (*dto.InterestResponse, error) {
	return call[*dto.InterestResponse](c, ctx, http.MethodPatch, "/api/interests/"+id, nil, req)
}

func (c *Client) DeleteInterest(ctx context.Context, id string) (*dto.MessageResponse, error) {
	res, err := call[dto.MessageResponse](c, ctx, http.MethodDelete, "/api/interests/"+id, nil, nil)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// --- Content ---

func (c *Client) GetFeed(ctx context.Context, query dto.FeedQuery) (*dto.FeedResponse, error) {
	params := url.Values{}
	if query.Limit > 0 {
		params.Set("limit", strconv.Itoa(query.Limit))
	}
	if query.Offset > 0 {
		params.Set("offset", strconv.Itoa(query.Offset))
	}
	if query.ContentType != "" {
		params.Set("contentType", query.ContentType)
	}
	for _, source := range query.Sources {
		params.Add("sources", source)
	}
	if query.MinReliability != nil {
		params.Set("minReliability", strconv.FormatFloat(*query.MinReliability, 'f', -1, 64))
	}
	return call[*dto.FeedResponse](c, ctx, http.MethodGet, "/api/content/feed", params, nil)
}

func (c *Client) GetContent(ctx context.Context, id string) (*dto.ContentDetailResponse, error) {
	return call[*dto.ContentDetailResponse](c, ctx, http.MethodGet, "/api/content/"+id, nil, nil)
}

func (c *Client) Interact(ctx context.Context, id string, req *dto.InteractionRequest) (*dto.MessageResponse, error) {
	res, err := call[dto.MessageResponse](c, ctx, http.MethodPost, "/api/content/"+id+"/interact", nil, req)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// --- Discovery ---

func (c *Client) GetSuggestions(ctx context.Context) (*dto.DiscoveryResponse, error) {
	return call[*dto.DiscoveryResponse](c, ctx, http.MethodGet, "/api/discovery/suggestions", nil, nil)
}

func (c *Client) TryNewTopics(ctx context.Context, interests []string) (*dto.DiscoveryResponse, error) {
	return call[*dto.DiscoveryResponse](c, ctx, http.MethodPost, "/api/discovery/try-new", nil,
		dto.TryNewTopicsRequest{Interests: interests})
}

// --- Search ---

func (c *Client) Search(ctx context.Context, query, resultType string, limit int) (*dto.SearchResponse, error) {
	params := url.Values{}
	params.Set("q", query)
	if resultType != "" {
		params.Set("type", resultType)
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	return call[*dto.SearchResponse](c, ctx, http.MethodGet, "/api/search", params, nil)
}
