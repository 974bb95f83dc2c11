package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-blog-keeper/models"
	"github.com/go-resty/resty/v2"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpPostServiceClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPPostServiceClient constructs an HTTP/REST implementation of
// [PostServiceClient] pointed at cfg.BaseURL.
func NewHTTPPostServiceClient(cfg HTTPClientConfig) PostServiceClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpPostServiceClient{client: cli}
}

func (h *httpPostServiceClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpPostServiceClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpPostServiceClient) ListPosts(ctx context.Context) ([]models.Post, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/posts")
	if err != nil {
		return nil, fmt.Errorf("list posts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var postsResponse models.PostsResponse
	if err = json.Unmarshal(resp.Body(), &postsResponse); err != nil {
		return nil, fmt.Errorf("list posts decode response: %w", err)
	}

	return postsResponse.Posts, nil
}

func (h *httpPostServiceClient) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(h.Token()).
		SetBody(post).
		Post("/posts")
	if err != nil {
		return models.Post{}, fmt.Errorf("create post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	var dataResponse models.DataResponse
	if err = json.Unmarshal(resp.Body(), &dataResponse); err != nil {
		return models.Post{}, fmt.Errorf("create post decode response: %w", err)
	}

	return dataResponse.Data, nil
}

func (h *httpPostServiceClient) UpdatePost(ctx context.Context, post models.Post) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(h.Token()).
		SetBody(post).
		Put("/posts/" + post.ID)
	if err != nil {
		return fmt.Errorf("update post request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpPostServiceClient) DeletePost(ctx context.Context, postID string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(h.Token()).
		Delete("/posts/" + postID)
	if err != nil {
		return fmt.Errorf("delete post request: %w", err)
	}

	return mapHTTPError(resp)
}
