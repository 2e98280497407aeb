// Package client is a thin HTTP client for the LinkHub API.
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
	"time"
)

// Client talks to a LinkHub API server on behalf of a single user.
type Client struct {
	base       string
	token      string
	httpClient *http.Client
}

// New creates a new API client. base is the server address without the /v1
// prefix, token is the user's access token.
func New(base, token string) *Client {
	return &Client{
		base:  base,
		token: token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GetFeed fetches one feed page.
func (c *Client) GetFeed(ctx context.Context, p FeedParams) (*Feed, error) {
	q := url.Values{}
	if p.Type != "" {
		q.Set("type", p.Type)
	}
	if p.SourceID != "" {
		q.Set("source_id", p.SourceID)
	}
	if p.Page != 0 {
		q.Set("page", strconv.FormatUint(uint64(p.Page), 10))
	}
	if p.Limit != 0 {
		q.Set("limit", strconv.FormatUint(uint64(p.Limit), 10))
	}

	var out Feed
	if err := c.get(ctx, "/v1/feed?"+q.Encode(), &out); err != nil {
		return nil, fmt.Errorf("get feed: %w", err)
	}

	return &out, nil
}

// CreatePost creates a post and returns it assembled with the author.
func (c *Client) CreatePost(ctx context.Context, p CreatePostParams) (*Post, error) {
	var out createPostResponse
	if err := c.post(ctx, "/v1/posts", p, &out); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	return &out.Post, nil
}

// ToggleLike flips the user's like on a post and returns the resulting state.
func (c *Client) ToggleLike(ctx context.Context, postID string) (*LikeState, error) {
	var out LikeState
	if err := c.post(ctx, "/v1/posts/"+postID+"/like", nil, &out); err != nil {
		return nil, fmt.Errorf("toggle like: %w", err)
	}

	return &out, nil
}

// CreateComment comments on a post. The returned comment carries the author's
// profile summary.
func (c *Client) CreateComment(ctx context.Context, postID, content string) (*Comment, uint32, error) {
	var out createCommentResponse
	if err := c.post(ctx, "/v1/posts/"+postID+"/comments", createCommentRequest{Content: content}, &out); err != nil {
		return nil, 0, fmt.Errorf("create comment: %w", err)
	}

	return &out.Comment, out.CommentsCount, nil
}

// GetNotifications fetches one page of the user's notifications.
func (c *Client) GetNotifications(ctx context.Context, unreadOnly bool, page uint32, limit uint16) (*Notifications, error) {
	q := url.Values{}
	if unreadOnly {
		q.Set("unread", "true")
	}
	if page != 0 {
		q.Set("page", strconv.FormatUint(uint64(page), 10))
	}
	if limit != 0 {
		q.Set("limit", strconv.FormatUint(uint64(limit), 10))
	}

	var out Notifications
	if err := c.get(ctx, "/v1/notifications?"+q.Encode(), &out); err != nil {
		return nil, fmt.Errorf("get notifications: %w", err)
	}

	return &out, nil
}

// SendMessage sends a message, creating the conversation on first contact.
func (c *Client) SendMessage(ctx context.Context, p SendMessageParams) (*SentMessage, error) {
	var out SentMessage
	if err := c.post(ctx, "/v1/messages", p, &out); err != nil {
		return nil, fmt.Errorf("send message: %w", err)
	}

	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	return c.do(req, result)
}

func (c *Client) post(ctx context.Context, path string, body, result any) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, result)
}

func (c *Client) do(req *http.Request, result any) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}

	return nil
}
