// Package client provides typed access to the user lookup endpoint for
// dashboards and tools that render another service's data.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ErrFetchFailed is the only error GetUser returns. The cause is logged.
var ErrFetchFailed = errors.New("Failed to fetch user data")

// Profile is the lookup payload.
type Profile struct {
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	ProfileImage string `json:"profileImage"`
}

// Client calls GET /api/user with a session token.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        *zap.Logger
}

// Option customises client instantiation.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// WithSessionToken sets the token sent as "Authorization: Bearer".
func WithSessionToken(token string) Option {
	return func(c *Client) {
		c.token = strings.TrimSpace(token)
	}
}

// WithLogger sets the logger that records failure causes.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// New constructs a Client pointing at the provided base URL.
func New(base string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimSpace(base)
	if trimmed == "" {
		trimmed = "http://localhost:8080"
	}
	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		trimmed = "http://" + trimmed
	}
	if _, err := url.Parse(trimmed); err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	cli := &Client{
		baseURL:    strings.TrimRight(trimmed, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(cli)
	}
	return cli, nil
}

// GetUser fetches the profile for email. Transport errors, non-200
// responses and undecodable bodies all return ErrFetchFailed. No retry.
func (c *Client) GetUser(ctx context.Context, email string) (*Profile, error) {
	p, err := c.getUser(ctx, email)
	if err != nil {
		c.log.Warn("failed to fetch user data", zap.String("email", email), zap.Error(err))
		return nil, ErrFetchFailed
	}
	return p, nil
}

func (c *Client) getUser(ctx context.Context, email string) (*Profile, error) {
	endpoint := c.baseURL + "/api/user?" + url.Values{"email": {email}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var p Profile
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &p, nil
}
