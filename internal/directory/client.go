package directory

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

// ErrFetchFailed wraps every error returned by FetchAll. The browser treats
// all of them the same way: the listing is replaced by a failure message.
var ErrFetchFailed = errors.New("failed to fetch user data")

// Fetcher loads the full user collection.
// This interface is implemented by *Client and can be used for testing.
type Fetcher interface {
	FetchAll(ctx context.Context) ([]User, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client talks to the remote users endpoint.
type Client struct {
	endpoint  *url.URL
	http      *http.Client
	userAgent string
	log       *zap.Logger
}

const (
	DefaultEndpoint  = "https://dummyjson.com/users"
	defaultUserAgent = "roster/0.1"
	requestTimeout   = 10 * time.Second
)

// NewClient builds a Client for the given endpoint URL. A nil logger
// disables logging.
func NewClient(endpoint string, logger *zap.Logger) (*Client, error) {
	u, err := parseEndpoint(endpoint)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		endpoint: u,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
		log:       logger.Named("directory"),
	}, nil
}

// Endpoint returns the URL the client fetches from.
func (c *Client) Endpoint() string {
	if c == nil || c.endpoint == nil {
		return ""
	}
	return c.endpoint.String()
}

// FetchAll issues a single GET and returns every user in the response.
func (c *Client) FetchAll(ctx context.Context) ([]User, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: client is nil", ErrFetchFailed)
	}
	start := time.Now()
	var payload UserListResponse
	if err := c.get(ctx, &payload); err != nil {
		c.log.Warn("fetch users failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	if payload.Users == nil {
		c.log.Warn("fetch users failed", zap.String("reason", "missing users array"))
		return nil, fmt.Errorf("%w: response has no users array", ErrFetchFailed)
	}
	users := make([]User, 0, len(*payload.Users))
	for _, p := range *payload.Users {
		users = append(users, p.User())
	}
	c.log.Info("fetched users",
		zap.Int("count", len(users)),
		zap.Int("total", payload.Total),
		zap.Duration("elapsed", time.Since(start)))
	return users, nil
}

func (c *Client) get(ctx context.Context, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("api %s returned status %d", c.endpoint.Path, resp.StatusCode)
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseEndpoint(endpoint string) (*url.URL, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		trimmed = DefaultEndpoint
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint %q: %w", endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("parse endpoint %q: unsupported scheme %q", endpoint, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse endpoint %q: missing host", endpoint)
	}
	u.Fragment = ""
	return u, nil
}
