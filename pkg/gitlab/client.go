package gitlab

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/plotkit/plotkit/pkg/cache"
	"github.com/plotkit/plotkit/pkg/errors"
)

const (
	httpTimeout = 10 * time.Second

	// cacheTTL is how long issue responses stay fresh.
	cacheTTL = 15 * time.Minute
)

// Issue is one GitLab issue as raw JSON fields, preserving the full
// API payload for field-path exports.
type Issue map[string]any

// Client fetches issues from one GitLab instance.
type Client struct {
	baseURL string
	token   Token
	http    *http.Client
	cache   cache.Cache
}

// Option configures a Client.
type Option func(*Client)

// WithToken authenticates requests with a private token (literal or
// file path).
func WithToken(t Token) Option {
	return func(c *Client) { c.token = t }
}

// WithCache sets the response cache backend.
func WithCache(backend cache.Cache) Option {
	return func(c *Client) { c.cache = backend }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// NewClient creates a client for the GitLab API at baseURL, for
// example "https://gitlab.example.com/api/v4". Responses are not
// cached unless a cache backend is configured.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if err := errors.ValidateURL(baseURL); err != nil {
		return nil, err
	}
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: httpTimeout},
		cache:   cache.NewNullCache(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Issues fetches the given issues of a project by their project-local
// IDs. All scopes are searched. An empty ids list fetches every issue
// of the project.
func (c *Client) Issues(ctx context.Context, projectID string, ids []int) ([]Issue, error) {
	u := c.issuesURL(projectID, ids)

	key := cache.Hash([]byte(u))
	if data, ok, _ := c.cache.Get(ctx, key); ok {
		var issues []Issue
		if err := json.Unmarshal(data, &issues); err == nil {
			return issues, nil
		}
	}

	var issues []Issue
	err := cache.RetryWithBackoff(ctx, func() error {
		var err error
		issues, err = c.fetchIssues(ctx, u)
		return err
	})
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(issues); err == nil {
		_ = c.cache.Set(ctx, key, data, cacheTTL)
	}
	return issues, nil
}

// issuesURL builds the issues endpoint URL with the scope and iids[]
// query parameters.
func (c *Client) issuesURL(projectID string, ids []int) string {
	q := url.Values{}
	q.Set("scope", "all")
	for _, id := range ids {
		q.Add("iids[]", fmt.Sprint(id))
	}
	return fmt.Sprintf("%s/projects/%s/issues?%s", c.baseURL, url.PathEscape(projectID), q.Encode())
}

func (c *Client) fetchIssues(ctx context.Context, u string) ([]Issue, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	if c.token != "" {
		token, err := c.token.Resolve()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeUnauthorized, err, "resolving token")
		}
		req.Header.Set("PRIVATE-TOKEN", token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, cache.Retryable(errors.Wrap(errors.ErrCodeNetwork, err, "gitlab request"))
	}
	defer resp.Body.Close()

	if err := checkStatus(resp.StatusCode); err != nil {
		return nil, err
	}

	var issues []Issue
	if err := json.NewDecoder(resp.Body).Decode(&issues); err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "decoding issues response")
	}
	return issues, nil
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return errors.New(errors.ErrCodeUnauthorized, "gitlab rejected the token (status %d)", code)
	case code == http.StatusNotFound:
		return errors.New(errors.ErrCodeNotFound, "project or issues not found")
	case code >= 500:
		return cache.Retryable(errors.New(errors.ErrCodeNetwork, "gitlab server error (status %d)", code))
	default:
		return errors.New(errors.ErrCodeNetwork, "unexpected status %d", code)
	}
}
