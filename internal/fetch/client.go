// Package fetch talks to the projects API.
package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"dconn.dev/showcase/internal/models"
)

// ErrFetchFailed is returned for every unsuccessful fetch, whatever the cause.
var ErrFetchFailed = errors.New("fetch failed")

// Client fetches projects from the projects API
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout bounds each request. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithLogger sets the client logger
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a client for the API rooted at baseURL
// (for example https://apis.ccbp.in/ps).
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ProjectsURL returns the request URL for a category
func (c *Client) ProjectsURL(category models.CategoryID) string {
	q := url.Values{}
	q.Set("category", string(category))
	return c.baseURL + "/projects?" + q.Encode()
}

// FetchProjects issues GET <base>/projects?category=<id> and returns the
// normalized projects. Any non-OK outcome wraps ErrFetchFailed.
func (c *Client) FetchProjects(ctx context.Context, category models.CategoryID) ([]models.Project, error) {
	target := c.ProjectsURL(category)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrFetchFailed, err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("projects request failed",
			zap.String("url", target),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		c.logger.Debug("projects request not ok",
			zap.String("url", target),
			zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: status %d", ErrFetchFailed, resp.StatusCode)
	}

	var body models.RawProjectList
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.logger.Debug("projects response undecodable",
			zap.String("url", target),
			zap.Error(err))
		return nil, fmt.Errorf("%w: decode body: %v", ErrFetchFailed, err)
	}

	projects := make([]models.Project, 0, len(body.Projects))
	for _, raw := range body.Projects {
		projects = append(projects, raw.Normalize())
	}

	c.logger.Debug("projects fetched",
		zap.String("url", target),
		zap.Int("count", len(projects)),
		zap.Duration("elapsed", time.Since(start)))

	return projects, nil
}
