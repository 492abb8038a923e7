// Package crm implements the HTTP client for the remote CRM API which serves listings
// and accepts leads, viewing requests and newsletter subscriptions.
package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/umputun/realtor/pkg/domain"
)

// remote endpoints, relative to the base URL
const (
	PathFeatured   = "/properties/featured"
	PathSearch     = "/properties/search"
	PathLeads      = "/leads"
	PathViewings   = "/viewings"
	PathNewsletter = "/newsletter/subscribe"
)

const maxResponseSize = 4 * 1024 * 1024

// Client talks to the CRM API over JSON
type Client struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

// Params defines client parameters
type Params struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// NewClient makes a CRM client. Zero timeout means no client-side timeout.
func NewClient(p Params) *Client {
	return &Client{
		baseURL:   strings.TrimRight(p.BaseURL, "/"),
		userAgent: p.UserAgent,
		client:    &http.Client{Timeout: p.Timeout},
	}
}

// Featured retrieves featured listings
func (c *Client) Featured(ctx context.Context) ([]domain.Listing, error) {
	var listings []domain.Listing
	if err := c.do(ctx, http.MethodGet, PathFeatured, nil, &listings); err != nil {
		return nil, err
	}
	if listings == nil {
		return nil, fmt.Errorf("no listings in response from %s%s", c.baseURL, PathFeatured)
	}
	return listings, nil
}

// Search queries listings matching the criteria
func (c *Client) Search(ctx context.Context, criteria domain.FilterCriteria) ([]domain.Listing, error) {
	var listings []domain.Listing
	if err := c.do(ctx, http.MethodPost, PathSearch, criteria, &listings); err != nil {
		return nil, err
	}
	if listings == nil {
		return nil, fmt.Errorf("no listings in response from %s%s", c.baseURL, PathSearch)
	}
	return listings, nil
}

// Post sends body as JSON to the path and returns the parsed JSON response of any shape
func (c *Client) Post(ctx context.Context, path string, body any) (any, error) {
	var resp any
	if err := c.do(ctx, http.MethodPost, path, body, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// do performs the request and decodes JSON response into result
func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	endpoint := c.baseURL + path
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("parse URL: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid URL: %s", endpoint)
	}

	var reqBody io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request for %s: %w", path, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	c.addHeaders(req, body != nil)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status code %d for %s %s", resp.StatusCode, method, endpoint)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(result); err != nil {
		return fmt.Errorf("decode response from %s: %w", endpoint, err)
	}
	return nil
}
