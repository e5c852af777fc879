package jira

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	DefaultTimeout = 25 * time.Second
	// StartedLayout is the timestamp layout Jira expects for worklog start.
	StartedLayout = "2006-01-02T15:04:05.000-0700"
)

var (
	ErrMissingBaseURL     = errors.New("jira: missing base URL")
	ErrMissingCredentials = errors.New("jira: missing credentials")
)

// Client is the Jira Cloud REST v3 client.
type Client struct {
	baseURL    string
	email      string
	token      string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// New creates a Jira client using basic auth with an API token.
func New(baseURL, email, token string) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, ErrMissingBaseURL
	}
	if email == "" || token == "" {
		return nil, ErrMissingCredentials
	}
	return &Client{
		baseURL:    baseURL,
		email:      email,
		token:      token,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}, nil
}

// WithTimeout overrides the HTTP timeout.
func (c *Client) WithTimeout(d time.Duration) *Client {
	if d > 0 {
		c.httpClient.Timeout = d
	}
	return c
}

// WithRateLimit caps outbound requests per second. A non-positive value
// disables throttling.
func (c *Client) WithRateLimit(perSecond float64) *Client {
	if perSecond <= 0 {
		c.limiter = nil
		return c
	}
	burst := int(perSecond)
	if burst < 1 {
		burst = 1
	}
	c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	return c
}

// SearchJQL runs a JQL search. JQL syntax is not validated here.
func (c *Client) SearchJQL(ctx context.Context, req SearchRequest) (SearchResponse, error) {
	var out SearchResponse
	if err := c.do(ctx, "search", http.MethodPost, "/rest/api/3/search/jql", req, &out); err != nil {
		return SearchResponse{}, err
	}
	return out, nil
}

// AddWorklog files a worklog on the issue.
func (c *Client) AddWorklog(ctx context.Context, issueKey string, req WorklogRequest) (WorklogResponse, error) {
	if strings.TrimSpace(issueKey) == "" {
		return WorklogResponse{}, errors.New("jira: issue key is required")
	}
	var out WorklogResponse
	path := fmt.Sprintf("/rest/api/3/issue/%s/worklog", url.PathEscape(issueKey))
	if err := c.do(ctx, "add worklog", http.MethodPost, path, req, &out); err != nil {
		return WorklogResponse{}, err
	}
	return out, nil
}

// DeleteWorklog removes a worklog from the issue.
func (c *Client) DeleteWorklog(ctx context.Context, issueKey, worklogID string) error {
	if strings.TrimSpace(issueKey) == "" || strings.TrimSpace(worklogID) == "" {
		return errors.New("jira: issue key and worklog id are required")
	}
	path := fmt.Sprintf("/rest/api/3/issue/%s/worklog/%s", url.PathEscape(issueKey), url.PathEscape(worklogID))
	return c.do(ctx, "delete worklog", http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, op, method, path string, in, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("jira %s: %w", op, err)
		}
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	cred := base64.StdEncoding.EncodeToString([]byte(c.email + ":" + c.token))
	req.Header.Set("Authorization", "Basic "+cred)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("jira %s: %w", op, err)
	}
	defer resp.Body.Close()

	rb, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read jira %s response: %w", op, err)
	}
	if resp.StatusCode >= 300 {
		return &APIError{Op: op, StatusCode: resp.StatusCode, Body: preview(string(rb), 600)}
	}
	if out == nil || len(bytes.TrimSpace(rb)) == 0 {
		return nil
	}
	if err := json.Unmarshal(rb, out); err != nil {
		return fmt.Errorf("failed to unmarshal jira %s response: %w", op, err)
	}
	return nil
}

func preview(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
