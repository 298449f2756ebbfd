package argo

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultTimeout is the HTTP request timeout for list calls.
const DefaultTimeout = 30 * time.Second

// phaseLabel is the label the Argo server indexes workflow phase under.
const phaseLabel = "workflows.argoproj.io/phase"

// Client issues read requests against an Argo Workflows list endpoint.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
	log     *slog.Logger
}

// NewClient creates a client for the given list endpoint. token may be empty
// for unauthenticated access. logger must not be nil.
func NewClient(baseURL, token string, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpc:   &http.Client{Timeout: DefaultTimeout},
		log:     logger,
	}
}

// listURL builds the list endpoint URL with phase selector and limit.
func (c *Client) listURL(phase Phase, limit int) string {
	q := url.Values{}
	q.Set("listOptions.labelSelector", fmt.Sprintf("%s=%s", phaseLabel, phase))
	q.Set("listOptions.limit", strconv.Itoa(limit))
	return c.baseURL + "?" + q.Encode()
}

// ListWorkflows performs a single GET against the list endpoint and returns
// the workflow runs it reports. The call is never retried; any transport or
// HTTP-status failure is returned as a *FetchError. An empty result set is
// not an error.
func (c *Client) ListWorkflows(ctx context.Context, phase Phase, limit int) ([]WorkflowRun, error) {
	reqURL := c.listURL(phase, limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &FetchError{URL: reqURL, Message: "failed to create request", Cause: err}
	}
	// Accept-Encoding is left to the transport, which negotiates gzip and
	// decompresses transparently; setting it by hand would disable that.
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.log.Info("fetching workflows", "url", c.baseURL, "phase", string(phase), "limit", limit)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, &FetchError{URL: reqURL, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: reqURL, Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{
			URL:        reqURL,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("HTTP status %d", resp.StatusCode),
		}
	}

	runs, err := ParseWorkflowList(body, c.log)
	if err != nil {
		return nil, &FetchError{URL: reqURL, Message: "failed to decode response", Cause: err}
	}
	return runs, nil
}
