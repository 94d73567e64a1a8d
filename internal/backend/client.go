// Package backend is the typed client for the profile and recommendation
// backend. Every call hits one endpoint under the /api base path, unwraps
// the response envelope's data field and returns the decoded payload.
// There are no retries and no caching; callers get fresh data per call.
package backend

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
)

const (
	basePath       = "/api"
	defaultTimeout = 10 * time.Second
)

// HTTPClient interface for making HTTP requests (allows injection for testing).
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// RequestObserver receives one callback per backend round trip. status is 0
// when the request never produced a response.
type RequestObserver func(operation string, status int, elapsed time.Duration)

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBaseURL sets a custom base URL (useful for testing).
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithTimeout overrides the default per-request timeout. Only applies when
// the default HTTP client is in use.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if hc, ok := c.httpClient.(*http.Client); ok {
			hc.Timeout = d
		}
	}
}

// WithObserver registers a metrics callback invoked after every request.
func WithObserver(o RequestObserver) ClientOption {
	return func(c *Client) {
		c.observe = o
	}
}

// Client talks to the profile/recommendation backend.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	observe    RequestObserver
}

// NewClient creates a backend client rooted at baseURL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Healthcheck verifies the backend is reachable. Any HTTP response counts
// as reachable; only transport failures are reported.
func (c *Client) Healthcheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backend unreachable: %w", err)
	}
	resp.Body.Close()
	return nil
}

// get performs a GET against basePath+path, unwraps the envelope and
// decodes its data field into out.
func (c *Client) get(ctx context.Context, operation, path string, query url.Values, out any) error {
	u := c.baseURL + basePath + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", operation, err)
	}
	req.Header.Set("Accept", "application/json")
	return c.do(operation, req, out)
}

// post performs a POST with a JSON body and unwraps the envelope.
func (c *Client) post(ctx context.Context, operation, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%s: encode body: %w", operation, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+basePath+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%s: build request: %w", operation, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return c.do(operation, req, out)
}

func (c *Client) do(operation string, req *http.Request, out any) error {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.observe != nil {
			c.observe(operation, 0, time.Since(start))
		}
		return fmt.Errorf("%s: request failed: %w", operation, err)
	}
	defer resp.Body.Close()

	if c.observe != nil {
		c.observe(operation, resp.StatusCode, time.Since(start))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: read response: %w", operation, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.apiError(operation, resp.StatusCode, raw)
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("%s: parse response: %w", operation, err)
	}
	if envelope.Data == nil {
		return &RequestError{
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Message:    "response envelope has no data field",
		}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("%s: parse payload: %w", operation, err)
	}
	return nil
}

// apiError extracts the backend's error message from a non-2xx body.
func (c *Client) apiError(operation string, status int, body []byte) error {
	reqErr := &RequestError{Operation: operation, StatusCode: status}

	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil {
		if env.Error != nil {
			reqErr.Code = env.Error.Code
			reqErr.Message = env.Error.Message
		} else if env.Message != "" {
			reqErr.Message = env.Message
		}
	}
	return reqErr
}
