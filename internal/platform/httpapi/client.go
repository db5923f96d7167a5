// Package httpapi is the REST client every remote adapter goes through. It
// attaches the bearer credential, decodes JSON bodies and normalizes failures.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"sabalabor/internal/platform/id"
)

const RequestIDHeader = "X-Request-ID"

type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
	ids     id.Generator

	mu             sync.RWMutex
	bearer         string
	onUnauthorized func(rejected string)
}

func New(baseURL string, timeout time.Duration, logger *slog.Logger, ids id.Generator) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
		ids:     ids,
	}
}

func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) SetBearer(token string) {
	c.mu.Lock()
	c.bearer = token
	c.mu.Unlock()
}

func (c *Client) ClearBearer() {
	c.SetBearer("")
}

func (c *Client) Bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.bearer
}

// OnUnauthorized registers fn to run whenever a request that carried a bearer
// credential comes back 401. fn receives the credential that was rejected.
func (c *Client) OnUnauthorized(fn func(rejected string)) {
	c.mu.Lock()
	c.onUnauthorized = fn
	c.mu.Unlock()
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil, out)
}

// PostAnonymous posts without the bearer credential. A 401 on such a request
// never reaches the OnUnauthorized hook.
func (c *Client) PostAnonymous(ctx context.Context, path string, body, out any) error {
	return c.send(ctx, http.MethodPost, path, nil, body, out, false)
}

// Do sends one request. A nil out discards the response body.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	return c.send(ctx, method, path, query, body, out, true)
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, body, out any, authenticated bool) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	requestID := c.ids.New()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	bearer := ""
	if authenticated {
		bearer = c.Bearer()
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("api transport error", "method", method, "path", path, "request_id", requestID, "error", err)
		return &TransportError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Method: method, Path: path, Err: fmt.Errorf("read body: %w", err)}
	}
	c.logger.Debug("api request", "method", method, "path", path, "status", resp.StatusCode, "request_id", requestID)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newAPIError(resp.StatusCode, raw)
		c.logger.Warn("api error", "method", method, "path", path, "status", resp.StatusCode, "request_id", requestID, "payload", string(apiErr.Payload), "message", apiErr.Message)
		if resp.StatusCode == http.StatusUnauthorized && bearer != "" {
			c.unauthorized(bearer)
		}
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Client) unauthorized(rejected string) {
	c.mu.RLock()
	fn := c.onUnauthorized
	c.mu.RUnlock()
	if fn != nil {
		fn(rejected)
	}
}
