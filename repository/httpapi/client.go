// Package httpapi implements the domain repository interfaces against the
// presence backend's HTTP API. All persistence, authentication and business
// computation live behind that API; this package only speaks its wire
// contract.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/presenza-app/presence-client-go/config"
	"github.com/presenza-app/presence-client-go/pkg/token"
)

// ErrSessionExpired means the held access token lapsed; the caller must log
// in again before issuing further requests.
var ErrSessionExpired = errors.New("session has expired, log in again")

type Client struct {
	baseURL string
	http    *http.Client
	token   func() string
	session *token.Session
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, mainly for tests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTokenSource supplies the bearer token for every request. The function
// is consulted per request so a refreshed login takes effect immediately.
func WithTokenSource(fn func() string) Option {
	return func(c *Client) { c.token = fn }
}

// WithToken fixes a static bearer token.
func WithToken(tok string) Option {
	return func(c *Client) { c.token = func() string { return tok } }
}

// WithSession authenticates every request with the session's access token
// and blocks requests once it expires, so an expired login surfaces as
// ErrSessionExpired instead of a backend 401.
func WithSession(s token.Session) Option {
	return func(c *Client) {
		c.session = &s
		c.token = func() string { return s.Raw }
	}
}

func New(cfg config.APIConfig, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		token:   func() string { return "" },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is a non-2xx backend response. Detail carries the backend's own
// message when it sent one.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("backend returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Detail)
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	return c.doJSON(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	contentType := ""
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
		contentType = "application/json"
	}

	resp, err := c.do(ctx, method, path, query, reader, contentType)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}

func (c *Client) postForm(ctx context.Context, path string, form url.Values, out any) error {
	resp, err := c.do(ctx, http.MethodPost, path, nil,
		strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}

// downloadResult is a raw file response: bytes plus the metadata needed to
// save it under a sensible name.
type downloadResult struct {
	data        []byte
	contentType string
	filename    string
}

func (c *Client) download(ctx context.Context, path string) (downloadResult, error) {
	resp, err := c.do(ctx, http.MethodGet, path, nil, nil, "")
	if err != nil {
		return downloadResult{}, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return downloadResult{}, err
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return downloadResult{}, fmt.Errorf("failed to read download from %s: %w", path, err)
	}

	res := downloadResult{
		data:        data,
		contentType: resp.Header.Get("Content-Type"),
	}
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			res.filename = params["filename"]
		}
	}
	return res, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*http.Response, error) {
	if c.session != nil && c.session.Expired(time.Now()) {
		return nil, ErrSessionExpired
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s %s: %w", method, path, err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s %s failed: %w", method, path, err)
	}
	return resp, nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode < 400 {
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode}

	// FastAPI-style error bodies carry a "detail" field.
	var payload struct {
		Detail string `json:"detail"`
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 8<<10))
	if err == nil {
		if json.Unmarshal(raw, &payload) == nil && payload.Detail != "" {
			apiErr.Detail = payload.Detail
		} else {
			apiErr.Detail = strings.TrimSpace(string(raw))
		}
	}
	return apiErr
}
