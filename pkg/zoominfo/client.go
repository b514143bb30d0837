// Package zoominfo is a thin client for the ZoomInfo REST API. It covers
// authentication plus the contact and company search endpoints: filter names
// are converted to their wire keys, nil filters are dropped, and response
// bodies are returned as decoded JSON with no schema applied.
package zoominfo

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/carlos-naranjo-aa/zoominfo-api-client/pkg/httpclient"
)

const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://api.zoominfo.com"

	defaultTimeout = 30 * time.Second

	authenticatePath  = "/authenticate"
	searchContactPath = "/search/contact"
	searchCompanyPath = "/search/company"
)

// Client talks to the ZoomInfo API on behalf of one credential pair. The
// bearer token is acquired lazily on the first authenticated call and reused
// until the client is discarded; the client never refreshes or clears it.
// A Client is safe for concurrent use.
type Client struct {
	baseURL  string
	username string
	password string
	http     *resty.Client
	log      Logger

	mu    sync.Mutex
	token string
}

// Option configures a Client during New.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Trailing slashes are trimmed.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if u := strings.TrimRight(strings.TrimSpace(baseURL), "/"); u != "" {
			c.baseURL = u
		}
	}
}

// WithHTTPClient injects a pre-configured transport. The client mutates its
// default headers once authenticated, so it must not be shared with callers
// that need different credentials.
func WithHTTPClient(hc *resty.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the transport timeout on whichever HTTP client the Client
// holds when the option runs. Options apply in order, so pass it after
// WithHTTPClient to affect an injected client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.http.SetTimeout(timeout)
		}
	}
}

// WithLogger attaches a logger for request-level diagnostics.
func WithLogger(log Logger) Option {
	return func(c *Client) {
		c.log = ensureLogger(log)
	}
}

// New builds a client for the given credentials.
func New(username, password string, opts ...Option) *Client {
	c := &Client{
		baseURL:  DefaultBaseURL,
		username: username,
		password: password,
		http:     httpclient.NewRestyHTTPClient(defaultTimeout),
		log:      noopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Authenticate exchanges the stored credentials for a JWT bearer token. The
// token is stored and attached as a default Authorization header on the
// underlying transport, so every subsequent request carries it. Callers
// normally never need this: search calls authenticate lazily on first use.
func (c *Client) Authenticate(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.authenticate(ctx)
}

// authenticate must be called with c.mu held.
func (c *Client) authenticate(ctx context.Context) (string, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"username": c.username, "password": c.password}).
		Post(c.baseURL + authenticatePath)
	if err != nil {
		return "", fmt.Errorf("authenticate: %w", err)
	}
	if resp.IsError() {
		return "", &AuthenticationError{StatusCode: resp.StatusCode(), Body: bodySnippet(resp.Body())}
	}

	var body struct {
		JWT string `json:"jwt"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return "", fmt.Errorf("decode authenticate response: %w", err)
	}
	if body.JWT == "" {
		return "", &MissingTokenError{}
	}

	c.token = body.JWT
	c.http.SetAuthToken(body.JWT)
	c.log.DebugObj("zoominfo authenticated", "auth_meta", map[string]any{
		"base_url": c.baseURL,
		"username": c.username,
	})
	return body.JWT, nil
}

// ensureToken authenticates once if no token is held yet. Concurrent callers
// racing on a fresh client serialize here, so only one authenticate request
// is issued.
func (c *Client) ensureToken(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token != "" {
		return nil
	}
	_, err := c.authenticate(ctx)
	return err
}

// SearchContacts runs a contact search and returns the decoded JSON response.
func (c *Client) SearchContacts(ctx context.Context, q ContactQuery) (any, error) {
	return c.post(ctx, searchContactPath, q.payload())
}

// SearchCompanies runs a company search and returns the decoded JSON response.
func (c *Client) SearchCompanies(ctx context.Context, q CompanyQuery) (any, error) {
	return c.post(ctx, searchCompanyPath, q.payload())
}

// post issues an authenticated JSON POST and decodes the response body. The
// result is an open-ended JSON value; callers own any shape assumptions.
func (c *Client) post(ctx context.Context, path string, body payload) (any, error) {
	if err := c.ensureToken(ctx); err != nil {
		return nil, err
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any(body)).
		Post(c.baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", path, err)
	}
	if resp.IsError() {
		return nil, &HTTPError{StatusCode: resp.StatusCode(), Body: bodySnippet(resp.Body())}
	}

	var out any
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", path, err)
	}
	c.log.DebugObj("zoominfo request completed", "request_meta", map[string]any{
		"path":    path,
		"filters": len(body),
	})
	return out, nil
}

// BaseURL returns the endpoint the client targets.
func (c *Client) BaseURL() string { return c.baseURL }
