package voyp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/roivaz/voyp-mcp/internal/logging"
)

const DefaultBaseURL = "https://api.voyp.app/api/mcp/"

var ErrMissingAPIKey = errors.New("voyp: api key is required")

type Config struct {
	BaseURL string
	APIKey  string
	// Timeout bounds each request. Zero means no client-side timeout.
	Timeout time.Duration
	// Transport is the base round tripper under the bearer-token transport.
	// Defaults to http.DefaultTransport.
	Transport http.RoundTripper
	Logger    logging.Logger
}

// Client issues authenticated requests against the Voyp MCP API. It holds no
// mutable state and is safe for concurrent use.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	log     logging.Logger
}

func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}

	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, fmt.Errorf("parse base url: %q is not absolute", base)
	}

	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.APIKey, TokenType: "Bearer"})

	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Transport: &oauth2.Transport{Source: ts, Base: transport},
			Timeout:   cfg.Timeout,
		},
		log: cfg.Logger.WithName("voyp"),
	}, nil
}

// BaseURL returns the resolved API root.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Get fetches path relative to the base URL.
func (c *Client) Get(ctx context.Context, path string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

// Post sends body as JSON to path relative to the base URL.
func (c *Client) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode %s request: %w", path, err)
	}
	return c.do(ctx, http.MethodPost, path, payload)
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte) (json.RawMessage, error) {
	endpoint, err := c.baseURL.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("request failed", "method", method, "path", path, "elapsed", time.Since(start), "error", err.Error())
		return nil, &TransportError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: method, Path: path, Err: fmt.Errorf("read response body: %w", err)}
	}
	c.log.Debug("request completed", "method", method, "path", path, "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPStatusError{Method: method, Path: path, StatusCode: resp.StatusCode, Body: data}
	}
	return normalizeBody(data)
}

// normalizeBody returns compact JSON. Bodies that are not JSON are returned as
// a JSON string so callers always receive a valid document.
func normalizeBody(data []byte) (json.RawMessage, error) {
	if json.Valid(data) {
		var buf bytes.Buffer
		if err := json.Compact(&buf, data); err != nil {
			return nil, fmt.Errorf("compact response body: %w", err)
		}
		return buf.Bytes(), nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(string(data)); err != nil {
		return nil, fmt.Errorf("encode response body: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
