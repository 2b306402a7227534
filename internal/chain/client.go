package chain

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

	"go.uber.org/ratelimit"
)

const (
	defaultTimeout      = 10 * time.Second
	defaultMaxBodyBytes = 32 << 20
	errorSnippetBytes   = 512
)

type (
	// RequestMetrics records metrics for upstream requests.
	RequestMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// ClientConfig describes one upstream endpoint.
type ClientConfig struct {
	Provider     string
	BaseURL      string
	Timeout      time.Duration
	RPS          int
	Headers      map[string]string
	MaxBodyBytes int64
	HTTPClient   *http.Client
}

// JSONClient performs JSON requests against one provider and decodes the raw payload.
// It is safe for concurrent use.
type JSONClient struct {
	provider   string
	baseURL    *url.URL
	httpClient *http.Client
	headers    http.Header
	limiter    ratelimit.Limiter
	metrics    RequestMetrics
	maxBody    int64
}

// NewJSONClient constructs a JSONClient.
func NewJSONClient(cfg ClientConfig, metrics RequestMetrics) (*JSONClient, error) {
	if cfg.Provider == "" {
		return nil, errors.New("provider name is required")
	}
	if metrics == nil {
		return nil, errors.New("request metrics is required")
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("base url scheme %q not supported", base.Scheme)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	limiter := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		limiter = ratelimit.New(cfg.RPS)
	}
	headers := http.Header{}
	headers.Set("Accept", "application/json")
	for k, v := range cfg.Headers {
		headers.Set(k, v)
	}
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}

	return &JSONClient{
		provider:   cfg.Provider,
		baseURL:    base,
		httpClient: httpClient,
		headers:    headers,
		limiter:    limiter,
		metrics:    metrics,
		maxBody:    maxBody,
	}, nil
}

// Provider returns the configured provider name.
func (c *JSONClient) Provider() string {
	return c.provider
}

// Get issues a GET request for path with query and decodes the body into out.
func (c *JSONClient) Get(ctx context.Context, operation, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path, query), nil)
	if err != nil {
		return c.networkError(operation, 0, err)
	}
	return c.do(operation, req, out)
}

// Post issues a POST request with a JSON body and decodes the response into out.
func (c *JSONClient) Post(ctx context.Context, operation, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", operation, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path, nil), bytes.NewReader(payload))
	if err != nil {
		return c.networkError(operation, 0, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(operation, req, out)
}

func (c *JSONClient) do(operation string, req *http.Request, out any) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe(operation, err, started)
	}()

	for k, values := range c.headers {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}

	c.limiter.Take()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.networkError(operation, 0, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, errorSnippetBytes))
		return c.networkError(operation, resp.StatusCode, fmt.Errorf("unexpected status: %s", strings.TrimSpace(string(snippet))))
	}

	dec := json.NewDecoder(io.LimitReader(resp.Body, c.maxBody))
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return c.networkError(operation, resp.StatusCode, fmt.Errorf("decode body: %w", err))
	}
	return nil
}

func (c *JSONClient) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	if path != "" {
		u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.TrimLeft(path, "/")
		u.RawPath = ""
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

func (c *JSONClient) networkError(operation string, status int, err error) error {
	return &NetworkError{Provider: c.provider, Operation: operation, StatusCode: status, Err: err}
}
