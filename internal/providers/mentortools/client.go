package mentortools

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"mentortools-mcp/internal/httpx"
	"mentortools-mcp/internal/providers"
)

const (
	DefaultBaseURL = "https://app.mentortools.com/public_api"
	DefaultTimeout = 30 * time.Second

	contentTypeJSON  = "application/json"
	defaultUserAgent = "mentortools-mcp/1.0.0"
)

// ErrNotInitialized is returned by every call made on a client that was never
// configured with a credential.
var ErrNotInitialized = errors.New("API client not initialized. Please set MENTORTOOLS_API_KEY environment variable.")

type Options struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	// HTTPClient replaces the default traced client; its own timeout applies.
	HTTPClient *http.Client
	UserAgent  string
	Logger     logr.Logger
}

// Client is the session with the Mentortools public API. It is read-only
// after New and safe for concurrent use.
type Client struct {
	baseURL   string
	apiKey    string
	userAgent string
	http      *http.Client
	log       logr.Logger
}

var _ providers.LMS = (*Client)(nil)

func New(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, ErrNotInitialized
	}

	c := &Client{
		baseURL:   strings.TrimRight(opts.BaseURL, "/"),
		apiKey:    opts.APIKey,
		userAgent: opts.UserAgent,
		http:      opts.HTTPClient,
		log:       opts.Logger,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.userAgent == "" {
		c.userAgent = defaultUserAgent
	}
	if c.http == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		c.http = &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	return c, nil
}

func (c *Client) BaseURL() string {
	if c == nil {
		return ""
	}
	return c.baseURL
}

func (c *Client) ready() error {
	if c == nil || c.http == nil || c.apiKey == "" {
		return ErrNotInitialized
	}
	return nil
}

// Execute performs one request and returns the envelope's result.
func (c *Client) Execute(ctx context.Context, req providers.Request) (json.RawMessage, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}

	var payload []byte
	if req.Body != nil {
		b, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("mentortools: encode body: %w", err)
		}
		payload = b
	}

	target := req.Target(c.baseURL)
	return c.roundTrip(ctx, req.Method, req.Endpoint, fallbackRequest, func(ctx context.Context) (*http.Request, error) {
		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}
		r, err := http.NewRequestWithContext(ctx, req.Method, target, body)
		if err != nil {
			return nil, err
		}
		if payload != nil {
			r.Header.Set("Content-Type", contentTypeJSON)
		}
		return r, nil
	})
}

func (c *Client) roundTrip(
	ctx context.Context,
	method, endpoint, fallback string,
	build func(context.Context) (*http.Request, error),
) (json.RawMessage, error) {
	requestID := uuid.NewString()
	start := time.Now()

	resp, body, err := httpx.Do(ctx, c.http, func(ctx context.Context) (*http.Request, error) {
		r, err := build(ctx)
		if err != nil {
			return nil, err
		}
		r.Header.Set("Accept", contentTypeJSON)
		r.Header.Set("Accept-Encoding", httpx.AcceptEncoding)
		r.Header.Set("Authorization", "Bearer "+c.apiKey)
		r.Header.Set("User-Agent", c.userAgent)
		r.Header.Set("X-Request-Id", requestID)
		return r, nil
	})

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	c.log.V(1).Info("mentortools request",
		"method", method,
		"endpoint", endpoint,
		"status", status,
		"duration", time.Since(start),
		"requestId", requestID,
	)

	if err != nil {
		var herr *httpx.HTTPError
		if errors.As(err, &herr) {
			return nil, newAPIError(herr)
		}
		return nil, fmt.Errorf("mentortools: %s %s: %w", method, endpoint, err)
	}
	return unwrap(body, fallback)
}

// DecodeResult interprets an unwrapped result as T.
func DecodeResult[T any](raw json.RawMessage) (T, error) {
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("mentortools: decode result: %w", err)
	}
	return out, nil
}
