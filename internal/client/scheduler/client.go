package scheduler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	go_json "github.com/goccy/go-json"

	"github.com/tecpap/lineview/internal/xhttp"
	"github.com/tecpap/lineview/internal/xslog"
)

// Client is the typed transport to the scheduler backend. Each call is a
// single attempt: no retries, no backoff, no caching.
type Client struct {
	Engine     EngineService
	Realtime   RealtimeService
	Events     EventsService
	WorkOrders WorkOrderService
	Plan       PlanService

	baseURL    string
	httpClient *http.Client
	headers    http.Header
	logger     *slog.Logger
}

func New(baseURL string, opts ...Option) *Client {
	cfg := &clientConfig{
		headers: http.Header{},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = xhttp.NewHTTPClient(xhttp.WithTimeout(cfg.timeout))
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		headers:    cfg.headers,
		logger:     cfg.logger,
	}

	c.Engine = &engineService{client: c}
	c.Realtime = &realtimeService{client: c}
	c.Events = &eventsService{client: c}
	c.WorkOrders = &workOrderService{client: c}
	c.Plan = &planService{client: c}

	return c
}

type clientConfig struct {
	httpClient *http.Client
	headers    http.Header
	logger     *slog.Logger
	timeout    time.Duration
}

type Option func(*clientConfig)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(cfg *clientConfig) { cfg.httpClient = httpClient }
}

// WithHeader sets a default header sent on every request. Headers set here
// win over the ones the client would inject itself.
func WithHeader(key, value string) Option {
	return func(cfg *clientConfig) { cfg.headers.Set(key, value) }
}

func WithLogger(logger *slog.Logger) Option {
	return func(cfg *clientConfig) { cfg.logger = logger }
}

func WithTimeout(d time.Duration) Option {
	return func(cfg *clientConfig) { cfg.timeout = d }
}

// do issues one request and normalizes every failure into *APIError.
// A JSON content type on the response decodes into result; any other
// content type is returned as raw text through a *string result.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, result any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		buf, err := go_json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	for key, values := range c.headers {
		for _, value := range values {
			req.Header.Set(key, value)
		}
	}
	if body != nil && req.Header.Get(xhttp.ContentType) == "" {
		req.Header.Set(xhttp.ContentType, xhttp.ApplicationJSON)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := parseAPIError(resp)
		c.logger.DebugContext(ctx, "request failed",
			xslog.URL(u),
			xslog.HTTPStatus(apiErr.Status))
		return apiErr
	}

	if result == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportError(err)
	}

	if !xhttp.IsJSONContentType(resp.Header.Get(xhttp.ContentType)) {
		raw, ok := result.(*string)
		if !ok {
			return fmt.Errorf("unexpected content type %q for %s", resp.Header.Get(xhttp.ContentType), path)
		}
		*raw = string(respBody)
		return nil
	}

	if err := go_json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("decoding response: %w\nbody: %s", err, string(respBody))
	}

	return nil
}
