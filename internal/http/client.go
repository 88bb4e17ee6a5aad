// Package http is the LiteGraph transport: a retrying JSON HTTP client that
// injects credentials and maps error responses to typed errors.
package http

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
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/fivetwenty-io/litegraph/internal/auth"
	"github.com/fivetwenty-io/litegraph/internal/constants"
	"github.com/fivetwenty-io/litegraph/pkg/litegraph"
)

const tracerName = "github.com/fivetwenty-io/litegraph/internal/http"

// Client is a retrying HTTP client bound to one LiteGraph endpoint.
type Client struct {
	baseURL      string
	tokenManager auth.TokenManager
	logger       litegraph.Logger
	debug        bool
	userAgent    string

	timeout    time.Duration
	maxRetries int
	retryWait  time.Duration

	metrics *Metrics
	tracer  trace.Tracer

	// transport is the connection pool shared by every retrying client.
	transport http.RoundTripper
	// clients holds one retrying client per attempt timeout.
	clients sync.Map
	closed  atomic.Bool
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger litegraph.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug logs every request and response at debug level.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout bounds each attempt.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithRetryConfig sets the total number of attempts for connection failures
// and the fixed wait between them.
func WithRetryConfig(maxRetries int, wait time.Duration) Option {
	return func(c *Client) {
		c.maxRetries = maxRetries
		c.retryWait = wait
	}
}

// WithMetrics records request metrics.
func WithMetrics(metrics *Metrics) Option {
	return func(c *Client) {
		c.metrics = metrics
	}
}

// WithTracerProvider opens one client span per logical request.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) {
		if tp != nil {
			c.tracer = tp.Tracer(tracerName)
		}
	}
}

// Request is a single logical request.
type Request struct {
	Method string
	// Path is relative to the base URL and may already carry a query.
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
	// Timeout overrides the per-attempt timeout when positive.
	Timeout time.Duration
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}

// Value returns the decoded JSON body, the raw bytes when the body is not
// JSON, or nil when it is empty.
func (r *Response) Value() interface{} {
	if r == nil || len(bytes.TrimSpace(r.Body)) == 0 {
		return nil
	}

	var v interface{}

	err := json.Unmarshal(r.Body, &v)
	if err != nil {
		return r.Body
	}

	return v
}

// Empty reports whether the body is empty or a JSON null.
func (r *Response) Empty() bool {
	if r == nil {
		return true
	}

	body := bytes.TrimSpace(r.Body)

	return len(body) == 0 || bytes.Equal(body, []byte("null"))
}

// NewClient creates a client for baseURL. tokenManager may be nil.
func NewClient(baseURL string, tokenManager auth.TokenManager, opts ...Option) *Client {
	c := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		tokenManager: tokenManager,
		timeout:      constants.DefaultHTTPTimeout,
		maxRetries:   constants.DefaultMaxRetries,
		tracer:       noop.NewTracerProvider().Tracer(tracerName),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.maxRetries < 1 {
		c.maxRetries = 1
	}

	c.transport = retryablehttp.NewClient().HTTPClient.Transport

	return c
}

// Close releases idle pooled connections. Later requests fail with
// litegraph.ErrClientClosed. Close is idempotent.
func (c *Client) Close() error {
	if c.closed.Swap(true) {
		return nil
	}

	c.clients.Range(func(_, value interface{}) bool {
		rc, ok := value.(*retryablehttp.Client)
		if ok {
			rc.HTTPClient.CloseIdleConnections()
		}

		return true
	})

	if t, ok := c.transport.(interface{ CloseIdleConnections() }); ok {
		t.CloseIdleConnections()
	}

	return nil
}

// Closed reports whether Close was called.
func (c *Client) Closed() bool {
	return c.closed.Load()
}

// Do sends req. Connection failures are retried up to the configured number
// of attempts; HTTP error statuses are returned at once as typed errors
// together with the response.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if c.closed.Load() {
		return nil, litegraph.ErrClientClosed
	}

	fullURL := c.buildURL(req.Path, req.Query)

	ctx, span := c.tracer.Start(ctx, "litegraph "+req.Method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", req.Method),
			attribute.String("url.full", fullURL),
		),
	)
	defer span.End()

	start := time.Now()

	resp, err := c.do(ctx, req, fullURL)

	status := 0
	if resp != nil {
		status = resp.StatusCode
		span.SetAttributes(attribute.Int("http.response.status_code", status))
	}

	c.metrics.observe(req.Method, status, time.Since(start))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return resp, err
}

func (c *Client) do(ctx context.Context, req *Request, fullURL string) (*Response, error) {
	body, err := encodeBody(req.Body)
	if err != nil {
		return nil, err
	}

	var rawBody interface{}
	if body != nil {
		rawBody = body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, rawBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	err = c.setHeaders(ctx, httpReq.Header, req.Headers)
	if err != nil {
		return nil, err
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	start := time.Now()

	httpResp, err := c.retryingClient(req.Timeout).Do(httpReq)
	if err != nil {
		var transportErr *litegraph.TransportError
		if !errors.As(err, &transportErr) {
			// Cancelled while waiting between attempts.
			err = &litegraph.TransportError{Err: err}
		}

		if c.logger != nil {
			c.logger.Error("request failed", map[string]interface{}{
				"method": req.Method,
				"url":    fullURL,
				"error":  err.Error(),
			})
		}

		return nil, err
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &litegraph.TransportError{Attempts: 1, Err: fmt.Errorf("reading response body: %w", err)}
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Body:       respBody,
		Headers:    httpResp.Header,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status":   httpResp.StatusCode,
			"duration": time.Since(start).String(),
			"bytes":    len(respBody),
		})
	}

	if httpResp.StatusCode < http.StatusOK || httpResp.StatusCode >= http.StatusMultipleChoices {
		return resp, errorFromResponse(httpResp.StatusCode, httpResp.Header, respBody)
	}

	return resp, nil
}

// Get sends a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Head sends a HEAD request.
func (c *Client) Head(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodHead, Path: path})
}

// Post sends a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put sends a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch sends a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete sends a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

func (c *Client) buildURL(path string, query url.Values) string {
	full := c.baseURL + "/" + strings.TrimPrefix(path, "/")

	if len(query) == 0 {
		return full
	}

	sep := "?"
	if strings.Contains(full, "?") {
		sep = "&"
	}

	return full + sep + query.Encode()
}

func (c *Client) setHeaders(ctx context.Context, header http.Header, extra map[string]string) error {
	header.Set(constants.HeaderContentType, constants.ContentTypeJSON)
	header.Set("Accept", constants.ContentTypeJSON)

	if c.userAgent != "" {
		header.Set(constants.HeaderUserAgent, c.userAgent)
	}

	if c.tokenManager != nil {
		token, err := c.tokenManager.GetToken(ctx)
		if err != nil {
			return fmt.Errorf("getting access token: %w", err)
		}

		if token != "" {
			header.Set(constants.HeaderAuthorization, "Bearer "+token)
		}
	}

	for k, v := range extra {
		header.Set(k, v)
	}

	return nil
}

func (c *Client) retryingClient(timeout time.Duration) *retryablehttp.Client {
	if timeout <= 0 {
		timeout = c.timeout
	}

	if rc, ok := c.clients.Load(timeout); ok {
		return rc.(*retryablehttp.Client) //nolint:forcetypeassert // only *retryablehttp.Client is stored
	}

	rc, _ := c.clients.LoadOrStore(timeout, c.newRetryingClient(timeout))

	return rc.(*retryablehttp.Client) //nolint:forcetypeassert // only *retryablehttp.Client is stored
}

func (c *Client) newRetryingClient(timeout time.Duration) *retryablehttp.Client {
	rc := retryablehttp.NewClient()
	rc.HTTPClient = &http.Client{
		Transport: c.transport,
		Timeout:   timeout,
	}
	rc.RetryMax = c.maxRetries - 1
	rc.RetryWaitMin = c.retryWait
	rc.RetryWaitMax = c.retryWait
	rc.Backoff = fixedBackoff
	rc.CheckRetry = retryConnectionErrors
	rc.ErrorHandler = exhaustedHandler
	rc.RequestLogHook = c.attemptHook
	rc.Logger = nil

	if c.logger != nil {
		rc.Logger = &leveledLogger{logger: c.logger}
	}

	return rc
}

// attemptHook runs before every attempt; attempt is zero-based.
func (c *Client) attemptHook(_ retryablehttp.Logger, req *http.Request, attempt int) {
	c.metrics.attempt(req.Method)

	if attempt > 0 && c.logger != nil {
		c.logger.Warn("retrying request", map[string]interface{}{
			"method":  req.Method,
			"url":     req.URL.Redacted(),
			"attempt": attempt + 1,
			"max":     c.maxRetries,
		})
	}
}

// retryConnectionErrors retries only when no HTTP response was received.
func retryConnectionErrors(ctx context.Context, _ *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	return err != nil, nil
}

func fixedBackoff(wait, _ time.Duration, _ int, _ *http.Response) time.Duration {
	return wait
}

// exhaustedHandler is called by retryablehttp when no usable response was
// obtained.
func exhaustedHandler(resp *http.Response, err error, numTries int) (*http.Response, error) {
	if resp != nil {
		_ = resp.Body.Close()
	}

	return nil, &litegraph.TransportError{Attempts: numTries, Err: err}
}

func encodeBody(body interface{}) ([]byte, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return b, nil
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		return data, nil
	}
}

// errorFromResponse maps an error status to a typed error. JSON envelopes
// become *litegraph.APIError; anything else is a *litegraph.TransportError
// carrying the raw body.
func errorFromResponse(status int, header http.Header, body []byte) error {
	mediaType, _, _ := mime.ParseMediaType(header.Get(constants.HeaderContentType))
	if mediaType != constants.ContentTypeJSON {
		return &litegraph.TransportError{StatusCode: status, Body: body}
	}

	errResp, err := litegraph.ParseErrorResponse(body)
	if err != nil {
		return litegraph.NewAPIError(status, &litegraph.ErrorResponse{
			Description: strings.TrimSpace(string(body)),
		})
	}

	return litegraph.NewAPIError(status, errResp)
}
