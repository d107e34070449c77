package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/findash/internal/common"
	"github.com/dmitrijs2005/findash/internal/logging"
)

// maxErrorBody caps how much of an error response is read.
const maxErrorBody = 1 << 20

// Doer sends HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Credentials is the durable credential record as seen by the client: the
// token is read on every request and cleared on 401.
type Credentials interface {
	Token(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

// RequestInterceptor may modify an outgoing request. An error aborts the call.
type RequestInterceptor func(req *http.Request) error

// ResponseInterceptor observes every completed call. resp is nil when no
// response was received; err is nil on success. The returned error replaces
// err for the caller.
type ResponseInterceptor func(req *http.Request, resp *http.Response, err error) error

type HTTPClient struct {
	baseURL *url.URL
	doer    Doer
	timeout time.Duration
	log     logging.Logger
	creds   Credentials

	requestInterceptors  []RequestInterceptor
	responseInterceptors []ResponseInterceptor

	mu          sync.RWMutex
	nextSubID   int
	invalidated map[int]func(ctx context.Context)
}

type Option func(*HTTPClient)

// WithHTTPDoer replaces the default *http.Client.
func WithHTTPDoer(d Doer) Option {
	return func(c *HTTPClient) { c.doer = d }
}

// WithTimeout sets the timeout of the default *http.Client. Zero means none.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.timeout = d }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) {
		if l != nil {
			c.log = l
		}
	}
}

// WithCredentials installs the bearer-token request interceptor and the
// unauthorized response interceptor backed by creds.
func WithCredentials(creds Credentials) Option {
	return func(c *HTTPClient) { c.creds = creds }
}

// WithRequestInterceptor appends a request interceptor after the built-in ones.
func WithRequestInterceptor(ri RequestInterceptor) Option {
	return func(c *HTTPClient) { c.requestInterceptors = append(c.requestInterceptors, ri) }
}

// WithResponseInterceptor appends a response interceptor after the built-in ones.
func WithResponseInterceptor(ri ResponseInterceptor) Option {
	return func(c *HTTPClient) { c.responseInterceptors = append(c.responseInterceptors, ri) }
}

// New creates the primary API client rooted at baseURL.
func New(baseURL string, opts ...Option) (*HTTPClient, error) {
	c, err := newHTTPClient(baseURL, opts...)
	if err != nil {
		return nil, err
	}

	builtinReq := []RequestInterceptor{requestIDInterceptor}
	var builtinResp []ResponseInterceptor
	if c.creds != nil {
		builtinReq = append([]RequestInterceptor{bearerTokenInterceptor(c.creds)}, builtinReq...)
		builtinResp = append(builtinResp, c.unauthorizedInterceptor(c.creds))
	}
	c.requestInterceptors = append(builtinReq, c.requestInterceptors...)
	c.responseInterceptors = append(builtinResp, c.responseInterceptors...)
	return c, nil
}

func newHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: host is required", baseURL)
	}

	c := &HTTPClient{
		baseURL:     u,
		log:         logging.Nop(),
		invalidated: make(map[int]func(ctx context.Context)),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.doer == nil {
		c.doer = &http.Client{Timeout: c.timeout}
	}
	return c, nil
}

// BaseURL returns the client's base URL.
func (c *HTTPClient) BaseURL() string { return c.baseURL.String() }

// OnSessionInvalidated registers fn to run whenever a call is rejected with
// 401. fn runs on the goroutine of the failing call. The returned function
// removes the subscription.
func (c *HTTPClient) OnSessionInvalidated(fn func(ctx context.Context)) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextSubID
	c.nextSubID++
	c.invalidated[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.invalidated, id)
		c.mu.Unlock()
	}
}

func (c *HTTPClient) notifyInvalidated(ctx context.Context) {
	c.mu.RLock()
	subs := make([]func(context.Context), 0, len(c.invalidated))
	for _, fn := range c.invalidated {
		subs = append(subs, fn)
	}
	c.mu.RUnlock()

	for _, fn := range subs {
		fn(ctx)
	}
}

type callOptions struct {
	// bypassResponse skips the response interceptor chain.
	bypassResponse bool
}

// endpoint resolves path segments against the base URL. Segments are
// escaped individually, so "a/b" stays one segment.
func (c *HTTPClient) endpoint(segments ...string) string {
	u := *c.baseURL

	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}

	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.Join(segments, "/")
	u.RawPath = strings.TrimRight(c.baseURL.EscapedPath(), "/") + "/" + strings.Join(escaped, "/")
	return u.String()
}

// send performs one call: in is JSON-encoded when non-nil, and a 2xx body is
// decoded into out when out is non-nil.
func (c *HTTPClient) send(ctx context.Context, method string, in, out any, co callOptions, segments ...string) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return NewError(KindTransport, "encode request body", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(segments...), body)
	if err != nil {
		return NewError(KindTransport, "build request", err)
	}
	req.Header.Set("Accept", common.ContentTypeJSON)
	if in != nil {
		req.Header.Set("Content-Type", common.ContentTypeJSON)
	}

	for _, ri := range c.requestInterceptors {
		if err := ri(req); err != nil {
			return NewError(KindTransport, "prepare request", err)
		}
	}

	start := time.Now()
	resp, callErr := c.roundTrip(req, out)

	if !co.bypassResponse {
		for _, ri := range c.responseInterceptors {
			callErr = ri(req, resp, callErr)
		}
	}

	c.log.Debug(ctx, "api call",
		"method", method,
		"path", req.URL.Path,
		"status", statusOf(resp),
		"request_id", req.Header.Get(common.RequestIDHeader),
		"duration", time.Since(start),
		"error", callErr,
	)
	return callErr
}

func (c *HTTPClient) roundTrip(req *http.Request, out any) (*http.Response, error) {
	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, transportError(err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return resp, statusError(resp.StatusCode, b)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return resp, nil
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, transportError(err)
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return resp, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return resp, &APIError{Kind: KindServer, StatusCode: resp.StatusCode, Message: "malformed response body", Err: err}
	}
	return resp, nil
}

func statusOf(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}

// call is the generic verb+path wrapper used by the resource groups.
func call[T any](ctx context.Context, c *HTTPClient, method string, in any, segments ...string) (T, error) {
	var out T
	err := c.send(ctx, method, in, &out, callOptions{}, segments...)
	return out, err
}
