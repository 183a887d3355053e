package api

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

	"github.com/google/uuid"

	"github.com/dmitrijs2005/taskboard/internal/logging"
)

// TokenReader supplies the persisted bearer credential, if any. An empty
// string means no credential is stored. The API layer only ever reads the
// credential; writing and clearing belong to the session manager.
type TokenReader interface {
	Read(ctx context.Context) (string, error)
}

// Options describes a single request. The zero value issues an
// authenticated GET with no body.
type Options struct {
	// Method defaults to GET.
	Method string

	// Body is the request payload. url.Values, []byte, string and
	// io.Reader pass through unchanged (url.Values form-encoded); any
	// other non-nil value is JSON-encoded with Content-Type set.
	Body any

	// Header entries override computed defaults.
	Header http.Header

	// Anonymous skips credential lookup and bearer injection.
	Anonymous bool

	// Token overrides the stored credential for this call only.
	Token string

	// Fallback is the user-facing error message when the backend gives
	// none.
	Fallback string
}

// Client is the single chokepoint between this process and the backend.
// Every response is normalized: 2xx yields the (unwrapped) payload, anything
// else a *Error.
type Client struct {
	baseURL string
	httpc   *http.Client
	tokens  TokenReader
	log     logging.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the underlying transport (mainly for tests and
// custom TLS setups).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New creates a Client rooted at baseURL. Trailing slashes are trimmed so
// request paths always start with exactly one "/".
func New(baseURL string, tokens TokenReader, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
		tokens:  tokens,
		log:     logging.NewSlogLogger(slog.Default()),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the normalized server root the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// Request performs one round-trip and returns the raw response payload.
//
// An authenticated call with no credential available fails with
// ErrAuthRequired before any network I/O. A transport failure is reported
// as ErrUnreachable with status 0; the underlying error never escapes.
// A 2xx response with no decodable JSON body yields (nil, nil).
func (c *Client) Request(ctx context.Context, path string, opts Options) (json.RawMessage, error) {
	fallback := opts.Fallback
	if fallback == "" {
		fallback = "Request failed"
	}

	token := opts.Token
	if !opts.Anonymous && token == "" && c.tokens != nil {
		stored, err := c.tokens.Read(ctx)
		if err != nil {
			c.log.Warn(ctx, "token read failed", "error", err)
		} else {
			token = stored
		}
	}
	if !opts.Anonymous && token == "" {
		return nil, newAuthRequiredError()
	}

	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	header := make(http.Header, len(opts.Header)+3)
	for k, vs := range opts.Header {
		header[k] = append([]string(nil), vs...)
	}

	var body io.Reader
	switch b := opts.Body.(type) {
	case nil:
	case url.Values:
		body = strings.NewReader(b.Encode())
		if header.Get("Content-Type") == "" {
			header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	case []byte:
		body = bytes.NewReader(b)
	case string:
		body = strings.NewReader(b)
	case io.Reader:
		body = b
	default:
		payload, err := json.Marshal(b)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
		header.Set("Content-Type", "application/json")
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	for k, vs := range header {
		req.Header[k] = vs
	}
	if !opts.Anonymous {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Warn(ctx, "transport failure", "method", method, "path", path, "error", err)
		return nil, newUnreachableError(c.baseURL)
	}
	defer resp.Body.Close()

	// Only attempt JSON when the server says so, and even then keep the
	// decode best-effort: a malformed body means "no payload".
	var payload json.RawMessage
	if ct := resp.Header.Get("Content-Type"); strings.Contains(ct, "application/json") {
		raw, readErr := io.ReadAll(resp.Body)
		if readErr == nil && json.Valid(raw) {
			payload = raw
		}
	}

	c.log.Debug(ctx, "request finished", "method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errorFromBody(payload, resp.StatusCode, fallback)
	}

	if payload == nil {
		return nil, nil
	}
	return unwrapPayload(payload), nil
}

// Do performs a request and decodes the unwrapped payload into T. A
// payload-less success leaves T at its zero value.
func Do[T any](ctx context.Context, c *Client, path string, opts Options) (T, error) {
	var out T
	raw, err := c.Request(ctx, path, opts)
	if err != nil || raw == nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode response payload: %w", err)
	}
	return out, nil
}
