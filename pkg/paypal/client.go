// Package paypal holds the business logic of every toolkit operation: it
// shapes requests for the PayPal REST API, sends them through an injected
// Transport and classifies the responses.
package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/harun/paypal-agent-toolkit/internal/tracing"
)

const userAgent = "PayPal Agent Toolkit Go"

// ErrNoTransport is returned when a call needs the network but no Transport
// was configured.
var ErrNoTransport = errors.New("paypal transport is not configured")

// Client sends operation requests through a Transport. It caches the access
// token for its lifetime; concurrent first calls may each fetch one.
type Client struct {
	transport Transport
	execCtx   ExecutionContext
	log       zerolog.Logger

	now   func() time.Time
	newID func() string

	mu    sync.RWMutex
	token string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithLogger sets the logger for request diagnostics. The global zerolog
// logger is used otherwise.
func WithLogger(l zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.log = l
	}
}

// NewClient creates a client bound to one execution context.
func NewClient(transport Transport, execCtx ExecutionContext, opts ...ClientOption) *Client {
	c := &Client{
		transport: transport,
		execCtx:   execCtx,
		log:       log.Logger,
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ExecutionContext returns the context the client was created with.
func (c *Client) ExecutionContext() ExecutionContext {
	return c.execCtx
}

func (c *Client) accessToken(ctx context.Context) (string, error) {
	if c.execCtx.AccessToken != "" {
		return c.execCtx.AccessToken, nil
	}

	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()
	if token != "" {
		return token, nil
	}

	if c.transport == nil {
		return "", ErrMissingCredentials
	}

	token, err := c.transport.AccessToken(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to obtain access token: %w", err)
	}
	if token == "" {
		return "", ErrMissingCredentials
	}

	c.mu.Lock()
	c.token = token
	c.mu.Unlock()

	log := tracing.LoggerFromContext(ctx, c.log)
	log.Debug().Str("source", c.execCtx.Source).Msg("PayPal access token cached")

	return token, nil
}

func (c *Client) forgetToken() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
}

func (c *Client) headers(method, token string) map[string]string {
	h := map[string]string{
		"Authorization": "Bearer " + token,
		"Content-Type":  "application/json",
		"Accept":        "application/json",
		"User-Agent":    userAgent,
	}
	if c.execCtx.Source != "" {
		h["User-Agent"] = userAgent + " (" + c.execCtx.Source + ")"
	}

	if method != http.MethodGet {
		requestID := c.execCtx.RequestID
		if requestID == "" {
			requestID = c.newID()
		}
		h["PayPal-Request-Id"] = requestID
		h["Prefer"] = "return=representation"
	}

	return h
}

// send executes one request and returns the body of a 2xx response. Non-2xx
// responses become *APIError or *HTTPError.
func (c *Client) send(ctx context.Context, method, path string, body interface{}) ([]byte, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}
	if c.transport == nil {
		return nil, ErrNoTransport
	}

	var payload []byte
	if body != nil {
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	headers := c.headers(method, token)
	tracing.InjectHeaders(ctx, headers)

	req := &Request{
		Method:     method,
		Path:       path,
		Body:       payload,
		Headers:    headers,
		MerchantID: c.execCtx.MerchantID,
		Tenant:     c.execCtx.TenantContext,
	}

	logger := tracing.LoggerFromContext(ctx, c.log)
	start := c.now()
	event := logger.Debug().Str("method", method).Str("path", path)
	if c.execCtx.Debug && payload != nil {
		event = event.RawJSON("body", payload)
	}
	event.Msg("Sending PayPal request")

	resp, err := c.transport.Send(ctx, req)
	if err != nil {
		return nil, &TransportError{Method: method, Path: path, Err: err}
	}

	logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", c.now().Sub(start)).
		Msg("PayPal request completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusUnauthorized {
			c.forgetToken()
		}
		return nil, classifyResponse(resp)
	}

	return resp.Body, nil
}

func (c *Client) call(ctx context.Context, method, path string, body interface{}) (interface{}, error) {
	raw, err := c.send(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	return decodeBody(raw), nil
}

func (c *Client) get(ctx context.Context, path string) (interface{}, error) {
	return c.call(ctx, http.MethodGet, path, nil)
}

func (c *Client) post(ctx context.Context, path string, body interface{}) (interface{}, error) {
	return c.call(ctx, http.MethodPost, path, body)
}

// decodeBody turns a 2xx body into a value: JSON when it parses, text when it
// does not, and a status marker when it is empty.
func decodeBody(b []byte) interface{} {
	if len(bytes.TrimSpace(b)) == 0 {
		return map[string]interface{}{"status": "success"}
	}

	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return string(b)
	}
	return v
}

func escape(id string) string {
	return url.PathEscape(id)
}

func withQuery(path, query string) string {
	if query == "" {
		return path
	}
	return path + "?" + query
}
