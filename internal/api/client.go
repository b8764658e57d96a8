// Package api is the single choke point for gateway traffic. Every backend
// call flows through Client, which injects the session credential, decodes
// the response envelope, classifies failures, and intercepts session
// invalidation signals exactly once no matter how many in-flight requests
// observe them.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"bankclient/internal/config"
	"bankclient/internal/dto"
	"bankclient/internal/errcodes"
	"bankclient/internal/metrics"
	"bankclient/internal/session"
)

// Navigator performs the post-invalidation redirect to the authentication
// entry point. Implementations must be idempotent no-ops when the user is
// already there.
type Navigator interface {
	RedirectToAuth()
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func()

func (f NavigatorFunc) RedirectToAuth() { f() }

type credentialTransport struct {
	session *session.Session
	base    http.RoundTripper
}

func (t *credentialTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if token := t.session.Token(); token != "" {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", token)
	}
	return t.base.RoundTrip(req)
}

// Client dispatches typed requests to the gateway.
type Client struct {
	baseURL   string
	client    *http.Client
	session   *session.Session
	navigator Navigator
	metrics   *metrics.ClientMetrics
	limiter   *rate.Limiter

	// invalidated latches the forced-logout side effect. Concurrent callers
	// may all observe an invalidation signal; only the CompareAndSwap winner
	// clears the session and navigates. Rearm resets it after a fresh login.
	invalidated atomic.Bool
}

func NewClient(
	cfg *config.GatewayConfig,
	sess *session.Session,
	navigator Navigator,
	clientMetrics *metrics.ClientMetrics,
) *Client {
	transport := &credentialTransport{
		session: sess,
		base:    http.DefaultTransport,
	}

	var limiter *rate.Limiter
	if cfg.RatePerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.RateBurst)
	}

	return &Client{
		baseURL: cfg.BaseURL,
		client: &http.Client{
			Transport: transport,
			Timeout:   cfg.RequestTimeout,
		},
		session:   sess,
		navigator: navigator,
		metrics:   clientMetrics,
		limiter:   limiter,
	}
}

// Rearm resets the invalidation latch. The auth service calls it after a
// successful login so a later expiry of the new credential is intercepted
// again.
func (c *Client) Rearm() {
	c.invalidated.Store(false)
}

// Do sends a JSON request and decodes the envelope's data into out (which
// may be nil for endpoints whose data the caller ignores). The returned
// error is always a classified *Error.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	start := time.Now()

	req, err := c.buildRequest(ctx, method, path, body)
	if err != nil {
		return err
	}

	err = c.send(req, path, out)
	c.recordOutcome(path, err, time.Since(start))
	return err
}

// Upload sends a multipart form request carrying a single file field. Header
// and invalidation rules match Do.
func (c *Client) Upload(ctx context.Context, path, field, filename string, file io.Reader, out any) error {
	start := time.Now()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		return NewNetworkError("failed to build upload form", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return NewNetworkError("failed to read upload content", err)
	}
	if err := writer.Close(); err != nil {
		return NewNetworkError("failed to finalize upload form", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return NewNetworkError("failed to create upload request", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	if err := c.wait(ctx); err != nil {
		return err
	}

	err = c.send(req, path, out)
	c.recordOutcome(path, err, time.Since(start))
	return err
}

func (c *Client) buildRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, NewNetworkError("failed to encode request body", err)
		}
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return nil, NewNetworkError("failed to create request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	return req, nil
}

func (c *Client) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return NewNetworkError("request canceled while rate limited", err)
	}
	return nil
}

func (c *Client) send(req *http.Request, path string, out any) error {
	resp, err := c.client.Do(req)
	if err != nil {
		slog.Error("gateway request failed",
			"method", req.Method,
			"path", path,
			"error", err)
		return NewNetworkError("gateway request failed", err)
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return NewNetworkError("failed to read response body", err)
	}

	// HTTP-level unauthorized is an immediate invalidation signal; the
	// envelope, if any, is not consulted.
	if resp.StatusCode == http.StatusUnauthorized {
		c.invalidate(path, 401)
		return NewUnauthorizedError(401, "session expired or unauthorized")
	}

	var envelope dto.Envelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return NewNetworkError(
			fmt.Sprintf("malformed gateway response (%d)", resp.StatusCode), err)
	}

	if errcodes.IsSuccess(envelope.Code) {
		if out != nil && len(envelope.Data) > 0 && string(envelope.Data) != "null" {
			if err := json.Unmarshal(envelope.Data, out); err != nil {
				return NewNetworkError("failed to decode response data", err)
			}
		}
		return nil
	}

	// The reserved token-invalid code is the business-level invalidation
	// signal. Other auth-family codes (e.g. wrong credentials on a login
	// attempt) must not clear an unrelated valid session.
	if envelope.Code == errcodes.TokenInvalid {
		c.invalidate(path, envelope.Code)
		return NewUnauthorizedError(envelope.Code, c.message(envelope))
	}

	slog.Warn("gateway business error",
		"path", path,
		"code", envelope.Code,
		"message", envelope.Message)
	return NewBusinessError(envelope.Code, c.message(envelope))
}

func (c *Client) message(envelope dto.Envelope) string {
	if envelope.Message != "" {
		return envelope.Message
	}
	return errcodes.Message(envelope.Code)
}

// invalidate performs the single-shot forced logout. The latch decides the
// winner; losers return with their own classified error and no side effect.
func (c *Client) invalidate(path string, code int) {
	if !c.invalidated.CompareAndSwap(false, true) {
		return
	}

	slog.Warn("session invalidated, forcing logout",
		"path", path,
		"code", code)
	c.metrics.RecordInvalidation()
	c.session.Clear()
	if c.navigator != nil {
		c.navigator.RedirectToAuth()
	}
}

func (c *Client) recordOutcome(path string, err error, duration time.Duration) {
	outcome := "success"
	if apiErr, ok := AsError(err); ok {
		switch apiErr.Kind {
		case KindNetwork:
			outcome = "network"
		case KindUnauthorized:
			outcome = "unauthorized"
		default:
			outcome = "business"
		}
	}
	c.metrics.RecordRequest(path, outcome, duration)
}
