// Package client implements the POS terminal's HTTP clients for the
// AutoServe 360 backend: invoice create/list/get/delete and the
// read-only inventory catalog. Each operation is a single
// request/response; retries are the caller's responsibility.
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
	"time"

	"go.uber.org/zap"

	"github.com/autoserve360/pos/internal/session"
	"github.com/autoserve360/pos/pkg/apperror"
)

// Client talks to the AutoServe 360 backend. The session store supplies
// the bearer token and tenant identifier for every request.
type Client struct {
	baseURL string
	http    *http.Client
	session *session.Store
	log     *zap.Logger
}

// New creates a backend client. baseURL includes the deployment's API
// prefix, e.g. "https://api.autoserve360.in/api/v1".
func New(baseURL string, timeout time.Duration, sess *session.Store, log *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		session: sess,
		log:     log,
	}
}

// do performs a single request. When tenantScoped is true the call fails
// synchronously, before any request is constructed, if no tenant
// identifier is in the session store.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}, tenantScoped bool) error {
	sess := c.session.Context()
	if tenantScoped {
		if err := sess.RequireTenant(); err != nil {
			return err
		}
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("client: encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("client: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sess.Token != "" {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}
	if sess.TenantID != "" {
		req.Header.Set("X-Tenant-ID", sess.TenantID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return apperror.NewAppError(http.StatusServiceUnavailable, fmt.Sprintf("Request failed: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := errorMessage(resp)
		c.log.Warn("backend request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", msg))
		return apperror.NewRequestFailedError(resp.StatusCode, msg)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("client: decode response: %w", err)
	}
	return nil
}

// errorMessage extracts the server-provided message from a failed
// response body, falling back to the raw body and then the status text.
// No status-code-specific interpretation happens anywhere in the client.
func errorMessage(resp *http.Response) string {
	data, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil || len(bytes.TrimSpace(data)) == 0 {
		return http.StatusText(resp.StatusCode)
	}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return strings.TrimSpace(string(data))
}
