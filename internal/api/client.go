// Package api is the HTTP adapter for the platform's REST backend.
// Every outgoing request carries the stored bearer token when one is
// present; any 401 response discards the token and surfaces
// ErrUnauthorized. Failure bodies of the shape {"error": "..."} are
// decoded once here rather than at each call site.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TokenSource yields and discards the persisted bearer token. The
// credential store satisfies this.
type TokenSource interface {
	Token() (string, error)
	ClearTokens() error
}

// Config holds client parameters.
type Config struct {
	// BaseURL includes the API prefix, e.g. http://localhost:5000/api.
	BaseURL string
	// Timeout bounds each request. Zero means 30s.
	Timeout time.Duration
}

// Client talks to the backend. All methods issue exactly one HTTP call
// and return the decoded body; no retries, no caching.
type Client struct {
	cfg      Config
	http     *http.Client
	tokens   TokenSource
	observer Observer
}

// New creates a Client. observer may be nil.
func New(cfg Config, tokens TokenSource, observer Observer) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if observer == nil {
		observer = NoopObserver{}
	}
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		tokens:   tokens,
		observer: observer,
	}
}

// do issues one request and decodes the JSON response into out (when
// out is non-nil). body is JSON-encoded when non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	contentType := ""
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(data)
		contentType = "application/json"
	}
	return c.send(ctx, method, path, reader, contentType, out)
}

// send is the single request path shared by JSON and multipart calls.
func (c *Client) send(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	start := time.Now()
	requestID := uuid.New().String()

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("X-Request-ID", requestID)

	token, err := c.tokens.Token()
	if err != nil {
		return fmt.Errorf("reading stored token: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.observe(method, path, 0, start, requestID, err)
		if ctx.Err() != nil {
			return fmt.Errorf("%s %s: %w", method, path, ctx.Err())
		}
		if isConnectionError(err) {
			return fmt.Errorf("%s %s: %w", method, path, ErrUnavailable)
		}
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.observe(method, path, resp.StatusCode, start, requestID, err)
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		serverErr := c.statusError(resp.StatusCode, respBody)
		c.observe(method, path, resp.StatusCode, start, requestID, serverErr)
		return fmt.Errorf("%s %s: %w", method, path, serverErr)
	}

	c.observe(method, path, resp.StatusCode, start, requestID, nil)

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// statusError builds the typed error for a non-2xx response. On 401 the
// stored tokens are discarded first so the next command starts from the
// anonymous state.
func (c *Client) statusError(status int, body []byte) error {
	if status == http.StatusUnauthorized {
		// A failed clear still leaves the request unauthorized; the
		// stale token will be rejected again next time.
		_ = c.tokens.ClearTokens()
	}
	var payload struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(body, &payload)
	return &StatusError{Status: status, Message: payload.Error}
}

func (c *Client) observe(method, path string, status int, start time.Time, requestID string, err error) {
	event := CallEvent{
		Method:    method,
		Path:      path,
		Status:    status,
		LatencyMs: time.Since(start).Milliseconds(),
		RequestID: requestID,
	}
	if err != nil {
		event.Err = errorCode(err)
	}
	c.observer.OnCallComplete(event)
}

// sendMultipart posts fields plus an optional file under the "image"
// part, mirroring the backend's task-creation form.
func (c *Client) sendMultipart(ctx context.Context, path string, fields map[string]string, imagePath string, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			return fmt.Errorf("writing form field %q: %w", key, err)
		}
	}

	if imagePath != "" {
		f, err := os.Open(imagePath)
		if err != nil {
			return fmt.Errorf("opening image: %w", err)
		}
		defer f.Close()

		part, err := w.CreateFormFile("image", filepath.Base(imagePath))
		if err != nil {
			return fmt.Errorf("creating image part: %w", err)
		}
		if _, err := io.Copy(part, f); err != nil {
			return fmt.Errorf("copying image: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("finalizing form: %w", err)
	}

	return c.send(ctx, http.MethodPost, path, &buf, w.FormDataContentType(), out)
}

// query appends URL query parameters to a path.
func query(path string, params map[string]string) string {
	if len(params) == 0 {
		return path
	}
	values := url.Values{}
	for k, v := range params {
		values.Set(k, v)
	}
	return path + "?" + values.Encode()
}

func isConnectionError(err error) bool {
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.DeadlineExceeded):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrUnauthorized):
		return "UNAUTHORIZED"
	case errors.Is(err, ErrForbidden):
		return "FORBIDDEN"
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	default:
		if strings.Contains(err.Error(), "context deadline exceeded") {
			return "TIMEOUT"
		}
		return "UNKNOWN"
	}
}
