// Package api is the REST transport for the marketplace backend. A single
// Client owns the base URL, the versioned prefix, credential injection from
// the session store, and uniform error normalization; every remote call in
// the program flows through it.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"github.com/gebeya-io/miniapp/internal/session"
)

// Client issues requests against the backend. It holds no retry or timeout
// policy of its own; retries belong to callers and timeouts to the caller's
// context.
type Client struct {
	rest     *resty.Client
	sessions session.Store
	prefix   string
}

// New builds a client rooted at baseURL with the versioned prefix prepended
// to every path. The session store is consulted on each request, so a
// credential set after construction is picked up automatically.
func New(baseURL string, prefix string, sessions session.Store) *Client {
	rest := resty.New().SetBaseURL(strings.TrimRight(baseURL, "/"))

	return &Client{
		rest:     rest,
		sessions: sessions,
		prefix:   prefix,
	}
}

// Request issues a call and returns the decoded JSON object. A success with
// an empty body returns an empty map rather than failing to parse.
func (c *Client) Request(ctx context.Context, method string, path string, body any) (map[string]any, error) {
	result := map[string]any{}
	if err := c.execute(ctx, method, path, body, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// execute runs one request and decodes the response into out when out is
// non-nil. query entries with empty values are dropped.
func (c *Client) execute(ctx context.Context, method string, path string, body any, query map[string]string, out any) error {
	builder := c.rest.R().SetContext(ctx)

	token := c.sessions.Get()
	if len(token) > 0 {
		builder.SetAuthToken(token)
	}

	builder.SetHeader("Content-Type", "application/json")

	if body != nil {
		builder.SetBody(body)
	}

	for key, value := range query {
		if len(value) > 0 {
			builder.SetQueryParam(key, value)
		}
	}

	url := c.prefix + path

	resp, err := makeRequest(builder, method, url)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"method": method,
			"path":   url,
		}).WithError(err).Debug("Transport failure")
		return newTransportError(err)
	}

	if resp.IsError() {
		return c.normalizeFailure(resp, len(token) > 0)
	}

	data := bytes.TrimSpace(resp.Body())
	if len(data) == 0 || out == nil {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return newTransportError(fmt.Errorf("malformed response body: %w", err))
	}

	return nil
}

// normalizeFailure maps a non-success response onto *Error. A credential
// rejection on an authenticated call destroys the stored credential; the
// next startup sequence re-exchanges the signed payload.
func (c *Client) normalizeFailure(resp *resty.Response, authenticated bool) error {
	failure := &Error{
		Status: resp.StatusCode(),
		Detail: genericErrorDetail,
	}

	var parsed map[string]any
	if err := json.Unmarshal(resp.Body(), &parsed); err == nil {
		failure.Body = parsed
		if detail, ok := parsed["detail"].(string); ok && len(detail) > 0 {
			failure.Detail = detail
		}
	}

	if authenticated && failure.Unauthorized() {
		logrus.WithFields(logrus.Fields{
			"status": failure.Status,
		}).Info("Credential rejected by backend, clearing stored session")

		if err := c.sessions.Clear(); err != nil {
			logrus.WithError(err).Warn("Failed to clear rejected credential")
		}
	}

	return failure
}

func makeRequest(builder *resty.Request, method string, url string) (*resty.Response, error) {
	switch strings.ToUpper(method) {
	case http.MethodGet:
		return builder.Get(url)
	case http.MethodPost:
		return builder.Post(url)
	case http.MethodPatch:
		return builder.Patch(url)
	case http.MethodPut:
		return builder.Put(url)
	case http.MethodDelete:
		return builder.Delete(url)
	default:
		return nil, fmt.Errorf("unsupported HTTP method: %s", method)
	}
}
