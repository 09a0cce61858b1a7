// Package apiclient holds the request plumbing shared by every backend-facing
// service: base URL resolution, bearer credentials, JSON bodies and the error
// mapping for non-2xx responses.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout bounds a single backend call when the caller does not supply
// its own http.Client.
const DefaultTimeout = 10 * time.Second

// HTTPClient matches the subset of http.Client used by Client.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// Client builds and executes requests against the backend REST API.
type Client struct {
	base   *url.URL
	client HTTPClient
}

// New constructs a Client rooted at baseURL. A nil httpClient falls back to a
// client with DefaultTimeout.
func New(baseURL string, httpClient HTTPClient) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("apiclient: base URL is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("apiclient: parse base URL: %w", err)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		base:   parsed,
		client: httpClient,
	}, nil
}

// NewRequest builds a request for endpoint relative to the client base. A
// non-empty token is attached as a bearer credential.
func (c *Client) NewRequest(ctx context.Context, method, endpoint string, body io.Reader, token string) (*http.Request, error) {
	urlStr := c.resolve(endpoint)
	req, err := http.NewRequestWithContext(ctx, method, urlStr, body)
	if err != nil {
		return nil, fmt.Errorf("apiclient: build request: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil && (method == http.MethodPost || method == http.MethodPut || method == http.MethodPatch) {
		if req.Header.Get("Content-Type") == "" {
			req.Header.Set("Content-Type", "application/json")
		}
	}
	return req, nil
}

// NewJSONRequest builds a request whose body is the JSON encoding of payload.
func (c *Client) NewJSONRequest(ctx context.Context, method, endpoint string, payload any, token string) (*http.Request, error) {
	var buf bytes.Buffer
	if payload != nil {
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(payload); err != nil {
			return nil, fmt.Errorf("apiclient: encode payload: %w", err)
		}
	}
	req, err := c.NewRequest(ctx, method, endpoint, &buf, token)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// Do executes the request.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("apiclient: request failed: %w", err)
	}
	return resp, nil
}

// GetJSON fetches endpoint and decodes the body into out.
func (c *Client) GetJSON(ctx context.Context, endpoint, token string, out any) error {
	req, err := c.NewRequest(ctx, http.MethodGet, endpoint, nil, token)
	if err != nil {
		return err
	}
	resp, err := c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.ErrorFromResponse(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("apiclient: decode response: %w", err)
	}
	return nil
}

// PostJSON sends payload to endpoint and, when out is non-nil, decodes the
// response body into it. 200 and 201 both count as success.
func (c *Client) PostJSON(ctx context.Context, endpoint string, payload any, token string, out any) error {
	return c.sendJSON(ctx, http.MethodPost, endpoint, payload, token, out)
}

// PutJSON sends payload to endpoint with PUT semantics.
func (c *Client) PutJSON(ctx context.Context, endpoint string, payload any, token string, out any) error {
	return c.sendJSON(ctx, http.MethodPut, endpoint, payload, token, out)
}

// DeleteJSON issues a DELETE carrying a JSON body, for endpoints that
// address the resource in the payload rather than the path.
func (c *Client) DeleteJSON(ctx context.Context, endpoint string, payload any, token string, out any) error {
	req, err := c.NewJSONRequest(ctx, http.MethodDelete, endpoint, payload, token)
	if err != nil {
		return err
	}
	resp, err := c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return c.ErrorFromResponse(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("apiclient: decode response: %w", err)
	}
	return nil
}

// Delete issues a DELETE against endpoint.
func (c *Client) Delete(ctx context.Context, endpoint, token string, out any) error {
	req, err := c.NewRequest(ctx, http.MethodDelete, endpoint, nil, token)
	if err != nil {
		return err
	}
	resp, err := c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return c.ErrorFromResponse(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("apiclient: decode response: %w", err)
	}
	return nil
}

func (c *Client) sendJSON(ctx context.Context, method, endpoint string, payload any, token string, out any) error {
	req, err := c.NewJSONRequest(ctx, method, endpoint, payload, token)
	if err != nil {
		return err
	}
	resp, err := c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return c.ErrorFromResponse(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("apiclient: decode response: %w", err)
	}
	return nil
}

func (c *Client) resolve(endpoint string) string {
	if endpoint == "" {
		return c.base.String()
	}
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		return endpoint
	}
	ref, err := url.Parse(endpoint)
	if err != nil {
		ref = &url.URL{Path: endpoint}
	}
	// Append to the base path rather than resolving a relative reference,
	// so a base like https://host/economy keeps its prefix.
	resolved := c.base.JoinPath(ref.Path)
	resolved.RawQuery = ref.RawQuery
	return resolved.String()
}

// StatusError carries the HTTP status of a failed backend call so handlers
// can distinguish missing resources from hard failures.
type StatusError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *StatusError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("apiclient: backend error (%s): %s", e.Code, e.Message)
	}
	return fmt.Sprintf("apiclient: backend error (%d): %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err represents a 404 from the backend.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether err represents a 401 from the backend.
func IsUnauthorized(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusUnauthorized
}

// ErrorFromResponse drains resp and converts a non-2xx response into a
// StatusError, preferring the backend's own error payload when present.
func (c *Client) ErrorFromResponse(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	_ = resp.Body.Close()

	type errorPayload struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	var payload errorPayload
	if len(body) > 0 {
		if err := json.Unmarshal(body, &payload); err == nil {
			msg := payload.Message
			if msg == "" {
				msg = payload.Error
			}
			if msg != "" {
				return &StatusError{
					StatusCode: resp.StatusCode,
					Code:       strings.TrimSpace(payload.Code),
					Message:    msg,
				}
			}
		}
	}
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &StatusError{StatusCode: resp.StatusCode, Message: msg}
}
