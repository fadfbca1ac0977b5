package marketapi

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

	"github.com/afribrok/marketplace-bff/constant"
	utilsContext "github.com/afribrok/marketplace-bff/utils/context"
	"github.com/google/uuid"
)

// maxResponseBytes bounds how much of an API response is read into memory.
var maxResponseBytes int64 = 10 << 20

// HTTPClient matches net/http.Client Do signature for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a thin JSON wrapper over the marketplace REST API. It forwards the
// caller's session (bearer token, tenant) taken from the request context.
type Client struct {
	baseURL    string
	httpClient HTTPClient
}

// New creates an API client. A nil httpClient gets a default one with the given timeout.
func New(httpClient HTTPClient, baseURL string, timeout time.Duration) *Client {
	if httpClient == nil {
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

// Upload sends raw bytes to a presigned storage URL. No API headers are attached.
func (c *Client) Upload(ctx context.Context, method, rawURL string, headers map[string]string, contentType string, data []byte) error {
	if method == "" {
		method = http.MethodPut
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, bytes.NewReader(data))
	if err != nil {
		return &APIError{Message: "build upload request", URL: rawURL, Err: err}
	}
	req.Header.Set("Content-Type", contentType)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Message: "upload failed", URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{Message: errorMessage(resp.StatusCode, body), Status: resp.StatusCode, URL: rawURL}
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return &APIError{Message: "build request", URL: endpoint, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	applySession(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Message: "network error", URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return &APIError{Message: "read response", Status: resp.StatusCode, URL: endpoint, Err: err}
	}
	if int64(len(raw)) > maxResponseBytes {
		return &APIError{Message: "response too large", Status: resp.StatusCode, URL: endpoint}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Message: errorMessage(resp.StatusCode, raw), Status: resp.StatusCode, URL: endpoint}
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &APIError{Message: "decode response", Status: resp.StatusCode, URL: endpoint, Err: err}
	}
	return nil
}

func applySession(ctx context.Context, req *http.Request) {
	requestID, ok := utilsContext.GetRequestID(ctx)
	if !ok || requestID == "" {
		requestID = uuid.NewString()
	}
	req.Header.Set(constant.HeaderRequestID, requestID)

	session, ok := utilsContext.GetSession(ctx)
	if !ok {
		return
	}
	if session.Token != "" {
		req.Header.Set("Authorization", "Bearer "+session.Token)
	}
	if session.TenantID != "" && session.Role.TenantScoped() {
		req.Header.Set(constant.HeaderTenant, session.TenantID)
		req.Header.Set(constant.HeaderTenantID, session.TenantID)
	}
}

// errorMessage pulls "message" (string or list) or "error" out of an error body.
func errorMessage(status int, body []byte) string {
	var payload struct {
		Message json.RawMessage `json:"message"`
		Error   string          `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		var msg string
		if json.Unmarshal(payload.Message, &msg) == nil && msg != "" {
			return msg
		}
		var msgs []string
		if json.Unmarshal(payload.Message, &msgs) == nil && len(msgs) > 0 {
			return strings.Join(msgs, "; ")
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return fmt.Sprintf("request failed with status %d", status)
}
