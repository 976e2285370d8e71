package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// HTTPClient interface for testability
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config holds API client configuration
type Config struct {
	BaseURL       string        // REST endpoint base, e.g. http://localhost:8000
	PublicBaseURL string        // base for attachment links; defaults to BaseURL
	Timeout       time.Duration // per-request timeout
}

// Client is a thin typed wrapper around the tracker backend. One
// method per endpoint, no retries, no caching: every call reflects
// current backend state.
type Client struct {
	baseURL       string
	publicBaseURL string
	httpClient    HTTPClient
	logger        *zap.Logger
}

// NewClient creates an API client for the given backend
func NewClient(cfg Config, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	public := cfg.PublicBaseURL
	if public == "" {
		public = cfg.BaseURL
	}

	return &Client{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		publicBaseURL: strings.TrimRight(public, "/"),
		httpClient:    &http.Client{Timeout: timeout},
		logger:        logger,
	}
}

// AttachmentURL resolves a backend-stored attachment path into a
// directly retrievable URL. Absolute URLs pass through unchanged.
func (c *Client) AttachmentURL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.publicBaseURL + path
}

// getJSON issues a GET with optional query parameters and decodes the
// response into out
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return &NetworkError{URL: target, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	return c.do(req, out)
}

// postJSON issues a POST with a JSON body and decodes the response
// into out
func (c *Client) postJSON(ctx context.Context, path string, body interface{}, out interface{}) error {
	target := c.baseURL + path

	payload, err := json.Marshal(body)
	if err != nil {
		return &NetworkError{URL: target, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(payload))
	if err != nil {
		return &NetworkError{URL: target, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.do(req, out)
}

// Attachment is a file to include in a multipart request
type Attachment struct {
	Filename string
	Content  io.Reader
}

// doMultipart issues a request with a multipart body built from the
// given fields plus an optional file part named "attachment". Empty
// field values are omitted so backend defaults are never overwritten
// with blanks.
func (c *Client) doMultipart(ctx context.Context, method, path string, fields map[string]string, attachment *Attachment, out interface{}) error {
	target := c.baseURL + path

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for name, value := range fields {
		if value == "" {
			continue
		}
		if err := writer.WriteField(name, value); err != nil {
			return &NetworkError{URL: target, Err: err}
		}
	}

	if attachment != nil {
		part, err := writer.CreateFormFile("attachment", attachment.Filename)
		if err != nil {
			return &NetworkError{URL: target, Err: err}
		}
		if _, err := io.Copy(part, attachment.Content); err != nil {
			return &NetworkError{URL: target, Err: err}
		}
	}

	if err := writer.Close(); err != nil {
		return &NetworkError{URL: target, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, method, target, &buf)
	if err != nil {
		return &NetworkError{URL: target, Err: err}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	return c.do(req, out)
}

// do executes the request and maps the outcome onto the error
// taxonomy: NetworkError (transport), HTTPError (non-2xx),
// DecodeError (malformed payload).
func (c *Client) do(req *http.Request, out interface{}) error {
	target := req.URL.String()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("Request failed",
			zap.String("method", req.Method),
			zap.String("url", target),
			zap.Error(err))
		return &NetworkError{URL: target, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{URL: target, Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Debug("Backend returned error status",
			zap.String("method", req.Method),
			zap.String("url", target),
			zap.Int("status", resp.StatusCode))
		return &HTTPError{StatusCode: resp.StatusCode, URL: target, Body: string(body)}
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &DecodeError{URL: target, Err: err}
	}

	return nil
}
