package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/smart-closet/closetctl/config"
)

const defaultTimeout = 30 * time.Second

// Client is the single point of contact with the smart-closet backend.
// All resource modules issue their requests through it.
type Client struct {
	httpClient *http.Client
	baseURL    string
	weather    *WeatherClient
}

// New creates a backend client from the given configuration.
func New(cfg *config.Config) *Client {
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		weather:    NewWeatherClient(cfg.Weather),
	}
}

// Weather exposes the weather sub-client, mainly for tests.
func (c *Client) Weather() *WeatherClient {
	return c.weather
}

// Get issues a GET and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.send(ctx, http.MethodGet, path, nil, "", "", out)
}

// Post issues a JSON POST. Used for query-style endpoints (rulebase,
// try-on) that do not create backend records.
func (c *Client) Post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode request body: %w", err)
	}
	return c.send(ctx, http.MethodPost, path, bytes.NewReader(body), "application/json", "", out)
}

// PostCreate issues a JSON POST carrying a client-generated
// Idempotency-Key, so an accidentally replayed create can be
// deduplicated server-side.
func (c *Client) PostCreate(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode request body: %w", err)
	}
	return c.send(ctx, http.MethodPost, path, bytes.NewReader(body), "application/json", uuid.NewString(), out)
}

// PostMultipart uploads r as a multipart form file under the given field
// name. The Content-Type header is left to the multipart writer so the
// boundary is set correctly. Multipart posts are always creates and
// carry an Idempotency-Key.
func (c *Client) PostMultipart(ctx context.Context, path, field, filename, mimeType string, r io.Reader, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	if mimeType != "" {
		header.Set("Content-Type", mimeType)
	}
	part, err := writer.CreatePart(header)
	if err != nil {
		return fmt.Errorf("create form part: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return fmt.Errorf("copy image data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("finalize form: %w", err)
	}

	return c.send(ctx, http.MethodPost, path, &buf, writer.FormDataContentType(), uuid.NewString(), out)
}

// Put issues a JSON PUT and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode request body: %w", err)
	}
	return c.send(ctx, http.MethodPut, path, bytes.NewReader(body), "application/json", "", out)
}

// Delete issues a DELETE. The response body, if any, is discarded.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.send(ctx, http.MethodDelete, path, nil, "", "", nil)
}

func (c *Client) send(ctx context.Context, method, path string, body io.Reader, contentType, idempotencyKey string, out any) error {
	url := c.baseURL + "/" + strings.TrimPrefix(path, "/")

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{
			Kind:    KindTransportFailure,
			Message: fmt.Sprintf("%s %s: %v", method, path, err),
			cause:   err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			Kind:    kindFromStatus(resp.StatusCode),
			Status:  resp.StatusCode,
			Message: errorMessage(resp.Body),
		}
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// errorMessage pulls a human-readable reason out of a backend error
// body. The backend variously uses "detail", "error" and "message".
func errorMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(data) == 0 {
		return ""
	}

	var body map[string]any
	if err := json.Unmarshal(data, &body); err != nil {
		return strings.TrimSpace(string(data))
	}
	for _, key := range []string{"detail", "error", "message"} {
		if msg, ok := body[key].(string); ok && msg != "" {
			return msg
		}
	}
	return strings.TrimSpace(string(data))
}
