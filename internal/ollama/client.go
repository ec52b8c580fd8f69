// Package ollama provides the HTTP client for a local Ollama-compatible
// generation server.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrorKind categorizes client errors so callers can branch on the
// failure reason instead of parsing messages.
type ErrorKind int

const (
	ErrKindUnknown ErrorKind = iota
	ErrKindConnection
	ErrKindProtocol
	ErrKindDecode
)

// ClientError represents an error from the generation server client.
type ClientError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// IsConnectionError reports whether err is a network-level failure.
func IsConnectionError(err error) bool {
	var clientErr *ClientError
	return errors.As(err, &clientErr) && clientErr.Kind == ErrKindConnection
}

// IsProtocolError reports whether err is a non-2xx server response.
func IsProtocolError(err error) bool {
	var clientErr *ClientError
	return errors.As(err, &clientErr) && clientErr.Kind == ErrKindProtocol
}

// IsDecodeError reports whether err is a malformed response body.
func IsDecodeError(err error) bool {
	var clientErr *ClientError
	return errors.As(err, &clientErr) && clientErr.Kind == ErrKindDecode
}

// ClientConfig holds configuration options for the client.
type ClientConfig struct {
	// BaseURL of the generation server.
	// Uses the explicit IPv4 address instead of localhost to avoid IPv6
	// resolution issues on some systems.
	BaseURL string

	// Timeout for a single request/response exchange.
	Timeout time.Duration
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL: "http://127.0.0.1:11434",
		Timeout: 120 * time.Second,
	}
}

// Client handles communication with the generation server. It is safe
// for concurrent use.
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
}

// NewClient creates a client with default configuration.
func NewClient() *Client {
	return NewClientWithConfig(DefaultConfig())
}

// NewClientWithConfig creates a client with custom configuration.
func NewClientWithConfig(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}
	if config.BaseURL == "" {
		config.BaseURL = "http://127.0.0.1:11434"
	}
	if config.Timeout == 0 {
		config.Timeout = 120 * time.Second
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// CheckRunning verifies that the generation server is reachable.
func (c *Client) CheckRunning(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL, nil)
	if err != nil {
		return &ClientError{Kind: ErrKindConnection, Message: "failed to create request", Cause: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &ClientError{Kind: ErrKindConnection, Message: "server is not reachable", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &ClientError{Kind: ErrKindProtocol, Message: "unexpected status from server: " + resp.Status}
	}
	return nil
}

// ListModels retrieves all locally available models from /api/tags.
// On any failure the returned slice is nil; there are no partial results.
func (c *Client) ListModels(ctx context.Context) ([]ModelInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+"/api/tags", nil)
	if err != nil {
		return nil, &ClientError{Kind: ErrKindConnection, Message: "failed to create request", Cause: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ClientError{Kind: ErrKindConnection, Message: "failed to list models", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &ClientError{Kind: ErrKindProtocol, Message: "failed to list models: " + resp.Status}
	}

	var result ListModelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &ClientError{Kind: ErrKindDecode, Message: "failed to decode model list", Cause: err}
	}
	return result.Models, nil
}

// Generate sends a prompt to /api/generate and returns the complete
// response. Streaming is deliberately disabled; the client opts into a
// single blocking exchange per request.
func (c *Client) Generate(ctx context.Context, model, prompt string) (*GenerateResponse, error) {
	reqBody := GenerateRequest{
		Model:  model,
		Prompt: prompt,
		Stream: false,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, &ClientError{Kind: ErrKindDecode, Message: "failed to marshal request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return nil, &ClientError{Kind: ErrKindConnection, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ClientError{Kind: ErrKindConnection, Message: "generate request failed", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &ClientError{Kind: ErrKindProtocol, Message: "generate request failed: " + resp.Status}
	}

	var result GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &ClientError{Kind: ErrKindDecode, Message: "failed to decode response", Cause: err}
	}
	return &result, nil
}

// BaseURL returns the configured server address.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

func formatSize(v float64, unit string) string {
	return fmt.Sprintf("%.1f %s", v, unit)
}
