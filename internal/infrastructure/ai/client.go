// Package ai adapts an OpenAI-style completion endpoint (llama.cpp server,
// Ollama, or anything speaking the same dialect) into the ModelBackend port.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/HarshaNaik703/Shibu-Robo/internal/domain"
	"github.com/HarshaNaik703/Shibu-Robo/internal/ports"
)

const defaultTimeout = 20 * time.Second

// Client posts single-shot completion requests to the configured endpoint.
type Client struct {
	endpoint   string
	modelID    string
	httpClient *http.Client
}

// NewClient builds a backend client from model settings. Returns nil when no
// endpoint is configured, which callers treat as "model-backed mode off".
func NewClient(settings domain.ModelSettings) *Client {
	if settings.Endpoint == "" {
		return nil
	}
	timeout := defaultTimeout
	if settings.TimeoutSeconds > 0 {
		timeout = time.Duration(settings.TimeoutSeconds) * time.Second
	}
	return &Client{
		endpoint:   settings.Endpoint,
		modelID:    settings.ModelID,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Name implements ports.ModelBackend.
func (c *Client) Name() string {
	return "completion"
}

type completionRequest struct {
	Model     string `json:"model,omitempty"`
	Prompt    string `json:"prompt"`
	MaxTokens int    `json:"max_tokens,omitempty"`
	Stream    bool   `json:"stream"`
}

// Complete implements ports.ModelBackend. The response body is parsed
// tolerantly; see ExtractText for the recognized shapes.
func (c *Client) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	payload, err := json.Marshal(completionRequest{
		Model:     c.modelID,
		Prompt:    prompt,
		MaxTokens: maxTokens,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("%w: %s", domain.ErrBackendUnavailable, resp.Status)
	}

	var body bytes.Buffer
	if _, err := body.ReadFrom(resp.Body); err != nil {
		return "", err
	}
	return ExtractText(body.Bytes()), nil
}

var _ ports.ModelBackend = (*Client)(nil)
