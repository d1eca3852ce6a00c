// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package guidegen calls the Anthropic Messages API to generate learning
// guides, in batch or streaming mode. See docs/ARCHITECTURE § Guide Client.
package guidegen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/myvision/guide-engine/internal/prompt"
	"github.com/myvision/guide-engine/pkg/types"
)

const (
	defaultBaseURL   = "https://api.anthropic.com"
	anthropicVersion = "2023-06-01"
	defaultTimeout   = 120 * time.Second
)

// Client talks to the Anthropic Messages API. Safe for concurrent use.
type Client struct {
	cfg     types.GenerationConfig
	baseURL string
	http    *http.Client
}

// NewClient validates the configuration and returns a ready client.
func NewClient(cfg types.GenerationConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("anthropic API key not configured (set ANTHROPIC_API_KEY or .secrets/anthropic-api-key)")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		cfg:     cfg,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: timeout},
	}, nil
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	System      string    `json:"system,omitempty"`
	Temperature float64   `json:"temperature"`
	Stream      bool      `json:"stream,omitempty"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type apiError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type messagesResponse struct {
	Content []contentBlock `json:"content"`
	Error   *apiError      `json:"error,omitempty"`
}

// Generate runs one batch generation call and returns the complete guide.
// All failures are wrapped in *GenerationError.
func (c *Client) Generate(ctx context.Context, req types.GenerationRequest) (*types.GenerationResult, error) {
	body, err := c.do(ctx, req, false)
	if err != nil {
		return nil, &GenerationError{Err: err}
	}
	defer body.Close()

	var resp messagesResponse
	if err := json.NewDecoder(body).Decode(&resp); err != nil {
		return nil, &GenerationError{Err: fmt.Errorf("decoding response: %w", err)}
	}
	if resp.Error != nil {
		return nil, &GenerationError{Err: fmt.Errorf("API error %s: %s", resp.Error.Type, resp.Error.Message)}
	}

	var content string
	for _, block := range resp.Content {
		if block.Type == "text" {
			content += block.Text
		}
	}
	if content == "" {
		return nil, &GenerationError{Err: errors.New("response contained no text content")}
	}

	return c.result(req, content), nil
}

// do sends a Messages API request and returns the response body on HTTP
// success. Non-2xx responses are decoded for the API error message.
func (c *Client) do(ctx context.Context, req types.GenerationRequest, stream bool) (io.ReadCloser, error) {
	payload := messagesRequest{
		Model:       c.cfg.Model,
		Messages:    []message{{Role: "user", Content: prompt.Build(req)}},
		MaxTokens:   c.cfg.MaxTokens,
		System:      prompt.System,
		Temperature: c.cfg.Temperature,
		Stream:      stream,
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/messages", bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.cfg.APIKey)
	httpReq.Header.Set("anthropic-version", anthropicVersion)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("calling messages API: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		var envelope messagesResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&envelope); decodeErr == nil && envelope.Error != nil {
			return nil, fmt.Errorf("API error %s (HTTP %d): %s", envelope.Error.Type, resp.StatusCode, envelope.Error.Message)
		}
		return nil, fmt.Errorf("unexpected HTTP status %d", resp.StatusCode)
	}

	return resp.Body, nil
}

// result assembles the generation result with its metadata.
func (c *Client) result(req types.GenerationRequest, content string) *types.GenerationResult {
	title := prompt.GuideTitle(req.Topic)
	return &types.GenerationResult{
		Content: content,
		Title:   title,
		Metadata: types.GuideMetadata{
			Type:      "Learning Guide",
			Title:     title,
			Topic:     req.Topic,
			Generated: time.Now(),
		},
	}
}
