// Package summary turns a daily log into a short natural-language status
// message via the Anthropic Messages API.
package summary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/702greens/farmos/internal/models"
)

const (
	defaultBaseURL = "https://api.anthropic.com/v1"
	defaultModel   = "claude-3-5-sonnet-20241022"
	// defaultTimeout bounds the outbound call; the API default would hold a
	// goroutine for the full server-side generation window.
	defaultTimeout = 30 * time.Second
	// maxTokens caps the response length; the summary is a text message.
	maxTokens = 200

	apiVersion = "2023-06-01"
)

// Client calls the Anthropic Messages API. The returned text is treated as an
// opaque string; no structure is parsed out of it.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// Opts holds parameters for creating a Client. BaseURL and HTTPClient exist
// for tests; zero values select production defaults.
type Opts struct {
	APIKey     string
	BaseURL    string
	Model      string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// NewClient creates a summarization client.
func NewClient(opts Opts) *Client {
	c := &Client{
		apiKey:     opts.APIKey,
		baseURL:    opts.BaseURL,
		model:      opts.Model,
		httpClient: opts.HTTPClient,
	}
	if c.baseURL == "" {
		c.baseURL = defaultBaseURL
	}
	if c.model == "" {
		c.model = defaultModel
	}
	if c.httpClient == nil {
		timeout := opts.Timeout
		if timeout == 0 {
			timeout = defaultTimeout
		}
		c.httpClient = &http.Client{Timeout: timeout}
	}
	return c
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// Summarize builds the fixed prompt for log and returns the model's reply.
// Any transport error, non-2xx status, or empty reply is returned as an
// error; the caller decides what degraded text to substitute.
func (c *Client) Summarize(ctx context.Context, log *models.DailyLog) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("summary: api key not configured")
	}

	body, err := json.Marshal(messagesRequest{
		Model:     c.model,
		MaxTokens: maxTokens,
		Messages:  []message{{Role: "user", Content: BuildPrompt(log)}},
	})
	if err != nil {
		return "", fmt.Errorf("summary: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/messages", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("summary: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("summary: call api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("summary: api status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var out messagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("summary: decode response: %w", err)
	}
	if len(out.Content) == 0 || strings.TrimSpace(out.Content[0].Text) == "" {
		return "", fmt.Errorf("summary: empty response")
	}
	return strings.TrimSpace(out.Content[0].Text), nil
}
