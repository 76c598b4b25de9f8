package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"StockAdvisor/internal/model"
)

const defaultBaseURL = "https://api.openai.com/v1"

// Client calls an OpenAI-compatible chat-completions endpoint.
type Client struct {
	APIKey  string
	Model   string
	BaseURL string
	Client  *http.Client
}

// NewClient creates a completion client with optional proxy support.
// baseURL falls back to the OpenAI API when empty.
func NewClient(apiKey, modelName, baseURL, proxyURL string) *Client {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		APIKey:  apiKey,
		Model:   modelName,
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout:   120 * time.Second,
			Transport: transport,
		},
	}
}

type chatRequest struct {
	Model    string              `json:"model"`
	Messages []model.ChatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Complete sends the ordered message list and returns the single completion
// text. Any failure here is fatal to the calling cycle.
func (c *Client) Complete(ctx context.Context, messages []model.ChatMessage) (string, error) {
	payload, err := json.Marshal(chatRequest{Model: c.Model, Messages: messages})
	if err != nil {
		return "", fmt.Errorf("marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.BaseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read completion response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var cr chatResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}
	if cr.Error != nil {
		return "", fmt.Errorf("completion API error: %s (%s)", cr.Error.Message, cr.Error.Type)
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("completion API returned no choices")
	}
	return cr.Choices[0].Message.Content, nil
}
