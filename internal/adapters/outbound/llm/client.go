// Package llm implements domain.Advisor against an OpenAI-style chat
// completion endpoint. A failed call never surfaces an error: the client
// substitutes a canned envelope so the pipeline can proceed on defaults,
// and tags the result so callers can tell the difference.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/mongoshift/mongoshift/internal/domain"
)

const defaultBaseURL = "https://api.openai.com/v1/chat/completions"

const systemPrompt = "You are an expert Java developer specializing in database migrations from relational databases to MongoDB."

// Client issues one chat completion request per Advise call. No retry,
// no backoff, no streaming.
type Client struct {
	apiKey      string
	baseURL     string
	model       string
	maxTokens   int
	temperature float64
	timeout     time.Duration
}

// New builds a client from config. The API key comes from the
// OPENAI_API_KEY environment variable.
func New(cfg domain.LLMConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:      os.Getenv("OPENAI_API_KEY"),
		baseURL:     baseURL,
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout(),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message      chatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
}

// Advise builds the migration prompt, issues the completion request and
// decodes the response. Transport and API failures yield the canned
// envelope with Status == AdviceFailed.
func (c *Client) Advise(ctx context.Context, analysis *domain.Analysis) domain.Envelope {
	raw, err := c.complete(ctx, BuildPrompt(analysis))
	if err != nil {
		return cannedEnvelope(err.Error())
	}
	return Decode(raw)
}

func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: c.timeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling completion endpoint: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion endpoint returned %d: %s", resp.StatusCode, bytes.TrimSpace(raw))
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("completion response carried no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}
