// Package llm talks to an OpenAI-compatible chat-completions endpoint and
// turns the untrusted text it returns into course outlines, lesson content
// and quizzes, with static fallbacks on every failure path.
package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	APIKey     string
	Model      string
}

func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{
		HTTPClient: &http.Client{
			Timeout: 120 * time.Second, // LLM responses can be slow
		},
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   model,
	}
}

// Options tune a single generation request.
type Options struct {
	Temperature float64
	MaxTokens   int
	TopP        float64
}

type chatCompletionRequest struct {
	Model       string                  `json:"model"`
	Messages    []chatCompletionMessage `json:"messages"`
	Stream      bool                    `json:"stream"`
	Temperature *float64                `json:"temperature,omitempty"`
	MaxTokens   *int                    `json:"max_tokens,omitempty"`
	TopP        *float64                `json:"top_p,omitempty"`
}

type chatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatCompletionMessage `json:"message"`
	} `json:"choices"`
}

// Generate sends a single-prompt completion request and returns the raw text.
func (c *Client) Generate(prompt string, opts Options) (string, error) {
	request := chatCompletionRequest{
		Model: c.Model,
		Messages: []chatCompletionMessage{
			{Role: "user", Content: prompt},
		},
		Stream: false,
	}
	if opts.Temperature > 0 {
		request.Temperature = &opts.Temperature
	}
	if opts.MaxTokens > 0 {
		request.MaxTokens = &opts.MaxTokens
	}
	if opts.TopP > 0 {
		request.TopP = &opts.TopP
	}

	jsonData, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %v", err)
	}

	req, err := http.NewRequest("POST", c.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %v", err)
	}

	if resp.StatusCode != 200 {
		log.Printf("LLM API error (status %d)", resp.StatusCode)
		return "", fmt.Errorf("LLM API error (status %d): %s", resp.StatusCode, string(body))
	}

	var response chatCompletionResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", err
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("LLM API returned no choices")
	}
	return response.Choices[0].Message.Content, nil
}
