package openrouter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"careerpath-backend/internal/nlg"
)

const (
	apiURL       = "https://openrouter.ai/api/v1/chat/completions"
	defaultModel = "openai/gpt-4o-mini"
)

// Client implements nlg.Client against the OpenRouter chat-completions API.
type Client struct {
	apiKey string
	model  string
	http   *resty.Client
}

// NewClient constructs an OpenRouter-backed generation client.
func NewClient(apiKey, model string) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("OPENROUTER_API_KEY is required")
	}
	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}
	return &Client{
		apiKey: apiKey,
		model:  model,
		http:   resty.New().SetTimeout(60 * time.Second),
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	Temperature    float32       `json:"temperature"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

// Generate issues one generation call and parses the structured response.
func (c *Client) Generate(ctx context.Context, prompt nlg.Prompt) (nlg.Narrative, error) {
	req := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "user", Content: nlg.BuildPrompt(prompt)},
		},
	}
	req.ResponseFormat.Type = "json_object"

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+c.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(apiURL)
	if err != nil {
		return nlg.Narrative{}, fmt.Errorf("openrouter request: %w", err)
	}
	if resp.StatusCode() >= 400 {
		return nlg.Narrative{}, fmt.Errorf("openrouter status %d: %s", resp.StatusCode(), truncate(resp.String(), 200))
	}

	content := gjson.Get(resp.String(), "choices.0.message.content").String()
	if strings.TrimSpace(content) == "" {
		return nlg.Narrative{}, errors.New("openrouter returned no content")
	}
	return nlg.ParseNarrative(content)
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
