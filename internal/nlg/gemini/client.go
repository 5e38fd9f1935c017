package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"careerpath-backend/internal/nlg"
)

const defaultModel = "gemini-2.5-flash"

// Client implements nlg.Client using the Gemini API.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient constructs a Gemini-backed generation client.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}
	return &Client{client: client, model: model}, nil
}

// Generate issues one generation call and parses the structured response.
func (c *Client) Generate(ctx context.Context, prompt nlg.Prompt) (nlg.Narrative, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(float32(0.2)),
		ResponseMIMEType: "application/json",
	}
	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(nlg.BuildPrompt(prompt)), cfg)
	if err != nil {
		return nlg.Narrative{}, fmt.Errorf("gemini generate content: %w", err)
	}
	raw := result.Text()
	if strings.TrimSpace(raw) == "" {
		return nlg.Narrative{}, errors.New("gemini returned an empty response")
	}
	return nlg.ParseNarrative(raw)
}
