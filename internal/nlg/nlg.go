package nlg

import (
	"context"
	"errors"
)

// Prompt carries the structured inputs for one narrative generation call.
type Prompt struct {
	CareerName        string
	CareerDescription string
	UserContext       string
	FitScore          int
}

// Narrative is the structured response expected from the generation service.
type Narrative struct {
	Explanation string   `json:"explanation"`
	Strengths   []string `json:"strengths"`
	GrowthAreas []string `json:"growthAreas"`
	Roadmap     string   `json:"roadmap"`
}

// Client abstracts natural-language generation providers. Implementations
// make exactly one attempt per call; retry policy belongs to the caller.
type Client interface {
	Generate(ctx context.Context, prompt Prompt) (Narrative, error)
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("nlg provider not configured")

// PlaceholderClient is a stub implementation for environments without a
// configured provider. Callers fall back to the template narrative.
type PlaceholderClient struct{}

// Generate returns ErrNotConfigured.
func (PlaceholderClient) Generate(ctx context.Context, prompt Prompt) (Narrative, error) {
	_ = ctx
	_ = prompt
	return Narrative{}, ErrNotConfigured
}
