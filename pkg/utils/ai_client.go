package utils

import (
	"context"
	"fmt"
	"strings"
)

// CompletionClientInterface is the single gateway to the hosted chat model.
// Replies are raw text with no structural guarantee; callers must validate.
type CompletionClientInterface interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int, temperature float32) (string, error)
}

// NewCompletionClient creates either an OpenAI or Gemini client based on config.
func NewCompletionClient(provider, apiKey, model string) (CompletionClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAICompletionClient(apiKey, model), nil
	case "gemini":
		return NewGeminiCompletionClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
