package llm

import (
	"context"
	"fmt"
)

// Client is the abstraction over text-generation backends. The core treats
// it as a black box: it is given a system prompt and a user prompt and must
// return a JSON document, or fail.
type Client interface {
	// GenerateJSON produces a JSON document from the prompts. Markdown code
	// fences around the JSON are stripped before it is returned.
	GenerateJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	// Close releases any resources held by the client.
	Close() error
}

// NewClient creates a client for the configured provider.
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderClaude:
		return NewClaudeClient(config, apiKey)
	case ProviderGemini, "":
		return NewGeminiClient(ctx, config, apiKey)
	default:
		return nil, fmt.Errorf("unsupported provider %q", config.Provider)
	}
}
