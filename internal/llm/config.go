// Package llm provides the client abstraction over text-generation backends
// and the provider implementations behind it.
package llm

// Provider identifies a text-generation backend.
type Provider string

// Supported providers.
const (
	ProviderGemini Provider = "gemini"
	ProviderClaude Provider = "claude"
)

// Default models per provider.
const (
	DefaultGeminiModel = "gemini-2.5-flash"
	DefaultClaudeModel = "claude-sonnet-4-20250514"
)

// Config selects the provider and model used for a run.
type Config struct {
	Provider Provider
	Model    string
}

// DefaultConfig returns the default backend configuration.
func DefaultConfig() *Config {
	return &Config{Provider: ProviderGemini, Model: DefaultGeminiModel}
}

// ResolveModel returns the configured model, falling back to the provider's
// default when unset.
func (c *Config) ResolveModel() string {
	if c.Model != "" {
		return c.Model
	}
	switch c.Provider {
	case ProviderClaude:
		return DefaultClaudeModel
	default:
		return DefaultGeminiModel
	}
}
