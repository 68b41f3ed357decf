package llm

import (
	"fmt"

	"go.uber.org/zap"
)

// ProviderOptions configures NewProvider.
type ProviderOptions struct {
	Type    string
	APIKey  string
	Model   string
	BaseURL string
	Debug   bool
}

// NewProvider creates a new LLM provider based on the given options.
// Supported provider types: "openai" (the default when Type is empty).
func NewProvider(opts ProviderOptions, logger *zap.Logger) (Provider, error) {
	switch opts.Type {
	case "", "openai":
		if opts.APIKey == "" {
			return nil, fmt.Errorf("openai: api key is required")
		}
		return NewOpenAIProvider(opts.APIKey, opts.Model, opts.BaseURL, opts.Debug, logger), nil

	default:
		return nil, fmt.Errorf("unsupported provider type: %s", opts.Type)
	}
}
