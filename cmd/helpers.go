package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Murasan201/openai-text-generator/internal/config"
	"github.com/Murasan201/openai-text-generator/internal/llm"
	"github.com/Murasan201/openai-text-generator/internal/responder"
)

// loadConfig loads and validates the config. The --variant preset sits under
// explicit keys; --verbose forces debug on.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadVariant(cfgFile, config.Variant(variant))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `textgen init` to create a config file", err)
	}
	if verbose {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// createLLMProviderFromConfig creates an LLM provider based on config settings.
func createLLMProviderFromConfig(cfg *config.Config, apiKey string, logger *zap.Logger) (llm.Provider, error) {
	return llm.NewProvider(llm.ProviderOptions{
		Type:    "openai",
		APIKey:  apiKey,
		Model:   cfg.Model,
		BaseURL: cfg.BaseURL,
		Debug:   cfg.Debug,
	}, logger)
}

// createResponderFromConfig creates the prompt responder for cfg.
func createResponderFromConfig(cfg *config.Config, provider llm.Provider, logger *zap.Logger) (*responder.Responder, error) {
	return responder.New(settingsFromConfig(cfg), provider, logger)
}

func settingsFromConfig(cfg *config.Config) responder.Settings {
	return responder.Settings{
		Model:        cfg.Model,
		MaxTokens:    cfg.MaxTokens,
		TokenParam:   cfg.TokenParam,
		SystemPrompt: cfg.Instruction(),
		FallbackText: cfg.Fallback(),
	}
}
