package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/Murasan201/openai-text-generator/internal/llm"
)

// EnvPrefix is the prefix of environment variable overrides.
const EnvPrefix = "TEXTGEN_"

// ErrMissingAPIKey is returned when the credential environment variable is
// unset or empty.
var ErrMissingAPIKey = errors.New("api key is not set")

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (TEXTGEN_*). A variant named in either
// source is applied first; explicitly set keys take precedence over it.
func Load(path string) (*Config, error) {
	return LoadVariant(path, "")
}

// LoadVariant is Load with a variant that replaces the one named in the file
// or environment. Its preset is still overridden by explicitly set keys.
func LoadVariant(path string, variant Variant) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// TEXTGEN_MAX_TOKENS -> max_tokens, etc.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if variant == "" {
		variant = Variant(k.String("variant"))
	}
	if variant != "" {
		cfg.ApplyVariant(variant)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if variant != "" {
		cfg.Variant = variant
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validLanguages = map[Language]bool{
	LanguageEnglish:  true,
	LanguageJapanese: true,
}

var validTokenParams = map[llm.TokenParam]bool{
	llm.TokenParamAuto:                true,
	llm.TokenParamMaxTokens:           true,
	llm.TokenParamMaxCompletionTokens: true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Variant != "" {
		if _, ok := variantPresets[c.Variant]; !ok {
			return fmt.Errorf("invalid variant %q: must be one of legacy, mini, mini-ja", c.Variant)
		}
	}

	if c.Model == "" {
		return fmt.Errorf("model is required")
	}

	if c.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be positive")
	}

	if !validTokenParams[c.TokenParam] {
		return fmt.Errorf("invalid token_param %q: must be one of auto, max_tokens, max_completion_tokens", c.TokenParam)
	}

	if !validLanguages[c.Language] {
		return fmt.Errorf("invalid language %q: must be one of en, ja", c.Language)
	}

	if c.APIKeyEnv == "" {
		return fmt.Errorf("api_key_env is required")
	}

	return nil
}

// ResolveAPIKey reads the credential from the environment variable named by
// APIKeyEnv.
func (c *Config) ResolveAPIKey() (string, error) {
	name := c.APIKeyEnv
	if name == "" {
		name = DefaultAPIKeyEnv
	}
	key := os.Getenv(name)
	if key == "" {
		return "", fmt.Errorf("%s environment variable: %w", name, ErrMissingAPIKey)
	}
	return key, nil
}
