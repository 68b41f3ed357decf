package config

import "github.com/Murasan201/openai-text-generator/internal/llm"

// Variant selects one of the built-in request presets.
type Variant string

const (
	// VariantLegacy targets gpt-4 with the max_tokens field and debug output.
	VariantLegacy Variant = "legacy"
	// VariantMini targets o4-mini with the max_completion_tokens field.
	VariantMini Variant = "mini"
	// VariantMiniJA is VariantMini with the Japanese instruction and fallback.
	VariantMiniJA Variant = "mini-ja"
)

// Language selects the system instruction and fallback sentence.
type Language string

const (
	LanguageEnglish  Language = "en"
	LanguageJapanese Language = "ja"
)

// Config is the top-level textgen configuration, corresponding to .textgen.yml.
type Config struct {
	Variant      Variant        `yaml:"variant" koanf:"variant"`
	Model        string         `yaml:"model" koanf:"model"`
	MaxTokens    int            `yaml:"max_tokens" koanf:"max_tokens"`
	TokenParam   llm.TokenParam `yaml:"token_param" koanf:"token_param"`
	Language     Language       `yaml:"language" koanf:"language"`
	SystemPrompt string         `yaml:"system_prompt,omitempty" koanf:"system_prompt"`
	FallbackText string         `yaml:"fallback_text,omitempty" koanf:"fallback_text"`
	BaseURL      string         `yaml:"base_url,omitempty" koanf:"base_url"`
	APIKeyEnv    string         `yaml:"api_key_env" koanf:"api_key_env"`
	Debug        bool           `yaml:"debug" koanf:"debug"`
}
